package version

import (
	"fmt"
	"runtime"
)

var (
	// Version in string format - set at build time
	Version = "0.1.0"
	// GitCommit is the git commit that was compiled - set at build time
	GitCommit = ""
	// AppName is the name of the binary
	AppName = "http-server"
	// Description of the application
	Description = "A minimal HTTP/1.1 server built on raw TCP"
)

// GetVersionInfo returns a formatted version string with build information
func GetVersionInfo() string {
	s := fmt.Sprintf("%s version %s", AppName, Version)
	if GitCommit != "" {
		s += fmt.Sprintf("\nGit commit: %s", GitCommit)
	}
	s += fmt.Sprintf("\nGo version: %s", runtime.Version())
	s += fmt.Sprintf("\nPlatform: %s/%s", runtime.GOOS, runtime.GOARCH)
	return s
}
