package main

import (
	"fmt"
	"io"
	"net"

	"github.com/codecrafters-io/http-server-starter-go/internal/config"
	"github.com/codecrafters-io/http-server-starter-go/internal/logging"
	"github.com/codecrafters-io/http-server-starter-go/internal/server"
	"github.com/codecrafters-io/http-server-starter-go/internal/store"
	"github.com/codecrafters-io/http-server-starter-go/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	directory   string
	address     string
	debug       bool
	noColor     bool
	showVersion bool
}

// listenFunc and serveFunc are replaced in tests.
var (
	listenFunc = server.Listen
	serveFunc  = func(srv *server.Server, l net.Listener) error {
		return srv.Serve(l)
	}
)

// NewRootCmd creates the root command for the server
func NewRootCmd() *cobra.Command {
	opts := &options{}
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:          version.AppName,
		Short:        version.Description,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				cfg = config.LoadOrDefault(opts.configPath)
			} else {
				cfg = config.LoadDefault()
			}

			// Flags win over the config file.
			if cmd.Flags().Changed("directory") {
				cfg.Server.Directory = opts.directory
			}
			if cmd.Flags().Changed("address") {
				cfg.Server.Address = opts.address
			}

			logging.InitGlobalLogger(opts.debug, cfg)
			logging.Info(fmt.Sprintf("Starting %s %s", version.AppName, version.Version))
			logging.Debug("Debug logging enabled")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
				return nil
			}

			// The banner is printed only once the port is held.
			l, err := listenFunc(cfg.Server.Address)
			if err != nil {
				logging.Error(err.Error())
				return err
			}
			defer l.Close()

			printBanner(cmd.OutOrStdout(), cfg.Server, opts.noColor)

			srv := server.New(cfg.Server, store.New(cfg.Server.Directory), logging.WithComponent("server"))
			if err := serveFunc(srv, l); err != nil {
				logging.Error(err.Error())
				return err
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	rootCmd.Flags().StringVar(&opts.directory, "directory", "", "directory served under /files/")
	rootCmd.Flags().StringVar(&opts.address, "address", config.LoadDefault().Server.Address, "address to listen on")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "print version information")

	return rootCmd
}

func printBanner(w io.Writer, cfg config.ServerConfig, noColor bool) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	if noColor {
		green.DisableColor()
		yellow.DisableColor()
	}

	green.Fprintf(w, "Server is running on %s\n", cfg.Address)
	if cfg.Directory != "" {
		yellow.Fprintf(w, "Serving files from directory: %s\n", cfg.Directory)
	} else {
		yellow.Fprintln(w, "No directory specified. File serving is disabled.")
	}
}
