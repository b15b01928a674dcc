package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	validConfigPath := filepath.Join(tempDir, "valid-config.yaml")
	validConfigContent := `
server:
  address: 0.0.0.0:8080
  directory: /tmp/files
  read_timeout: 250
  max_request_size: 1024
logging:
  log_to_file: true
  log_file_path: /tmp/server.log
`
	if err := os.WriteFile(validConfigPath, []byte(validConfigContent), 0644); err != nil {
		t.Fatalf("Failed to write valid config file: %v", err)
	}

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("Failed to load valid config: %v", err)
	}

	if cfg.Server.Address != "0.0.0.0:8080" {
		t.Errorf("Expected address '0.0.0.0:8080', got '%s'", cfg.Server.Address)
	}
	if cfg.Server.Directory != "/tmp/files" {
		t.Errorf("Expected directory '/tmp/files', got '%s'", cfg.Server.Directory)
	}
	if cfg.Server.ReadTimeoutDuration() != 250*time.Millisecond {
		t.Errorf("Expected read timeout 250ms, got %s", cfg.Server.ReadTimeoutDuration())
	}
	// Omitted values keep their defaults
	if cfg.Server.WriteTimeout != 5000 {
		t.Errorf("Expected default write timeout 5000, got %d", cfg.Server.WriteTimeout)
	}
	if cfg.Server.MaxRequestSize != 1024 {
		t.Errorf("Expected max request size 1024, got %d", cfg.Server.MaxRequestSize)
	}
	if !cfg.Logging.LogToFile {
		t.Errorf("Expected log_to_file to be true")
	}
	if cfg.Logging.LogFilePath != "/tmp/server.log" {
		t.Errorf("Expected log file path '/tmp/server.log', got '%s'", cfg.Logging.LogFilePath)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Expected default max backups 3, got %d", cfg.Logging.MaxBackups)
	}

	invalidConfigPath := filepath.Join(tempDir, "invalid-config.yaml")
	if err := os.WriteFile(invalidConfigPath, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write invalid config file: %v", err)
	}
	if _, err := Load(invalidConfigPath); err == nil {
		t.Errorf("Expected error for invalid config, got nil")
	}

	if _, err := Load(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing config file, got nil")
	}
}

func TestLoadDefault(t *testing.T) {
	cfg := LoadDefault()
	if cfg.Server.Address != "localhost:4221" {
		t.Errorf("Expected default address 'localhost:4221', got '%s'", cfg.Server.Address)
	}
	if cfg.Server.Directory != "" {
		t.Errorf("Expected empty default directory, got '%s'", cfg.Server.Directory)
	}
	if cfg.Server.ReadTimeoutDuration() != 5*time.Second {
		t.Errorf("Expected default read timeout 5s, got %s", cfg.Server.ReadTimeoutDuration())
	}
	if cfg.Logging.LogToFile {
		t.Errorf("Expected file logging disabled by default")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}
	if cfg.Server.Address != "localhost:4221" {
		t.Errorf("Expected default address, got '%s'", cfg.Server.Address)
	}
}
