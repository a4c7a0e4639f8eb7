package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-overlaygen/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(config.WithSearchPaths(dir), config.WithEnvFiles(filepath.Join(dir, ".env")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &config.Config{
		API:    config.APIConfig{BaseURL: "http://localhost:5001"},
		Server: config.ServerConfig{Addr: ":8085"},
		Output: config.OutputConfig{Dir: "."},
		Log:    config.LogConfig{Level: "info"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.CommandEndpoint() != "http://localhost:5001/process_custom" {
		t.Fatalf("command endpoint = %q", cfg.CommandEndpoint())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "overlaygen.yaml")
	writeFile(t, file, "api:\n  base_url: http://render.internal:9000/\n  timeout: 3s\nserver:\n  addr: \":9999\"\nlog:\n  level: debug\n")
	t.Setenv("OVERLAYGEN_SERVER_ADDR", ":7000")

	cfg, err := config.Load(config.WithSearchPaths(dir), config.WithEnvFiles())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "http://render.internal:9000" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("timeout = %s", cfg.API.Timeout)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("env should win over the file, addr = %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "OVERLAYGEN_COMMAND_ENDPOINT=https://api.example.com/process_custom\n")
	t.Cleanup(func() { _ = os.Unsetenv("OVERLAYGEN_COMMAND_ENDPOINT") })

	cfg, err := config.Load(config.WithSearchPaths(dir), config.WithEnvFiles(envFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CommandEndpoint() != "https://api.example.com/process_custom" {
		t.Fatalf("command endpoint = %q", cfg.CommandEndpoint())
	}
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	if _, err := config.Load(config.WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")), config.WithEnvFiles()); err == nil {
		t.Fatalf("expected error for a missing explicit file")
	}
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("OVERLAYGEN_API_TIMEOUT", "-1s")
	if _, err := config.Load(config.WithSearchPaths(t.TempDir()), config.WithEnvFiles()); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
