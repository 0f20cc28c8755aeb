package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./data/watchlist.db" {
			t.Errorf("expected database path ./data/watchlist.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 5000 {
			t.Errorf("expected server port 5000, got %d", config.Server.Port)
		}

		if config.Server.ShutdownTimeout.Duration != 10*time.Second {
			t.Errorf("expected shutdown timeout 10s, got %v", config.Server.ShutdownTimeout)
		}

		if config.Auth.SessionName != "watchlist-session" {
			t.Errorf("expected session name watchlist-session, got %s", config.Auth.SessionName)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		testConfig := `[database]
path = "/custom/path.db"

[server]
host = "0.0.0.0"
port = 8080
secret_key = "s3cret"
read_timeout = "2s"

[auth]
login_burst = 2
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Server.Address() != "0.0.0.0:8080" {
			t.Errorf("expected address 0.0.0.0:8080, got %s", config.Server.Address())
		}
		if config.Server.ReadTimeout.Duration != 2*time.Second {
			t.Errorf("expected read timeout 2s, got %v", config.Server.ReadTimeout)
		}
		if config.Auth.LoginBurst != 2 {
			t.Errorf("expected login burst 2, got %d", config.Auth.LoginBurst)
		}
		if config.Auth.SessionName != "watchlist-session" {
			t.Errorf("missing keys should keep defaults, got session name %q", config.Auth.SessionName)
		}
	})

	t.Run("LoadConfig with bad duration", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[server]\nidle_timeout = \"soon\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Fatal("expected parse error for invalid duration")
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv(EnvDatabasePath, "/tmp/env.db")
		t.Setenv(EnvSecretKey, "from-env")
		t.Setenv(EnvHost, "0.0.0.0")
		t.Setenv(EnvPort, "9000")

		config := DefaultConfig()
		if err := config.ApplyEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.Database.Path != "/tmp/env.db" {
			t.Errorf("expected database path from env, got %s", config.Database.Path)
		}
		if config.Server.SecretKey != "from-env" {
			t.Errorf("expected secret key from env, got %s", config.Server.SecretKey)
		}
		if config.Server.Address() != "0.0.0.0:9000" {
			t.Errorf("expected address 0.0.0.0:9000, got %s", config.Server.Address())
		}
	})

	t.Run("ApplyEnv with bad port", func(t *testing.T) {
		t.Setenv(EnvPort, "eighty")

		err := DefaultConfig().ApplyEnv()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ResolveConfig", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		if err := os.WriteFile(envFile, []byte(EnvSecretKey+"=dotenv-secret\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv(EnvSecretKey, "")
		os.Unsetenv(EnvSecretKey)

		config, err := ResolveConfig(filepath.Join(dir, "missing.toml"), envFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.Server.SecretKey != "dotenv-secret" {
			t.Errorf("expected secret key from .env, got %s", config.Server.SecretKey)
		}
	})

	t.Run("ResolveConfig without env file", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := ResolveConfig(filepath.Join(dir, "missing.toml"), filepath.Join(dir, ".env")); err != nil {
			t.Fatalf("missing files should fall back to defaults: %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
		}{
			{name: "empty database path", mutate: func(c *Config) { c.Database.Path = "" }},
			{name: "empty secret key", mutate: func(c *Config) { c.Server.SecretKey = "" }},
			{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
			{name: "empty session name", mutate: func(c *Config) { c.Auth.SessionName = "" }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
