package config

import (
	"os"
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "school")
	t.Setenv("DB_PORT", "")
	t.Setenv("PORT", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost: got %q, want %q", cfg.DBHost, "localhost")
	}
	if cfg.DBPort != "3306" {
		t.Errorf("DBPort default: got %q, want %q", cfg.DBPort, "3306")
	}
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort default: got %q, want %q", cfg.AppPort, "8080")
	}
}

func TestLoadExplicitPorts(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PORT", "3307")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPort != "3307" {
		t.Errorf("DBPort: got %q, want %q", cfg.DBPort, "3307")
	}
	if cfg.AppPort != "9090" {
		t.Errorf("AppPort: got %q, want %q", cfg.AppPort, "9090")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	for _, key := range required {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")
			os.Unsetenv(key)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error with %s unset", key)
			} else if !strings.Contains(err.Error(), key) {
				t.Errorf("error %q does not name missing key %s", err, key)
			}
		})
	}
}
