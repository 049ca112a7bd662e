package config

import (
	"os"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		for _, key := range []string{"ACTIVITIES_HTTP_PORT", "ACTIVITIES_SQLITE_DSN"} {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "mhs_activities.db" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
	})

	t.Run("parses overrides from the environment", func(t *testing.T) {
		t.Setenv("ACTIVITIES_HTTP_PORT", "9090")
		t.Setenv("ACTIVITIES_SQLITE_DSN", "file:/tmp/activities.db")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:/tmp/activities.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
	})

	t.Run("rejects invalid port values", func(t *testing.T) {
		t.Setenv("ACTIVITIES_HTTP_PORT", "not-a-port")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid port")
		}
	})

	t.Run("rejects non-positive port values", func(t *testing.T) {
		t.Setenv("ACTIVITIES_HTTP_PORT", "0")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero port")
		}
	})
}

func TestLoadDotenv_MissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	if err := LoadDotenv(); err != nil {
		t.Fatalf("LoadDotenv returned error for missing file: %v", err)
	}
}
