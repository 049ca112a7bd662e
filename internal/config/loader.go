package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the activities
// service.
type Config struct {
	HTTPPort  int
	SQLiteDSN string
}

// LoadDotenv reads a .env file from the working directory into the process
// environment when one exists. A missing file is not an error.
func LoadDotenv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load parses configuration values from the current process environment,
// applying defaults for optional fields and reporting invalid entries.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:  8080,
		SQLiteDSN: "mhs_activities.db",
	}

	invalid := make([]string, 0, 1)

	if portValue := strings.TrimSpace(os.Getenv("ACTIVITIES_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "ACTIVITIES_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("ACTIVITIES_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
