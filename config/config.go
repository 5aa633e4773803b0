// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// filled at build time using ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	Branch    = "unknown"
	BuildDate = "unknown"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds everything the server and the cli need at startup.
// Values can come from config.yaml, environment variables always win.
type Config struct {
	Port        string `yaml:"port" env:"PORT" env-default:"8080"`
	Environment string `yaml:"environment" env:"ENVIRONMENT" env-default:"dev"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" env-default:"debug"`

	// origins of the ui shell allowed to call the api
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`

	// secret - never read from yaml
	ErrorTrackingDSN string `yaml:"-" env:"ERROR_TRACKING_DSN"`

	DisableAutoMigrate bool `yaml:"disable_automigrate" env:"DISABLE_AUTOMIGRATE" env-default:"false"`

	Database DatabaseConfig `yaml:"database"`
	Report   ReportConfig   `yaml:"report"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"auditguard.db"`

	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"auditguard"`
	Password string `yaml:"-" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"name" env:"POSTGRES_DB" env-default:"auditguard"`

	MaxOpenConns    int32         `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MinConns        int32         `yaml:"min_conns" env:"DB_MIN_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"4h"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME" env-default:"15m"`
}

type ReportConfig struct {
	// path to a chromium binary. Empty means rod downloads or finds one.
	BrowserBin string `yaml:"browser_bin" env:"REPORT_BROWSER_BIN"`
	// an already running browser (ws://...). Takes precedence over BrowserBin.
	BrowserURL string `yaml:"browser_url" env:"REPORT_BROWSER_URL"`
}

// Load reads config.yaml (if present) and the environment.
func Load() (Config, error) {
	var cfg Config
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("could not read config from environment: %w", err)
	}

	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverPostgres {
		return cfg, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}
