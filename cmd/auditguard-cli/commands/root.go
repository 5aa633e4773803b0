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

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/auditguard/config"
	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = ".auditguard"

var cfgFile string

// cliConfig holds the values viper collected from flags, the config file and AUDITGUARD_* variables.
// They override the server configuration.
type cliConfig struct {
	LogLevel   string `mapstructure:"logLevel"`
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlitePath"`
}

var runtimeConfig cliConfig

var rootCmd = &cobra.Command{
	Use:          "auditguard-cli",
	Short:        "Management cli",
	Long:         `The auditguard cli manages the database of an auditguard instance and renders reports without a running server.`,
	SilenceUsage: true,
	Version:      config.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}

		level := slog.LevelInfo
		if err := level.UnmarshalText([]byte(runtimeConfig.LogLevel)); err != nil {
			level = slog.LevelInfo
		}
		initLogger(level)
		return nil
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.auditguard.yaml)")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	rootCmd.PersistentFlags().String("driver", "", "database driver (sqlite or postgres). Overrides DB_DRIVER")
	rootCmd.PersistentFlags().String("sqlitePath", "", "path of the sqlite database. Overrides SQLITE_PATH")
}

func initLogger(level slog.Leveler) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
	}
	viper.AddConfigPath(".")

	// a missing config file is fine, a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	viper.SetEnvPrefix("AUDITGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)

	return viper.Unmarshal(&runtimeConfig)
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}

// loadConfig reads the server configuration and applies the cli overrides.
func loadConfig() (config.Config, error) {
	cfg, err := shared.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if runtimeConfig.Driver != "" {
		cfg.Database.Driver = runtimeConfig.Driver
	}
	if runtimeConfig.SQLitePath != "" {
		cfg.Database.SQLitePath = runtimeConfig.SQLitePath
	}
	return cfg, nil
}

// openDatabase connects to the configured database. The returned function closes the connection.
func openDatabase() (shared.DB, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}

	db, pool, err := database.NewConnection(cfg.Database)
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("could not connect to database: %w", err)
	}

	closeFn := func() {
		if pool != nil {
			pool.Close()
			return
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cfg, closeFn, nil
}
