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

package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

// MigrationFiles exposes the embedded sql files of the given dialect (sqlite or postgres).
func MigrationFiles(dialect string) (fs.FS, error) {
	return fs.Sub(migrationFiles, "migrations/"+dialect)
}

// migrators caches one migrator per *sql.DB. The postgres driver holds a dedicated connection.
var migrators sync.Map

// getMigrator returns a migrator bound to the connection of db.
// The migrator must not be closed, closing it would close the shared connection.
func getMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if m, ok := migrators.Load(sqlDB); ok {
		return m.(*migrate.Migrate), nil
	}

	dialect := db.Name()

	var driver database.Driver
	switch dialect {
	case "sqlite":
		driver, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	case "postgres":
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationFiles, "migrations/"+dialect)
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		return nil, err
	}
	actual, _ := migrators.LoadOrStore(sqlDB, m)
	return actual.(*migrate.Migrate), nil
}

// RunMigrationsWithDB runs all pending database migrations using an existing GORM database instance
func RunMigrationsWithDB(db *gorm.DB) error {
	migrator, err := getMigrator(db)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("no pending migrations")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("migrations completed successfully")
	return nil
}

// RollbackMigrationsWithDB reverts the given number of migrations. steps <= 0 reverts everything.
func RollbackMigrationsWithDB(db *gorm.DB, steps int) error {
	migrator, err := getMigrator(db)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if steps <= 0 {
		err = migrator.Down()
	} else {
		err = migrator.Steps(-steps)
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("nothing to roll back")
			return nil
		}
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}

	slog.Info("rollback completed successfully", "steps", steps)
	return nil
}

// MigrateToVersion moves the schema to exactly the given version, up or down.
func MigrateToVersion(db *gorm.DB, version uint) error {
	migrator, err := getMigrator(db)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := migrator.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate to version %d: %w", version, err)
	}
	return nil
}

// GetMigrationVersionWithDB returns the current migration version using an existing GORM database instance
func GetMigrationVersionWithDB(db *gorm.DB) (uint, bool, error) {
	migrator, err := getMigrator(db)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrator: %w", err)
	}
	return migrator.Version()
}
