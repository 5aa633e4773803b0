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

package integrationtestutil

import (
	"context"
	"log"
	"path/filepath"
	"testing"

	"github.com/l3montree-dev/auditguard/config"
	"github.com/l3montree-dev/auditguard/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// InitSQLiteDatabase opens a fresh sqlite file in a temp dir, migrates it and seeds the system tables.
func InitSQLiteDatabase(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "auditguard.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, database.RunMigrationsWithDB(db))
	require.NoError(t, database.SyncSystemTables(db))
	return db
}

// InitDatabaseContainer starts a postgres container and returns a migrated and seeded connection.
// The test is skipped if no container provider is available.
func InitDatabaseContainer(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	dbName := "auditguard"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	require.NoError(t, err)

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)
	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, pool, err := database.NewConnection(config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		Host:         host,
		Port:         port.Port(),
		User:         dbUser,
		Password:     dbPassword,
		DBName:       dbName,
		MaxOpenConns: 5,
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrationsWithDB(db))
	require.NoError(t, database.SyncSystemTables(db))

	return db, func() {
		pool.Close()
		terminate()
	}
}
