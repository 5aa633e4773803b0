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

package database_test

import (
	"path/filepath"
	"testing"

	"github.com/l3montree-dev/auditguard/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "migrations.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	t.Run("should apply all migrations", func(t *testing.T) {
		require.NoError(t, database.RunMigrationsWithDB(db))
		// running again is a no-op
		require.NoError(t, database.RunMigrationsWithDB(db))

		version, dirty, err := database.GetMigrationVersionWithDB(db)
		require.NoError(t, err)
		assert.False(t, dirty)
		assert.Equal(t, uint(3), version)

		assert.True(t, db.Migrator().HasColumn("audits", "evaluation_methods"))
		assert.False(t, db.Migrator().HasColumn("environments", "auth_token"))
	})

	t.Run("should migrate to a specific version", func(t *testing.T) {
		require.NoError(t, database.MigrateToVersion(db, 1))

		version, _, err := database.GetMigrationVersionWithDB(db)
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)
		assert.True(t, db.Migrator().HasColumn("environments", "auth_token"))
		assert.False(t, db.Migrator().HasColumn("test_case_environment_test_page_targets", "related_target_count"))
	})

	t.Run("should roll back step by step and completely", func(t *testing.T) {
		require.NoError(t, database.RunMigrationsWithDB(db))
		require.NoError(t, database.RollbackMigrationsWithDB(db, 1))

		version, _, err := database.GetMigrationVersionWithDB(db)
		require.NoError(t, err)
		assert.Equal(t, uint(2), version)

		require.NoError(t, database.RollbackMigrationsWithDB(db, 0))
		assert.False(t, db.Migrator().HasTable("projects"))
	})
}

func TestMigrationFiles(t *testing.T) {
	for _, dialect := range []string{"sqlite", "postgres"} {
		files, err := database.MigrationFiles(dialect)
		require.NoError(t, err)

		for _, name := range []string{"000001_init.up.sql", "000002_target_counters.down.sql", "000003_audit_report_fields.up.sql"} {
			_, err := files.Open(name)
			assert.NoError(t, err, "%s/%s", dialect, name)
		}
	}
}
