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
	"bytes"
	"path/filepath"
	"testing"

	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProjects(t *testing.T) {
	paged := shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10}, 1, []models.Project{{
		Name:         "Shop",
		Description:  "public web shop",
		Technologies: []models.SystemTechnology{{ID: "react", Name: "React"}, {ID: "go", Name: "Go"}},
	}})

	out := renderProjects(paged)

	assert.Contains(t, out, "Shop")
	assert.Contains(t, out, "React, Go")
	assert.Contains(t, out, "TOTAL")
}

func TestCommands(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	path := filepath.Join(t.TempDir(), "cli.db")

	rootCmd.AddCommand(NewMigrateCommand(), NewSeedCommand(), NewProjectsCommand())

	run := func(args ...string) string {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append(args, "--sqlitePath", path))
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	run("migrate", "up")
	run("seed")
	assert.Contains(t, run("migrate", "version"), "dirty: false")

	db, err := database.NewSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Project{Name: "Shop"}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Contains(t, run("projects", "list"), "Shop")
	assert.NotContains(t, run("projects", "list", "--search", "intranet"), "Shop")

	t.Run("should reject an invalid number of steps", func(t *testing.T) {
		rootCmd.SetArgs([]string{"migrate", "down", "zero", "--sqlitePath", path})
		assert.Error(t, rootCmd.Execute())
	})
}
