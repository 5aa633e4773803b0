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
	"testing"

	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystemSeed(t *testing.T) {
	t.Run("should generate items from the criteria of a level", func(t *testing.T) {
		raw := []byte(`
standards:
  - id: std
    name: Standard
    principles:
      - num: "1"
        name: One
        guidelines:
          - num: "1.1"
            name: One One
            criteria:
              - { num: "1.1.1", name: First, level: A }
              - { num: "1.1.2", name: Second, level: AA }
item_types:
  - { id: web, name: Web }
audit_types:
  - id: report
    name: Report
    versions:
      - { id: report-1, version: "1", chapters: [ch] }
    chapters:
      - id: ch
        num: "1"
        name: Chapter
        sections:
          - { id: ch-a, num: "1.1", name: Level A, standard: std, level: A, item_types: [web] }
`)
		rows, err := database.ParseSystemSeed(raw)
		require.NoError(t, err)
		require.Len(t, rows.Items, 1)
		assert.Equal(t, "ch-a-1.1.1", rows.Items[0].ID)
		assert.Equal(t, database.CriteriaID("std", "1.1.1"), *rows.Items[0].SystemStandardCriteriaID)
	})

	t.Run("should reject unknown item types", func(t *testing.T) {
		raw := []byte(`
audit_types:
  - id: report
    name: Report
    chapters:
      - id: ch
        num: "1"
        name: Chapter
        sections:
          - { id: ch-a, num: "1.1", name: Section, item_types: [paper] }
`)
		_, err := database.ParseSystemSeed(raw)
		assert.Error(t, err)
	})

	t.Run("should reject versions with unknown chapters", func(t *testing.T) {
		raw := []byte(`
audit_types:
  - id: report
    name: Report
    versions:
      - { id: report-1, version: "1", chapters: [missing] }
`)
		_, err := database.ParseSystemSeed(raw)
		assert.Error(t, err)
	})
}

func TestSyncSystemTables(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)

	var before int64
	require.NoError(t, db.Model(&models.SystemStandardCriteria{}).Count(&before).Error)
	assert.Equal(t, int64(78), before)

	require.NoError(t, database.SyncSystemTables(db))

	var after int64
	require.NoError(t, db.Model(&models.SystemStandardCriteria{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestErrorClassification(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)

	err := db.Create(&models.SystemLandmark{ID: "main", Name: "Main"}).Error
	assert.True(t, database.IsDuplicateKeyError(err))

	err = db.Create(&models.Environment{Name: "Orphan", URL: "https://example.com"}).Error
	assert.True(t, database.IsForeignKeyError(err))
}
