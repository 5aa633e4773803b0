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

package models_test

import (
	"testing"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCaseEnvironmentTestPageBeforeCreate(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)

	t.Run("TC-1 on P1 in T1 is accepted and starts in progress", func(t *testing.T) {
		row := models.TestCaseEnvironmentTestPage{TestCaseID: "TC-1", EnvironmentPageID: f.P1.ID, EnvironmentTestID: f.T1.ID}
		require.NoError(t, db.Create(&row).Error)
		assert.Equal(t, models.TestCaseStatusInProgress, row.Status)
	})

	t.Run("TC-1 on P2 in T1 is rejected", func(t *testing.T) {
		row := models.TestCaseEnvironmentTestPage{TestCaseID: "TC-1", EnvironmentPageID: f.P2.ID, EnvironmentTestID: f.T1.ID}
		assert.ErrorIs(t, db.Create(&row).Error, models.ErrInvalidPageTestCombination)

		var count int64
		require.NoError(t, db.Model(&models.TestCaseEnvironmentTestPage{}).Where("environment_page_id = ?", f.P2.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("an unknown test case is reported", func(t *testing.T) {
		row := models.TestCaseEnvironmentTestPage{TestCaseID: "TC-404", EnvironmentPageID: f.P1.ID, EnvironmentTestID: f.T1.ID}
		assert.Error(t, db.Create(&row).Error)
	})
}
