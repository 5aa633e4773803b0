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

package services

import (
	"net/http"
	"testing"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCaseService(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)
	service := NewTestCaseService(repositories.NewTestCaseRepository(db), repositories.NewTestCaseEnvironmentTestPageRepository(db))

	t.Run("should create a test case with criteria", func(t *testing.T) {
		testCase, err := service.Create(dtos.TestCaseCreateRequest{
			ID:          "TC-3",
			Name:        "Text has enough contrast",
			Type:        models.TestCaseTypeAutomated,
			RuleID:      utils.Ptr("color-contrast"),
			CriteriaIDs: []string{"wcag-2.1-1.4.3"},
		})
		require.NoError(t, err)
		require.Len(t, testCase.Criteria, 1)
		assert.Equal(t, "wcag-2.1-1.4.3", testCase.Criteria[0].ID)

		_, err = service.Create(dtos.TestCaseCreateRequest{ID: "TC-3", Name: "again", Type: models.TestCaseTypeManual})
		requireHTTPStatus(t, err, http.StatusConflict)
	})

	t.Run("should reject a page which is not part of the test", func(t *testing.T) {
		_, err := service.CreateTestCasePage(f.T1, dtos.TestCasePageCreateRequest{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P2.ID})
		requireHTTPStatus(t, err, http.StatusBadRequest)

		rows, err := service.ListTestCasePages(f.T1.ID, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should not apply a batch partially", func(t *testing.T) {
		_, err := service.BulkCreateTestCasePages(f.T1, []dtos.TestCasePageCreateRequest{
			{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P1.ID},
			{TestCaseID: f.TC2.ID, EnvironmentPageID: f.P2.ID},
		})
		requireHTTPStatus(t, err, http.StatusBadRequest)

		rows, err := service.ListTestCasePages(f.T1.ID, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should derive the initial status from the test case type", func(t *testing.T) {
		rows, err := service.BulkCreateTestCasePages(f.T1, []dtos.TestCasePageCreateRequest{
			{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P1.ID},
			{TestCaseID: f.TC2.ID, EnvironmentPageID: f.P1.ID},
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.TestCaseStatusInProgress, rows[0].Status)
		assert.Equal(t, models.TestCaseStatusManual, rows[1].Status)

		_, err = service.CreateTestCasePage(f.T1, dtos.TestCasePageCreateRequest{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P1.ID})
		requireHTTPStatus(t, err, http.StatusConflict)

		updated, err := service.UpdateTestCasePageStatus(rows[0].ID, dtos.TestCasePageStatusRequest{Status: models.TestCaseStatusFailed, Remarks: utils.Ptr("logo has no alt text")})
		require.NoError(t, err)
		assert.Equal(t, models.TestCaseStatusFailed, updated.Status)

		stats, err := service.Statistics(f.T1.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Total)
		assert.Equal(t, int64(1), stats.ByStatus[models.TestCaseStatusFailed])
		assert.Equal(t, int64(1), stats.ByStatus[models.TestCaseStatusManual])
	})

	t.Run("should reject unknown test cases", func(t *testing.T) {
		_, err := service.CreateTestCasePage(f.T1, dtos.TestCasePageCreateRequest{TestCaseID: "does-not-exist", EnvironmentPageID: f.P1.ID})
		requireHTTPStatus(t, err, http.StatusBadRequest)
	})
}
