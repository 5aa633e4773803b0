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

package controllers

import (
	"net/http"
	"testing"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/l3montree-dev/auditguard/services"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCaseController(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)

	testCasePageRepository := repositories.NewTestCaseEnvironmentTestPageRepository(db)
	targetService := services.NewTargetService(repositories.NewTargetRepository(db), testCasePageRepository)
	controller := NewTestCaseController(
		services.NewTestCaseService(repositories.NewTestCaseRepository(db), testCasePageRepository),
		services.NewRemediationService(repositories.NewRemediationRepository(db), targetService),
	)

	t.Run("should reject the whole batch if one page is not part of the test", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, map[string]any{"rows": []map[string]any{
			{"testCaseId": f.TC1.ID, "environmentPageId": f.P1.ID},
			{"testCaseId": f.TC2.ID, "environmentPageId": f.P2.ID},
		}})
		shared.SetEnvironmentTest(ctx, f.T1)

		err := controller.BulkCreatePages(ctx)
		requireHTTPStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, models.ErrInvalidPageTestCombination.Error(), err.(*echo.HTTPError).Message)

		var count int64
		require.NoError(t, db.Model(&models.TestCaseEnvironmentTestPage{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("should derive the status from the test case type", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodPost, map[string]any{"rows": []map[string]any{
			{"testCaseId": f.TC1.ID, "environmentPageId": f.P1.ID},
			{"testCaseId": f.TC2.ID, "environmentPageId": f.P1.ID},
		}})
		shared.SetEnvironmentTest(ctx, f.T1)
		require.NoError(t, controller.BulkCreatePages(ctx))

		pages := decode[[]models.TestCaseEnvironmentTestPage](t, rec)
		require.Len(t, pages, 2)
		assert.Equal(t, models.TestCaseStatusInProgress, pages[0].Status)
		assert.Equal(t, models.TestCaseStatusManual, pages[1].Status)
	})

	t.Run("should reject a duplicate result", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, map[string]any{"testCaseId": f.TC1.ID, "environmentPageId": f.P1.ID})
		shared.SetEnvironmentTest(ctx, f.T1)
		requireHTTPStatus(t, controller.CreatePage(ctx), http.StatusConflict)
	})

	t.Run("should count the results by status", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, nil)
		shared.SetEnvironmentTest(ctx, f.T1)
		require.NoError(t, controller.Statistics(ctx))

		stats := decode[dtos.TestCasePageStatisticsDTO](t, rec)
		assert.EqualValues(t, 2, stats.Total)
		assert.EqualValues(t, 1, stats.ByStatus[models.TestCaseStatusManual])
	})

	t.Run("should validate the status update", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPatch, map[string]any{"status": "DONE"})
		ctx.SetParamNames("pageID")
		ctx.SetParamValues(f.P1.ID.String())
		requireHTTPStatus(t, controller.UpdatePageStatus(ctx), http.StatusBadRequest)
	})

	t.Run("should reply 404 for an unknown test case", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, nil)
		ctx.SetParamNames("testCaseID")
		ctx.SetParamValues("TC-404")
		requireHTTPStatus(t, controller.Read(ctx), http.StatusNotFound)
	})
}
