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

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestCasePage(t *testing.T, db *gorm.DB, f integrationtestutil.Fixtures) models.TestCaseEnvironmentTestPage {
	t.Helper()
	row := models.TestCaseEnvironmentTestPage{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P1.ID, EnvironmentTestID: f.T1.ID, Status: models.TestCaseStatusFailed}
	require.NoError(t, db.Create(&row).Error)
	return row
}

func TestTargetService(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)
	pageRepository := repositories.NewTestCaseEnvironmentTestPageRepository(db)
	service := NewTargetService(repositories.NewTargetRepository(db), pageRepository)
	row := createTestCasePage(t, db, f)

	targets, err := service.AddTargets(row.ID, []dtos.TargetCreateRequest{
		{Selector: "header > img.logo", LandmarkID: ptr("banner")},
		{Selector: "main img.hero", LandmarkID: ptr("main")},
		{Selector: "footer img"},
	})
	require.NoError(t, err)
	require.Len(t, targets, 3)

	t.Run("should keep the target count of the page in sync", func(t *testing.T) {
		stored, err := pageRepository.Read(row.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.TargetCount)
	})

	t.Run("should reject unknown pages", func(t *testing.T) {
		_, err := service.AddTargets(uuid.New(), []dtos.TargetCreateRequest{{Selector: "body"}})
		requireHTTPStatus(t, err, http.StatusNotFound)
	})

	t.Run("should count relations on both sides", func(t *testing.T) {
		requireHTTPStatus(t, service.Relate(targets[0].ID, targets[0].ID), http.StatusBadRequest)
		requireHTTPStatus(t, service.Relate(targets[0].ID, uuid.New()), http.StatusNotFound)

		require.NoError(t, service.Relate(targets[0].ID, targets[1].ID))
		require.NoError(t, service.Relate(targets[2].ID, targets[0].ID))
		// already related the other way round
		require.NoError(t, service.Relate(targets[1].ID, targets[0].ID))

		first, err := service.ReadTarget(targets[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 2, first.RelatedTargetCount)
		assert.Len(t, first.RelatedTargets, 2)

		second, err := service.ReadTarget(targets[1].ID)
		require.NoError(t, err)
		assert.Equal(t, 1, second.RelatedTargetCount)
	})

	t.Run("should update counters when a target is removed", func(t *testing.T) {
		require.NoError(t, service.DeleteTarget(targets[2].ID))

		first, err := service.ReadTarget(targets[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 1, first.RelatedTargetCount)

		stored, err := pageRepository.Read(row.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.TargetCount)

		require.NoError(t, service.Unrelate(targets[1].ID, targets[0].ID))
		first, err = service.ReadTarget(targets[0].ID)
		require.NoError(t, err)
		assert.Zero(t, first.RelatedTargetCount)
	})
}

func ptr(s string) *string {
	return &s
}
