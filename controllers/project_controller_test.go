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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectController(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)

	controller := NewProjectController(
		services.NewProjectService(repositories.NewProjectRepository(db)),
		services.NewEnvironmentService(repositories.NewEnvironmentRepository(db), repositories.NewEnvironmentPageRepository(db), repositories.NewEnvironmentTestRepository(db)),
	)

	t.Run("should reject a project without a name", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, map[string]any{"description": "no name"})
		requireHTTPStatus(t, controller.Create(ctx), http.StatusBadRequest)
	})

	t.Run("should create a project with technologies", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodPost, map[string]any{"name": " Intranet ", "technologyIds": []string{"react"}})
		require.NoError(t, controller.Create(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		project := decode[models.Project](t, rec)
		assert.Equal(t, "Intranet", project.Name)
		require.Len(t, project.Technologies, 1)
		assert.Equal(t, "react", project.Technologies[0].ID)
	})

	t.Run("should create an environment inside the project", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodPost, map[string]any{"name": "Staging", "url": "https://staging.shop.example.com"})
		shared.SetProject(ctx, f.Project)
		require.NoError(t, controller.CreateEnvironment(ctx))
		assert.Equal(t, f.Project.ID, decode[models.Environment](t, rec).ProjectID)

		ctx, rec = newContext(t, http.MethodGet, nil)
		shared.SetProject(ctx, f.Project)
		require.NoError(t, controller.ListEnvironments(ctx))
		assert.Len(t, decode[[]models.Environment](t, rec), 2)
	})

	t.Run("should reject an environment with an invalid url", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, map[string]any{"name": "Broken", "url": "not a url"})
		shared.SetProject(ctx, f.Project)
		requireHTTPStatus(t, controller.CreateEnvironment(ctx), http.StatusBadRequest)
	})

	t.Run("should only delete after confirmation", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodDelete, map[string]any{"confirm": false})
		shared.SetProject(ctx, f.Project)
		requireHTTPStatus(t, controller.Delete(ctx), http.StatusBadRequest)

		ctx, _ = newContext(t, http.MethodDelete, nil)
		shared.SetProject(ctx, f.Project)
		requireHTTPStatus(t, controller.Delete(ctx), http.StatusBadRequest)

		ctx, rec := newContext(t, http.MethodDelete, map[string]any{"confirm": true})
		shared.SetProject(ctx, f.Project)
		require.NoError(t, controller.Delete(ctx))
		assert.Equal(t, dtos.Success("project deleted"), decode[dtos.ResultDTO](t, rec))

		var count int64
		require.NoError(t, db.Model(&models.Environment{}).Where("project_id = ?", f.Project.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}
