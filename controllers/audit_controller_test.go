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

func TestAuditController(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)

	auditRepository := repositories.NewAuditRepository(db)
	controller := NewAuditController(services.NewAuditService(auditRepository, repositories.NewSystemRepository(db)))

	ctx, rec := newContext(t, http.MethodPost, map[string]any{
		"name":                     "Shop VPAT",
		"projectId":                f.Project.ID,
		"systemAuditTypeId":        "vpat",
		"systemAuditTypeVersionId": "vpat-2.5-wcag",
	})
	require.NoError(t, controller.Create(ctx))
	created := decode[models.Audit](t, rec)

	audit, err := auditRepository.ReadWithRelations(created.ID)
	require.NoError(t, err)

	t.Run("should reply with the summary after storing items", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodPut, map[string]any{"items": []map[string]any{
			{"itemId": "vpat-wcag-a-1.1.1", "itemTypeId": "web", "level": "PARTIALLY_SUPPORTS", "remarks": "decorative icons lack alt"},
		}})
		shared.SetAudit(ctx, audit)
		require.NoError(t, controller.UpsertItems(ctx))

		summary := decode[dtos.AuditSummaryDTO](t, rec)
		assert.Equal(t, audit.ID, summary.AuditID)
		assert.Equal(t, 1, summary.Levels[models.AuditItemLevelPartiallySupports])
	})

	t.Run("should reject an unknown level", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPut, map[string]any{"items": []map[string]any{
			{"itemId": "vpat-wcag-a-1.1.1", "itemTypeId": "web", "level": "MAYBE"},
		}})
		shared.SetAudit(ctx, audit)
		requireHTTPStatus(t, controller.UpsertItems(ctx), http.StatusBadRequest)
	})

	t.Run("should not reopen a closed audit", func(t *testing.T) {
		for _, status := range []string{"IN_PROGRESS", "CLOSED"} {
			ctx, _ := newContext(t, http.MethodPut, map[string]any{"status": status})
			shared.SetAudit(ctx, audit)
			require.NoError(t, controller.Status(ctx))

			audit, err = auditRepository.ReadWithRelations(audit.ID)
			require.NoError(t, err)
		}

		ctx, _ := newContext(t, http.MethodPut, map[string]any{"status": "OPEN"})
		shared.SetAudit(ctx, audit)
		requireHTTPStatus(t, controller.Status(ctx), http.StatusConflict)
	})

	t.Run("should reject an invalid project filter", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, nil)
		ctx.QueryParams().Set("projectId", "nope")
		requireHTTPStatus(t, controller.List(ctx), http.StatusBadRequest)
	})
}
