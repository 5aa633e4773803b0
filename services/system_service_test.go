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
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemService(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	service := NewSystemService(repositories.NewSystemRepository(db))

	t.Run("should reply 404 for an unknown table", func(t *testing.T) {
		_, err := service.List("users")
		requireHTTPStatus(t, err, http.StatusNotFound)
	})

	t.Run("should serve cached rows until the next sync", func(t *testing.T) {
		rows, err := service.List("technologies")
		require.NoError(t, err)
		before := len(rows.([]models.SystemTechnology))

		require.NoError(t, db.Create(&models.SystemTechnology{ID: "svelte", Name: "Svelte"}).Error)

		rows, err = service.List("technologies")
		require.NoError(t, err)
		assert.Len(t, rows.([]models.SystemTechnology), before)

		require.NoError(t, service.Sync())

		rows, err = service.List("technologies")
		require.NoError(t, err)
		assert.Len(t, rows.([]models.SystemTechnology), before+1)
	})
}
