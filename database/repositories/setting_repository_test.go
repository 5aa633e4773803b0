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

package repositories

import (
	"testing"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSettingRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	repo := NewSettingRepository(db)

	require.NoError(t, repo.Upsert(nil, &models.Setting{Key: "report.logo", Val: `"logo.png"`}))
	require.NoError(t, repo.Upsert(nil, &models.Setting{Key: "report.logo", Val: `"other.png"`}))

	setting, err := repo.Read("report.logo")
	require.NoError(t, err)
	assert.Equal(t, `"other.png"`, setting.Val)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(nil, "report.logo"))
	assert.ErrorIs(t, repo.Delete(nil, "report.logo"), gorm.ErrRecordNotFound)
}
