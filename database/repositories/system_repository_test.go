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
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	repo := NewSystemRepository(db)

	t.Run("should sort criteria by their dotted number", func(t *testing.T) {
		standards, err := repo.Standards()
		require.NoError(t, err)
		require.Len(t, standards, 1)

		guideline, ok := utils.Find(standards[0].Principles[0].Guidelines, func(g models.SystemStandardGuideline) bool {
			return g.Num == "1.4"
		})
		require.True(t, ok)

		nums := utils.Map(guideline.Criteria, func(c models.SystemStandardCriteria) string { return c.Num })
		assert.Equal(t, "1.4.9", nums[8])
		assert.Equal(t, "1.4.10", nums[9])
	})

	t.Run("should load chapters with their items and item types", func(t *testing.T) {
		chapters, err := repo.ChaptersWithItems([]string{"vpat-wcag"})
		require.NoError(t, err)
		require.Len(t, chapters, 1)
		require.Len(t, chapters[0].Sections, 3)

		levelA := chapters[0].Sections[0]
		assert.Equal(t, "vpat-wcag-a", levelA.ID)
		require.NotEmpty(t, levelA.Items)
		assert.Equal(t, "1.1.1", levelA.Items[0].Num)
		assert.NotNil(t, levelA.Items[0].SystemStandardCriteria)
		assert.Len(t, levelA.Items[0].Types, 4)
	})

	t.Run("should list the items of chapters", func(t *testing.T) {
		items, err := repo.ItemsByChapters(nil, []string{"vpat-wcag"})
		require.NoError(t, err)

		chapters, err := repo.ChaptersWithItems([]string{"vpat-wcag"})
		require.NoError(t, err)
		total := 0
		for _, s := range chapters[0].Sections {
			total += len(s.Items)
		}
		assert.Len(t, items, total)
	})

	t.Run("should not change anything when synced twice", func(t *testing.T) {
		before, err := repo.Landmarks()
		require.NoError(t, err)
		require.NoError(t, repo.Sync())
		after, err := repo.Landmarks()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
