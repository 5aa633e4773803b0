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

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)
	repo := NewTargetRepository(db)

	page := models.TestCaseEnvironmentTestPage{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P1.ID, EnvironmentTestID: f.T1.ID}
	require.NoError(t, NewTestCaseEnvironmentTestPageRepository(db).Create(nil, &page))

	a := models.TestCaseEnvironmentTestPageTarget{TestCaseEnvironmentTestPageID: page.ID, Selector: "img.hero"}
	b := models.TestCaseEnvironmentTestPageTarget{TestCaseEnvironmentTestPageID: page.ID, Selector: "img.logo"}
	c := models.TestCaseEnvironmentTestPageTarget{TestCaseEnvironmentTestPageID: page.ID, Selector: "img.footer"}
	for _, target := range []*models.TestCaseEnvironmentTestPageTarget{&a, &b, &c} {
		require.NoError(t, repo.Create(nil, target))
	}

	t.Run("should resolve relations in both directions", func(t *testing.T) {
		require.NoError(t, repo.Relate(nil, a.ID, b.ID))
		require.NoError(t, repo.Relate(nil, c.ID, a.ID))
		// relating twice is a no-op
		require.NoError(t, repo.Relate(nil, a.ID, b.ID))

		related, err := repo.RelatedIDs(nil, a.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{b.ID, c.ID}, related)

		related, err = repo.RelatedIDs(nil, b.ID)
		require.NoError(t, err)
		assert.Len(t, related, 1)
		assert.Equal(t, a.ID, related[0])

		withRelated, err := repo.ReadWithRelated(a.ID)
		require.NoError(t, err)
		assert.Len(t, withRelated.RelatedTargets, 2)
	})

	t.Run("should recompute the counters", func(t *testing.T) {
		remediation := models.Remediation{ID: "R-1", Name: "Add alt text"}
		require.NoError(t, db.Create(&remediation).Error)
		require.NoError(t, NewRemediationRepository(db).LinkTestCases(nil, remediation.ID, []string{f.TC1.ID}))

		ids, err := repo.IDsByTestCases(nil, []string{f.TC1.ID})
		require.NoError(t, err)
		assert.Len(t, ids, 3)

		require.NoError(t, repo.RecomputeCounters(nil, ids))

		stored, err := repo.Read(a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.RelatedTargetCount)
		assert.Equal(t, 1, stored.RelatedRemediationCount)

		stored, err = repo.Read(b.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.RelatedTargetCount)
	})

	t.Run("should remove the relation regardless of its direction", func(t *testing.T) {
		require.NoError(t, repo.Unrelate(nil, a.ID, c.ID))

		related, err := repo.RelatedIDs(nil, c.ID)
		require.NoError(t, err)
		assert.Empty(t, related)
	})
}
