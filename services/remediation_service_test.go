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

	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemediationService(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)
	targetRepository := repositories.NewTargetRepository(db)
	targetService := NewTargetService(targetRepository, repositories.NewTestCaseEnvironmentTestPageRepository(db))
	service := NewRemediationService(repositories.NewRemediationRepository(db), targetService)

	row := createTestCasePage(t, db, f)
	targets, err := targetService.AddTargets(row.ID, []dtos.TargetCreateRequest{{Selector: "img.logo"}})
	require.NoError(t, err)
	target := targets[0]

	remediationCount := func() int {
		stored, err := targetRepository.Read(target.ID)
		require.NoError(t, err)
		return stored.RelatedRemediationCount
	}

	t.Run("should apply the selector default", func(t *testing.T) {
		remediation, err := service.Create(dtos.RemediationCreateRequest{ID: "add-alt", Name: "Add an alt attribute", Selectors: []string{" ", ""}})
		require.NoError(t, err)
		assert.Equal(t, []string{"body"}, []string(remediation.Selectors))
		assert.Zero(t, remediationCount())
	})

	t.Run("should reject unknown references without linking anything", func(t *testing.T) {
		err := service.Link("add-alt", dtos.RemediationLinkRequest{TestCaseIDs: []string{f.TC1.ID, "does-not-exist"}})
		requireHTTPStatus(t, err, http.StatusBadRequest)
		assert.Zero(t, remediationCount())

		err = service.Link("does-not-exist", dtos.RemediationLinkRequest{TestCaseIDs: []string{f.TC1.ID}})
		requireHTTPStatus(t, err, http.StatusNotFound)
	})

	t.Run("should count remediations of the test case on its targets", func(t *testing.T) {
		require.NoError(t, service.Link("add-alt", dtos.RemediationLinkRequest{TestCaseIDs: []string{f.TC1.ID}, CriteriaIDs: []string{"wcag-2.1-1.1.1"}}))
		assert.Equal(t, 1, remediationCount())

		_, err := service.Create(dtos.RemediationCreateRequest{ID: "describe-image", Name: "Describe the image", TestCaseIDs: []string{f.TC1.ID}})
		require.NoError(t, err)
		assert.Equal(t, 2, remediationCount())

		remediations, err := service.ListByTestCase(f.TC1.ID)
		require.NoError(t, err)
		assert.Len(t, remediations, 2)

		require.NoError(t, service.Unlink("add-alt", dtos.RemediationLinkRequest{TestCaseIDs: []string{f.TC1.ID}}))
		assert.Equal(t, 1, remediationCount())

		require.NoError(t, service.Delete("describe-image"))
		assert.Zero(t, remediationCount())
	})

	t.Run("should load the linked criteria", func(t *testing.T) {
		remediation, err := service.Read("add-alt")
		require.NoError(t, err)
		require.Len(t, remediation.Criteria, 1)
		assert.Equal(t, "wcag-2.1-1.1.1", remediation.Criteria[0].ID)
		assert.Empty(t, remediation.TestCases)
	})
}
