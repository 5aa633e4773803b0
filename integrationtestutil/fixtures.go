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

package integrationtestutil

import (
	"testing"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type Fixtures struct {
	Project     models.Project
	Environment models.Environment
	// P1 is part of T1, P2 is not
	P1 models.EnvironmentPage
	P2 models.EnvironmentPage
	T1 models.EnvironmentTest
	// TC1 is automated, TC2 manual
	TC1 models.TestCase
	TC2 models.TestCase
}

// CreateFixtures creates a project with one environment, two pages and one test covering the first page.
func CreateFixtures(t testing.TB, db *gorm.DB) Fixtures {
	t.Helper()
	var f Fixtures

	f.Project = models.Project{Name: "Shop", Description: "public web shop"}
	require.NoError(t, db.Create(&f.Project).Error)

	f.Environment = models.Environment{Name: "Production", URL: "https://shop.example.com", ProjectID: f.Project.ID}
	require.NoError(t, db.Create(&f.Environment).Error)

	f.P1 = models.EnvironmentPage{Name: "Home", URL: "https://shop.example.com/", EnvironmentID: f.Environment.ID}
	require.NoError(t, db.Create(&f.P1).Error)
	f.P2 = models.EnvironmentPage{Name: "Checkout", URL: "https://shop.example.com/checkout", EnvironmentID: f.Environment.ID}
	require.NoError(t, db.Create(&f.P2).Error)

	f.T1 = models.EnvironmentTest{Name: "Initial run", EnvironmentID: f.Environment.ID, PageType: models.PageTypeStructured, Status: models.EnvironmentTestStatusInProgress}
	require.NoError(t, db.Create(&f.T1).Error)
	require.NoError(t, db.Create(&models.EnvironmentTestPage{EnvironmentTestID: f.T1.ID, EnvironmentPageID: f.P1.ID}).Error)

	f.TC1 = models.TestCase{ID: "TC-1", Name: "Images have alt text", Type: models.TestCaseTypeAutomated, RuleID: utils.Ptr("image-alt")}
	require.NoError(t, db.Create(&f.TC1).Error)
	f.TC2 = models.TestCase{ID: "TC-2", Name: "Focus order is logical", Type: models.TestCaseTypeManual}
	require.NoError(t, db.Create(&f.TC2).Error)

	return f
}
