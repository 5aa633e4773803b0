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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStatusForTestCaseType(t *testing.T) {
	assert.Equal(t, TestCaseStatusManual, DefaultStatusForTestCaseType(TestCaseTypeManual))
	assert.Equal(t, TestCaseStatusInProgress, DefaultStatusForTestCaseType(TestCaseTypeAutomated))
	assert.Equal(t, TestCaseStatusInProgress, DefaultStatusForTestCaseType(TestCaseTypeSemiAutomated))
}

func TestConformanceTargetIncludes(t *testing.T) {
	assert.True(t, ConformanceTargetAA.Includes("A"))
	assert.True(t, ConformanceTargetAA.Includes("AA"))
	assert.False(t, ConformanceTargetAA.Includes("AAA"))
	assert.False(t, ConformanceTargetA.Includes(""))
	assert.True(t, ConformanceTargetAAA.Includes("AAA"))
}

func TestRemediationDefaults(t *testing.T) {
	r := Remediation{ID: "R-1"}
	assert.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, []string{"body"}, []string(r.Selectors))
	assert.NotNil(t, r.Examples)

	r = Remediation{ID: "R-2", Selectors: []string{"main img"}}
	assert.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, []string{"main img"}, []string(r.Selectors))
}
