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

package statemachine

import (
	"testing"
	"time"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAuditStatus(t *testing.T) {
	t.Run("should walk through the regular lifecycle", func(t *testing.T) {
		audit := models.Audit{Status: models.AuditStatusOpen}

		changed, err := ApplyAuditStatus(&audit, models.AuditStatusInProgress)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = ApplyAuditStatus(&audit, models.AuditStatusClosed)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, models.AuditStatusClosed, audit.Status)
	})

	t.Run("should allow reopening a closed audit", func(t *testing.T) {
		audit := models.Audit{Status: models.AuditStatusClosed}
		_, err := ApplyAuditStatus(&audit, models.AuditStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, models.AuditStatusInProgress, audit.Status)
	})

	t.Run("should not move a closed audit back to open", func(t *testing.T) {
		audit := models.Audit{Status: models.AuditStatusClosed}
		_, err := ApplyAuditStatus(&audit, models.AuditStatusOpen)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, models.AuditStatusClosed, audit.Status)
	})

	t.Run("should report no change for the same status", func(t *testing.T) {
		audit := models.Audit{Status: models.AuditStatusOpen}
		changed, err := ApplyAuditStatus(&audit, models.AuditStatusOpen)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestApplyEnvironmentTestStatus(t *testing.T) {
	now := time.Now()

	test := models.EnvironmentTest{Status: models.EnvironmentTestStatusInProgress}
	require.NoError(t, ApplyEnvironmentTestStatus(&test, models.EnvironmentTestStatusCompleted, now))
	assert.Equal(t, models.EnvironmentTestStatusCompleted, test.Status)
	assert.Equal(t, now, *test.FinishedAt)

	err := ApplyEnvironmentTestStatus(&test, models.EnvironmentTestStatusCancelled, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
