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
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/l3montree-dev/auditguard/database/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// an audit moves forward OPEN -> IN_PROGRESS -> CLOSED. A closed audit can be reopened.
var auditTransitions = map[models.AuditStatus][]models.AuditStatus{
	models.AuditStatusOpen:       {models.AuditStatusInProgress, models.AuditStatusClosed},
	models.AuditStatusInProgress: {models.AuditStatusOpen, models.AuditStatusClosed},
	models.AuditStatusClosed:     {models.AuditStatusInProgress},
}

// a test run is finished exactly once
var environmentTestTransitions = map[models.EnvironmentTestStatus][]models.EnvironmentTestStatus{
	models.EnvironmentTestStatusInProgress: {
		models.EnvironmentTestStatusCompleted,
		models.EnvironmentTestStatusError,
		models.EnvironmentTestStatusCancelled,
	},
}

func CanTransitionAudit(from, to models.AuditStatus) bool {
	return slices.Contains(auditTransitions[from], to)
}

// ApplyAuditStatus returns false if the audit already is in the requested status.
func ApplyAuditStatus(audit *models.Audit, to models.AuditStatus) (bool, error) {
	if audit.Status == to {
		return false, nil
	}
	if !CanTransitionAudit(audit.Status, to) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, audit.Status, to)
	}
	audit.Status = to
	return true, nil
}

func ApplyEnvironmentTestStatus(test *models.EnvironmentTest, to models.EnvironmentTestStatus, now time.Time) error {
	if !slices.Contains(environmentTestTransitions[test.Status], to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, test.Status, to)
	}
	test.Status = to
	test.FinishedAt = &now
	return nil
}
