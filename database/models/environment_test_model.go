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
	"time"

	"github.com/google/uuid"
)

type PageType string

const (
	PageTypeRandom     PageType = "RANDOM"
	PageTypeStructured PageType = "STRUCTURED"
)

type EnvironmentTestStatus string

const (
	EnvironmentTestStatusInProgress EnvironmentTestStatus = "IN_PROGRESS"
	EnvironmentTestStatusCompleted  EnvironmentTestStatus = "COMPLETED"
	EnvironmentTestStatusError      EnvironmentTestStatus = "ERROR"
	EnvironmentTestStatusCancelled  EnvironmentTestStatus = "CANCELLED"
)

// EnvironmentTest is one execution run against (a subset of) the pages of an environment.
type EnvironmentTest struct {
	Model
	Name          string                `json:"name" gorm:"type:text;not null"`
	EnvironmentID uuid.UUID             `json:"environmentId" gorm:"type:uuid;not null;index"`
	Environment   *Environment          `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE;"`
	PageType      PageType              `json:"pageType" gorm:"type:text;not null;default:'STRUCTURED'"`
	Status        EnvironmentTestStatus `json:"status" gorm:"type:text;not null;default:'IN_PROGRESS'"`
	StartedAt     *time.Time            `json:"startedAt"`
	FinishedAt    *time.Time            `json:"finishedAt"`

	Pages         []EnvironmentPage             `json:"pages,omitempty" gorm:"many2many:environment_test_pages;constraint:OnDelete:CASCADE;"`
	TestCasePages []TestCaseEnvironmentTestPage `json:"testCasePages,omitempty" gorm:"foreignKey:EnvironmentTestID;constraint:OnDelete:CASCADE;"`
}

func (m EnvironmentTest) TableName() string {
	return "environment_tests"
}

func (m EnvironmentTest) IsFinished() bool {
	return m.Status != EnvironmentTestStatusInProgress
}

// EnvironmentTestPage is the join row between a test and the pages it covers.
type EnvironmentTestPage struct {
	EnvironmentTestID uuid.UUID `json:"environmentTestId" gorm:"primaryKey;type:uuid"`
	EnvironmentPageID uuid.UUID `json:"environmentPageId" gorm:"primaryKey;type:uuid"`
}

func (m EnvironmentTestPage) TableName() string {
	return "environment_test_pages"
}
