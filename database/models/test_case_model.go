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
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestCaseType string

const (
	TestCaseTypeAutomated     TestCaseType = "AUTOMATED"
	TestCaseTypeManual        TestCaseType = "MANUAL"
	TestCaseTypeSemiAutomated TestCaseType = "SEMI_AUTOMATED"
)

type TestCaseStatus string

const (
	TestCaseStatusInProgress   TestCaseStatus = "IN_PROGRESS"
	TestCaseStatusPassed       TestCaseStatus = "PASSED"
	TestCaseStatusFailed       TestCaseStatus = "FAILED"
	TestCaseStatusInapplicable TestCaseStatus = "INAPPLICABLE"
	TestCaseStatusManual       TestCaseStatus = "MANUAL"
	TestCaseStatusError        TestCaseStatus = "ERROR"
)

var ErrInvalidPageTestCombination = errors.New("Invalid environment page and environment test combination.") // nolint:staticcheck // message is shown to the user as is

// DefaultStatusForTestCaseType returns the status a freshly created page result starts in.
// Manual test cases wait for a human, everything else is picked up by the runner.
func DefaultStatusForTestCaseType(t TestCaseType) TestCaseStatus {
	if t == TestCaseTypeManual {
		return TestCaseStatusManual
	}
	return TestCaseStatusInProgress
}

type TestCase struct {
	ID          string       `json:"id" gorm:"primaryKey;type:text"`
	Name        string       `json:"name" gorm:"type:text;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Type        TestCaseType `json:"type" gorm:"type:text;not null;default:'AUTOMATED'"`
	// the id of the rule inside the testing engine, e.g. "image-alt"
	RuleID *string `json:"ruleId" gorm:"type:text"`

	SystemCategoryID *string         `json:"systemCategoryId" gorm:"type:text"`
	SystemCategory   *SystemCategory `json:"systemCategory,omitempty" gorm:"foreignKey:SystemCategoryID;constraint:OnDelete:SET NULL;"`

	Criteria     []SystemStandardCriteria `json:"criteria,omitempty" gorm:"many2many:test_case_criteria;constraint:OnDelete:CASCADE;"`
	Remediations []Remediation            `json:"remediations,omitempty" gorm:"many2many:remediation_test_cases;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m TestCase) TableName() string {
	return "test_cases"
}

// TestCaseEnvironmentTestPage is the result of a single test case on a single page inside a test run.
type TestCaseEnvironmentTestPage struct {
	Model
	TestCaseID        string         `json:"testCaseId" gorm:"type:text;not null;uniqueIndex:idx_test_case_environment_test_page"`
	EnvironmentPageID uuid.UUID      `json:"environmentPageId" gorm:"type:uuid;not null;uniqueIndex:idx_test_case_environment_test_page"`
	EnvironmentTestID uuid.UUID      `json:"environmentTestId" gorm:"type:uuid;not null;uniqueIndex:idx_test_case_environment_test_page"`
	Status            TestCaseStatus `json:"status" gorm:"type:text;not null"`
	Remarks           string         `json:"remarks" gorm:"type:text"`
	TargetCount       int            `json:"targetCount" gorm:"not null;default:0"`

	TestCase        *TestCase        `json:"testCase,omitempty" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE;"`
	EnvironmentPage *EnvironmentPage `json:"environmentPage,omitempty" gorm:"foreignKey:EnvironmentPageID;constraint:OnDelete:CASCADE;"`
	EnvironmentTest *EnvironmentTest `json:"environmentTest,omitempty" gorm:"foreignKey:EnvironmentTestID;constraint:OnDelete:CASCADE;"`

	Targets []TestCaseEnvironmentTestPageTarget `json:"targets,omitempty" gorm:"foreignKey:TestCaseEnvironmentTestPageID;constraint:OnDelete:CASCADE;"`
}

func (m TestCaseEnvironmentTestPage) TableName() string {
	return "test_case_environment_test_pages"
}

// BeforeCreate runs for every row, bulk inserts included.
// Returning an error aborts the surrounding transaction, so a batch is never applied partially.
func (m *TestCaseEnvironmentTestPage) BeforeCreate(tx *gorm.DB) error {
	if err := m.Model.BeforeCreate(tx); err != nil {
		return err
	}

	// keep the connection (and therefore the transaction) but start with a clean statement
	db := tx.Session(&gorm.Session{NewDB: true})

	var count int64
	if err := db.Model(&EnvironmentTestPage{}).
		Where("environment_test_id = ? AND environment_page_id = ?", m.EnvironmentTestID, m.EnvironmentPageID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("could not check environment test pages: %w", err)
	}
	if count == 0 {
		return ErrInvalidPageTestCombination
	}

	if m.Status == "" {
		var testCase TestCase
		if err := db.Select("id", "type").Where("id = ?", m.TestCaseID).First(&testCase).Error; err != nil {
			return fmt.Errorf("could not find test case %s: %w", m.TestCaseID, err)
		}
		m.Status = DefaultStatusForTestCaseType(testCase.Type)
	}

	return nil
}

// TestCaseEnvironmentTestPageTarget is a single dom element which made a test case fail on a page.
type TestCaseEnvironmentTestPageTarget struct {
	Model
	TestCaseEnvironmentTestPageID uuid.UUID                    `json:"testCaseEnvironmentTestPageId" gorm:"type:uuid;not null;index"`
	TestCaseEnvironmentTestPage   *TestCaseEnvironmentTestPage `json:"-" gorm:"foreignKey:TestCaseEnvironmentTestPageID;constraint:OnDelete:CASCADE;"`

	Selector string `json:"selector" gorm:"type:text;not null"`
	HTML     string `json:"html" gorm:"type:text"`
	Summary  string `json:"summary" gorm:"type:text"`

	LandmarkID       *string         `json:"landmarkId" gorm:"type:text"`
	Landmark         *SystemLandmark `json:"landmark,omitempty" gorm:"foreignKey:LandmarkID;constraint:OnDelete:SET NULL;"`
	ParentLandmarkID *string         `json:"parentLandmarkId" gorm:"type:text"`
	ParentLandmark   *SystemLandmark `json:"parentLandmark,omitempty" gorm:"foreignKey:ParentLandmarkID;constraint:OnDelete:SET NULL;"`

	// denormalized, kept in sync by the target service
	RelatedTargetCount      int `json:"relatedTargetCount" gorm:"not null;default:0"`
	RelatedRemediationCount int `json:"relatedRemediationCount" gorm:"not null;default:0"`

	RelatedTargets []TestCaseEnvironmentTestPageTarget `json:"relatedTargets,omitempty" gorm:"many2many:test_case_environment_test_page_target_relations;joinForeignKey:TargetID;joinReferences:RelatedTargetID;constraint:OnDelete:CASCADE;"`
}

func (m TestCaseEnvironmentTestPageTarget) TableName() string {
	return "test_case_environment_test_page_targets"
}

// TargetRelation maps an occurrence to other occurrences of the same issue (e.g. the same component on other pages).
type TargetRelation struct {
	TargetID        uuid.UUID `json:"targetId" gorm:"primaryKey;type:uuid"`
	RelatedTargetID uuid.UUID `json:"relatedTargetId" gorm:"primaryKey;type:uuid"`
}

func (m TargetRelation) TableName() string {
	return "test_case_environment_test_page_target_relations"
}
