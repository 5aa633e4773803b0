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

package dtos

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
)

type EnvironmentTestCreateRequest struct {
	Name     string          `json:"name" validate:"required"`
	PageType models.PageType `json:"pageType" validate:"required,oneof=RANDOM STRUCTURED"`
	// used for STRUCTURED tests
	PageIDs []uuid.UUID `json:"pageIds" validate:"required_if=PageType STRUCTURED"`
	// used for RANDOM tests
	SampleSize int `json:"sampleSize" validate:"required_if=PageType RANDOM,gte=0"`
}

type EnvironmentTestPagesRequest struct {
	PageIDs []uuid.UUID `json:"pageIds" validate:"required,min=1"`
}

type EnvironmentTestFinishRequest struct {
	Status models.EnvironmentTestStatus `json:"status" validate:"required,oneof=COMPLETED ERROR CANCELLED"`
}

type TestCaseCreateRequest struct {
	ID               string              `json:"id" validate:"required,max=64"`
	Name             string              `json:"name" validate:"required"`
	Description      string              `json:"description"`
	Type             models.TestCaseType `json:"type" validate:"required,oneof=AUTOMATED MANUAL SEMI_AUTOMATED"`
	RuleID           *string             `json:"ruleId"`
	SystemCategoryID *string             `json:"systemCategoryId"`
	CriteriaIDs      []string            `json:"criteriaIds"`
}

type TestCasePatchRequest struct {
	Name             *string              `json:"name" validate:"omitempty,min=1"`
	Description      *string              `json:"description"`
	Type             *models.TestCaseType `json:"type" validate:"omitempty,oneof=AUTOMATED MANUAL SEMI_AUTOMATED"`
	RuleID           *string              `json:"ruleId"`
	SystemCategoryID *string              `json:"systemCategoryId"`
	CriteriaIDs      *[]string            `json:"criteriaIds"`
}

type TestCasePageCreateRequest struct {
	TestCaseID        string                `json:"testCaseId" validate:"required"`
	EnvironmentPageID uuid.UUID             `json:"environmentPageId" validate:"required"`
	Status            models.TestCaseStatus `json:"status" validate:"omitempty,oneof=IN_PROGRESS PASSED FAILED INAPPLICABLE MANUAL ERROR"`
	Remarks           string                `json:"remarks"`
}

type TestCasePageBulkCreateRequest struct {
	Rows []TestCasePageCreateRequest `json:"rows" validate:"required,min=1,dive"`
}

type TestCasePageStatusRequest struct {
	Status  models.TestCaseStatus `json:"status" validate:"required,oneof=IN_PROGRESS PASSED FAILED INAPPLICABLE MANUAL ERROR"`
	Remarks *string               `json:"remarks"`
}

type TargetCreateRequest struct {
	Selector         string  `json:"selector" validate:"required"`
	HTML             string  `json:"html"`
	Summary          string  `json:"summary"`
	LandmarkID       *string `json:"landmarkId"`
	ParentLandmarkID *string `json:"parentLandmarkId"`
}

type TargetsCreateRequest struct {
	Targets []TargetCreateRequest `json:"targets" validate:"required,min=1,dive"`
}

type TargetRelationRequest struct {
	RelatedTargetID uuid.UUID `json:"relatedTargetId" validate:"required"`
}

type TestCasePageStatisticsDTO struct {
	Total    int64                           `json:"total"`
	ByStatus map[models.TestCaseStatus]int64 `json:"byStatus"`
}
