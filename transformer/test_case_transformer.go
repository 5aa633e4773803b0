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

package transformer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/utils"
)

func TestCaseCreateRequestToModel(req dtos.TestCaseCreateRequest) models.TestCase {
	return models.TestCase{
		ID:               strings.TrimSpace(req.ID),
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Type:             req.Type,
		RuleID:           utils.EmptyThenNil(utils.SafeDereference(req.RuleID)),
		SystemCategoryID: utils.EmptyThenNil(utils.SafeDereference(req.SystemCategoryID)),
	}
}

func ApplyTestCasePatchRequestToModel(patch dtos.TestCasePatchRequest, testCase *models.TestCase) bool {
	updated := false
	if patch.Name != nil {
		testCase.Name = strings.TrimSpace(*patch.Name)
		updated = true
	}
	if patch.Description != nil {
		testCase.Description = *patch.Description
		updated = true
	}
	if patch.Type != nil {
		testCase.Type = *patch.Type
		updated = true
	}
	if patch.RuleID != nil {
		// an empty string clears the rule
		testCase.RuleID = utils.EmptyThenNil(*patch.RuleID)
		updated = true
	}
	if patch.SystemCategoryID != nil {
		testCase.SystemCategoryID = utils.EmptyThenNil(*patch.SystemCategoryID)
		testCase.SystemCategory = nil
		updated = true
	}
	return updated
}

// TestCasePageCreateRequestToModel leaves the status empty if none was requested.
// The model hook derives it from the test case type.
func TestCasePageCreateRequestToModel(req dtos.TestCasePageCreateRequest, testID uuid.UUID) models.TestCaseEnvironmentTestPage {
	return models.TestCaseEnvironmentTestPage{
		TestCaseID:        req.TestCaseID,
		EnvironmentPageID: req.EnvironmentPageID,
		EnvironmentTestID: testID,
		Status:            req.Status,
		Remarks:           req.Remarks,
	}
}

func TargetCreateRequestToModel(req dtos.TargetCreateRequest, testCasePageID uuid.UUID) models.TestCaseEnvironmentTestPageTarget {
	return models.TestCaseEnvironmentTestPageTarget{
		TestCaseEnvironmentTestPageID: testCasePageID,
		Selector:                      strings.TrimSpace(req.Selector),
		HTML:                          req.HTML,
		Summary:                       req.Summary,
		LandmarkID:                    utils.EmptyThenNil(utils.SafeDereference(req.LandmarkID)),
		ParentLandmarkID:              utils.EmptyThenNil(utils.SafeDereference(req.ParentLandmarkID)),
	}
}
