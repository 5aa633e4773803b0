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

import "github.com/l3montree-dev/auditguard/database/models"

type RemediationCreateRequest struct {
	ID               string                      `json:"id" validate:"required,max=64"`
	Name             string                      `json:"name" validate:"required"`
	Description      string                      `json:"description"`
	Selectors        []string                    `json:"selectors" validate:"omitempty,dive,required"`
	Examples         []models.RemediationExample `json:"examples"`
	SystemCategoryID *string                     `json:"systemCategoryId"`
	TestCaseIDs      []string                    `json:"testCaseIds"`
	CriteriaIDs      []string                    `json:"criteriaIds"`
}

type RemediationPatchRequest struct {
	Name             *string                      `json:"name" validate:"omitempty,min=1"`
	Description      *string                      `json:"description"`
	Selectors        *[]string                    `json:"selectors"`
	Examples         *[]models.RemediationExample `json:"examples"`
	SystemCategoryID *string                      `json:"systemCategoryId"`
}

type RemediationLinkRequest struct {
	TestCaseIDs []string `json:"testCaseIds"`
	CriteriaIDs []string `json:"criteriaIds"`
}
