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

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/datatypes"
)

func cleanSelectors(selectors []string) datatypes.JSONSlice[string] {
	res := datatypes.JSONSlice[string]{}
	for _, s := range selectors {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// RemediationCreateRequestToModel does not set the links, they are written by the repository.
// Empty selectors fall back to the model default.
func RemediationCreateRequestToModel(req dtos.RemediationCreateRequest) models.Remediation {
	return models.Remediation{
		ID:               strings.TrimSpace(req.ID),
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Selectors:        cleanSelectors(req.Selectors),
		Examples:         datatypes.JSONSlice[models.RemediationExample](req.Examples),
		SystemCategoryID: utils.EmptyThenNil(utils.SafeDereference(req.SystemCategoryID)),
	}
}

func ApplyRemediationPatchRequestToModel(patch dtos.RemediationPatchRequest, remediation *models.Remediation) bool {
	updated := false
	if patch.Name != nil {
		remediation.Name = strings.TrimSpace(*patch.Name)
		updated = true
	}
	if patch.Description != nil {
		remediation.Description = *patch.Description
		updated = true
	}
	if patch.Selectors != nil {
		remediation.Selectors = cleanSelectors(*patch.Selectors)
		updated = true
	}
	if patch.Examples != nil {
		remediation.Examples = datatypes.JSONSlice[models.RemediationExample](*patch.Examples)
		updated = true
	}
	if patch.SystemCategoryID != nil {
		remediation.SystemCategoryID = utils.EmptyThenNil(*patch.SystemCategoryID)
		remediation.SystemCategory = nil
		updated = true
	}
	return updated
}
