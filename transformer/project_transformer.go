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
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
)

func ProjectCreateRequestToModel(projectCreate dtos.ProjectCreateRequest) models.Project {
	return models.Project{
		Name:        strings.TrimSpace(projectCreate.Name),
		Description: projectCreate.Description,
	}
}

func ApplyProjectPatchRequestToModel(projectPatch dtos.ProjectPatchRequest, project *models.Project) bool {
	updated := false
	if projectPatch.Name != nil {
		project.Name = strings.TrimSpace(*projectPatch.Name)
		updated = true
	}
	if projectPatch.Description != nil {
		project.Description = *projectPatch.Description
		updated = true
	}
	return updated
}

func EnvironmentCreateRequestToModel(req dtos.EnvironmentCreateRequest, projectID uuid.UUID) models.Environment {
	return models.Environment{
		Name:        strings.TrimSpace(req.Name),
		URL:         req.URL,
		Description: req.Description,
		ProjectID:   projectID,
	}
}

func ApplyEnvironmentPatchRequestToModel(patch dtos.EnvironmentPatchRequest, environment *models.Environment) bool {
	updated := false
	if patch.Name != nil {
		environment.Name = strings.TrimSpace(*patch.Name)
		updated = true
	}
	if patch.URL != nil {
		environment.URL = *patch.URL
		updated = true
	}
	if patch.Description != nil {
		environment.Description = *patch.Description
		updated = true
	}
	return updated
}

func EnvironmentPageCreateRequestToModel(req dtos.EnvironmentPageCreateRequest, environmentID uuid.UUID) models.EnvironmentPage {
	return models.EnvironmentPage{
		Name:          strings.TrimSpace(req.Name),
		URL:           req.URL,
		EnvironmentID: environmentID,
		ParentID:      req.ParentID,
	}
}

// BuildPageTree nests a flat page list. Pages whose parent is not part of the list become roots.
func BuildPageTree(pages []models.EnvironmentPage) []dtos.EnvironmentPageTreeDTO {
	byParent := make(map[uuid.UUID][]models.EnvironmentPage)
	known := make(map[uuid.UUID]bool, len(pages))
	for _, p := range pages {
		known[p.ID] = true
	}

	var roots []models.EnvironmentPage
	for _, p := range pages {
		if p.ParentID == nil || !known[*p.ParentID] {
			roots = append(roots, p)
			continue
		}
		byParent[*p.ParentID] = append(byParent[*p.ParentID], p)
	}

	var build func(nodes []models.EnvironmentPage) []dtos.EnvironmentPageTreeDTO
	build = func(nodes []models.EnvironmentPage) []dtos.EnvironmentPageTreeDTO {
		slices.SortStableFunc(nodes, func(a, b models.EnvironmentPage) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.Name, b.Name)
		})
		res := make([]dtos.EnvironmentPageTreeDTO, 0, len(nodes))
		for _, n := range nodes {
			res = append(res, dtos.EnvironmentPageTreeDTO{
				ID:        n.ID,
				Name:      n.Name,
				URL:       n.URL,
				ParentID:  n.ParentID,
				CreatedAt: n.CreatedAt,
				Children:  build(byParent[n.ID]),
			})
		}
		return res
	}

	return build(roots)
}
