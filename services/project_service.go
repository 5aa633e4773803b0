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

package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/transformer"
)

type ProjectService struct {
	projectRepository shared.ProjectRepository
}

func NewProjectService(projectRepository shared.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepository: projectRepository,
	}
}

func (s *ProjectService) Create(req dtos.ProjectCreateRequest) (models.Project, error) {
	project := transformer.ProjectCreateRequestToModel(req)

	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Create(tx, &project); err != nil {
			return err
		}
		if len(req.TechnologyIDs) == 0 {
			return nil
		}
		return s.projectRepository.ReplaceTechnologies(tx, &project, req.TechnologyIDs)
	})
	if err != nil {
		return models.Project{}, httpError(err, "project")
	}

	slog.Info("project created", "projectID", project.ID, "name", project.Name)
	return s.Read(project.ID)
}

func (s *ProjectService) Update(project models.Project, req dtos.ProjectPatchRequest) (models.Project, error) {
	updated := transformer.ApplyProjectPatchRequestToModel(req, &project)

	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		if updated {
			if err := s.projectRepository.Save(tx, &project); err != nil {
				return err
			}
		}
		if req.TechnologyIDs != nil {
			return s.projectRepository.ReplaceTechnologies(tx, &project, *req.TechnologyIDs)
		}
		return nil
	})
	if err != nil {
		return models.Project{}, httpError(err, "project")
	}
	return s.Read(project.ID)
}

func (s *ProjectService) Delete(projectID uuid.UUID) error {
	if err := s.projectRepository.Delete(nil, projectID); err != nil {
		return httpError(err, "project")
	}
	slog.Info("project deleted", "projectID", projectID)
	return nil
}

func (s *ProjectService) Read(projectID uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.ReadWithEnvironments(projectID)
	if err != nil {
		return models.Project{}, httpError(err, "project")
	}
	return project, nil
}

func (s *ProjectService) ListPaged(pageInfo shared.PageInfo, search string) (shared.Paged[models.Project], error) {
	paged, err := s.projectRepository.ListPaged(pageInfo, search)
	if err != nil {
		return paged, httpError(err, "projects")
	}
	return paged, nil
}
