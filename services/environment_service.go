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
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/statemachine"
	"github.com/l3montree-dev/auditguard/transformer"
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/gorm"
)

type EnvironmentService struct {
	environmentRepository     shared.EnvironmentRepository
	environmentPageRepository shared.EnvironmentPageRepository
	environmentTestRepository shared.EnvironmentTestRepository
}

func NewEnvironmentService(environmentRepository shared.EnvironmentRepository, environmentPageRepository shared.EnvironmentPageRepository, environmentTestRepository shared.EnvironmentTestRepository) *EnvironmentService {
	return &EnvironmentService{
		environmentRepository:     environmentRepository,
		environmentPageRepository: environmentPageRepository,
		environmentTestRepository: environmentTestRepository,
	}
}

func (s *EnvironmentService) Create(project models.Project, req dtos.EnvironmentCreateRequest) (models.Environment, error) {
	environment := transformer.EnvironmentCreateRequestToModel(req, project.ID)
	if err := s.environmentRepository.Create(nil, &environment); err != nil {
		return models.Environment{}, httpError(err, "environment")
	}
	return environment, nil
}

func (s *EnvironmentService) Update(environment models.Environment, req dtos.EnvironmentPatchRequest) (models.Environment, error) {
	if !transformer.ApplyEnvironmentPatchRequestToModel(req, &environment) {
		return environment, nil
	}
	if err := s.environmentRepository.Save(nil, &environment); err != nil {
		return models.Environment{}, httpError(err, "environment")
	}
	return environment, nil
}

func (s *EnvironmentService) Delete(environmentID uuid.UUID) error {
	return httpError(s.environmentRepository.Delete(nil, environmentID), "environment")
}

func (s *EnvironmentService) ListByProject(projectID uuid.UUID) ([]models.Environment, error) {
	environments, err := s.environmentRepository.ListByProject(projectID)
	if err != nil {
		return nil, httpError(err, "environments")
	}
	return environments, nil
}

func (s *EnvironmentService) CreatePage(environment models.Environment, req dtos.EnvironmentPageCreateRequest) (models.EnvironmentPage, error) {
	if req.ParentID != nil {
		parent, err := s.environmentPageRepository.Read(*req.ParentID)
		if err != nil || parent.EnvironmentID != environment.ID {
			return models.EnvironmentPage{}, badRequest("parent page does not belong to the environment")
		}
	}

	page := transformer.EnvironmentPageCreateRequestToModel(req, environment.ID)
	if err := s.environmentPageRepository.Create(nil, &page); err != nil {
		return models.EnvironmentPage{}, httpError(err, "page")
	}
	return page, nil
}

// MovePage re-parents a page. A nil parent moves it to the root. Moving a page below one of its descendants is rejected.
func (s *EnvironmentService) MovePage(environment models.Environment, pageID uuid.UUID, parentID *uuid.UUID) (models.EnvironmentPage, error) {
	var page models.EnvironmentPage
	err := s.environmentPageRepository.Transaction(func(tx shared.DB) error {
		pages, err := s.environmentPageRepository.ListByEnvironment(tx, environment.ID)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]models.EnvironmentPage, len(pages))
		for _, p := range pages {
			byID[p.ID] = p
		}

		var ok bool
		if page, ok = byID[pageID]; !ok {
			return httpError(gorm.ErrRecordNotFound, "page")
		}

		if parentID != nil {
			if _, ok := byID[*parentID]; !ok {
				return badRequest("parent page does not belong to the environment")
			}
			// walk up from the new parent. Reaching the page itself means a cycle.
			for current := parentID; current != nil; current = byID[*current].ParentID {
				if *current == pageID {
					return badRequest("a page can not be moved below itself")
				}
			}
		}

		page.ParentID = parentID
		return s.environmentPageRepository.Save(tx, &page)
	})
	if err != nil {
		return models.EnvironmentPage{}, httpError(err, "page")
	}
	return page, nil
}

func (s *EnvironmentService) DeletePage(environment models.Environment, pageID uuid.UUID) error {
	page, err := s.environmentPageRepository.Read(pageID)
	if err != nil || page.EnvironmentID != environment.ID {
		return httpError(gorm.ErrRecordNotFound, "page")
	}
	return httpError(s.environmentPageRepository.Delete(nil, pageID), "page")
}

func (s *EnvironmentService) PageTree(environment models.Environment) ([]dtos.EnvironmentPageTreeDTO, error) {
	pages, err := s.environmentPageRepository.ListByEnvironment(nil, environment.ID)
	if err != nil {
		return nil, httpError(err, "pages")
	}
	return transformer.BuildPageTree(pages), nil
}

// samplePages picks n distinct pages. n larger than the page count returns all pages.
func samplePages(pages []models.EnvironmentPage, n int) []uuid.UUID {
	if n > len(pages) {
		n = len(pages)
	}
	ids := make([]uuid.UUID, 0, n)
	for _, i := range rand.Perm(len(pages))[:n] {
		ids = append(ids, pages[i].ID)
	}
	return ids
}

func (s *EnvironmentService) CreateTest(environment models.Environment, req dtos.EnvironmentTestCreateRequest) (models.EnvironmentTest, error) {
	test := models.EnvironmentTest{
		Name:          req.Name,
		EnvironmentID: environment.ID,
		PageType:      req.PageType,
		Status:        models.EnvironmentTestStatusInProgress,
		StartedAt:     utils.Ptr(time.Now()),
	}

	err := s.environmentTestRepository.Transaction(func(tx shared.DB) error {
		pages, err := s.environmentPageRepository.ListByEnvironment(tx, environment.ID)
		if err != nil {
			return err
		}

		var pageIDs []uuid.UUID
		switch req.PageType {
		case models.PageTypeRandom:
			pageIDs = samplePages(pages, req.SampleSize)
		default:
			pageIDs = utils.Uniq(req.PageIDs)
			if !pagesBelongTo(pages, pageIDs) {
				return badRequest("pages do not belong to the environment")
			}
		}
		if len(pageIDs) == 0 {
			return badRequest("a test needs at least one page")
		}

		if err := s.environmentTestRepository.Create(tx, &test); err != nil {
			return err
		}
		return s.environmentTestRepository.LinkPages(tx, test.ID, pageIDs)
	})
	if err != nil {
		return models.EnvironmentTest{}, httpError(err, "test")
	}

	slog.Info("environment test created", "testID", test.ID, "environmentID", environment.ID, "pageType", test.PageType)
	return s.ReadTest(test.ID)
}

func pagesBelongTo(pages []models.EnvironmentPage, ids []uuid.UUID) bool {
	known := make(map[uuid.UUID]bool, len(pages))
	for _, p := range pages {
		known[p.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return false
		}
	}
	return true
}

func (s *EnvironmentService) ListTests(environment models.Environment) ([]models.EnvironmentTest, error) {
	tests, err := s.environmentTestRepository.ListByEnvironment(environment.ID)
	if err != nil {
		return nil, httpError(err, "tests")
	}
	return tests, nil
}

func (s *EnvironmentService) ReadTest(testID uuid.UUID) (models.EnvironmentTest, error) {
	test, err := s.environmentTestRepository.ReadWithPages(testID)
	if err != nil {
		return models.EnvironmentTest{}, httpError(err, "test")
	}
	return test, nil
}

func (s *EnvironmentService) LinkPages(test models.EnvironmentTest, pageIDs []uuid.UUID) error {
	err := s.environmentTestRepository.Transaction(func(tx shared.DB) error {
		pages, err := s.environmentPageRepository.ListByEnvironment(tx, test.EnvironmentID)
		if err != nil {
			return err
		}
		if !pagesBelongTo(pages, pageIDs) {
			return badRequest("pages do not belong to the environment")
		}
		return s.environmentTestRepository.LinkPages(tx, test.ID, utils.Uniq(pageIDs))
	})
	return httpError(err, "test pages")
}

// UnlinkPages removes pages from a test. Results recorded for them stay untouched.
func (s *EnvironmentService) UnlinkPages(test models.EnvironmentTest, pageIDs []uuid.UUID) error {
	return httpError(s.environmentTestRepository.UnlinkPages(nil, test.ID, pageIDs), "test pages")
}

func (s *EnvironmentService) FinishTest(test models.EnvironmentTest, status models.EnvironmentTestStatus) (models.EnvironmentTest, error) {
	if err := statemachine.ApplyEnvironmentTestStatus(&test, status, time.Now()); err != nil {
		return models.EnvironmentTest{}, httpError(err, "test")
	}
	if err := s.environmentTestRepository.Save(nil, &test); err != nil {
		return models.EnvironmentTest{}, httpError(err, "test")
	}
	slog.Info("environment test finished", "testID", test.ID, "status", status)
	return test, nil
}

func (s *EnvironmentService) DeleteTest(testID uuid.UUID) error {
	return httpError(s.environmentTestRepository.Delete(nil, testID), "test")
}
