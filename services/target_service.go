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
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// TargetService keeps target_count of the test case page and the relation counters of the targets
// in sync with every write.
type TargetService struct {
	targetRepository       shared.TargetRepository
	testCasePageRepository shared.TestCaseEnvironmentTestPageRepository
}

func NewTargetService(targetRepository shared.TargetRepository, testCasePageRepository shared.TestCaseEnvironmentTestPageRepository) *TargetService {
	return &TargetService{
		targetRepository:       targetRepository,
		testCasePageRepository: testCasePageRepository,
	}
}

func (s *TargetService) AddTargets(testCasePageID uuid.UUID, reqs []dtos.TargetCreateRequest) ([]models.TestCaseEnvironmentTestPageTarget, error) {
	if _, err := s.testCasePageRepository.Read(testCasePageID); err != nil {
		return nil, httpError(err, "test case page")
	}

	targets := make([]models.TestCaseEnvironmentTestPageTarget, 0, len(reqs))
	for _, req := range reqs {
		targets = append(targets, transformer.TargetCreateRequestToModel(req, testCasePageID))
	}

	err := s.targetRepository.Transaction(func(tx shared.DB) error {
		if err := s.targetRepository.CreateBatch(tx, targets); err != nil {
			return err
		}
		if err := s.testCasePageRepository.UpdateTargetCount(tx, testCasePageID); err != nil {
			return err
		}
		ids := make([]uuid.UUID, 0, len(targets))
		for _, t := range targets {
			ids = append(ids, t.ID)
		}
		return s.targetRepository.RecomputeCounters(tx, ids)
	})
	if err != nil {
		return nil, httpError(err, "target")
	}
	return s.ListTargets(testCasePageID)
}

func (s *TargetService) ListTargets(testCasePageID uuid.UUID) ([]models.TestCaseEnvironmentTestPageTarget, error) {
	targets, err := s.targetRepository.ListByTestCasePage(testCasePageID)
	if err != nil {
		return nil, httpError(err, "targets")
	}
	return targets, nil
}

func (s *TargetService) ReadTarget(id uuid.UUID) (models.TestCaseEnvironmentTestPageTarget, error) {
	target, err := s.targetRepository.ReadWithRelated(id)
	if err != nil {
		return models.TestCaseEnvironmentTestPageTarget{}, httpError(err, "target")
	}
	return target, nil
}

func (s *TargetService) DeleteTarget(id uuid.UUID) error {
	target, err := s.targetRepository.Read(id)
	if err != nil {
		return httpError(err, "target")
	}

	err = s.targetRepository.Transaction(func(tx shared.DB) error {
		related, err := s.targetRepository.RelatedIDs(tx, id)
		if err != nil {
			return err
		}
		// relations are removed by the cascade
		if err := s.targetRepository.Delete(tx, id); err != nil {
			return err
		}
		if err := s.testCasePageRepository.UpdateTargetCount(tx, target.TestCaseEnvironmentTestPageID); err != nil {
			return err
		}
		return s.targetRepository.RecomputeCounters(tx, related)
	})
	return httpError(err, "target")
}

func (s *TargetService) Relate(targetID, relatedTargetID uuid.UUID) error {
	if targetID == relatedTargetID {
		return echo.NewHTTPError(http.StatusBadRequest, "a target can not be related to itself")
	}
	found, err := s.targetRepository.List([]uuid.UUID{targetID, relatedTargetID})
	if err != nil {
		return httpError(err, "target")
	}
	if len(found) != 2 {
		return httpError(gorm.ErrRecordNotFound, "target")
	}

	err = s.targetRepository.Transaction(func(tx shared.DB) error {
		related, err := s.targetRepository.RelatedIDs(tx, targetID)
		if err != nil {
			return err
		}
		// the relation is symmetric, it may already be stored the other way round
		if slices.Contains(related, relatedTargetID) {
			return nil
		}
		if err := s.targetRepository.Relate(tx, targetID, relatedTargetID); err != nil {
			return err
		}
		return s.targetRepository.RecomputeCounters(tx, []uuid.UUID{targetID, relatedTargetID})
	})
	return httpError(err, "target relation")
}

func (s *TargetService) Unrelate(targetID, relatedTargetID uuid.UUID) error {
	err := s.targetRepository.Transaction(func(tx shared.DB) error {
		if err := s.targetRepository.Unrelate(tx, targetID, relatedTargetID); err != nil {
			return err
		}
		return s.targetRepository.RecomputeCounters(tx, []uuid.UUID{targetID, relatedTargetID})
	})
	return httpError(err, "target relation")
}

// RecomputeForTestCases runs inside the transaction of the caller.
func (s *TargetService) RecomputeForTestCases(tx shared.DB, testCaseIDs []string) error {
	ids, err := s.targetRepository.IDsByTestCases(tx, testCaseIDs)
	if err != nil {
		return err
	}
	return s.targetRepository.RecomputeCounters(tx, ids)
}
