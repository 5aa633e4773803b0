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

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/transformer"
	"github.com/l3montree-dev/auditguard/utils"
)

type RemediationService struct {
	remediationRepository shared.RemediationRepository
	targetService         shared.TargetService
}

func NewRemediationService(remediationRepository shared.RemediationRepository, targetService shared.TargetService) *RemediationService {
	return &RemediationService{
		remediationRepository: remediationRepository,
		targetService:         targetService,
	}
}

func (s *RemediationService) Create(req dtos.RemediationCreateRequest) (models.Remediation, error) {
	remediation := transformer.RemediationCreateRequestToModel(req)

	err := s.remediationRepository.Transaction(func(tx shared.DB) error {
		if err := s.remediationRepository.Create(tx, &remediation); err != nil {
			return err
		}
		if err := s.remediationRepository.LinkCriteria(tx, remediation.ID, req.CriteriaIDs); err != nil {
			return err
		}
		if err := s.remediationRepository.LinkTestCases(tx, remediation.ID, req.TestCaseIDs); err != nil {
			return err
		}
		return s.targetService.RecomputeForTestCases(tx, req.TestCaseIDs)
	})
	if err != nil {
		return models.Remediation{}, httpError(err, "remediation")
	}

	slog.Info("remediation created", "remediationID", remediation.ID)
	return s.Read(remediation.ID)
}

func (s *RemediationService) Update(id string, req dtos.RemediationPatchRequest) (models.Remediation, error) {
	remediation, err := s.remediationRepository.Read(id)
	if err != nil {
		return models.Remediation{}, httpError(err, "remediation")
	}
	if transformer.ApplyRemediationPatchRequestToModel(req, &remediation) {
		if err := s.remediationRepository.Save(nil, &remediation); err != nil {
			return models.Remediation{}, httpError(err, "remediation")
		}
	}
	return s.Read(id)
}

func (s *RemediationService) Delete(id string) error {
	err := s.remediationRepository.Transaction(func(tx shared.DB) error {
		testCaseIDs, err := s.remediationRepository.TestCaseIDs(tx, id)
		if err != nil {
			return err
		}
		if err := s.remediationRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.targetService.RecomputeForTestCases(tx, testCaseIDs)
	})
	return httpError(err, "remediation")
}

func (s *RemediationService) Read(id string) (models.Remediation, error) {
	remediation, err := s.remediationRepository.ReadWithRelations(id)
	if err != nil {
		return models.Remediation{}, httpError(err, "remediation")
	}
	return remediation, nil
}

func (s *RemediationService) ListPaged(pageInfo shared.PageInfo, search string) (shared.Paged[models.Remediation], error) {
	paged, err := s.remediationRepository.ListPaged(pageInfo, search)
	if err != nil {
		return paged, httpError(err, "remediations")
	}
	return paged, nil
}

func (s *RemediationService) ListByTestCase(testCaseID string) ([]models.Remediation, error) {
	remediations, err := s.remediationRepository.ListByTestCase(testCaseID)
	if err != nil {
		return nil, httpError(err, "remediations")
	}
	return remediations, nil
}

func (s *RemediationService) Link(id string, req dtos.RemediationLinkRequest) error {
	if _, err := s.remediationRepository.Read(id); err != nil {
		return httpError(err, "remediation")
	}
	err := s.remediationRepository.Transaction(func(tx shared.DB) error {
		if err := s.remediationRepository.LinkCriteria(tx, id, req.CriteriaIDs); err != nil {
			return err
		}
		if err := s.remediationRepository.LinkTestCases(tx, id, req.TestCaseIDs); err != nil {
			return err
		}
		return s.targetService.RecomputeForTestCases(tx, utils.Uniq(req.TestCaseIDs))
	})
	return httpError(err, "remediation link")
}

func (s *RemediationService) Unlink(id string, req dtos.RemediationLinkRequest) error {
	err := s.remediationRepository.Transaction(func(tx shared.DB) error {
		if err := s.remediationRepository.UnlinkCriteria(tx, id, req.CriteriaIDs); err != nil {
			return err
		}
		if err := s.remediationRepository.UnlinkTestCases(tx, id, req.TestCaseIDs); err != nil {
			return err
		}
		return s.targetService.RecomputeForTestCases(tx, utils.Uniq(req.TestCaseIDs))
	})
	return httpError(err, "remediation link")
}
