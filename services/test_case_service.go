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
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/monitoring"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type TestCaseService struct {
	testCaseRepository     shared.TestCaseRepository
	testCasePageRepository shared.TestCaseEnvironmentTestPageRepository
}

func NewTestCaseService(testCaseRepository shared.TestCaseRepository, testCasePageRepository shared.TestCaseEnvironmentTestPageRepository) *TestCaseService {
	return &TestCaseService{
		testCaseRepository:     testCaseRepository,
		testCasePageRepository: testCasePageRepository,
	}
}

func (s *TestCaseService) Create(req dtos.TestCaseCreateRequest) (models.TestCase, error) {
	testCase := transformer.TestCaseCreateRequestToModel(req)

	err := s.testCaseRepository.Transaction(func(tx shared.DB) error {
		if err := s.testCaseRepository.Create(tx, &testCase); err != nil {
			return err
		}
		if len(req.CriteriaIDs) == 0 {
			return nil
		}
		return s.testCaseRepository.ReplaceCriteria(tx, &testCase, req.CriteriaIDs)
	})
	if err != nil {
		return models.TestCase{}, httpError(err, "test case")
	}
	return s.Read(testCase.ID)
}

func (s *TestCaseService) Update(id string, req dtos.TestCasePatchRequest) (models.TestCase, error) {
	testCase, err := s.testCaseRepository.Read(id)
	if err != nil {
		return models.TestCase{}, httpError(err, "test case")
	}
	updated := transformer.ApplyTestCasePatchRequestToModel(req, &testCase)

	err = s.testCaseRepository.Transaction(func(tx shared.DB) error {
		if updated {
			if err := s.testCaseRepository.Save(tx, &testCase); err != nil {
				return err
			}
		}
		if req.CriteriaIDs != nil {
			return s.testCaseRepository.ReplaceCriteria(tx, &testCase, *req.CriteriaIDs)
		}
		return nil
	})
	if err != nil {
		return models.TestCase{}, httpError(err, "test case")
	}
	return s.Read(id)
}

func (s *TestCaseService) Delete(id string) error {
	return httpError(s.testCaseRepository.Delete(nil, id), "test case")
}

func (s *TestCaseService) Read(id string) (models.TestCase, error) {
	testCase, err := s.testCaseRepository.ReadWithRelations(id)
	if err != nil {
		return models.TestCase{}, httpError(err, "test case")
	}
	return testCase, nil
}

func (s *TestCaseService) ListPaged(pageInfo shared.PageInfo, search string, filter []shared.FilterQuery, sort []shared.SortQuery) (shared.Paged[models.TestCase], error) {
	paged, err := s.testCaseRepository.ListPaged(pageInfo, search, filter, sort)
	if err != nil {
		return paged, httpError(err, "test cases")
	}
	return paged, nil
}

// testCasePageError records the rejection and maps it.
// A missing test case surfaces from the creation hook as record not found, it is a bad reference here.
func testCasePageError(err error, rows int) error {
	reason := "error"
	switch {
	case errors.Is(err, models.ErrInvalidPageTestCombination):
		reason = "invalid_combination"
	case database.IsDuplicateKeyError(err):
		reason = "duplicate"
	case errors.Is(err, gorm.ErrRecordNotFound), database.IsForeignKeyError(err):
		reason = "unknown_reference"
		err = echo.NewHTTPError(http.StatusBadRequest, "unknown test case or page").WithInternal(err)
	}
	monitoring.TestCasePageRejectedTotal.WithLabelValues(reason).Add(float64(rows))
	slog.Warn("test case page write rejected", "reason", reason, "rows", rows, "err", err)
	return httpError(err, "test case page")
}

func (s *TestCaseService) CreateTestCasePage(test models.EnvironmentTest, req dtos.TestCasePageCreateRequest) (models.TestCaseEnvironmentTestPage, error) {
	row := transformer.TestCasePageCreateRequestToModel(req, test.ID)
	if err := s.testCasePageRepository.Create(nil, &row); err != nil {
		return models.TestCaseEnvironmentTestPage{}, testCasePageError(err, 1)
	}
	monitoring.TestCasePageCreatedTotal.Inc()
	return row, nil
}

// BulkCreateTestCasePages writes all rows or none of them.
func (s *TestCaseService) BulkCreateTestCasePages(test models.EnvironmentTest, reqs []dtos.TestCasePageCreateRequest) ([]models.TestCaseEnvironmentTestPage, error) {
	rows := make([]models.TestCaseEnvironmentTestPage, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, transformer.TestCasePageCreateRequestToModel(req, test.ID))
	}

	if err := s.testCasePageRepository.CreateBatchStrict(nil, rows); err != nil {
		return nil, testCasePageError(err, len(rows))
	}
	monitoring.TestCasePageCreatedTotal.Add(float64(len(rows)))
	slog.Info("test case pages created", "testID", test.ID, "rows", len(rows))
	return rows, nil
}

func (s *TestCaseService) UpdateTestCasePageStatus(id uuid.UUID, req dtos.TestCasePageStatusRequest) (models.TestCaseEnvironmentTestPage, error) {
	row, err := s.testCasePageRepository.Read(id)
	if err != nil {
		return models.TestCaseEnvironmentTestPage{}, httpError(err, "test case page")
	}

	row.Status = req.Status
	if req.Remarks != nil {
		row.Remarks = *req.Remarks
	}
	if err := s.testCasePageRepository.Save(nil, &row); err != nil {
		return models.TestCaseEnvironmentTestPage{}, httpError(err, "test case page")
	}
	return row, nil
}

func (s *TestCaseService) ListTestCasePages(testID uuid.UUID, filter []shared.FilterQuery, sort []shared.SortQuery) ([]models.TestCaseEnvironmentTestPage, error) {
	rows, err := s.testCasePageRepository.ListByTest(testID, filter, sort)
	if err != nil {
		return nil, httpError(err, "test case pages")
	}
	return rows, nil
}

func (s *TestCaseService) ReadTestCasePage(id uuid.UUID) (models.TestCaseEnvironmentTestPage, error) {
	row, err := s.testCasePageRepository.ReadWithTargets(id)
	if err != nil {
		return models.TestCaseEnvironmentTestPage{}, httpError(err, "test case page")
	}
	return row, nil
}

func (s *TestCaseService) DeleteTestCasePage(id uuid.UUID) error {
	return httpError(s.testCasePageRepository.Delete(nil, id), "test case page")
}

func (s *TestCaseService) Statistics(testID uuid.UUID) (dtos.TestCasePageStatisticsDTO, error) {
	counts, err := s.testCasePageRepository.CountByStatus(testID)
	if err != nil {
		return dtos.TestCasePageStatisticsDTO{}, httpError(err, "statistics")
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return dtos.TestCasePageStatisticsDTO{Total: total, ByStatus: counts}, nil
}
