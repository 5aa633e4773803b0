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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var testCasePageFilterFields = []string{"status", "test_case_id", "environment_page_id", "target_count", "created_at", "updated_at"}

type testCaseEnvironmentTestPageRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.TestCaseEnvironmentTestPage]
}

func NewTestCaseEnvironmentTestPageRepository(db *gorm.DB) *testCaseEnvironmentTestPageRepository {
	return &testCaseEnvironmentTestPageRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.TestCaseEnvironmentTestPage](db),
	}
}

// CreateBatchStrict runs all hooks first and inserts the rows with a single statement inside a transaction.
// Unlike CreateBatch, conflicts are not ignored. One invalid row fails the whole batch.
func (g *testCaseEnvironmentTestPageRepository) CreateBatchStrict(tx *gorm.DB, rows []models.TestCaseEnvironmentTestPage) error {
	if len(rows) == 0 {
		return nil
	}
	return g.GetDB(tx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&rows).Error
	})
}

func (g *testCaseEnvironmentTestPageRepository) IsPageInTest(tx *gorm.DB, pageID, testID uuid.UUID) (bool, error) {
	var count int64
	err := g.GetDB(tx).Model(&models.EnvironmentTestPage{}).
		Where("environment_test_id = ? AND environment_page_id = ?", testID, pageID).
		Count(&count).Error
	return count > 0, err
}

func (g *testCaseEnvironmentTestPageRepository) ListByTest(testID uuid.UUID, filter []shared.FilterQuery, sort []shared.SortQuery) ([]models.TestCaseEnvironmentTestPage, error) {
	var rows []models.TestCaseEnvironmentTestPage
	q := g.db.Where("environment_test_id = ?", testID)
	q = shared.ApplyFilters(q, testCasePageFilterFields, filter, sort)
	if len(sort) == 0 {
		q = q.Order("created_at ASC")
	}
	err := q.Preload("TestCase").Preload("EnvironmentPage").Find(&rows).Error
	return rows, err
}

func (g *testCaseEnvironmentTestPageRepository) ReadWithTargets(id uuid.UUID) (models.TestCaseEnvironmentTestPage, error) {
	var row models.TestCaseEnvironmentTestPage
	err := g.db.
		Preload("TestCase").
		Preload("EnvironmentPage").
		Preload("Targets", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Targets.Landmark").
		Preload("Targets.ParentLandmark").
		First(&row, "id = ?", id).Error
	return row, err
}

func (g *testCaseEnvironmentTestPageRepository) UpdateTargetCount(tx *gorm.DB, id uuid.UUID) error {
	return g.GetDB(tx).Model(&models.TestCaseEnvironmentTestPage{}).
		Where("id = ?", id).
		Update("target_count", gorm.Expr(
			"(SELECT COUNT(*) FROM test_case_environment_test_page_targets t WHERE t.test_case_environment_test_page_id = ?)", id,
		)).Error
}

func (g *testCaseEnvironmentTestPageRepository) CountByStatus(testID uuid.UUID) (map[models.TestCaseStatus]int64, error) {
	var rows []struct {
		Status models.TestCaseStatus
		Count  int64
	}
	err := g.db.Model(&models.TestCaseEnvironmentTestPage{}).
		Select("status, COUNT(*) AS count").
		Where("environment_test_id = ?", testID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[models.TestCaseStatus]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Count
	}
	return res, nil
}
