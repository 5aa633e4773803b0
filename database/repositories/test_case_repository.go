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
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/gorm"
)

var testCaseFilterFields = []string{"id", "name", "type", "rule_id", "system_category_id", "created_at"}

type testCaseRepository struct {
	db *gorm.DB
	*GormRepository[string, models.TestCase]
}

func NewTestCaseRepository(db *gorm.DB) *testCaseRepository {
	return &testCaseRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.TestCase](db),
	}
}

func (g *testCaseRepository) ListPaged(pageInfo shared.PageInfo, search string, filter []shared.FilterQuery, sort []shared.SortQuery) (shared.Paged[models.TestCase], error) {
	var testCases []models.TestCase

	q := g.db.Model(&models.TestCase{})
	if search != "" {
		q = q.Where("id LIKE ? OR name LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	q = shared.ApplyFilters(q, testCaseFilterFields, filter, nil)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.TestCase]{}, err
	}

	q = shared.ApplyFilters(q, testCaseFilterFields, nil, sort)
	if len(sort) == 0 {
		q = q.Order("id ASC")
	}

	if err := pageInfo.ApplyOnDB(q).Preload("SystemCategory").Find(&testCases).Error; err != nil {
		return shared.Paged[models.TestCase]{}, err
	}
	return shared.NewPaged(pageInfo, count, testCases), nil
}

func (g *testCaseRepository) ReadWithRelations(id string) (models.TestCase, error) {
	var testCase models.TestCase
	err := g.db.
		Preload("SystemCategory").
		Preload("Criteria").
		Preload("Remediations").
		First(&testCase, "id = ?", id).Error
	return testCase, err
}

func (g *testCaseRepository) ReplaceCriteria(tx *gorm.DB, testCase *models.TestCase, criteriaIDs []string) error {
	criteriaIDs = utils.Uniq(criteriaIDs)
	criteria := []models.SystemStandardCriteria{}
	if len(criteriaIDs) > 0 {
		if err := g.GetDB(tx).Where("id IN ?", criteriaIDs).Find(&criteria).Error; err != nil {
			return err
		}
		if len(criteria) != len(criteriaIDs) {
			return shared.ErrUnknownReference
		}
	}
	return g.GetDB(tx).Model(testCase).Association("Criteria").Replace(criteria)
}
