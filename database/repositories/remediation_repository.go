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
	"fmt"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type remediationRepository struct {
	db *gorm.DB
	*GormRepository[string, models.Remediation]
}

func NewRemediationRepository(db *gorm.DB) *remediationRepository {
	return &remediationRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Remediation](db),
	}
}

func (g *remediationRepository) ListPaged(pageInfo shared.PageInfo, search string) (shared.Paged[models.Remediation], error) {
	var remediations []models.Remediation

	q := g.db.Model(&models.Remediation{})
	if search != "" {
		q = q.Where("id LIKE ? OR name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Remediation]{}, err
	}

	if err := pageInfo.ApplyOnDB(q).Preload("SystemCategory").Order("id ASC").Find(&remediations).Error; err != nil {
		return shared.Paged[models.Remediation]{}, err
	}
	return shared.NewPaged(pageInfo, count, remediations), nil
}

func (g *remediationRepository) ListByTestCase(testCaseID string) ([]models.Remediation, error) {
	var remediations []models.Remediation
	err := g.db.
		Joins("JOIN remediation_test_cases rtc ON rtc.remediation_id = remediations.id").
		Where("rtc.test_case_id = ?", testCaseID).
		Order("remediations.id ASC").
		Find(&remediations).Error
	return remediations, err
}

func (g *remediationRepository) ReadWithRelations(id string) (models.Remediation, error) {
	var remediation models.Remediation
	err := g.db.
		Preload("SystemCategory").
		Preload("TestCases", func(db *gorm.DB) *gorm.DB { return db.Order("test_cases.id ASC") }).
		Preload("Criteria", func(db *gorm.DB) *gorm.DB { return db.Order("system_standard_criteria.id ASC") }).
		First(&remediation, "id = ?", id).Error
	return remediation, err
}

func (g *remediationRepository) link(tx *gorm.DB, table, refTable, column, remediationID string, ids []string) error {
	ids = utils.Uniq(ids)
	if len(ids) == 0 {
		return nil
	}

	var count int64
	if err := g.GetDB(tx).Table(refTable).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != len(ids) {
		return fmt.Errorf("could not link %s: %w", refTable, shared.ErrUnknownReference)
	}

	rows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]any{"remediation_id": remediationID, column: id})
	}
	return g.GetDB(tx).Table(table).Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}

func (g *remediationRepository) unlink(tx *gorm.DB, table, column, remediationID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return g.GetDB(tx).
		Exec("DELETE FROM "+table+" WHERE remediation_id = ? AND "+column+" IN ?", remediationID, ids).Error
}

func (g *remediationRepository) LinkTestCases(tx *gorm.DB, remediationID string, testCaseIDs []string) error {
	return g.link(tx, "remediation_test_cases", "test_cases", "test_case_id", remediationID, testCaseIDs)
}

func (g *remediationRepository) UnlinkTestCases(tx *gorm.DB, remediationID string, testCaseIDs []string) error {
	return g.unlink(tx, "remediation_test_cases", "test_case_id", remediationID, testCaseIDs)
}

func (g *remediationRepository) LinkCriteria(tx *gorm.DB, remediationID string, criteriaIDs []string) error {
	return g.link(tx, "remediation_criteria", "system_standard_criteria", "system_standard_criteria_id", remediationID, criteriaIDs)
}

func (g *remediationRepository) UnlinkCriteria(tx *gorm.DB, remediationID string, criteriaIDs []string) error {
	return g.unlink(tx, "remediation_criteria", "system_standard_criteria_id", remediationID, criteriaIDs)
}

func (g *remediationRepository) TestCaseIDs(tx *gorm.DB, remediationID string) ([]string, error) {
	var ids []string
	err := g.GetDB(tx).Table("remediation_test_cases").
		Where("remediation_id = ?", remediationID).
		Pluck("test_case_id", &ids).Error
	return ids, err
}
