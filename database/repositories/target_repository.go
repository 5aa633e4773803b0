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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type targetRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.TestCaseEnvironmentTestPageTarget]
}

func NewTargetRepository(db *gorm.DB) *targetRepository {
	return &targetRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.TestCaseEnvironmentTestPageTarget](db),
	}
}

func (g *targetRepository) ListByTestCasePage(testCasePageID uuid.UUID) ([]models.TestCaseEnvironmentTestPageTarget, error) {
	var targets []models.TestCaseEnvironmentTestPageTarget
	err := g.db.Where("test_case_environment_test_page_id = ?", testCasePageID).
		Preload("Landmark").
		Preload("ParentLandmark").
		Order("created_at ASC").
		Find(&targets).Error
	return targets, err
}

func (g *targetRepository) ReadWithRelated(id uuid.UUID) (models.TestCaseEnvironmentTestPageTarget, error) {
	var target models.TestCaseEnvironmentTestPageTarget
	if err := g.db.Preload("Landmark").Preload("ParentLandmark").First(&target, "id = ?", id).Error; err != nil {
		return target, err
	}

	relatedIDs, err := g.RelatedIDs(nil, id)
	if err != nil {
		return target, err
	}
	target.RelatedTargets = []models.TestCaseEnvironmentTestPageTarget{}
	if len(relatedIDs) > 0 {
		err = g.db.Where("id IN ?", relatedIDs).Order("created_at ASC").Find(&target.RelatedTargets).Error
	}
	return target, err
}

func (g *targetRepository) Relate(tx *gorm.DB, targetID, relatedTargetID uuid.UUID) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TargetRelation{TargetID: targetID, RelatedTargetID: relatedTargetID}).Error
}

// Unrelate removes the relation in both directions.
func (g *targetRepository) Unrelate(tx *gorm.DB, targetID, relatedTargetID uuid.UUID) error {
	return g.GetDB(tx).
		Where("(target_id = ? AND related_target_id = ?) OR (target_id = ? AND related_target_id = ?)",
			targetID, relatedTargetID, relatedTargetID, targetID).
		Delete(&models.TargetRelation{}).Error
}

// RelatedIDs returns the targets related to targetID, regardless of the direction the relation was stored in.
func (g *targetRepository) RelatedIDs(tx *gorm.DB, targetID uuid.UUID) ([]uuid.UUID, error) {
	var relations []models.TargetRelation
	if err := g.GetDB(tx).
		Where("target_id = ? OR related_target_id = ?", targetID, targetID).
		Find(&relations).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(relations))
	for _, r := range relations {
		if r.TargetID == targetID {
			ids = append(ids, r.RelatedTargetID)
		} else {
			ids = append(ids, r.TargetID)
		}
	}
	return ids, nil
}

func (g *targetRepository) IDsByTestCases(tx *gorm.DB, testCaseIDs []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(testCaseIDs) == 0 {
		return ids, nil
	}
	err := g.GetDB(tx).Model(&models.TestCaseEnvironmentTestPageTarget{}).
		Joins("JOIN test_case_environment_test_pages p ON p.id = test_case_environment_test_page_targets.test_case_environment_test_page_id").
		Where("p.test_case_id IN ?", testCaseIDs).
		Pluck("test_case_environment_test_page_targets.id", &ids).Error
	return ids, err
}

// RecomputeCounters refreshes the denormalized counters of the given targets.
//
//	related_target_count: relation rows with the target on either side
//	related_remediation_count: remediations linked to the test case of the target
func (g *targetRepository) RecomputeCounters(tx *gorm.DB, targetIDs []uuid.UUID) error {
	if len(targetIDs) == 0 {
		return nil
	}
	return g.GetDB(tx).Model(&models.TestCaseEnvironmentTestPageTarget{}).
		Where("id IN ?", targetIDs).
		UpdateColumns(map[string]any{
			"related_target_count": gorm.Expr(
				"(SELECT COUNT(*) FROM test_case_environment_test_page_target_relations r " +
					"WHERE r.target_id = test_case_environment_test_page_targets.id " +
					"OR r.related_target_id = test_case_environment_test_page_targets.id)"),
			"related_remediation_count": gorm.Expr(
				"(SELECT COUNT(*) FROM remediation_test_cases rtc " +
					"JOIN test_case_environment_test_pages p ON p.test_case_id = rtc.test_case_id " +
					"WHERE p.id = test_case_environment_test_page_targets.test_case_environment_test_page_id)"),
		}).Error
}
