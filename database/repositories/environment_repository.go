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

type environmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Environment]
}

func NewEnvironmentRepository(db *gorm.DB) *environmentRepository {
	return &environmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Environment](db),
	}
}

func (g *environmentRepository) ListByProject(projectID uuid.UUID) ([]models.Environment, error) {
	var environments []models.Environment
	err := g.db.Where("project_id = ?", projectID).Order("name ASC").Find(&environments).Error
	return environments, err
}

type environmentPageRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.EnvironmentPage]
}

func NewEnvironmentPageRepository(db *gorm.DB) *environmentPageRepository {
	return &environmentPageRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.EnvironmentPage](db),
	}
}

func (g *environmentPageRepository) ListByEnvironment(tx *gorm.DB, environmentID uuid.UUID) ([]models.EnvironmentPage, error) {
	var pages []models.EnvironmentPage
	err := g.GetDB(tx).Where("environment_id = ?", environmentID).Order("created_at ASC").Order("name ASC").Find(&pages).Error
	return pages, err
}

type environmentTestRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.EnvironmentTest]
}

func NewEnvironmentTestRepository(db *gorm.DB) *environmentTestRepository {
	return &environmentTestRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.EnvironmentTest](db),
	}
}

func (g *environmentTestRepository) ListByEnvironment(environmentID uuid.UUID) ([]models.EnvironmentTest, error) {
	var tests []models.EnvironmentTest
	err := g.db.Where("environment_id = ?", environmentID).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (g *environmentTestRepository) ReadWithPages(id uuid.UUID) (models.EnvironmentTest, error) {
	var test models.EnvironmentTest
	err := g.db.Preload("Environment.Project").
		Preload("Pages", func(db *gorm.DB) *gorm.DB { return db.Order("environment_pages.created_at ASC") }).
		First(&test, "id = ?", id).Error
	return test, err
}

func (g *environmentTestRepository) LinkPages(tx *gorm.DB, testID uuid.UUID, pageIDs []uuid.UUID) error {
	if len(pageIDs) == 0 {
		return nil
	}
	rows := make([]models.EnvironmentTestPage, 0, len(pageIDs))
	for _, pageID := range pageIDs {
		rows = append(rows, models.EnvironmentTestPage{EnvironmentTestID: testID, EnvironmentPageID: pageID})
	}
	return g.GetDB(tx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (g *environmentTestRepository) UnlinkPages(tx *gorm.DB, testID uuid.UUID, pageIDs []uuid.UUID) error {
	if len(pageIDs) == 0 {
		return nil
	}
	return g.GetDB(tx).
		Where("environment_test_id = ? AND environment_page_id IN ?", testID, pageIDs).
		Delete(&models.EnvironmentTestPage{}).Error
}
