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
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) ReadWithEnvironments(id uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.db.
		Preload("Environments", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Technologies", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		First(&project, "id = ?", id).Error
	return project, err
}

func (g *projectRepository) ListPaged(pageInfo shared.PageInfo, search string) (shared.Paged[models.Project], error) {
	var projects []models.Project

	q := g.db.Model(&models.Project{})
	if search != "" {
		q = q.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Project]{}, err
	}

	err := pageInfo.ApplyOnDB(q).
		Preload("Technologies").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return shared.Paged[models.Project]{}, err
	}

	return shared.NewPaged(pageInfo, count, projects), nil
}

func (g *projectRepository) ReplaceTechnologies(tx *gorm.DB, project *models.Project, technologyIDs []string) error {
	technologyIDs = utils.Uniq(technologyIDs)
	technologies := []models.SystemTechnology{}
	if len(technologyIDs) > 0 {
		if err := g.GetDB(tx).Where("id IN ?", technologyIDs).Find(&technologies).Error; err != nil {
			return err
		}
		if len(technologies) != len(technologyIDs) {
			return shared.ErrUnknownReference
		}
	}
	return g.GetDB(tx).Model(project).Association("Technologies").Replace(technologies)
}
