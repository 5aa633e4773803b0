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
)

type profileRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Profile]
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Profile](db),
	}
}

func (g *profileRepository) All() ([]models.Profile, error) {
	var profiles []models.Profile
	err := g.db.Order("is_default DESC").Order("name ASC").Find(&profiles).Error
	return profiles, err
}

// ClearDefault unsets the default flag on every profile but exceptID.
func (g *profileRepository) ClearDefault(tx *gorm.DB, exceptID uuid.UUID) error {
	return g.GetDB(tx).Model(&models.Profile{}).
		Where("is_default = ? AND id <> ?", true, exceptID).
		Update("is_default", false).Error
}
