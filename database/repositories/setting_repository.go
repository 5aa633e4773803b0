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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *settingRepository {
	return &settingRepository{db: db}
}

func (g *settingRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

// key is a keyword in sqlite, let gorm quote it
func keyEq(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

func (g *settingRepository) Read(key string) (models.Setting, error) {
	var setting models.Setting
	err := g.db.Where(keyEq(key)).First(&setting).Error
	return setting, err
}

func (g *settingRepository) All() ([]models.Setting, error) {
	var settings []models.Setting
	err := g.db.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&settings).Error
	return settings, err
}

func (g *settingRepository) Upsert(tx *gorm.DB, setting *models.Setting) error {
	return g.getDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"val", "updated_at"}),
	}).Create(setting).Error
}

// Delete returns gorm.ErrRecordNotFound if the key does not exist.
func (g *settingRepository) Delete(tx *gorm.DB, key string) error {
	res := g.getDB(tx).Where(keyEq(key)).Delete(&models.Setting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
