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
	"slices"

	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/gorm"
)

type systemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) *systemRepository {
	return &systemRepository{db: db}
}

func (g *systemRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

// num columns are dotted version strings ("1.4.10"). the database sorts them lexicographically.
func sortByNum[T any](s []T, num func(T) string) {
	slices.SortStableFunc(s, func(a, b T) int {
		return utils.CompareNum(num(a), num(b))
	})
}

func (g *systemRepository) Standards() ([]models.SystemStandard, error) {
	var standards []models.SystemStandard
	err := g.db.
		Preload("Principles").
		Preload("Principles.Guidelines").
		Preload("Principles.Guidelines.Criteria").
		Order("id ASC").
		Find(&standards).Error
	if err != nil {
		return nil, err
	}

	for i := range standards {
		principles := standards[i].Principles
		sortByNum(principles, func(p models.SystemStandardPrinciple) string { return p.Num })
		for j := range principles {
			guidelines := principles[j].Guidelines
			sortByNum(guidelines, func(g models.SystemStandardGuideline) string { return g.Num })
			for k := range guidelines {
				sortByNum(guidelines[k].Criteria, func(c models.SystemStandardCriteria) string { return c.Num })
			}
		}
	}
	return standards, nil
}

func (g *systemRepository) AuditTypes() ([]models.SystemAuditType, error) {
	var auditTypes []models.SystemAuditType
	err := g.db.
		Preload("Versions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Chapters").
		Order("id ASC").
		Find(&auditTypes).Error
	if err != nil {
		return nil, err
	}
	for i := range auditTypes {
		sortByNum(auditTypes[i].Chapters, func(c models.SystemAuditChapter) string { return c.Num })
	}
	return auditTypes, nil
}

func (g *systemRepository) ReadAuditTypeVersion(tx *gorm.DB, id string) (models.SystemAuditTypeVersion, error) {
	var version models.SystemAuditTypeVersion
	err := g.getDB(tx).First(&version, "id = ?", id).Error
	return version, err
}

func (g *systemRepository) ChaptersWithItems(chapterIDs []string) ([]models.SystemAuditChapter, error) {
	chapters := []models.SystemAuditChapter{}
	if len(chapterIDs) == 0 {
		return chapters, nil
	}
	err := g.db.
		Preload("Sections").
		Preload("Sections.Items").
		Preload("Sections.Items.SystemStandardCriteria").
		Preload("Sections.Items.Types", func(db *gorm.DB) *gorm.DB {
			return db.Order("system_audit_chapter_section_item_types.id ASC")
		}).
		Where("id IN ?", chapterIDs).
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}

	sortByNum(chapters, func(c models.SystemAuditChapter) string { return c.Num })
	for i := range chapters {
		sections := chapters[i].Sections
		sortByNum(sections, func(s models.SystemAuditChapterSection) string { return s.Num })
		for j := range sections {
			sortByNum(sections[j].Items, func(it models.SystemAuditChapterSectionItem) string { return it.Num })
		}
	}
	return chapters, nil
}

func (g *systemRepository) ItemsByChapters(tx *gorm.DB, chapterIDs []string) ([]models.SystemAuditChapterSectionItem, error) {
	items := []models.SystemAuditChapterSectionItem{}
	if len(chapterIDs) == 0 {
		return items, nil
	}
	err := g.getDB(tx).
		Joins("JOIN system_audit_chapter_sections s ON s.id = system_audit_chapter_section_items.system_audit_chapter_section_id").
		Where("s.system_audit_chapter_id IN ?", chapterIDs).
		Preload("Types").
		Find(&items).Error
	return items, err
}

func (g *systemRepository) ItemTypes() ([]models.SystemAuditChapterSectionItemType, error) {
	return listOrdered[models.SystemAuditChapterSectionItemType](g.db, "id ASC")
}

func (g *systemRepository) Categories() ([]models.SystemCategory, error) {
	return listOrdered[models.SystemCategory](g.db, "name ASC")
}

func (g *systemRepository) Countries() ([]models.SystemCountry, error) {
	return listOrdered[models.SystemCountry](g.db, "name ASC")
}

func (g *systemRepository) Technologies() ([]models.SystemTechnology, error) {
	return listOrdered[models.SystemTechnology](g.db, "name ASC")
}

func (g *systemRepository) Landmarks() ([]models.SystemLandmark, error) {
	return listOrdered[models.SystemLandmark](g.db, "name ASC")
}

func (g *systemRepository) Sync() error {
	return database.SyncSystemTables(g.db)
}

func listOrdered[T any](db *gorm.DB, order string) ([]T, error) {
	rows := []T{}
	err := db.Order(order).Find(&rows).Error
	return rows, err
}
