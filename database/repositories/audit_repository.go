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

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type auditRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Audit]
}

func NewAuditRepository(db *gorm.DB) *auditRepository {
	return &auditRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Audit](db),
	}
}

func (g *auditRepository) ListPaged(pageInfo shared.PageInfo, projectID *uuid.UUID, search string) (shared.Paged[models.Audit], error) {
	var audits []models.Audit

	q := g.db.Model(&models.Audit{})
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	if search != "" {
		q = q.Where("name LIKE ? OR identifier LIKE ? OR product_name LIKE ?", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Audit]{}, err
	}

	err := pageInfo.ApplyOnDB(q).
		Preload("Project").
		Preload("SystemAuditTypeVersion").
		Order("created_at DESC").
		Find(&audits).Error
	if err != nil {
		return shared.Paged[models.Audit]{}, err
	}
	return shared.NewPaged(pageInfo, count, audits), nil
}

func (g *auditRepository) ReadWithRelations(id uuid.UUID) (models.Audit, error) {
	var audit models.Audit
	err := g.db.
		Preload("Project").
		Preload("Environment").
		Preload("Profile").
		Preload("SystemAuditType").
		Preload("SystemAuditTypeVersion").
		Preload("Chapters", func(db *gorm.DB) *gorm.DB { return db.Order("system_audit_chapters.num ASC") }).
		First(&audit, "id = ?", id).Error
	return audit, err
}

// ReplaceChapters sets the chapters of the audit. Every chapter has to belong to the audit type of the audit.
func (g *auditRepository) ReplaceChapters(tx *gorm.DB, audit *models.Audit, chapterIDs []string) error {
	chapterIDs = utils.Uniq(chapterIDs)
	chapters := []models.SystemAuditChapter{}
	if len(chapterIDs) > 0 {
		if err := g.GetDB(tx).
			Where("id IN ? AND system_audit_type_id = ?", chapterIDs, audit.SystemAuditTypeID).
			Find(&chapters).Error; err != nil {
			return err
		}
		if len(chapters) != len(chapterIDs) {
			return fmt.Errorf("chapters do not belong to audit type %s: %w", audit.SystemAuditTypeID, shared.ErrUnknownReference)
		}
	}

	audit.Chapters = chapters
	return g.GetDB(tx).Model(audit).Association("Chapters").Replace(chapters)
}

// UpsertItems creates the items or updates level and remarks of existing ones.
func (g *auditRepository) UpsertItems(tx *gorm.DB, items []models.AuditItem) error {
	if len(items) == 0 {
		return nil
	}
	return g.GetDB(tx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "audit_id"},
			{Name: "system_audit_chapter_section_item_id"},
			{Name: "system_audit_chapter_section_item_type_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"level", "remarks", "updated_at"}),
	}).Create(&items).Error
}

func (g *auditRepository) ListItems(auditID uuid.UUID) ([]models.AuditItem, error) {
	var items []models.AuditItem
	err := g.db.Where("audit_id = ?", auditID).
		Order("system_audit_chapter_section_item_id ASC").
		Order("system_audit_chapter_section_item_type_id ASC").
		Find(&items).Error
	return items, err
}
