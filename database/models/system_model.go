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

package models

import "gorm.io/datatypes"

// System tables hold seeded reference data. They are written by the system sync only.

type SystemStandard struct {
	ID         string                    `json:"id" gorm:"primaryKey;type:text"`
	Name       string                    `json:"name" gorm:"type:text;not null"`
	Version    string                    `json:"version" gorm:"type:text"`
	URL        string                    `json:"url" gorm:"type:text"`
	Principles []SystemStandardPrinciple `json:"principles,omitempty" gorm:"foreignKey:SystemStandardID;constraint:OnDelete:CASCADE;"`
}

func (m SystemStandard) TableName() string {
	return "system_standards"
}

type SystemStandardPrinciple struct {
	ID               string                    `json:"id" gorm:"primaryKey;type:text"`
	SystemStandardID string                    `json:"systemStandardId" gorm:"type:text;not null;index"`
	Num              string                    `json:"num" gorm:"type:text;not null"`
	Name             string                    `json:"name" gorm:"type:text;not null"`
	Guidelines       []SystemStandardGuideline `json:"guidelines,omitempty" gorm:"foreignKey:SystemStandardPrincipleID;constraint:OnDelete:CASCADE;"`
}

func (m SystemStandardPrinciple) TableName() string {
	return "system_standard_principles"
}

type SystemStandardGuideline struct {
	ID                        string                   `json:"id" gorm:"primaryKey;type:text"`
	SystemStandardPrincipleID string                   `json:"systemStandardPrincipleId" gorm:"type:text;not null;index"`
	Num                       string                   `json:"num" gorm:"type:text;not null"`
	Name                      string                   `json:"name" gorm:"type:text;not null"`
	Criteria                  []SystemStandardCriteria `json:"criteria,omitempty" gorm:"foreignKey:SystemStandardGuidelineID;constraint:OnDelete:CASCADE;"`
}

func (m SystemStandardGuideline) TableName() string {
	return "system_standard_guidelines"
}

type SystemStandardCriteria struct {
	ID                        string `json:"id" gorm:"primaryKey;type:text"`
	SystemStandardGuidelineID string `json:"systemStandardGuidelineId" gorm:"type:text;not null;index"`
	Num                       string `json:"num" gorm:"type:text;not null"`
	Name                      string `json:"name" gorm:"type:text;not null"`
	// A, AA or AAA
	Level string `json:"level" gorm:"type:text;not null"`
}

func (m SystemStandardCriteria) TableName() string {
	return "system_standard_criteria"
}

type SystemAuditType struct {
	ID       string                   `json:"id" gorm:"primaryKey;type:text"`
	Name     string                   `json:"name" gorm:"type:text;not null"`
	Versions []SystemAuditTypeVersion `json:"versions,omitempty" gorm:"foreignKey:SystemAuditTypeID;constraint:OnDelete:CASCADE;"`
	Chapters []SystemAuditChapter     `json:"chapters,omitempty" gorm:"foreignKey:SystemAuditTypeID;constraint:OnDelete:CASCADE;"`
}

func (m SystemAuditType) TableName() string {
	return "system_audit_types"
}

type SystemAuditTypeVersion struct {
	ID                string `json:"id" gorm:"primaryKey;type:text"`
	SystemAuditTypeID string `json:"systemAuditTypeId" gorm:"type:text;not null;index"`
	Version           string `json:"version" gorm:"type:text;not null"`
	// the chapters a new audit of this version starts with
	ChapterIDs datatypes.JSONSlice[string] `json:"chapterIds" gorm:"type:text"`
}

func (m SystemAuditTypeVersion) TableName() string {
	return "system_audit_type_versions"
}

type SystemAuditChapter struct {
	ID                string                      `json:"id" gorm:"primaryKey;type:text"`
	SystemAuditTypeID string                      `json:"systemAuditTypeId" gorm:"type:text;not null;index"`
	Num               string                      `json:"num" gorm:"type:text;not null"`
	Name              string                      `json:"name" gorm:"type:text;not null"`
	Sections          []SystemAuditChapterSection `json:"sections,omitempty" gorm:"foreignKey:SystemAuditChapterID;constraint:OnDelete:CASCADE;"`
}

func (m SystemAuditChapter) TableName() string {
	return "system_audit_chapters"
}

type SystemAuditChapterSection struct {
	ID                   string                          `json:"id" gorm:"primaryKey;type:text"`
	SystemAuditChapterID string                          `json:"systemAuditChapterId" gorm:"type:text;not null;index"`
	Num                  string                          `json:"num" gorm:"type:text;not null"`
	Name                 string                          `json:"name" gorm:"type:text;not null"`
	Items                []SystemAuditChapterSectionItem `json:"items,omitempty" gorm:"foreignKey:SystemAuditChapterSectionID;constraint:OnDelete:CASCADE;"`
}

func (m SystemAuditChapterSection) TableName() string {
	return "system_audit_chapter_sections"
}

type SystemAuditChapterSectionItem struct {
	ID                          string `json:"id" gorm:"primaryKey;type:text"`
	SystemAuditChapterSectionID string `json:"systemAuditChapterSectionId" gorm:"type:text;not null;index"`
	Num                         string `json:"num" gorm:"type:text;not null"`
	Name                        string `json:"name" gorm:"type:text;not null"`

	SystemStandardCriteriaID *string                 `json:"systemStandardCriteriaId" gorm:"type:text"`
	SystemStandardCriteria   *SystemStandardCriteria `json:"criteria,omitempty" gorm:"foreignKey:SystemStandardCriteriaID;constraint:OnDelete:SET NULL;"`

	Types []SystemAuditChapterSectionItemType `json:"types,omitempty" gorm:"many2many:system_audit_chapter_section_item_type_links;constraint:OnDelete:CASCADE;"`
}

func (m SystemAuditChapterSectionItem) TableName() string {
	return "system_audit_chapter_section_items"
}

// SystemAuditChapterSectionItemType distinguishes the rows of a vpat item (web, electronic docs, software, authoring tool).
type SystemAuditChapterSectionItemType struct {
	ID   string `json:"id" gorm:"primaryKey;type:text"`
	Name string `json:"name" gorm:"type:text;not null"`
}

func (m SystemAuditChapterSectionItemType) TableName() string {
	return "system_audit_chapter_section_item_types"
}

type SystemCategory struct {
	ID          string `json:"id" gorm:"primaryKey;type:text"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (m SystemCategory) TableName() string {
	return "system_categories"
}

type SystemCountry struct {
	// ISO 3166-1 alpha-2
	ID   string `json:"id" gorm:"primaryKey;type:text"`
	Name string `json:"name" gorm:"type:text;not null"`
}

func (m SystemCountry) TableName() string {
	return "system_countries"
}

type SystemTechnology struct {
	ID   string `json:"id" gorm:"primaryKey;type:text"`
	Name string `json:"name" gorm:"type:text;not null"`
}

func (m SystemTechnology) TableName() string {
	return "system_technologies"
}

// SystemLandmark is an aria landmark role (banner, main, navigation...).
type SystemLandmark struct {
	ID   string `json:"id" gorm:"primaryKey;type:text"`
	Name string `json:"name" gorm:"type:text;not null"`
}

func (m SystemLandmark) TableName() string {
	return "system_landmarks"
}
