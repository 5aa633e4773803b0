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

import (
	"time"

	"github.com/google/uuid"
)

type AuditStatus string

const (
	AuditStatusOpen       AuditStatus = "OPEN"
	AuditStatusInProgress AuditStatus = "IN_PROGRESS"
	AuditStatusClosed     AuditStatus = "CLOSED"
)

type ConformanceTarget string

const (
	ConformanceTargetA   ConformanceTarget = "A"
	ConformanceTargetAA  ConformanceTarget = "AA"
	ConformanceTargetAAA ConformanceTarget = "AAA"
)

// Includes reports whether a criteria of the given level is in scope for the target.
// An AA audit covers A and AA criteria, but not AAA.
func (c ConformanceTarget) Includes(level string) bool {
	return len(level) > 0 && len(level) <= len(c)
}

type AuditItemLevel string

const (
	AuditItemLevelSupports          AuditItemLevel = "SUPPORTS"
	AuditItemLevelPartiallySupports AuditItemLevel = "PARTIALLY_SUPPORTS"
	AuditItemLevelDoesNotSupport    AuditItemLevel = "DOES_NOT_SUPPORT"
	AuditItemLevelNotApplicable     AuditItemLevel = "NOT_APPLICABLE"
	AuditItemLevelNotEvaluated      AuditItemLevel = "NOT_EVALUATED"
)

var AuditItemLevels = []AuditItemLevel{
	AuditItemLevelSupports,
	AuditItemLevelPartiallySupports,
	AuditItemLevelDoesNotSupport,
	AuditItemLevelNotApplicable,
	AuditItemLevelNotEvaluated,
}

type Audit struct {
	Model
	Identifier  string `json:"identifier" gorm:"type:text"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	ProductName       string     `json:"productName" gorm:"type:text"`
	ProductVersion    string     `json:"productVersion" gorm:"type:text"`
	ProductURL        string     `json:"productUrl" gorm:"type:text"`
	EvaluationMethods string     `json:"evaluationMethods" gorm:"type:text"`
	Notes             string     `json:"notes" gorm:"type:text"`
	ReportDate        *time.Time `json:"reportDate"`

	Status            AuditStatus       `json:"status" gorm:"type:text;not null;default:'OPEN'"`
	ConformanceTarget ConformanceTarget `json:"conformanceTarget" gorm:"type:text;not null;default:'AA'"`

	ProjectID     uuid.UUID    `json:"projectId" gorm:"type:uuid;not null;index"`
	Project       *Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
	EnvironmentID *uuid.UUID   `json:"environmentId" gorm:"type:uuid"`
	Environment   *Environment `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:SET NULL;"`
	ProfileID     *uuid.UUID   `json:"profileId" gorm:"type:uuid"`
	Profile       *Profile     `json:"profile,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:SET NULL;"`

	SystemAuditTypeID        string                  `json:"systemAuditTypeId" gorm:"type:text;not null"`
	SystemAuditType          *SystemAuditType        `json:"systemAuditType,omitempty" gorm:"foreignKey:SystemAuditTypeID"`
	SystemAuditTypeVersionID string                  `json:"systemAuditTypeVersionId" gorm:"type:text;not null"`
	SystemAuditTypeVersion   *SystemAuditTypeVersion `json:"systemAuditTypeVersion,omitempty" gorm:"foreignKey:SystemAuditTypeVersionID"`

	Chapters []SystemAuditChapter `json:"chapters,omitempty" gorm:"many2many:audit_chapters;constraint:OnDelete:CASCADE;"`
	Items    []AuditItem          `json:"items,omitempty" gorm:"foreignKey:AuditID;constraint:OnDelete:CASCADE;"`
}

func (m Audit) TableName() string {
	return "audits"
}

// AuditItem records the conformance level of a single chapter section item (per item type) inside an audit.
type AuditItem struct {
	AuditID                             uuid.UUID `json:"auditId" gorm:"primaryKey;type:uuid"`
	SystemAuditChapterSectionItemID     string    `json:"systemAuditChapterSectionItemId" gorm:"primaryKey;type:text"`
	SystemAuditChapterSectionItemTypeID string    `json:"systemAuditChapterSectionItemTypeId" gorm:"primaryKey;type:text"`

	Level   AuditItemLevel `json:"level" gorm:"type:text;not null;default:'NOT_EVALUATED'"`
	Remarks string         `json:"remarks" gorm:"type:text"`

	Audit                             *Audit                             `json:"-" gorm:"foreignKey:AuditID;constraint:OnDelete:CASCADE;"`
	SystemAuditChapterSectionItem     *SystemAuditChapterSectionItem     `json:"item,omitempty" gorm:"foreignKey:SystemAuditChapterSectionItemID"`
	SystemAuditChapterSectionItemType *SystemAuditChapterSectionItemType `json:"itemType,omitempty" gorm:"foreignKey:SystemAuditChapterSectionItemTypeID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m AuditItem) TableName() string {
	return "audit_items"
}

type Profile struct {
	Model
	Name      string `json:"name" gorm:"type:text;not null"`
	Title     string `json:"title" gorm:"type:text"`
	Email     string `json:"email" gorm:"type:text"`
	Company   string `json:"company" gorm:"type:text"`
	IsDefault bool   `json:"isDefault" gorm:"not null;default:false"`
}

func (m Profile) TableName() string {
	return "profiles"
}
