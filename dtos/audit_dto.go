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

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
)

type AuditCreateRequest struct {
	Identifier        string                   `json:"identifier"`
	Name              string                   `json:"name" validate:"required"`
	Description       string                   `json:"description"`
	ProductName       string                   `json:"productName"`
	ProductVersion    string                   `json:"productVersion"`
	ProductURL        string                   `json:"productUrl" validate:"omitempty,url"`
	EvaluationMethods string                   `json:"evaluationMethods"`
	Notes             string                   `json:"notes"`
	ReportDate        *time.Time               `json:"reportDate"`
	ConformanceTarget models.ConformanceTarget `json:"conformanceTarget" validate:"omitempty,oneof=A AA AAA"`

	ProjectID                uuid.UUID  `json:"projectId" validate:"required"`
	EnvironmentID            *uuid.UUID `json:"environmentId"`
	ProfileID                *uuid.UUID `json:"profileId"`
	SystemAuditTypeID        string     `json:"systemAuditTypeId" validate:"required"`
	SystemAuditTypeVersionID string     `json:"systemAuditTypeVersionId" validate:"required"`
	// empty means the chapters of the audit type version
	ChapterIDs []string `json:"chapterIds"`
}

type AuditPatchRequest struct {
	Identifier        *string                   `json:"identifier"`
	Name              *string                   `json:"name" validate:"omitempty,min=1"`
	Description       *string                   `json:"description"`
	ProductName       *string                   `json:"productName"`
	ProductVersion    *string                   `json:"productVersion"`
	ProductURL        *string                   `json:"productUrl" validate:"omitempty,url"`
	EvaluationMethods *string                   `json:"evaluationMethods"`
	Notes             *string                   `json:"notes"`
	ReportDate        *time.Time                `json:"reportDate"`
	ConformanceTarget *models.ConformanceTarget `json:"conformanceTarget" validate:"omitempty,oneof=A AA AAA"`
	EnvironmentID     *uuid.UUID                `json:"environmentId"`
	ProfileID         *uuid.UUID                `json:"profileId"`
	ChapterIDs        *[]string                 `json:"chapterIds"`
}

type AuditStatusRequest struct {
	Status models.AuditStatus `json:"status" validate:"required,oneof=OPEN IN_PROGRESS CLOSED"`
}

type AuditItemUpsert struct {
	ItemID     string                `json:"itemId" validate:"required"`
	ItemTypeID string                `json:"itemTypeId" validate:"required"`
	Level      models.AuditItemLevel `json:"level" validate:"required,oneof=SUPPORTS PARTIALLY_SUPPORTS DOES_NOT_SUPPORT NOT_APPLICABLE NOT_EVALUATED"`
	Remarks    string                `json:"remarks"`
}

type AuditItemsUpsertRequest struct {
	Items []AuditItemUpsert `json:"items" validate:"required,min=1,dive"`
}

type AuditChapterSummaryDTO struct {
	ChapterID string                        `json:"chapterId"`
	Num       string                        `json:"num"`
	Name      string                        `json:"name"`
	Total     int                           `json:"total"`
	Levels    map[models.AuditItemLevel]int `json:"levels"`
}

type AuditSummaryDTO struct {
	AuditID  uuid.UUID                     `json:"auditId"`
	Total    int                           `json:"total"`
	Levels   map[models.AuditItemLevel]int `json:"levels"`
	Chapters []AuditChapterSummaryDTO      `json:"chapters"`
}

type ProfileRequest struct {
	Name      string `json:"name" validate:"required"`
	Title     string `json:"title"`
	Email     string `json:"email" validate:"omitempty,email"`
	Company   string `json:"company"`
	IsDefault bool   `json:"isDefault"`
}
