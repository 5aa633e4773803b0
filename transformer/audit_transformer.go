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

package transformer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
)

func AuditCreateRequestToModel(req dtos.AuditCreateRequest) models.Audit {
	target := req.ConformanceTarget
	if target == "" {
		target = models.ConformanceTargetAA
	}

	return models.Audit{
		Identifier:               strings.TrimSpace(req.Identifier),
		Name:                     strings.TrimSpace(req.Name),
		Description:              req.Description,
		ProductName:              req.ProductName,
		ProductVersion:           req.ProductVersion,
		ProductURL:               req.ProductURL,
		EvaluationMethods:        req.EvaluationMethods,
		Notes:                    req.Notes,
		ReportDate:               req.ReportDate,
		Status:                   models.AuditStatusOpen,
		ConformanceTarget:        target,
		ProjectID:                req.ProjectID,
		EnvironmentID:            req.EnvironmentID,
		ProfileID:                req.ProfileID,
		SystemAuditTypeID:        req.SystemAuditTypeID,
		SystemAuditTypeVersionID: req.SystemAuditTypeVersionID,
	}
}

func ApplyAuditPatchRequestToModel(patch dtos.AuditPatchRequest, audit *models.Audit) bool {
	updated := false
	if patch.Identifier != nil {
		audit.Identifier = strings.TrimSpace(*patch.Identifier)
		updated = true
	}
	if patch.Name != nil {
		audit.Name = strings.TrimSpace(*patch.Name)
		updated = true
	}
	if patch.Description != nil {
		audit.Description = *patch.Description
		updated = true
	}
	if patch.ProductName != nil {
		audit.ProductName = *patch.ProductName
		updated = true
	}
	if patch.ProductVersion != nil {
		audit.ProductVersion = *patch.ProductVersion
		updated = true
	}
	if patch.ProductURL != nil {
		audit.ProductURL = *patch.ProductURL
		updated = true
	}
	if patch.EvaluationMethods != nil {
		audit.EvaluationMethods = *patch.EvaluationMethods
		updated = true
	}
	if patch.Notes != nil {
		audit.Notes = *patch.Notes
		updated = true
	}
	if patch.ReportDate != nil {
		audit.ReportDate = patch.ReportDate
		updated = true
	}
	if patch.ConformanceTarget != nil {
		audit.ConformanceTarget = *patch.ConformanceTarget
		updated = true
	}
	if patch.EnvironmentID != nil {
		// uuid.Nil detaches the environment
		audit.EnvironmentID = nilIfZero(*patch.EnvironmentID)
		audit.Environment = nil
		updated = true
	}
	if patch.ProfileID != nil {
		audit.ProfileID = nilIfZero(*patch.ProfileID)
		audit.Profile = nil
		updated = true
	}
	return updated
}

func nilIfZero(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func AuditItemUpsertToModel(auditID uuid.UUID, item dtos.AuditItemUpsert) models.AuditItem {
	return models.AuditItem{
		AuditID:                             auditID,
		SystemAuditChapterSectionItemID:     item.ItemID,
		SystemAuditChapterSectionItemTypeID: item.ItemTypeID,
		Level:                               item.Level,
		Remarks:                             item.Remarks,
	}
}

func ProfileRequestToModel(req dtos.ProfileRequest) models.Profile {
	return models.Profile{
		Name:      strings.TrimSpace(req.Name),
		Title:     req.Title,
		Email:     req.Email,
		Company:   req.Company,
		IsDefault: req.IsDefault,
	}
}

func ApplyProfileRequestToModel(req dtos.ProfileRequest, profile *models.Profile) {
	profile.Name = strings.TrimSpace(req.Name)
	profile.Title = req.Title
	profile.Email = req.Email
	profile.Company = req.Company
	profile.IsDefault = req.IsDefault
}
