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

package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
)

type AuditController struct {
	auditService shared.AuditService
}

func NewAuditController(auditService shared.AuditService) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// @Summary List audits
// @Param projectId query string false "Only audits of this project"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search in name, identifier and product name"
// @Success 200 {object} shared.Paged[models.Audit]
// @Router /audits [get]
func (c *AuditController) List(ctx shared.Context) error {
	var projectID *uuid.UUID
	if raw := ctx.QueryParam("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid projectId").WithInternal(err)
		}
		projectID = &id
	}

	paged, err := c.auditService.ListPaged(shared.GetPageInfo(ctx), projectID, shared.GetSearchQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, paged)
}

// @Summary Create audit
// @Description without chapterIds the audit starts with the chapters of its audit type version
// @Param body body dtos.AuditCreateRequest true "Request body"
// @Success 200 {object} models.Audit
// @Router /audits [post]
func (c *AuditController) Create(ctx shared.Context) error {
	var req dtos.AuditCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	audit, err := c.auditService.Create(req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, audit)
}

// @Summary Read audit
// @Param auditID path string true "Audit ID"
// @Success 200 {object} models.Audit
// @Router /audits/{auditID} [get]
func (c *AuditController) Read(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, shared.GetAudit(ctx))
}

// @Summary Update audit
// @Param auditID path string true "Audit ID"
// @Param body body dtos.AuditPatchRequest true "Request body"
// @Success 200 {object} models.Audit
// @Failure 409 "the audit is closed"
// @Router /audits/{auditID} [patch]
func (c *AuditController) Update(ctx shared.Context) error {
	var req dtos.AuditPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	audit, err := c.auditService.Update(shared.GetAudit(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, audit)
}

// @Summary Change the status of an audit
// @Param auditID path string true "Audit ID"
// @Param body body dtos.AuditStatusRequest true "Request body"
// @Success 200 {object} models.Audit
// @Failure 409 "transition not allowed"
// @Router /audits/{auditID}/status [put]
func (c *AuditController) Status(ctx shared.Context) error {
	var req dtos.AuditStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	audit, err := c.auditService.TransitionStatus(shared.GetAudit(ctx), req.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, audit)
}

func (c *AuditController) Delete(ctx shared.Context) error {
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.auditService.Delete(shared.GetAudit(ctx).ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("audit deleted"))
}

// @Summary Upsert audit items
// @Description stores the conformance level per item and item type. All items are written or none.
// @Param auditID path string true "Audit ID"
// @Param body body dtos.AuditItemsUpsertRequest true "Request body"
// @Success 200 {object} dtos.AuditSummaryDTO
// @Router /audits/{auditID}/items [put]
func (c *AuditController) UpsertItems(ctx shared.Context) error {
	var req dtos.AuditItemsUpsertRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	audit := shared.GetAudit(ctx)
	if err := c.auditService.UpsertItems(audit, req.Items); err != nil {
		return err
	}

	summary, err := c.auditService.Summary(audit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (c *AuditController) Summary(ctx shared.Context) error {
	summary, err := c.auditService.Summary(shared.GetAudit(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summary)
}
