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

	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
)

type RemediationController struct {
	remediationService shared.RemediationService
}

func NewRemediationController(remediationService shared.RemediationService) *RemediationController {
	return &RemediationController{
		remediationService: remediationService,
	}
}

func (c *RemediationController) List(ctx shared.Context) error {
	paged, err := c.remediationService.ListPaged(shared.GetPageInfo(ctx), shared.GetSearchQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, paged)
}

// @Summary Create remediation
// @Description selectors default to ["body"]
// @Param body body dtos.RemediationCreateRequest true "Request body"
// @Success 200 {object} models.Remediation
// @Router /remediations [post]
func (c *RemediationController) Create(ctx shared.Context) error {
	var req dtos.RemediationCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	remediation, err := c.remediationService.Create(req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, remediation)
}

func (c *RemediationController) Read(ctx shared.Context) error {
	id, err := stringParam(ctx, "remediationID")
	if err != nil {
		return err
	}

	remediation, err := c.remediationService.Read(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, remediation)
}

func (c *RemediationController) Update(ctx shared.Context) error {
	id, err := stringParam(ctx, "remediationID")
	if err != nil {
		return err
	}

	var req dtos.RemediationPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	remediation, err := c.remediationService.Update(id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, remediation)
}

func (c *RemediationController) Delete(ctx shared.Context) error {
	id, err := stringParam(ctx, "remediationID")
	if err != nil {
		return err
	}
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.remediationService.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("remediation deleted"))
}

func (c *RemediationController) Link(ctx shared.Context) error {
	id, err := stringParam(ctx, "remediationID")
	if err != nil {
		return err
	}

	var req dtos.RemediationLinkRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.remediationService.Link(id, req); err != nil {
		return err
	}
	return c.Read(ctx)
}

func (c *RemediationController) Unlink(ctx shared.Context) error {
	id, err := stringParam(ctx, "remediationID")
	if err != nil {
		return err
	}

	var req dtos.RemediationLinkRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.remediationService.Unlink(id, req); err != nil {
		return err
	}
	return c.Read(ctx)
}
