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

type TargetController struct {
	targetService shared.TargetService
}

func NewTargetController(targetService shared.TargetService) *TargetController {
	return &TargetController{
		targetService: targetService,
	}
}

func (c *TargetController) List(ctx shared.Context) error {
	pageID, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}

	targets, err := c.targetService.ListTargets(pageID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, targets)
}

func (c *TargetController) Add(ctx shared.Context) error {
	pageID, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}

	var req dtos.TargetsCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	targets, err := c.targetService.AddTargets(pageID, req.Targets)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, targets)
}

func (c *TargetController) Read(ctx shared.Context) error {
	id, err := uuidParam(ctx, "targetID")
	if err != nil {
		return err
	}

	target, err := c.targetService.ReadTarget(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, target)
}

func (c *TargetController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "targetID")
	if err != nil {
		return err
	}
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.targetService.DeleteTarget(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("target deleted"))
}

// @Summary Relate two targets
// @Description marks both targets as occurrences of the same issue
// @Param targetID path string true "Target ID"
// @Param body body dtos.TargetRelationRequest true "Request body"
// @Success 200 {object} models.TestCaseEnvironmentTestPageTarget
// @Router /targets/{targetID}/relations [post]
func (c *TargetController) Relate(ctx shared.Context) error {
	id, err := uuidParam(ctx, "targetID")
	if err != nil {
		return err
	}

	var req dtos.TargetRelationRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.targetService.Relate(id, req.RelatedTargetID); err != nil {
		return err
	}
	return c.Read(ctx)
}

func (c *TargetController) Unrelate(ctx shared.Context) error {
	id, err := uuidParam(ctx, "targetID")
	if err != nil {
		return err
	}
	relatedID, err := uuidParam(ctx, "relatedTargetID")
	if err != nil {
		return err
	}

	if err := c.targetService.Unrelate(id, relatedID); err != nil {
		return err
	}
	return c.Read(ctx)
}
