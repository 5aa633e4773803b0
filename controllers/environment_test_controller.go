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

type EnvironmentTestController struct {
	environmentService shared.EnvironmentService
}

func NewEnvironmentTestController(environmentService shared.EnvironmentService) *EnvironmentTestController {
	return &EnvironmentTestController{
		environmentService: environmentService,
	}
}

func (c *EnvironmentTestController) Read(ctx shared.Context) error {
	test, err := c.environmentService.ReadTest(shared.GetEnvironmentTest(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, test)
}

// @Summary Finish an environment test
// @Description a test can only be finished once
// @Param testID path string true "Environment test ID"
// @Param body body dtos.EnvironmentTestFinishRequest true "Request body"
// @Success 200 {object} models.EnvironmentTest
// @Router /tests/{testID}/finish [post]
func (c *EnvironmentTestController) Finish(ctx shared.Context) error {
	var req dtos.EnvironmentTestFinishRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	test, err := c.environmentService.FinishTest(shared.GetEnvironmentTest(ctx), req.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, test)
}

func (c *EnvironmentTestController) LinkPages(ctx shared.Context) error {
	var req dtos.EnvironmentTestPagesRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.environmentService.LinkPages(shared.GetEnvironmentTest(ctx), req.PageIDs); err != nil {
		return err
	}
	return c.Read(ctx)
}

func (c *EnvironmentTestController) UnlinkPages(ctx shared.Context) error {
	var req dtos.EnvironmentTestPagesRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.environmentService.UnlinkPages(shared.GetEnvironmentTest(ctx), req.PageIDs); err != nil {
		return err
	}
	return c.Read(ctx)
}

func (c *EnvironmentTestController) Delete(ctx shared.Context) error {
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.environmentService.DeleteTest(shared.GetEnvironmentTest(ctx).ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("environment test deleted"))
}
