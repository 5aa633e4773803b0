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

type EnvironmentController struct {
	environmentService shared.EnvironmentService
}

func NewEnvironmentController(environmentService shared.EnvironmentService) *EnvironmentController {
	return &EnvironmentController{
		environmentService: environmentService,
	}
}

func (c *EnvironmentController) Read(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, shared.GetEnvironment(ctx))
}

func (c *EnvironmentController) Update(ctx shared.Context) error {
	var req dtos.EnvironmentPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	environment, err := c.environmentService.Update(shared.GetEnvironment(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, environment)
}

func (c *EnvironmentController) Delete(ctx shared.Context) error {
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.environmentService.Delete(shared.GetEnvironment(ctx).ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("environment deleted"))
}

// @Summary Read the page tree of an environment
// @Param environmentID path string true "Environment ID"
// @Success 200 {array} dtos.EnvironmentPageTreeDTO
// @Router /environments/{environmentID}/pages [get]
func (c *EnvironmentController) PageTree(ctx shared.Context) error {
	tree, err := c.environmentService.PageTree(shared.GetEnvironment(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tree)
}

func (c *EnvironmentController) CreatePage(ctx shared.Context) error {
	var req dtos.EnvironmentPageCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	page, err := c.environmentService.CreatePage(shared.GetEnvironment(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

// @Summary Move a page inside the tree
// @Description a missing parentId moves the page to the root
// @Param environmentID path string true "Environment ID"
// @Param pageID path string true "Page ID"
// @Param body body dtos.EnvironmentPageMoveRequest true "Request body"
// @Success 200 {object} models.EnvironmentPage
// @Router /environments/{environmentID}/pages/{pageID} [patch]
func (c *EnvironmentController) MovePage(ctx shared.Context) error {
	pageID, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}

	var req dtos.EnvironmentPageMoveRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	page, err := c.environmentService.MovePage(shared.GetEnvironment(ctx), pageID, req.ParentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (c *EnvironmentController) DeletePage(ctx shared.Context) error {
	pageID, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.environmentService.DeletePage(shared.GetEnvironment(ctx), pageID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("page deleted"))
}

func (c *EnvironmentController) ListTests(ctx shared.Context) error {
	tests, err := c.environmentService.ListTests(shared.GetEnvironment(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tests)
}

// @Summary Create an environment test
// @Description STRUCTURED tests link the given pages, RANDOM tests sample sampleSize pages of the environment
// @Param environmentID path string true "Environment ID"
// @Param body body dtos.EnvironmentTestCreateRequest true "Request body"
// @Success 200 {object} models.EnvironmentTest
// @Router /environments/{environmentID}/tests [post]
func (c *EnvironmentController) CreateTest(ctx shared.Context) error {
	var req dtos.EnvironmentTestCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	test, err := c.environmentService.CreateTest(shared.GetEnvironment(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, test)
}
