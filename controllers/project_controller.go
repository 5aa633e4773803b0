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

type ProjectController struct {
	projectService     shared.ProjectService
	environmentService shared.EnvironmentService
}

func NewProjectController(projectService shared.ProjectService, environmentService shared.EnvironmentService) *ProjectController {
	return &ProjectController{
		projectService:     projectService,
		environmentService: environmentService,
	}
}

// @Summary List projects
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search in name and description"
// @Success 200 {object} shared.Paged[models.Project]
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	paged, err := c.projectService.ListPaged(shared.GetPageInfo(ctx), shared.GetSearchQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, paged)
}

// @Summary Create project
// @Param body body dtos.ProjectCreateRequest true "Request body"
// @Success 200 {object} models.Project
// @Router /projects [post]
func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Create(req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, project)
}

// @Summary Read project
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{projectID} [get]
func (c *ProjectController) Read(ctx shared.Context) error {
	// reload to include the environments
	project, err := c.projectService.Read(shared.GetProject(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, project)
}

// @Summary Update project
// @Param projectID path string true "Project ID"
// @Param body body dtos.ProjectPatchRequest true "Request body"
// @Success 200 {object} models.Project
// @Router /projects/{projectID} [patch]
func (c *ProjectController) Update(ctx shared.Context) error {
	var req dtos.ProjectPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Update(shared.GetProject(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, project)
}

// @Summary Delete project
// @Param projectID path string true "Project ID"
// @Param body body dtos.ConfirmRequest true "Request body"
// @Success 200 {object} dtos.ResultDTO
// @Router /projects/{projectID} [delete]
func (c *ProjectController) Delete(ctx shared.Context) error {
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.projectService.Delete(shared.GetProject(ctx).ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("project deleted"))
}

func (c *ProjectController) ListEnvironments(ctx shared.Context) error {
	environments, err := c.environmentService.ListByProject(shared.GetProject(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, environments)
}

func (c *ProjectController) CreateEnvironment(ctx shared.Context) error {
	var req dtos.EnvironmentCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	environment, err := c.environmentService.Create(shared.GetProject(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, environment)
}
