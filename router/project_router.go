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

package router

import (
	"github.com/l3montree-dev/auditguard/controllers"
	"github.com/l3montree-dev/auditguard/middlewares"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	apiV1Router APIV1Router,
	projectController *controllers.ProjectController,
	projectRepository shared.ProjectRepository,
) ProjectRouter {
	apiV1Router.Group.GET("/projects/", projectController.List)
	apiV1Router.Group.POST("/projects/", projectController.Create)

	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectRouter := apiV1Router.Group.Group("/projects/:projectID", middlewares.ProjectMiddleware(projectRepository))
	projectRouter.GET("/", projectController.Read)
	projectRouter.PATCH("/", projectController.Update)
	projectRouter.DELETE("/", projectController.Delete)

	projectRouter.GET("/environments/", projectController.ListEnvironments)
	projectRouter.POST("/environments/", projectController.CreateEnvironment)

	return ProjectRouter{Group: projectRouter}
}
