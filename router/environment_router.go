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

type EnvironmentRouter struct {
	*echo.Group
}

func NewEnvironmentRouter(
	apiV1Router APIV1Router,
	environmentController *controllers.EnvironmentController,
	environmentRepository shared.EnvironmentRepository,
) EnvironmentRouter {
	environmentRouter := apiV1Router.Group.Group("/environments/:environmentID", middlewares.EnvironmentMiddleware(environmentRepository))
	environmentRouter.GET("/", environmentController.Read)
	environmentRouter.PATCH("/", environmentController.Update)
	environmentRouter.DELETE("/", environmentController.Delete)

	environmentRouter.GET("/pages/", environmentController.PageTree)
	environmentRouter.POST("/pages/", environmentController.CreatePage)
	environmentRouter.PATCH("/pages/:pageID/", environmentController.MovePage)
	environmentRouter.DELETE("/pages/:pageID/", environmentController.DeletePage)

	environmentRouter.GET("/tests/", environmentController.ListTests)
	environmentRouter.POST("/tests/", environmentController.CreateTest)

	return EnvironmentRouter{Group: environmentRouter}
}
