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

type EnvironmentTestRouter struct {
	*echo.Group
}

func NewEnvironmentTestRouter(
	apiV1Router APIV1Router,
	environmentTestController *controllers.EnvironmentTestController,
	testCaseController *controllers.TestCaseController,
	environmentTestRepository shared.EnvironmentTestRepository,
) EnvironmentTestRouter {
	testRouter := apiV1Router.Group.Group("/tests/:testID", middlewares.EnvironmentTestMiddleware(environmentTestRepository))
	testRouter.GET("/", environmentTestController.Read)
	testRouter.DELETE("/", environmentTestController.Delete)
	testRouter.POST("/finish/", environmentTestController.Finish)
	testRouter.POST("/pages/", environmentTestController.LinkPages)
	testRouter.DELETE("/pages/", environmentTestController.UnlinkPages)

	testRouter.GET("/statistics/", testCaseController.Statistics)
	testRouter.GET("/test-case-pages/", testCaseController.ListPages)
	testRouter.POST("/test-case-pages/", testCaseController.CreatePage)
	testRouter.POST("/test-case-pages/bulk/", testCaseController.BulkCreatePages)

	return EnvironmentTestRouter{Group: testRouter}
}
