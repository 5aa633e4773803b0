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
	"github.com/labstack/echo/v4"
)

type TestCaseRouter struct {
	*echo.Group
}

func NewTestCaseRouter(
	apiV1Router APIV1Router,
	testCaseController *controllers.TestCaseController,
	targetController *controllers.TargetController,
	remediationController *controllers.RemediationController,
) TestCaseRouter {
	testCaseRouter := apiV1Router.Group.Group("/test-cases")
	testCaseRouter.GET("/", testCaseController.List)
	testCaseRouter.POST("/", testCaseController.Create)
	testCaseRouter.GET("/:testCaseID/", testCaseController.Read)
	testCaseRouter.PATCH("/:testCaseID/", testCaseController.Update)
	testCaseRouter.DELETE("/:testCaseID/", testCaseController.Delete)
	testCaseRouter.GET("/:testCaseID/remediations/", testCaseController.Remediations)

	testCasePageRouter := apiV1Router.Group.Group("/test-case-pages/:pageID")
	testCasePageRouter.GET("/", testCaseController.ReadPage)
	testCasePageRouter.PATCH("/", testCaseController.UpdatePageStatus)
	testCasePageRouter.DELETE("/", testCaseController.DeletePage)
	testCasePageRouter.GET("/targets/", targetController.List)
	testCasePageRouter.POST("/targets/", targetController.Add)

	targetRouter := apiV1Router.Group.Group("/targets/:targetID")
	targetRouter.GET("/", targetController.Read)
	targetRouter.DELETE("/", targetController.Delete)
	targetRouter.POST("/relations/", targetController.Relate)
	targetRouter.DELETE("/relations/:relatedTargetID/", targetController.Unrelate)

	remediationRouter := apiV1Router.Group.Group("/remediations")
	remediationRouter.GET("/", remediationController.List)
	remediationRouter.POST("/", remediationController.Create)
	remediationRouter.GET("/:remediationID/", remediationController.Read)
	remediationRouter.PATCH("/:remediationID/", remediationController.Update)
	remediationRouter.DELETE("/:remediationID/", remediationController.Delete)
	remediationRouter.POST("/:remediationID/links/", remediationController.Link)
	remediationRouter.DELETE("/:remediationID/links/", remediationController.Unlink)

	return TestCaseRouter{Group: testCaseRouter}
}
