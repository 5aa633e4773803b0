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

type AuditRouter struct {
	*echo.Group
}

func NewAuditRouter(
	apiV1Router APIV1Router,
	auditController *controllers.AuditController,
	profileController *controllers.ProfileController,
	auditRepository shared.AuditRepository,
) AuditRouter {
	apiV1Router.Group.GET("/audits/", auditController.List)
	apiV1Router.Group.POST("/audits/", auditController.Create)

	auditRouter := apiV1Router.Group.Group("/audits/:auditID", middlewares.AuditMiddleware(auditRepository))
	auditRouter.GET("/", auditController.Read)
	auditRouter.PATCH("/", auditController.Update)
	auditRouter.DELETE("/", auditController.Delete)
	auditRouter.PUT("/status/", auditController.Status)
	auditRouter.PUT("/items/", auditController.UpsertItems)
	auditRouter.GET("/summary/", auditController.Summary)

	profileRouter := apiV1Router.Group.Group("/profiles")
	profileRouter.GET("/", profileController.List)
	profileRouter.POST("/", profileController.Create)
	profileRouter.PUT("/:profileID/", profileController.Update)
	profileRouter.DELETE("/:profileID/", profileController.Delete)

	return AuditRouter{Group: auditRouter}
}
