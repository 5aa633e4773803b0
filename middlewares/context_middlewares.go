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

package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// all middlewares which load an entity by its path parameter and store it inside the request context

func ProjectMiddleware(repository shared.ProjectRepository) shared.MiddlewareFunc {
	return entityMiddleware("projectID", "project", repository.Read, shared.SetProject)
}

func EnvironmentMiddleware(repository shared.EnvironmentRepository) shared.MiddlewareFunc {
	return entityMiddleware("environmentID", "environment", repository.Read, shared.SetEnvironment)
}

func EnvironmentTestMiddleware(repository shared.EnvironmentTestRepository) shared.MiddlewareFunc {
	return entityMiddleware("testID", "environment test", repository.Read, shared.SetEnvironmentTest)
}

// AuditMiddleware loads the audit including its chapters. Item writes and the summary are scoped by them.
func AuditMiddleware(repository shared.AuditRepository) shared.MiddlewareFunc {
	return entityMiddleware("auditID", "audit", repository.ReadWithRelations, shared.SetAudit)
}

func entityMiddleware[T models.Project | models.Environment | models.EnvironmentTest | models.Audit](param, entity string, read func(uuid.UUID) (T, error), set func(shared.Context, T)) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			id, err := uuid.Parse(shared.SanitizeParam(ctx.Param(param)))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s id", entity)).WithInternal(err)
			}

			t, err := read(id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("could not find %s", entity)).WithInternal(err)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("could not load %s", entity)).WithInternal(err)
			}

			set(ctx, t)
			return next(ctx)
		}
	}
}
