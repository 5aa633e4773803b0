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

package services

import (
	"errors"
	"net/http"

	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/statemachine"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// httpError maps store errors to a user facing error. The original error stays available as internal error.
func httpError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found").WithInternal(err)
	case errors.Is(err, models.ErrInvalidPageTestCombination):
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidPageTestCombination.Error()).WithInternal(err)
	case errors.Is(err, statemachine.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error()).WithInternal(err)
	case database.IsDuplicateKeyError(err):
		return echo.NewHTTPError(http.StatusConflict, entity+" already exists").WithInternal(err)
	case errors.Is(err, shared.ErrUnknownReference), database.IsForeignKeyError(err):
		return echo.NewHTTPError(http.StatusBadRequest, "unknown reference").WithInternal(err)
	case database.IsCheckConstraintError(err):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid value").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "could not process "+entity).WithInternal(err)
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
