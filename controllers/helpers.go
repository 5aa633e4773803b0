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
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
)

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

// confirmDeletion enforces the confirmation checkbox of destructive operations.
func confirmDeletion(ctx shared.Context) error {
	var req dtos.ConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if !req.Confirm {
		return echo.NewHTTPError(http.StatusBadRequest, "the deletion has to be confirmed")
	}
	return nil
}

func uuidParam(ctx shared.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(shared.SanitizeParam(ctx.Param(name)))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name)).WithInternal(err)
	}
	return id, nil
}

func stringParam(ctx shared.Context, name string) (string, error) {
	value := shared.SanitizeParam(ctx.Param(name))
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is required", name))
	}
	return value, nil
}
