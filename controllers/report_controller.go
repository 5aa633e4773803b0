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
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
)

type ReportController struct {
	reportService shared.ReportService
}

func NewReportController(reportService shared.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// @Summary Render a report
// @Description renders an audit (vpat) or environment test report. Previews are shown inline and stamped.
// @Param body body dtos.ReportRequest true "Request body"
// @Produce application/pdf
// @Produce text/html
// @Produce application/json
// @Success 200 {file} file
// @Failure 400 {object} dtos.ResultDTO
// @Router /reports [post]
func (c *ReportController) Render(ctx shared.Context) error {
	var req dtos.ReportRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dtos.Failure("unable to process request"))
	}
	if err := shared.V.Struct(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dtos.Failure(fmt.Sprintf("could not validate request: %s", err.Error())))
	}

	report, err := c.reportService.Generate(ctx.Request().Context(), req)
	if err != nil {
		code, message := http.StatusInternalServerError, "could not generate report"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code, message = he.Code, fmt.Sprint(he.Message)
		}
		slog.Error("could not generate report", "id", req.ID, "type", req.Type, "format", req.Format, "err", err)
		return ctx.JSON(code, dtos.Failure(message))
	}

	disposition := "attachment"
	if report.Inline {
		disposition = "inline"
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, report.Filename))
	return ctx.Blob(http.StatusOK, report.ContentType, report.Body)
}
