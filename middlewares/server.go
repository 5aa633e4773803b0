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
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/auditguard/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
			// the report endpoint sets the file name in this header
			ExposeHeaders: []string{echo.HeaderContentDisposition},
		},
	))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = ErrorHandler(e)
}

// ErrorHandler logs the error and replies with {"message": ...}.
// The internal error of an echo.HTTPError is logged but never sent to the client.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		var message any = http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = he.Message
		}

		// do the logging straight inside the error handler
		// this keeps controller methods clean
		if code >= http.StatusInternalServerError {
			slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", code)
		} else {
			slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", code)
		}

		if ctx.Response().Committed {
			return
		}

		switch m := message.(type) {
		case string:
			if e.Debug {
				message = echo.Map{"message": m, "error": err.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		case json.Marshaler:
			// do nothing - this type knows how to format itself to JSON
		case error:
			message = echo.Map{"message": m.Error()}
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}
		if err := ctx.JSON(code, message); err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

func Server(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	e.Debug = cfg.Environment == "dev"
	registerMiddlewares(e, cfg)
	return e
}
