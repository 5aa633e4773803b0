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

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/auditguard/config"
	"github.com/l3montree-dev/auditguard/middlewares"
	"github.com/l3montree-dev/auditguard/monitoring"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StartedAt is used to report the uptime.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer creates the echo instance and binds its lifetime to the fx application.
func NewServer(lc fx.Lifecycle, cfg config.Config) Server {
	e := middlewares.Server(cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port)
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					monitoring.Alert("http server stopped unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down server")
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
