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

package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/auditguard/cmd/auditguard/api"
	"github.com/l3montree-dev/auditguard/config"
	"github.com/l3montree-dev/auditguard/controllers"
	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/router"
	"github.com/l3montree-dev/auditguard/services"
	"github.com/l3montree-dev/auditguard/shared"
	"go.uber.org/fx"
)

//	@title			auditguard API
//	@version		v1
//	@description	accessibility audits, test runs and remediations

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	cfg, err := shared.LoadConfig()
	shared.InitLogger()
	if err != nil {
		slog.Error("could not load config", "err", err)
		panic(err)
	}

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, pool, err := database.NewConnection(cfg.Database)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}

		if err := database.SyncSystemTables(db); err != nil {
			slog.Error("failed to sync system tables", "error", err)
			panic(errors.New("Failed to sync system tables"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(ProjectRouter router.ProjectRouter) {}),
		fx.Invoke(func(EnvironmentRouter router.EnvironmentRouter) {}),
		fx.Invoke(func(EnvironmentTestRouter router.EnvironmentTestRouter) {}),
		fx.Invoke(func(TestCaseRouter router.TestCaseRouter) {}),
		fx.Invoke(func(AuditRouter router.AuditRouter) {}),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.StopHook(func() {
				closeDatabase(db, pool)
			}))
		}),
	).Run()
}

func closeDatabase(db shared.DB, pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("could not close database", "err", err)
		}
	}
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: cfg.Environment == "dev",

		AttachStacktrace: true,

		// no personally identifiable information is sent
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
