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
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/auditguard/cmd/auditguard/api"
	"github.com/l3montree-dev/auditguard/config"
	"github.com/l3montree-dev/auditguard/controllers"
	"github.com/l3montree-dev/auditguard/database"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server,
	db shared.DB,
	pool *pgxpool.Pool,
	cfg config.Config,
	reportController *controllers.ReportController,
	systemController *controllers.SystemController,
) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, info(db, pool, cfg))
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	apiV1Router.POST("/reports/", reportController.Render)

	apiV1Router.GET("/system/:table/", systemController.List)
	apiV1Router.POST("/system/sync/", systemController.Sync)

	apiV1Router.GET("/settings/", systemController.Settings)
	apiV1Router.GET("/settings/:key/", systemController.ReadSetting)
	apiV1Router.PUT("/settings/:key/", systemController.SetSetting)
	apiV1Router.DELETE("/settings/:key/", systemController.DeleteSetting)

	return APIV1Router{Group: apiV1Router}
}

func info(db shared.DB, pool *pgxpool.Pool, cfg config.Config) InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			Branch:    config.Branch,
			BuildDate: config.BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Mem: MemStats{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapAlloc:  mem.HeapAlloc,
			},
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
		},
	}

	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	dbInfo := DatabaseInfo{Driver: db.Name(), Status: "unknown"}
	sqlDB, err := db.DB()
	if err != nil {
		errMsg := "failed to get database instance"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		resp.Database = dbInfo
		return resp
	}
	if err := sqlDB.Ping(); err != nil {
		errMsg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		resp.Database = dbInfo
		return resp
	}
	dbInfo.Status = "healthy"

	if pool != nil {
		poolCfg := database.PoolConfigFromConfig(cfg.Database)
		stats := pool.Stat()
		dbInfo.OpenConnections = int(stats.TotalConns())
		dbInfo.InUse = int(stats.AcquiredConns())
		dbInfo.Idle = int(stats.IdleConns())
		dbInfo.MaxOpenConnections = int(stats.MaxConns())
		dbInfo.Pool = &PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
			TotalConns:      int(stats.TotalConns()),
			IdleConns:       int(stats.IdleConns()),
			AcquiredConns:   int(stats.AcquiredConns()),
			MaxConns:        int(stats.MaxConns()),
		}
	} else {
		dbInfo.DBStats = sqlDB.Stats()
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		dbInfo.MigrationVersion = &ver
		dbInfo.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		dbInfo.MigrationError = &errStr
	}

	resp.Database = dbInfo
	return resp
}
