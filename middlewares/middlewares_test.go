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
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/config"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	return Server(config.Config{Environment: "test", AllowedOrigins: []string{"http://localhost:3000"}})
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	message, _ := body["message"].(string)
	return message
}

func TestProjectMiddleware(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)

	e := newTestServer()
	e.GET("/projects/:projectID/", func(ctx shared.Context) error {
		return ctx.String(http.StatusOK, shared.GetProject(ctx).Name)
	}, ProjectMiddleware(repositories.NewProjectRepository(db)))

	t.Run("should load the project into the context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/"+f.Project.ID.String()+"/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Shop", rec.Body.String())
	})

	t.Run("should reply 404 for an unknown project", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/"+uuid.New().String()+"/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "could not find project", decodeMessage(t, rec))
	})

	t.Run("should reply 400 for an invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid project id", decodeMessage(t, rec))
	})
}

func TestEnvironmentTestMiddleware(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)

	e := newTestServer()
	e.GET("/tests/:testID/", func(ctx shared.Context) error {
		return ctx.String(http.StatusOK, shared.GetEnvironmentTest(ctx).Name)
	}, EnvironmentTestMiddleware(repositories.NewEnvironmentTestRepository(db)))

	rec := httptest.NewRecorder()
	// the trailing slash is added by the pre middleware
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tests/"+f.T1.ID.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Initial run", rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	e := newTestServer()
	e.GET("/conflict/", func(ctx shared.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "audit is closed").WithInternal(assert.AnError)
	})
	e.GET("/plain/", func(ctx shared.Context) error {
		return assert.AnError
	})
	e.GET("/panic/", func(ctx shared.Context) error {
		panic("boom")
	})

	t.Run("should format http errors as message and hide the internal error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conflict/", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "audit is closed", decodeMessage(t, rec))
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})

	t.Run("should map plain errors to 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeMessage(t, rec))
	})

	t.Run("should recover from panics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decodeMessage(t, rec))
	})

	t.Run("should reply 404 for unknown routes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", decodeMessage(t, rec))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	e := newTestServer()
	e.GET("/api/v1/audits/:auditID/summary/", func(ctx shared.Context) error {
		return ctx.NoContent(http.StatusOK)
	})
	e.GET(healthRoute, func(ctx shared.Context) error {
		return ctx.NoContent(http.StatusOK)
	})

	t.Run("should log the route and the path ids", func(t *testing.T) {
		buf.Reset()
		id := uuid.New()
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/audits/"+id.String()+"/summary/", nil))

		assert.Contains(t, buf.String(), "route=/api/v1/audits/:auditID/summary/")
		assert.Contains(t, buf.String(), "auditID="+id.String())
		assert.Contains(t, buf.String(), "status=200")
	})

	t.Run("should not log health checks", func(t *testing.T) {
		buf.Reset()
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, healthRoute, nil))
		assert.NotContains(t, buf.String(), "handled request")
	})
}
