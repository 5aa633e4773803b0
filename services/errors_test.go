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
	"fmt"
	"net/http"
	"testing"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/statemachine"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func requireHTTPStatus(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code, httpErr.Message)
}

func TestHTTPError(t *testing.T) {
	t.Run("should return nil for nil", func(t *testing.T) {
		assert.NoError(t, httpError(nil, "project"))
	})

	t.Run("should map store errors to status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{gorm.ErrRecordNotFound, http.StatusNotFound},
			{fmt.Errorf("wrapped: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
			{models.ErrInvalidPageTestCombination, http.StatusBadRequest},
			{statemachine.ErrInvalidTransition, http.StatusConflict},
			{fmt.Errorf("chapter x: %w", shared.ErrUnknownReference), http.StatusBadRequest},
			{errors.New("disk full"), http.StatusInternalServerError},
		}
		for _, c := range cases {
			requireHTTPStatus(t, httpError(c.err, "project"), c.code)
		}
	})

	t.Run("should keep the original error as internal error", func(t *testing.T) {
		err := httpError(gorm.ErrRecordNotFound, "project")
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "project not found", httpErr.Message)
		assert.ErrorIs(t, httpErr.Internal, gorm.ErrRecordNotFound)
	})

	t.Run("should pass http errors through", func(t *testing.T) {
		err := badRequest("nope")
		assert.Same(t, err, httpError(err, "project"))
	})
}
