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
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Generate(ctx context.Context, req dtos.ReportRequest) (dtos.Report, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dtos.Report), args.Error(1)
}

func TestReportController(t *testing.T) {
	id := uuid.New()

	t.Run("should send previews inline", func(t *testing.T) {
		service := &mockReportService{}
		service.On("Generate", mock.Anything, dtos.ReportRequest{ID: id, Type: dtos.ReportTypeAudit, Format: dtos.ReportFormatHTML, IsPreview: true}).
			Return(dtos.Report{Filename: "preview-vpat-shop.html", ContentType: echo.MIMETextHTMLCharsetUTF8, Body: []byte("<html></html>"), Inline: true}, nil)

		ctx, rec := newContext(t, http.MethodPost, map[string]any{"id": id, "type": "audit", "format": "html", "is_preview": true})
		require.NoError(t, NewReportController(service).Render(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `inline; filename="preview-vpat-shop.html"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "<html></html>", rec.Body.String())
		service.AssertExpectations(t)
	})

	t.Run("should send reports as attachment", func(t *testing.T) {
		service := &mockReportService{}
		service.On("Generate", mock.Anything, mock.Anything).
			Return(dtos.Report{Filename: "vpat-shop.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.4")}, nil)

		ctx, rec := newContext(t, http.MethodPost, map[string]any{"id": id, "type": "audit", "format": "pdf"})
		require.NoError(t, NewReportController(service).Render(ctx))

		assert.Equal(t, `attachment; filename="vpat-shop.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("should reply with a failure result", func(t *testing.T) {
		service := &mockReportService{}
		service.On("Generate", mock.Anything, mock.Anything).
			Return(dtos.Report{}, echo.NewHTTPError(http.StatusNotFound, "audit not found"))

		ctx, rec := newContext(t, http.MethodPost, map[string]any{"id": id, "type": "audit", "format": "json"})
		require.NoError(t, NewReportController(service).Render(ctx))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, dtos.Failure("audit not found"), decode[dtos.ResultDTO](t, rec))
	})

	t.Run("should reject an unknown format without calling the service", func(t *testing.T) {
		service := &mockReportService{}

		ctx, rec := newContext(t, http.MethodPost, map[string]any{"id": id, "type": "audit", "format": "docx"})
		require.NoError(t, NewReportController(service).Render(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decode[dtos.ResultDTO](t, rec).Success)
		service.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})
}
