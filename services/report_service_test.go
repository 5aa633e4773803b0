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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/integrationtestutil"
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPDFRenderer struct {
	mock.Mock
}

func (m *mockPDFRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newReportService(db *gorm.DB, renderer *mockPDFRenderer) *ReportService {
	return NewReportService(
		repositories.NewAuditRepository(db),
		repositories.NewSystemRepository(db),
		repositories.NewEnvironmentTestRepository(db),
		repositories.NewTestCaseEnvironmentTestPageRepository(db),
		renderer,
	)
}

func TestAuditReport(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)
	service := newReportService(db, &mockPDFRenderer{})

	audit, err := NewAuditService(repositories.NewAuditRepository(db), repositories.NewSystemRepository(db)).Create(dtos.AuditCreateRequest{
		Name:                     "Shop VPAT",
		ProjectID:                f.Project.ID,
		SystemAuditTypeID:        "vpat",
		SystemAuditTypeVersionID: "vpat-2.5-wcag",
		ConformanceTarget:        models.ConformanceTargetA,
	})
	require.NoError(t, err)
	require.NoError(t, repositories.NewAuditRepository(db).UpsertItems(nil, []models.AuditItem{{
		AuditID:                             audit.ID,
		SystemAuditChapterSectionItemID:     "vpat-wcag-a-1.1.1",
		SystemAuditChapterSectionItemTypeID: "web",
		Level:                               models.AuditItemLevelPartiallySupports,
		Remarks:                             "the logo has no text alternative",
	}}))

	t.Run("should render the rows in scope as json", func(t *testing.T) {
		report, err := service.Generate(context.Background(), dtos.ReportRequest{ID: audit.ID, Type: dtos.ReportTypeAudit, Format: dtos.ReportFormatJSON})
		require.NoError(t, err)
		assert.Equal(t, "vpat-shop-vpat.json", report.Filename)
		assert.False(t, report.Inline)

		var body auditReport
		require.NoError(t, json.Unmarshal(report.Body, &body))
		require.Len(t, body.Chapters, 1)
		// level A only, four item types per criteria
		assert.Len(t, body.Chapters[0].Rows, 120)
		row, ok := utils.Find(body.Chapters[0].Rows, func(r auditReportRow) bool { return r.Level != models.AuditItemLevelNotEvaluated })
		require.True(t, ok)
		assert.Equal(t, "1.1.1", row.Num)
		assert.Equal(t, models.AuditItemLevelPartiallySupports, row.Level)
		assert.Equal(t, "the logo has no text alternative", row.Remarks)
		assert.Equal(t, 119, body.Summary.Levels[models.AuditItemLevelNotEvaluated])
	})

	t.Run("should stamp previews", func(t *testing.T) {
		report, err := service.Generate(context.Background(), dtos.ReportRequest{ID: audit.ID, Type: dtos.ReportTypeAudit, Format: dtos.ReportFormatHTML, IsPreview: true})
		require.NoError(t, err)
		assert.True(t, report.Inline)
		assert.Equal(t, "preview-vpat-shop-vpat.html", report.Filename)
		assert.Contains(t, string(report.Body), "PREVIEW")
		assert.Contains(t, string(report.Body), "the logo has no text alternative")

		report, err = service.Generate(context.Background(), dtos.ReportRequest{ID: audit.ID, Type: dtos.ReportTypeAudit, Format: dtos.ReportFormatHTML})
		require.NoError(t, err)
		assert.NotContains(t, string(report.Body), "PREVIEW")
	})

	t.Run("should return 404 for unknown audits", func(t *testing.T) {
		_, err := service.Generate(context.Background(), dtos.ReportRequest{ID: uuid.New(), Type: dtos.ReportTypeAudit, Format: dtos.ReportFormatJSON})
		requireHTTPStatus(t, err, http.StatusNotFound)
	})
}

func TestTestReport(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	f := integrationtestutil.CreateFixtures(t, db)
	renderer := &mockPDFRenderer{}
	service := newReportService(db, renderer)

	for i := range 13 {
		page := models.EnvironmentPage{Name: fmt.Sprintf("Product %d", i), URL: fmt.Sprintf("https://shop.example.com/products/%d", i), EnvironmentID: f.Environment.ID}
		require.NoError(t, db.Create(&page).Error)
		require.NoError(t, db.Create(&models.EnvironmentTestPage{EnvironmentTestID: f.T1.ID, EnvironmentPageID: page.ID}).Error)
	}
	require.NoError(t, db.Create(&models.TestCaseEnvironmentTestPage{TestCaseID: f.TC1.ID, EnvironmentPageID: f.P1.ID, EnvironmentTestID: f.T1.ID, Status: models.TestCaseStatusFailed}).Error)

	t.Run("should cap the detailed pages", func(t *testing.T) {
		report, err := service.testReport(context.Background(), f.T1.ID, true)
		require.NoError(t, err)
		assert.Len(t, report.Pages, maxDetailedReportPages)
		assert.Len(t, report.Summarized, 2)
		assert.Equal(t, int64(1), report.Statistics[models.TestCaseStatusFailed])
		assert.Equal(t, 1, report.Pages[0].Failed)

		report, err = service.testReport(context.Background(), f.T1.ID, false)
		require.NoError(t, err)
		assert.Len(t, report.Pages, 14)
		assert.Empty(t, report.Summarized)
	})

	t.Run("should print the html to pdf", func(t *testing.T) {
		renderer.On("RenderPDF", mock.Anything, mock.MatchedBy(func(html []byte) bool {
			return bytes.Contains(html, []byte("<h1>Initial run</h1>"))
		})).Return([]byte("%PDF-1.7"), nil).Once()

		report, err := service.Generate(context.Background(), dtos.ReportRequest{ID: f.T1.ID, Type: dtos.ReportTypeTest, Format: dtos.ReportFormatPDF})
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", report.ContentType)
		assert.Equal(t, "test-initial-run.pdf", report.Filename)
		assert.Equal(t, []byte("%PDF-1.7"), report.Body)
		renderer.AssertExpectations(t)
	})

	t.Run("should fail when the browser fails", func(t *testing.T) {
		renderer.On("RenderPDF", mock.Anything, mock.Anything).Return(nil, errors.New("no chromium")).Once()

		_, err := service.Generate(context.Background(), dtos.ReportRequest{ID: f.T1.ID, Type: dtos.ReportTypeTest, Format: dtos.ReportFormatPDF})
		requireHTTPStatus(t, err, http.StatusInternalServerError)
	})
}

func TestReportLabel(t *testing.T) {
	label := reportFuncs["label"].(func(any) string)
	assert.Equal(t, "Partially Supports", label(models.AuditItemLevelPartiallySupports))
	assert.Equal(t, "In Progress", label(models.TestCaseStatusInProgress))
	assert.Equal(t, "Structured", label("STRUCTURED"))
}
