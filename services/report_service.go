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
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/monitoring"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	reportResourceWait  = 3 * time.Second
	reportRenderTimeout = 10 * time.Second
	// pages beyond this are listed without their test case results
	maxDetailedReportPages = 12
)

//go:embed templates/*.html
var reportTemplates embed.FS

var reportFuncs = template.FuncMap{
	"levels": func() []models.AuditItemLevel { return models.AuditItemLevels },
	"label": func(s any) string {
		// casers are not safe for concurrent use
		return cases.Title(language.English).String(strings.ReplaceAll(fmt.Sprint(s), "_", " "))
	},
	"date": func(t any) string {
		switch v := t.(type) {
		case time.Time:
			return v.Format("2006-01-02")
		case *time.Time:
			if v != nil {
				return v.Format("2006-01-02")
			}
		}
		return "-"
	},
}

type ReportService struct {
	auditRepository           shared.AuditRepository
	systemRepository          shared.SystemRepository
	environmentTestRepository shared.EnvironmentTestRepository
	testCasePageRepository    shared.TestCaseEnvironmentTestPageRepository
	pdfRenderer               shared.PDFRenderer

	templates *template.Template
}

func NewReportService(auditRepository shared.AuditRepository, systemRepository shared.SystemRepository, environmentTestRepository shared.EnvironmentTestRepository, testCasePageRepository shared.TestCaseEnvironmentTestPageRepository, pdfRenderer shared.PDFRenderer) *ReportService {
	return &ReportService{
		auditRepository:           auditRepository,
		systemRepository:          systemRepository,
		environmentTestRepository: environmentTestRepository,
		testCasePageRepository:    testCasePageRepository,
		pdfRenderer:               pdfRenderer,
		templates:                 template.Must(template.New("report").Funcs(reportFuncs).ParseFS(reportTemplates, "templates/*.html")),
	}
}

type auditReportRow struct {
	Num      string                `json:"num"`
	Name     string                `json:"name"`
	Criteria string                `json:"criteriaLevel,omitempty"`
	ItemType string                `json:"itemType"`
	Level    models.AuditItemLevel `json:"level"`
	Remarks  string                `json:"remarks"`
}

type auditReportChapter struct {
	Num  string           `json:"num"`
	Name string           `json:"name"`
	Rows []auditReportRow `json:"rows"`
}

type auditReport struct {
	Audit       models.Audit         `json:"audit"`
	Summary     dtos.AuditSummaryDTO `json:"summary"`
	Chapters    []auditReportChapter `json:"chapters"`
	IsPreview   bool                 `json:"isPreview"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

type testReportPage struct {
	Page    models.EnvironmentPage               `json:"page"`
	Total   int                                  `json:"total"`
	Failed  int                                  `json:"failed"`
	Results []models.TestCaseEnvironmentTestPage `json:"results,omitempty"`
}

type testReport struct {
	Test       models.EnvironmentTest          `json:"test"`
	Statistics map[models.TestCaseStatus]int64 `json:"statistics"`
	Pages      []testReportPage                `json:"pages"`
	// pages listed with counts only
	Summarized  []testReportPage `json:"summarized,omitempty"`
	IsPreview   bool             `json:"isPreview"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// Generate loads the audit or test and renders it in the requested format.
func (s *ReportService) Generate(ctx context.Context, req dtos.ReportRequest) (dtos.Report, error) {
	start := time.Now()
	report, err := s.generate(ctx, req)

	result := "success"
	if err != nil {
		result = "error"
	}
	monitoring.ReportRenderDuration.WithLabelValues(string(req.Format)).Observe(time.Since(start).Seconds())
	monitoring.ReportRenderTotal.WithLabelValues(string(req.Format), result).Inc()

	if err != nil {
		return dtos.Report{}, err
	}
	slog.Info("report generated", "id", req.ID, "type", req.Type, "format", req.Format, "preview", req.IsPreview, "duration", time.Since(start))
	return report, nil
}

func (s *ReportService) generate(ctx context.Context, req dtos.ReportRequest) (dtos.Report, error) {
	var data any
	var name string
	switch req.Type {
	case dtos.ReportTypeAudit:
		audit, err := s.auditReport(ctx, req.ID)
		if err != nil {
			return dtos.Report{}, err
		}
		audit.IsPreview = req.IsPreview
		data = audit
		name = "vpat-" + audit.Audit.Name
	case dtos.ReportTypeTest:
		test, err := s.testReport(ctx, req.ID, req.Format != dtos.ReportFormatJSON)
		if err != nil {
			return dtos.Report{}, err
		}
		test.IsPreview = req.IsPreview
		data = test
		name = "test-" + test.Test.Name
	default:
		return dtos.Report{}, badRequest(fmt.Sprintf("unknown report type %q", req.Type))
	}

	if req.IsPreview {
		name = "preview-" + name
	}
	report := dtos.Report{
		Filename: slug.Make(name) + "." + string(req.Format),
		Inline:   req.IsPreview,
	}

	var err error
	switch req.Format {
	case dtos.ReportFormatJSON:
		report.ContentType = echo.MIMEApplicationJSON
		report.Body, err = json.MarshalIndent(data, "", "  ")
	case dtos.ReportFormatHTML:
		report.ContentType = echo.MIMETextHTMLCharsetUTF8
		report.Body, err = s.renderHTML(string(req.Type), data)
	case dtos.ReportFormatPDF:
		report.ContentType = "application/pdf"
		var html []byte
		if html, err = s.renderHTML(string(req.Type), data); err == nil {
			report.Body, err = s.pdfRenderer.RenderPDF(ctx, html)
		}
	default:
		return dtos.Report{}, badRequest(fmt.Sprintf("unknown report format %q", req.Format))
	}
	if err != nil {
		monitoring.Alert("could not render report", err, "reportID", req.ID, "type", req.Type, "format", req.Format, "preview", req.IsPreview)
		return dtos.Report{}, echo.NewHTTPError(http.StatusInternalServerError, "could not render report").WithInternal(err)
	}
	return report, nil
}

func (s *ReportService) renderHTML(reportType string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, reportType+"_report.html", data); err != nil {
		return nil, fmt.Errorf("could not execute %s template: %w", reportType, err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) auditReport(ctx context.Context, auditID uuid.UUID) (auditReport, error) {
	audit, err := s.auditRepository.ReadWithRelations(auditID)
	if err != nil {
		return auditReport{}, httpError(err, "audit")
	}

	var chapters []models.SystemAuditChapter
	var items []models.AuditItem
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		chapters, err = s.systemRepository.ChaptersWithItems(chapterIDs(audit))
		return err
	})
	group.Go(func() error {
		var err error
		items, err = s.auditRepository.ListItems(audit.ID)
		return err
	})
	if err := group.Wait(); err != nil {
		return auditReport{}, httpError(err, "audit report")
	}

	byKey := make(map[string]models.AuditItem, len(items))
	for _, item := range items {
		byKey[itemKey(item.SystemAuditChapterSectionItemID, item.SystemAuditChapterSectionItemTypeID)] = item
	}

	report := auditReport{
		Audit:       audit,
		Summary:     summarize(audit, chapters, items),
		Chapters:    make([]auditReportChapter, 0, len(chapters)),
		GeneratedAt: time.Now(),
	}
	for _, chapter := range chapters {
		reportChapter := auditReportChapter{Num: chapter.Num, Name: chapter.Name}
		for _, section := range chapter.Sections {
			for _, item := range section.Items {
				if !inScope(audit, item) {
					continue
				}
				for _, t := range item.Types {
					row := auditReportRow{
						Num:      item.Num,
						Name:     item.Name,
						ItemType: t.Name,
						Level:    models.AuditItemLevelNotEvaluated,
					}
					if item.SystemStandardCriteria != nil {
						row.Criteria = item.SystemStandardCriteria.Level
					}
					if stored, ok := byKey[itemKey(item.ID, t.ID)]; ok {
						row.Level = stored.Level
						row.Remarks = stored.Remarks
					}
					reportChapter.Rows = append(reportChapter.Rows, row)
				}
			}
		}
		report.Chapters = append(report.Chapters, reportChapter)
	}
	return report, nil
}

func (s *ReportService) testReport(ctx context.Context, testID uuid.UUID, capDetail bool) (testReport, error) {
	var test models.EnvironmentTest
	var results []models.TestCaseEnvironmentTestPage
	var stats map[models.TestCaseStatus]int64

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		test, err = s.environmentTestRepository.ReadWithPages(testID)
		return err
	})
	group.Go(func() error {
		var err error
		results, err = s.testCasePageRepository.ListByTest(testID, nil, nil)
		return err
	})
	group.Go(func() error {
		var err error
		stats, err = s.testCasePageRepository.CountByStatus(testID)
		return err
	})
	if err := group.Wait(); err != nil {
		return testReport{}, httpError(err, "environment test")
	}

	byPage := utils.GroupBy(results, func(r models.TestCaseEnvironmentTestPage) uuid.UUID { return r.EnvironmentPageID })

	report := testReport{
		Test:        test,
		Statistics:  stats,
		Pages:       make([]testReportPage, 0, min(len(test.Pages), maxDetailedReportPages)),
		GeneratedAt: time.Now(),
	}
	for i, page := range test.Pages {
		pageResults := byPage[page.ID]
		failed := utils.Filter(pageResults, func(r models.TestCaseEnvironmentTestPage) bool {
			return r.Status == models.TestCaseStatusFailed
		})
		entry := testReportPage{
			Page:   page,
			Total:  len(pageResults),
			Failed: len(failed),
		}
		if capDetail && i >= maxDetailedReportPages {
			report.Summarized = append(report.Summarized, entry)
			continue
		}
		entry.Results = pageResults
		report.Pages = append(report.Pages, entry)
	}
	// the page list is part of the report body
	report.Test.Pages = nil
	return report, nil
}
