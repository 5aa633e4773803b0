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

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/services"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/spf13/cobra"
)

func NewReportCommand() *cobra.Command {
	report := cobra.Command{
		Use:   "report",
		Short: "Render reports",
	}
	report.AddCommand(newReportRenderCommand())
	return &report
}

func newReportRenderCommand() *cobra.Command {
	render := &cobra.Command{
		Use:   "render",
		Short: "Render an audit or environment test report to a file",
		Example: `  # render the vpat of an audit
  auditguard-cli report render --id 5f1c... --type audit --format pdf

  # render the results of a test run as json to stdout
  auditguard-cli report render --id 9a0b... --type test --format json --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawID, _ := cmd.Flags().GetString("id")
			reportType, _ := cmd.Flags().GetString("type")
			format, _ := cmd.Flags().GetString("format")
			preview, _ := cmd.Flags().GetBool("preview")
			out, _ := cmd.Flags().GetString("out")

			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", rawID, err)
			}

			req := dtos.ReportRequest{
				ID:        id,
				Type:      dtos.ReportType(reportType),
				Format:    dtos.ReportFormat(format),
				IsPreview: preview,
			}
			if err := shared.V.Struct(req); err != nil {
				return fmt.Errorf("invalid report request: %w", err)
			}

			db, cfg, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()

			reportService := services.NewReportService(
				repositories.NewAuditRepository(db),
				repositories.NewSystemRepository(db),
				repositories.NewEnvironmentTestRepository(db),
				repositories.NewTestCaseEnvironmentTestPageRepository(db),
				services.NewRodPDFRenderer(cfg),
			)

			sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			sp.Suffix = fmt.Sprintf(" rendering %s report %s", req.Format, req.ID)
			sp.Start()
			report, err := reportService.Generate(context.Background(), req)
			sp.Stop()
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := cmd.OutOrStdout().Write(report.Body)
				return err
			}
			if out == "" {
				out = report.Filename
			}
			if err := os.WriteFile(out, report.Body, 0o644); err != nil {
				return fmt.Errorf("could not write report: %w", err)
			}
			slog.Info("report written", "file", out, "bytes", len(report.Body))
			return nil
		},
	}

	render.Flags().String("id", "", "id of the audit or environment test")
	render.Flags().String("type", string(dtos.ReportTypeAudit), "report type (audit or test)")
	render.Flags().String("format", string(dtos.ReportFormatPDF), "output format (pdf, html or json)")
	render.Flags().Bool("preview", false, "stamp the report as preview")
	render.Flags().StringP("out", "o", "", "output file, - writes to stdout (default is the generated file name)")
	render.MarkFlagRequired("id") // nolint: errcheck

	return render
}
