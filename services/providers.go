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
	"github.com/l3montree-dev/auditguard/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
	fx.Provide(fx.Annotate(NewEnvironmentService, fx.As(new(shared.EnvironmentService)))),
	fx.Provide(fx.Annotate(NewTestCaseService, fx.As(new(shared.TestCaseService)))),
	fx.Provide(fx.Annotate(NewTargetService, fx.As(new(shared.TargetService)))),
	fx.Provide(fx.Annotate(NewAuditService, fx.As(new(shared.AuditService)))),
	fx.Provide(fx.Annotate(NewProfileService, fx.As(new(shared.ProfileService)))),
	fx.Provide(fx.Annotate(NewRemediationService, fx.As(new(shared.RemediationService)))),
	fx.Provide(fx.Annotate(NewSystemService, fx.As(new(shared.SystemService)))),
	fx.Provide(fx.Annotate(NewSettingsService, fx.As(new(shared.SettingsService)))),
	fx.Provide(fx.Annotate(NewRodPDFRenderer, fx.As(new(shared.PDFRenderer)))),
	fx.Provide(fx.Annotate(NewReportService, fx.As(new(shared.ReportService)))),
)
