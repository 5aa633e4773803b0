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

package repositories

import (
	"github.com/l3montree-dev/auditguard/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewEnvironmentRepository, fx.As(new(shared.EnvironmentRepository)))),
	fx.Provide(fx.Annotate(NewEnvironmentPageRepository, fx.As(new(shared.EnvironmentPageRepository)))),
	fx.Provide(fx.Annotate(NewEnvironmentTestRepository, fx.As(new(shared.EnvironmentTestRepository)))),
	fx.Provide(fx.Annotate(NewTestCaseRepository, fx.As(new(shared.TestCaseRepository)))),
	fx.Provide(fx.Annotate(NewTestCaseEnvironmentTestPageRepository, fx.As(new(shared.TestCaseEnvironmentTestPageRepository)))),
	fx.Provide(fx.Annotate(NewTargetRepository, fx.As(new(shared.TargetRepository)))),
	fx.Provide(fx.Annotate(NewAuditRepository, fx.As(new(shared.AuditRepository)))),
	fx.Provide(fx.Annotate(NewProfileRepository, fx.As(new(shared.ProfileRepository)))),
	fx.Provide(fx.Annotate(NewRemediationRepository, fx.As(new(shared.RemediationRepository)))),
	fx.Provide(fx.Annotate(NewSystemRepository, fx.As(new(shared.SystemRepository)))),
	fx.Provide(fx.Annotate(NewSettingRepository, fx.As(new(shared.SettingRepository)))),
)
