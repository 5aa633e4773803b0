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

package shared

import (
	"github.com/l3montree-dev/auditguard/database/models"
)

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetEnvironment(ctx Context, environment models.Environment) {
	ctx.Set("environment", environment)
}

func GetEnvironment(ctx Context) models.Environment {
	return ctx.Get("environment").(models.Environment)
}

func SetEnvironmentTest(ctx Context, test models.EnvironmentTest) {
	ctx.Set("environmentTest", test)
}

func GetEnvironmentTest(ctx Context) models.EnvironmentTest {
	return ctx.Get("environmentTest").(models.EnvironmentTest)
}

func SetAudit(ctx Context, audit models.Audit) {
	ctx.Set("audit", audit)
}

func GetAudit(ctx Context) models.Audit {
	return ctx.Get("audit").(models.Audit)
}
