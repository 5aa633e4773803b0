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
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/database/repositories"
	"github.com/l3montree-dev/auditguard/services"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/spf13/cobra"
)

func NewProjectsCommand() *cobra.Command {
	projects := cobra.Command{
		Use:   "projects",
		Short: "Inspect projects",
	}
	projects.AddCommand(newProjectsListCommand())
	return &projects
}

func newProjectsListCommand() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			page, _ := cmd.Flags().GetInt("page")
			pageSize, _ := cmd.Flags().GetInt("pageSize")

			db, _, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()

			projectService := services.NewProjectService(repositories.NewProjectRepository(db))
			paged, err := projectService.ListPaged(shared.PageInfo{Page: max(page, 1), PageSize: max(pageSize, 1)}, search)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderProjects(paged))
			return nil
		},
	}

	list.Flags().String("search", "", "filter by name or description")
	list.Flags().Int("page", 1, "page")
	list.Flags().Int("pageSize", 50, "page size")
	return list
}

func renderProjects(paged shared.Paged[models.Project]) string {
	tw := table.NewWriter()
	tw.SetAllowedRowLength(130)
	tw.AppendHeader(table.Row{"ID", "Name", "Description", "Technologies", "Created"})
	tw.AppendRows(utils.Map(paged.Data, func(p models.Project) table.Row {
		technologies := utils.Map(p.Technologies, func(t models.SystemTechnology) string { return t.Name })
		return table.Row{
			text.FgBlue.Sprint(p.ID.String()),
			p.Name,
			text.WrapText(p.Description, 40),
			strings.Join(technologies, ", "),
			p.CreatedAt.Format("2006-01-02"),
		}
	}))
	tw.AppendFooter(table.Row{"", "", "", "Total", paged.Total})
	return tw.Render()
}
