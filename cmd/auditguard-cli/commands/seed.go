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
	"log/slog"

	"github.com/l3montree-dev/auditguard/database"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Synchronize the system tables (standards, audit types, reference lists)",
		Long:  `Writes the embedded reference data into the system tables. Running it twice is harmless.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := database.SyncSystemTables(db); err != nil {
				return err
			}
			slog.Info("system tables synchronized")
			return nil
		},
	}
}
