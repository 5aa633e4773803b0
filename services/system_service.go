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
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/labstack/echo/v4"
)

type SystemService struct {
	systemRepository shared.SystemRepository
	// reference tables only change on sync. The ttl covers a sync run by the cli.
	cache *expirable.LRU[string, any]
}

func NewSystemService(systemRepository shared.SystemRepository) *SystemService {
	return &SystemService{
		systemRepository: systemRepository,
		cache:            expirable.NewLRU[string, any](16, nil, 10*time.Minute),
	}
}

// List returns the rows of a reference table. The table is addressed by its url name.
func (s *SystemService) List(table string) (any, error) {
	if rows, ok := s.cache.Get(table); ok {
		return rows, nil
	}

	var rows any
	var err error
	switch table {
	case "standards":
		rows, err = s.systemRepository.Standards()
	case "audit-types":
		rows, err = s.systemRepository.AuditTypes()
	case "item-types":
		rows, err = s.systemRepository.ItemTypes()
	case "categories":
		rows, err = s.systemRepository.Categories()
	case "countries":
		rows, err = s.systemRepository.Countries()
	case "technologies":
		rows, err = s.systemRepository.Technologies()
	case "landmarks":
		rows, err = s.systemRepository.Landmarks()
	default:
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown system table "+table)
	}
	if err != nil {
		return nil, httpError(err, table)
	}
	s.cache.Add(table, rows)
	return rows, nil
}

func (s *SystemService) Sync() error {
	if err := s.systemRepository.Sync(); err != nil {
		slog.Error("could not sync system tables", "err", err)
		return httpError(err, "system tables")
	}
	s.cache.Purge()
	return nil
}
