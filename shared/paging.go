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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/l3montree-dev/auditguard/utils"
)

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	if data == nil {
		data = []T{}
	}
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

func GetSearchQuery(ctx Context) string {
	return strings.TrimSpace(ctx.QueryParam("search"))
}

type FilterQuery struct {
	field    string
	value    string
	operator string
}

func NewFilterQuery(field, operator, value string) FilterQuery {
	return FilterQuery{field: field, operator: operator, value: value}
}

// filterKeyRegex matches keys like filterQuery[status][is]
var filterKeyRegex = regexp.MustCompile(`^filterQuery\[([^\]]+)\]\[([^\]]+)\]$`)

// GetFilterQuery reads all filterQuery[field][operator]=value params. Malformed keys are ignored.
func GetFilterQuery(ctx Context) []FilterQuery {
	query := ctx.QueryParams()
	filterQuerys := []FilterQuery{}
	for key := range query {
		m := filterKeyRegex.FindStringSubmatch(key)
		if m == nil || !validFieldNameRegex.MatchString(m[1]) {
			continue
		}
		filterQuerys = append(filterQuerys, FilterQuery{
			field:    m[1],
			operator: m[2],
			value:    query.Get(key),
		})
	}
	return filterQuerys
}

func (f FilterQuery) Field() string {
	return f.field
}

type SortQuery struct {
	Field    string
	Operator string
}

var sortKeyRegex = regexp.MustCompile(`^sort\[([^\]]+)\]$`)

func GetSortQuery(ctx Context) []SortQuery {
	query := ctx.QueryParams()
	sortQuerys := []SortQuery{}
	for key := range query {
		m := sortKeyRegex.FindStringSubmatch(key)
		if m == nil || !validFieldNameRegex.MatchString(m[1]) {
			continue
		}
		sortQuerys = append(sortQuerys, SortQuery{
			Field:    m[1],
			Operator: query.Get(key),
		})
	}
	return sortQuerys
}

func quoteFields(field string) string {
	split := strings.Split(field, ".")
	quotedSplits := utils.Map(
		split,
		func(s string) string {
			return fmt.Sprintf(`"%s"`, s)
		},
	)

	return strings.Join(quotedSplits, ".")
}

var validFieldNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.]+$")

func sanitizeField(field string) string {
	if !validFieldNameRegex.MatchString(field) {
		panic("invalid field name - to risky, might be sql injection")
	}

	return quoteFields(field)
}

func (f FilterQuery) SQL() string {
	field := sanitizeField(f.field)

	switch f.operator {
	case "is not":
		return field + " != ?"
	case "is greater than", "is after":
		return field + " > ?"
	case "is less than", "is before":
		return field + " < ?"
	case "like":
		return field + " LIKE ?"
	default:
		return field + " = ?"
	}
}

func (f FilterQuery) Value() any {
	switch f.operator {
	case "like":
		return "%" + f.value + "%"
	default:
		return f.value
	}
}

func (s SortQuery) SQL() string {
	field := sanitizeField(s.Field)

	switch s.Operator {
	case "desc":
		return field + " desc NULLS LAST"
	default:
		return field + " asc NULLS LAST"
	}
}

// ApplyFilters restricts filters and sorts to the allowed columns and applies them on db.
func ApplyFilters(db DB, allowed []string, filters []FilterQuery, sorts []SortQuery) DB {
	for _, f := range filters {
		if utils.Contains(allowed, f.field) {
			db = db.Where(f.SQL(), f.Value())
		}
	}
	for _, s := range sorts {
		if utils.Contains(allowed, s.Field) {
			db = db.Order(s.SQL())
		}
	}
	return db
}
