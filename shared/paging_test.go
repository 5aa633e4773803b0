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
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should default to the first page with 10 items", func(t *testing.T) {
		pageInfo := GetPageInfo(newContext("/projects"))
		assert.Equal(t, PageInfo{Page: 1, PageSize: 10}, pageInfo)
	})

	t.Run("should cap the page size at 100", func(t *testing.T) {
		pageInfo := GetPageInfo(newContext("/projects?page=3&pageSize=500"))
		assert.Equal(t, PageInfo{Page: 3, PageSize: 100}, pageInfo)
	})

	t.Run("should fix negative values", func(t *testing.T) {
		pageInfo := GetPageInfo(newContext("/projects?page=-1&pageSize=-5"))
		assert.Equal(t, PageInfo{Page: 1, PageSize: 10}, pageInfo)
	})
}

func TestGetFilterQuery(t *testing.T) {
	t.Run("should parse field and operator", func(t *testing.T) {
		filters := GetFilterQuery(newContext("/x?filterQuery%5Bstatus%5D%5Bis%5D=FAILED"))

		assert.Len(t, filters, 1)
		assert.Equal(t, "status", filters[0].Field())
		assert.Equal(t, `"status" = ?`, filters[0].SQL())
		assert.Equal(t, "FAILED", filters[0].Value())
	})

	t.Run("should ignore malformed keys and unsafe field names", func(t *testing.T) {
		filters := GetFilterQuery(newContext("/x?filterQuery%5Bstatus%5D=1&filterQuery%5Bname;drop%5D%5Bis%5D=1"))
		assert.Empty(t, filters)
	})

	t.Run("should wrap like values", func(t *testing.T) {
		f := NewFilterQuery("name", "like", "shop")
		assert.Equal(t, `"name" LIKE ?`, f.SQL())
		assert.Equal(t, "%shop%", f.Value())
	})
}

func TestGetSortQuery(t *testing.T) {
	sorts := GetSortQuery(newContext("/x?sort%5Bcreated_at%5D=desc"))

	assert.Len(t, sorts, 1)
	assert.Equal(t, `"created_at" desc NULLS LAST`, sorts[0].SQL())
}

func TestNewPaged(t *testing.T) {
	paged := NewPaged[string](PageInfo{Page: 1, PageSize: 10}, 0, nil)
	assert.NotNil(t, paged.Data)
	assert.Empty(t, paged.Data)
}
