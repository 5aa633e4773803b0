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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSlices(t *testing.T) {
	t.Run("should split both slices by key", func(t *testing.T) {
		res := CompareSlices([]string{"a", "b", "c"}, []string{"b", "c", "d"}, func(s string) string { return s })

		assert.Equal(t, []string{"a"}, res.OnlyInA)
		assert.Equal(t, []string{"d"}, res.OnlyInB)
		assert.Equal(t, []string{"b", "c"}, res.InBoth)
	})

	t.Run("should handle empty slices", func(t *testing.T) {
		res := CompareSlices(nil, []int{1}, func(i int) int { return i })

		assert.Empty(t, res.OnlyInA)
		assert.Equal(t, []int{1}, res.OnlyInB)
		assert.Empty(t, res.InBoth)
	})
}

func TestUniqBy(t *testing.T) {
	type row struct {
		id   string
		name string
	}
	rows := []row{{"1", "a"}, {"2", "b"}, {"1", "c"}}

	res := UniqBy(rows, func(r row) string { return r.id })

	assert.Equal(t, []row{{"1", "a"}, {"2", "b"}}, res)
}

func TestGroupBy(t *testing.T) {
	res := GroupBy([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 0 })

	assert.Equal(t, []int{2, 4}, res[true])
	assert.Equal(t, []int{1, 3, 5}, res[false])
}

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil("  "))
	assert.Equal(t, "x", *EmptyThenNil("x"))
}

func TestCompareNum(t *testing.T) {
	assert.Equal(t, -1, CompareNum("1.4.2", "1.4.10"))
	assert.Equal(t, 1, CompareNum("2", "1.4.10"))
	assert.Equal(t, 0, CompareNum("302.1", "302.1"))
	assert.Equal(t, -1, CompareNum("1.4", "1.4.1"))
}
