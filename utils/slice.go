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

import "slices"

func Filter[T any](s []T, f func(T) bool) []T {
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

func Map[T, U any](s []T, f func(T) U) []U {
	r := make([]U, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}

func Find[T any](s []T, f func(T) bool) (T, bool) {
	for _, v := range s {
		if f(v) {
			return v, true
		}
	}
	var t T
	return t, false
}

func UniqBy[T any, K comparable](s []T, f func(T) K) []T {
	seen := make(map[K]bool)
	res := make([]T, 0, len(s))
	for _, v := range s {
		k := f(v)
		if !seen[k] {
			seen[k] = true
			res = append(res, v)
		}
	}
	return res
}

func Uniq[T comparable](s []T) []T {
	return UniqBy(s, func(t T) T { return t })
}

func Contains[T comparable](s []T, el T) bool {
	return slices.Contains(s, el)
}

// GroupBy keeps the order of first appearance inside each group.
func GroupBy[T any, K comparable](s []T, f func(T) K) map[K][]T {
	res := make(map[K][]T)
	for _, v := range s {
		k := f(v)
		res[k] = append(res[k], v)
	}
	return res
}

type CompareResult[T any] struct {
	OnlyInA []T
	OnlyInB []T
	InBoth  []T
}

// CompareSlices splits a and b by the key returned from serializer.
func CompareSlices[T any, K comparable](a, b []T, serializer func(T) K) CompareResult[T] {
	res := CompareResult[T]{}
	inA := make(map[K]bool, len(a))
	inB := make(map[K]bool, len(b))

	for _, v := range b {
		inB[serializer(v)] = true
	}

	for _, v := range a {
		k := serializer(v)
		inA[k] = true
		if inB[k] {
			res.InBoth = append(res.InBoth, v)
		} else {
			res.OnlyInA = append(res.OnlyInA, v)
		}
	}

	for _, v := range b {
		if !inA[serializer(v)] {
			res.OnlyInB = append(res.OnlyInB, v)
		}
	}

	return res
}
