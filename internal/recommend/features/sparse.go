// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package features

import "math"

// SparseVector stores the non-zero entries of a vector.
// Indices are strictly increasing and Values[i] belongs to Indices[i].
type SparseVector struct {
	Indices []int
	Values  []float64
}

// NNZ returns the number of stored (non-zero) entries.
func (v SparseVector) NNZ() int {
	return len(v.Indices)
}

// At returns the value at dimension idx, 0 when not stored.
func (v SparseVector) At(idx int) float64 {
	lo, hi := 0, len(v.Indices)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case v.Indices[mid] == idx:
			return v.Values[mid]
		case v.Indices[mid] < idx:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// Dot returns the inner product of v and o using a sorted merge.
func (v SparseVector) Dot(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			sum += v.Values[i] * o.Values[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean (L2) norm.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// With returns a copy of v with value appended at idx. idx must be greater
// than every stored index; zero values are not stored.
func (v SparseVector) With(idx int, value float64) SparseVector {
	n := len(v.Indices)
	if value != 0 {
		n++
	}
	out := SparseVector{
		Indices: make([]int, len(v.Indices), n),
		Values:  make([]float64, len(v.Values), n),
	}
	copy(out.Indices, v.Indices)
	copy(out.Values, v.Values)
	if value != 0 {
		out.Indices = append(out.Indices, idx)
		out.Values = append(out.Values, value)
	}
	return out
}

// Dense expands v into a slice of length dim.
func (v SparseVector) Dense(dim int) []float64 {
	out := make([]float64, dim)
	for k, idx := range v.Indices {
		if idx < dim {
			out[idx] = v.Values[k]
		}
	}
	return out
}
