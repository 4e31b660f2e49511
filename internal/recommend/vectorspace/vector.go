// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package vectorspace

import "math"

// Vector is a sparse, nonnegative row of the document matrix. Indices are
// strictly increasing column positions; Values holds the matching weights.
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Len returns the number of stored (nonzero) entries.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	var s float64
	for _, x := range v.Values {
		s += x * x
	}
	return math.Sqrt(s)
}

// Dot returns the inner product with a dense vector. Indices beyond the
// dense length contribute nothing.
func (v Vector) Dot(dense []float64) float64 {
	var s float64
	for k, j := range v.Indices {
		if j < len(dense) {
			s += v.Values[k] * dense[j]
		}
	}
	return s
}

// AddScaled adds w*v into dense in place.
func (v Vector) AddScaled(dense []float64, w float64) {
	for k, j := range v.Indices {
		if j < len(dense) {
			dense[j] += w * v.Values[k]
		}
	}
}

// Dense expands the vector to a dense slice of length dim.
func (v Vector) Dense(dim int) []float64 {
	out := make([]float64, dim)
	v.AddScaled(out, 1)
	return out
}

// Get returns the weight at column j.
func (v Vector) Get(j int) float64 {
	lo, hi := 0, len(v.Indices)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case v.Indices[mid] == j:
			return v.Values[mid]
		case v.Indices[mid] < j:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// normalize scales the values to unit length. Zero vectors are unchanged.
func (v Vector) normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	for k := range v.Values {
		v.Values[k] /= n
	}
}

// DenseNorm returns the Euclidean length of a dense vector.
func DenseNorm(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s)
}
