// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"math"
	"sort"
)

// CosineSimilarity returns u·v / (‖u‖·‖v‖), or 0 when either norm is 0.
// Extra trailing elements of the longer vector are ignored.
func CosineSimilarity(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}

	var dot, nu, nv float64
	for i := 0; i < n; i++ {
		dot += u[i] * v[i]
		nu += u[i] * u[i]
		nv += v[i] * v[i]
	}
	if nu == 0 || nv == 0 {
		return 0
	}
	return dot / (math.Sqrt(nu) * math.Sqrt(nv))
}

// topN returns the indices of the n highest scores in descending order.
// Indices are sorted ascending (stable) and the last n are taken, so a later
// index wins a tie at the boundary and comes first among equals.
func topN(scores []float64, n int) []int {
	if n <= 0 {
		return []int{}
	}
	if n > len(scores) {
		n = len(scores)
	}

	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	out := make([]int, n)
	for k := 0; k < n; k++ {
		out[k] = idx[len(idx)-1-k]
	}
	return out
}
