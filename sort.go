// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import (
	"sort"
)

// fitnessNode interns one unique fitness tuple. Its rank is shared by every
// candidate possessing that exact tuple, and is mutated in place by the
// recursive helpers below rather than threaded through a return value —
// this is the "mutable map passed by reference" approach,
// specialised here to a pointer shared across slices instead of a
// value-keyed map, since Go slices cannot be map keys.
type fitnessNode struct {
	fit  Fitness
	rank int
}

// NonDominatedSort assigns each candidate a Pareto-front rank using the
// Fortin et al. (2013) generalized non-dominated sorting algorithm, and
// returns the list of fronts, leading front first. Candidates sharing an
// identical fitness tuple always occupy the same front. Empty input yields
// an empty output; there are no other error conditions.
func NonDominatedSort(candidates []*Candidate) [][]*Candidate {
	if len(candidates) == 0 {
		return nil
	}

	nodeByKey := make(map[string]*fitnessNode)
	var nodes []*fitnessNode
	nodeOf := make([]*fitnessNode, len(candidates))
	for i, c := range candidates {
		key := c.Fitness().key()
		node, ok := nodeByKey[key]
		if !ok {
			node = &fitnessNode{fit: c.Fitness()}
			nodeByKey[key] = node
			nodes = append(nodes, node)
		}
		nodeOf[i] = node
	}

	numObjectives := len(candidates[0].Fitness())
	sort.Slice(nodes, func(i, j int) bool {
		return lexLess(nodes[i].fit, nodes[j].fit)
	})

	if numObjectives == 1 {
		for i, n := range nodes {
			n.rank = i
		}
	} else {
		helperA(nodes, numObjectives)
	}

	maxRank := 0
	for _, n := range nodes {
		if n.rank > maxRank {
			maxRank = n.rank
		}
	}
	fronts := make([][]*Candidate, maxRank+1)
	for i, c := range candidates {
		r := nodeOf[i].rank
		fronts[r] = append(fronts[r], c)
		c.NonDominatedRank = r
	}
	return fronts
}

// lexLess reports whether a is lexicographically less than b.
func lexLess(a, b Fitness) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// lexLE reports whether a <= b lexicographically, comparing only the first
// n objectives of each.
func lexLE(a, b Fitness, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return true
}

// helperA creates a non-dominated sorting of nodes on the first m
// objectives; used recursively.
func helperA(nodes []*fitnessNode, m int) {
	switch {
	case len(nodes) < 2:
		return
	case len(nodes) == 2:
		f1, f2 := nodes[0], nodes[1]
		if dominatesSlice(f1.fit, f2.fit, m) {
			if f1.rank+1 > f2.rank {
				f2.rank = f1.rank + 1
			}
		}
	case m == 2:
		sweepA(nodes)
	case sameLastObjective(nodes, m):
		helperA(nodes, m-1)
	default:
		low, high := splitA(nodes, m-1)
		helperA(low, m)
		helperB(low, high, m-1)
		helperA(high, m)
	}
}

// sameLastObjective reports whether every node shares the same value on
// objective m-1.
func sameLastObjective(nodes []*fitnessNode, m int) bool {
	v := nodes[0].fit[m-1]
	for _, n := range nodes[1:] {
		if n.fit[m-1] != v {
			return false
		}
	}
	return true
}

// sweepA is the two-objective sweep: input is sorted on
// objective 0 already (nodes arrive in lexicographic order).
func sweepA(nodes []*fitnessNode) {
	t := []*fitnessNode{nodes[0]}
	for _, s := range nodes[1:] {
		var maxRank int
		found := false
		for _, u := range t {
			if u.fit[1] <= s.fit[1] {
				if !found || u.rank > maxRank {
					maxRank = u.rank
					found = true
				}
			}
		}
		if found && maxRank+1 > s.rank {
			s.rank = maxRank + 1
		}
		kept := t[:0:0]
		for _, tt := range t {
			if tt.rank != s.rank {
				kept = append(kept, tt)
			}
		}
		t = append(kept, s)
	}
}

// splitA partitions nodes around the median of objective objIndex into low
// and high, choosing between two deterministic tie-break alternatives by
// whichever minimizes |len(low)-len(high)|. Ties in
// the balance favour the low-side placement of median-valued tuples.
func splitA(nodes []*fitnessNode, objIndex int) (low, high []*fitnessNode) {
	vals := make([]float64, len(nodes))
	for i, n := range nodes {
		vals[i] = n.fit[objIndex]
	}
	median := medianOf(vals)

	var lowA, highA, lowB, highB []*fitnessNode
	for _, n := range nodes {
		v := n.fit[objIndex]
		switch {
		case v < median:
			lowA = append(lowA, n)
			lowB = append(lowB, n)
		case v > median:
			highA = append(highA, n)
			highB = append(highB, n)
		default:
			lowA = append(lowA, n)
			highB = append(highB, n)
		}
	}
	diffA := abs(len(lowA) - len(highA))
	diffB := abs(len(lowB) - len(highB))
	if diffA <= diffB {
		return lowA, highA
	}
	return lowB, highB
}

// helperB compares two already-separated sets, where low's tuples are
// known to precede high's lexicographically on the unused tail objectives.
func helperB(low, high []*fitnessNode, m int) {
	if len(low) == 0 || len(high) == 0 {
		return
	}
	objIndex := m - 1
	switch {
	case len(low) == 1 || len(high) == 1:
		for _, l := range low {
			for _, h := range high {
				if dominatesSlice(l.fit, h.fit, m) || equalSlice(l.fit, h.fit, m) {
					if l.rank+1 > h.rank {
						h.rank = l.rank + 1
					}
				}
			}
		}
	case m == 2:
		sweepB(low, high)
	case maxObjective(low, objIndex) <= minObjective(high, objIndex):
		helperB(low, high, m-1)
	case minObjective(low, objIndex) <= maxObjective(high, objIndex):
		low1, low2, high1, high2 := splitB(low, high, m-1)
		helperB(low1, high1, m)
		helperB(low1, high2, m-1)
		helperB(low2, high2, m)
	}
}

// equalSlice reports whether a and b are equal on their first n objectives.
func equalSlice(a, b Fitness, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func maxObjective(nodes []*fitnessNode, idx int) float64 {
	m := nodes[0].fit[idx]
	for _, n := range nodes[1:] {
		if n.fit[idx] > m {
			m = n.fit[idx]
		}
	}
	return m
}

func minObjective(nodes []*fitnessNode, idx int) float64 {
	m := nodes[0].fit[idx]
	for _, n := range nodes[1:] {
		if n.fit[idx] < m {
			m = n.fit[idx]
		}
	}
	return m
}

// splitB partitions low and high simultaneously around a common pivot: the
// median of objective objIndex drawn from the larger of the two sets,
// using the same ambiguity-resolution rule as splitA.
func splitB(low, high []*fitnessNode, objIndex int) (low1, low2, high1, high2 []*fitnessNode) {
	var pivotSrc []*fitnessNode
	if len(low) > len(high) {
		pivotSrc = low
	} else {
		pivotSrc = high
	}
	vals := make([]float64, len(pivotSrc))
	for i, n := range pivotSrc {
		vals[i] = n.fit[objIndex]
	}
	pivot := medianOf(vals)

	var low1A, low2A, low1B, low2B []*fitnessNode
	for _, n := range low {
		v := n.fit[objIndex]
		switch {
		case v < pivot:
			low1A = append(low1A, n)
			low1B = append(low1B, n)
		case v > pivot:
			low2A = append(low2A, n)
			low2B = append(low2B, n)
		default:
			low1A = append(low1A, n)
			low2B = append(low2B, n)
		}
	}
	var high1A, high2A, high1B, high2B []*fitnessNode
	for _, n := range high {
		v := n.fit[objIndex]
		switch {
		case v < pivot:
			high1A = append(high1A, n)
			high1B = append(high1B, n)
		case v > pivot:
			high2A = append(high2A, n)
			high2B = append(high2B, n)
		default:
			high1A = append(high1A, n)
			high2B = append(high2B, n)
		}
	}
	diffA := abs((len(low1A) - len(low2A)) + (len(high1A) - len(high2A)))
	diffB := abs((len(low1B) - len(low2B)) + (len(high1B) - len(high2B)))
	if diffA <= diffB {
		return low1A, low2A, high1A, high2A
	}
	return low1B, low2B, high1B, high2B
}

// sweepB scans high in order, advancing a pointer through low while low[i]'s
// first two objectives are <= h's.
func sweepB(low, high []*fitnessNode) {
	var t []*fitnessNode
	i := 0
	for _, h := range high {
		for i < len(low) && lexLE(low[i].fit, h.fit, 2) {
			candidate := low[i]
			hasBetterSameRank := false
			for _, tt := range t {
				if tt.rank == candidate.rank && tt.fit[1] < candidate.fit[1] {
					hasBetterSameRank = true
					break
				}
			}
			if !hasBetterSameRank {
				kept := t[:0:0]
				for _, tt := range t {
					if tt.rank != candidate.rank {
						kept = append(kept, tt)
					}
				}
				t = append(kept, candidate)
			}
			i++
		}
		var maxRank int
		found := false
		for _, tt := range t {
			if tt.fit[1] <= h.fit[1] {
				if !found || tt.rank > maxRank {
					maxRank = tt.rank
					found = true
				}
			}
		}
		if found && maxRank+1 > h.rank {
			h.rank = maxRank + 1
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// medianOf returns the median of vals (does not mutate vals).
func medianOf(vals []float64) float64 {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	n := len(cp)
	if n%2 == 1 {
		return cp[n/2]
	}
	return (cp[n/2-1] + cp[n/2]) / 2
}
