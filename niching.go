// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import "github.com/cpmech/gosl/rnd"

// SelectNextPopulation implements niching-based selection. Given the
// combined parent+child pool (size 2N), the desired next-population size
// targetSize, and the current reference directions, it returns the
// selected survivors.
func SelectNextPopulation(pool []*Candidate, targetSize int, directions []ReferenceDirection, numObjectives int) []*Candidate {
	fronts := NonDominatedSort(pool)

	var accepted []*Candidate
	i := 0
	for len(accepted) < targetSize && i < len(fronts) {
		accepted = append(accepted, fronts[i]...)
		i++
	}
	lastFront := fronts[i-1]
	if len(accepted) == targetSize {
		return accepted
	}

	selected := make([]*Candidate, 0, targetSize)
	for j := 0; j < i-1; j++ {
		selected = append(selected, fronts[j]...)
	}

	NormalizeFitnesses(accepted, numObjectives)
	Associate(accepted, directions)

	niche := make(map[int]int, len(directions))
	for idx := range directions {
		niche[idx] = 0
	}
	dirIndex := indexReferenceDirections(directions, accepted)
	for _, c := range selected {
		niche[dirIndex[c]]++
	}

	k := targetSize - len(selected)
	remaining := append([]*Candidate(nil), lastFront...)
	niching(k, niche, dirIndex, directions, remaining, &selected)
	return selected
}

// indexReferenceDirections maps each candidate in accepted to the index of
// the reference direction it was associated with, since ReferenceDirection
// (a slice) cannot itself serve as a map key.
func indexReferenceDirections(directions []ReferenceDirection, accepted []*Candidate) map[*Candidate]int {
	byValue := make(map[string]int, len(directions))
	for i, d := range directions {
		byValue[Fitness(d).key()] = i
	}
	idx := make(map[*Candidate]int, len(accepted))
	for _, c := range accepted {
		idx[c] = byValue[Fitness(c.ClosestReferenceDirection).key()]
	}
	return idx
}

// niching repeatedly picks the survivor from lastFront most needed to even
// out coverage of under-represented reference directions. selected
// accumulates the chosen candidates in place.
func niching(k int, niche map[int]int, dirIndex map[*Candidate]int, directions []ReferenceDirection, lastFront []*Candidate, selected *[]*Candidate) {
	unrepresented := make([]int, len(directions))
	for i := range directions {
		unrepresented[i] = i
	}
	for chosen := 0; chosen < k; {
		if len(unrepresented) == 0 {
			break // every remaining direction is exhausted; nothing left to satisfy
		}
		j := pickMinNicheDirection(unrepresented, niche)
		members := membersOf(lastFront, dirIndex, j)
		if len(members) == 0 {
			unrepresented = removeInt(unrepresented, j)
			continue
		}
		var pick *Candidate
		if niche[j] == 0 {
			pick = closestByDistance(members)
		} else {
			pick = members[rnd.Int(0, len(members)-1)]
		}
		*selected = append(*selected, pick)
		niche[j]++
		lastFront = removeCandidate(lastFront, pick)
		chosen++
	}
}

// pickMinNicheDirection chooses, uniformly at random, among the directions
// in candidates with the smallest niche count.
func pickMinNicheDirection(candidates []int, niche map[int]int) int {
	min := niche[candidates[0]]
	for _, j := range candidates[1:] {
		if niche[j] < min {
			min = niche[j]
		}
	}
	var tied []int
	for _, j := range candidates {
		if niche[j] == min {
			tied = append(tied, j)
		}
	}
	return tied[rnd.Int(0, len(tied)-1)]
}

func membersOf(lastFront []*Candidate, dirIndex map[*Candidate]int, j int) []*Candidate {
	var members []*Candidate
	for _, c := range lastFront {
		if dirIndex[c] == j {
			members = append(members, c)
		}
	}
	return members
}

func closestByDistance(members []*Candidate) *Candidate {
	best := members[0]
	for _, m := range members[1:] {
		if m.DistanceToClosestReferenceDirection < best.DistanceToClosestReferenceDirection {
			best = m
		}
	}
	return best
}

func removeInt(s []int, v int) []int {
	out := s[:0:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func removeCandidate(s []*Candidate, v *Candidate) []*Candidate {
	out := s[:0:0]
	for _, c := range s {
		if c != v {
			out = append(out, c)
		}
	}
	return out
}
