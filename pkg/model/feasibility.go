package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Checks a necessary condition for a schedule to exist: every target course must be matched to a distinct candidate.
// Two courses can never share a (professor, block) pair since the blocks would overlap, so a matching smaller than
// the number of targets means the search cannot complete
func feasible(targets []string, index availabilityIndex) bool {
	slots := make([]Candidate, 0)
	slotIds := make(map[Candidate]int)
	relationships := make(map[[2]int]bool)

	for target, course := range targets {
		candidates := index.CandidatesFor(course)
		if len(candidates) == 0 {
			return false
		}
		for _, candidate := range candidates {
			id, ok := slotIds[candidate]
			if !ok {
				id = len(slots)
				slotIds[candidate] = id
				slots = append(slots, candidate)
			}
			relationships[[2]int{target, id}] = true
		}
	}

	if len(slots) < len(targets) {
		return false
	}

	// Build neighbors predicate based on relationships
	neighbors := func(targetAny any, slotAny any) (bool, error) {
		return relationships[[2]int{targetAny.(int), slotAny.(int)}], nil
	}

	targetsAny := lo.Map(targets, func(_ string, i int) any { return i })
	slotsAny := lo.Map(slots, func(_ Candidate, i int) any { return i })

	graph, err := bipartitegraph.NewBipartiteGraph(targetsAny, slotsAny, neighbors)
	if err != nil {
		return true // Undecided, leave it to the search
	}

	return len(graph.LargestMatching()) == len(targets)
}
