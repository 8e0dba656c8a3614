package model

type availabilityIndexImplementation struct {
	professors []Professor
	candidates map[string][]Candidate // Memoized candidates per course
}

func (index *availabilityIndexImplementation) CandidatesFor(course string) []Candidate {
	if candidates, ok := index.candidates[course]; ok {
		return candidates
	}

	candidates := make([]Candidate, 0)
	for _, professor := range index.professors {
		if !professor.CanTeach(course) {
			continue
		}
		for _, block := range professor.AvailableBlocks {
			candidates = append(candidates, Candidate{Professor: professor.Name, Block: block})
		}
	}

	index.candidates[course] = candidates
	return candidates
}
