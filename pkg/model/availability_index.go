package model

// Candidate is a (professor, time block) pair eligible for a specific course
type Candidate struct {
	Professor string
	Block     TimeBlock
}

// availabilityIndex produces the ordered candidates of a course
type availabilityIndex interface {
	// Returns every (professor, block) pair such that the professor can teach the course and the block is one of the professor's available blocks.
	// Professors follow fact-store insertion order and blocks follow each professor's insertion order; this order decides which schedules are found first
	CandidatesFor(course string) []Candidate
}

func newAvailabilityIndex(professors []Professor) availabilityIndex {
	return &availabilityIndexImplementation{
		professors: professors,
		candidates: make(map[string][]Candidate),
	}
}
