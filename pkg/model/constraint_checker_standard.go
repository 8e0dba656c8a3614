package model

type constraintCheckerStandard struct{}

func (checker *constraintCheckerStandard) IsCompatible(partial Schedule, candidate Assignment) bool {
	for _, assignment := range partial {
		if assignment.Course == candidate.Course {
			return false
		}
		if assignment.Professor == candidate.Professor && assignment.Block.Overlaps(candidate.Block) {
			return false
		}
	}
	return true
}
