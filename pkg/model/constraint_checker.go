package model

type constraintChecker interface {
	// Checks whether the candidate assignment can be appended to the partial schedule:
	// its professor must not already hold an overlapping block and its course must not be assigned yet
	IsCompatible(partial Schedule, candidate Assignment) bool
}

func newConstraintChecker() constraintChecker {
	return &constraintCheckerStandard{}
}
