package model

import "github.com/samber/lo"

func normalizeTargets(courseNames []string) []string {
	return lo.Filter(lo.Map(courseNames, func(name string, _ int) string { return NormalizeName(name) }), func(name string, _ int) bool {
		return name != ""
	})
}

func verify(schedule Schedule, targets []string, store FactStore) bool {
	if len(schedule) != len(targets) || len(schedule) == 0 {
		return false
	}

	checker := newConstraintChecker()
	for i, assignment := range schedule {
		course, ok := store.Course(assignment.Course)
		if !ok {
			return false
		}
		professor, ok := store.Professor(assignment.Professor)
		if !ok {
			return false
		}

		// Check that:
		// - Assignments follow the requested order
		// - Room type was copied from the course
		// - Professor is qualified to teach the course
		// - Block is one of the professor's available blocks
		// - No course is repeated and no professor is double-booked
		if assignment.Course != targets[i] ||
			assignment.RoomType != course.RoomType ||
			!professor.CanTeach(course.Name) ||
			!professor.AvailableAt(assignment.Block) ||
			!checker.IsCompatible(schedule[:i], assignment) {
			return false
		}
	}
	return true
}
