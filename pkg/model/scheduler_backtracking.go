package model

import (
	"iter"
	"slices"
	"time"

	"github.com/samber/lo"
)

type backtrackingScheduler struct {
	store   FactStore
	checker constraintChecker
	options options
}

func newBacktrackingScheduler(store FactStore, opts ...Option) *backtrackingScheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &backtrackingScheduler{
		store:   store,
		checker: newConstraintChecker(),
		options: o,
	}
}

func (scheduler *backtrackingScheduler) FindScheduleForCourses(courseNames []string) ([]Schedule, error) {
	targets := normalizeTargets(courseNames)
	if len(targets) == 0 {
		return nil, &RequestError{Reason: "at least one course must be requested"}
	}
	return scheduler.collect(CoursesMode, targets), nil
}

func (scheduler *backtrackingScheduler) FindScheduleForSemesterParity(parity string) ([]Schedule, error) {
	targets, err := scheduler.ParityTargets(parity)
	if err != nil {
		return nil, err
	}
	return scheduler.collect(ParityMode, targets), nil
}

func (scheduler *backtrackingScheduler) ParityTargets(token string) ([]string, error) {
	parity, err := ParseParity(token)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(scheduler.store.Courses(), func(course Course, _ int) (string, bool) {
		return course.Name, parity.Matches(course.Semester)
	}), nil
}

func (scheduler *backtrackingScheduler) Schedules(courseNames []string) iter.Seq[Schedule] {
	return scheduler.search(normalizeTargets(courseNames), &SearchStats{})
}

func (scheduler *backtrackingScheduler) Verify(schedule Schedule, courseNames []string) bool {
	return verify(schedule, normalizeTargets(courseNames), scheduler.store)
}

// Drains the search up to the result cap. Breaking out of the range stops the search right away
func (scheduler *backtrackingScheduler) collect(mode SearchMode, targets []string) []Schedule {
	started := time.Now()
	stats := SearchStats{Mode: mode, Targets: len(targets)}
	scheduler.options.logger.Debugw("search started", map[string]any{"mode": mode, "targets": targets})

	schedules := make([]Schedule, 0, scheduler.options.maxResults)
	for schedule := range scheduler.search(targets, &stats) {
		schedules = append(schedules, schedule)
		if len(schedules) >= scheduler.options.maxResults {
			break
		}
	}

	stats.Schedules = len(schedules)
	stats.Duration = time.Since(started)
	if stats.Truncated {
		scheduler.options.logger.Warnf("search stopped after %d nodes by the node budget with %d schedules found", stats.Nodes, stats.Schedules)
	}
	scheduler.options.logger.Debugw("search finished", map[string]any{
		"mode":      mode,
		"nodes":     stats.Nodes,
		"schedules": stats.Schedules,
		"pruned":    stats.Pruned,
		"duration":  stats.Duration.String(),
	})
	scheduler.options.recorder.RecordSearch(stats)

	return schedules
}

// Depth-first search over the targets: depth i tries the candidates of targets[i] in index order
func (scheduler *backtrackingScheduler) search(targets []string, stats *SearchStats) iter.Seq[Schedule] {
	return func(yield func(Schedule) bool) {
		if len(targets) == 0 {
			return
		}

		//** Resolve target courses; an unknown course can never be assigned
		courses := make([]Course, 0, len(targets))
		for _, name := range targets {
			course, ok := scheduler.store.Course(name)
			if !ok {
				return
			}
			courses = append(courses, course)
		}

		index := newAvailabilityIndex(scheduler.store.Professors())

		if scheduler.options.feasibilityCheck && !feasible(targets, index) {
			stats.Pruned = true
			return
		}

		//** Backtracking
		partial := make(Schedule, 0, len(courses))
		var expand func(depth int) bool // Returns false once the consumer or the node budget stops the search
		expand = func(depth int) bool {
			if depth == len(courses) {
				return yield(slices.Clone(partial))
			}

			course := courses[depth]
			for _, candidate := range index.CandidatesFor(course.Name) {
				if scheduler.options.nodeBudget > 0 && stats.Nodes >= scheduler.options.nodeBudget {
					stats.Truncated = true
					return false
				}
				stats.Nodes++

				assignment := newAssignment(course, candidate)
				if !scheduler.checker.IsCompatible(partial, assignment) {
					continue
				}

				partial = append(partial, assignment)
				if !expand(depth + 1) {
					return false
				}
				partial = partial[:len(partial)-1]
			}
			return true
		}
		expand(0)
	}
}
