package model

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/rooseveltalej/proyecto3/pkg/logger"
)

// MaxSchedules is the hard cap on the number of schedules returned by a single search
const MaxSchedules = 3

// Assignment is one row of a schedule. RoomType and Block are copied from the chosen course and candidate when the assignment is made
type Assignment struct {
	Course    string
	Professor string
	RoomType  string
	Block     TimeBlock
}

func newAssignment(course Course, candidate Candidate) Assignment {
	return Assignment{
		Course:    course.Name,
		Professor: candidate.Professor,
		RoomType:  course.RoomType,
		Block:     candidate.Block,
	}
}

// Schedule holds exactly one assignment per requested course, in request order
type Schedule []Assignment

type Scheduler interface {
	// Finds up to MaxSchedules schedules for the given courses, assigned in the order given.
	// Infeasible requests yield no schedules and no error; only an empty course list is rejected
	FindScheduleForCourses(courseNames []string) ([]Schedule, error)

	// Finds up to MaxSchedules schedules for every catalogue course whose semester has the given parity ("odd" or "even")
	FindScheduleForSemesterParity(parity string) ([]Schedule, error)

	// Lazily enumerates the valid schedules for the given courses in search order
	Schedules(courseNames []string) iter.Seq[Schedule]

	// Returns the target courses of a parity request, in catalogue order
	ParityTargets(parity string) ([]string, error)

	// Checks every schedule invariant against the current facts and the requested courses
	Verify(schedule Schedule, courseNames []string) bool
}

func NewBacktrackingScheduler(store FactStore, opts ...Option) Scheduler {
	return newBacktrackingScheduler(store, opts...)
}

// RequestError reports a request whose shape is invalid (as opposed to an infeasible one)
type RequestError struct {
	Reason string
}

func (err *RequestError) Error() string {
	return "invalid request: " + err.Reason
}

type Parity int

const (
	Even Parity = iota
	Odd
)

func ParseParity(token string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "odd":
		return Odd, nil
	case "even":
		return Even, nil
	}
	return Even, &RequestError{Reason: fmt.Sprintf("parity must be 'even' or 'odd', got %q", token)}
}

func (parity Parity) Matches(semester int) bool {
	return semester%2 == int(parity)
}

func (parity Parity) String() string {
	if parity == Odd {
		return "odd"
	}
	return "even"
}

type SearchMode string

const (
	CoursesMode SearchMode = "courses"
	ParityMode  SearchMode = "parity"
)

// SearchStats describes a single search run
type SearchStats struct {
	Mode      SearchMode
	Targets   int
	Nodes     uint64 // Candidates considered
	Schedules int
	Pruned    bool // Skipped by the feasibility pre-check
	Truncated bool // Stopped by the node budget
	Duration  time.Duration
}

func (stats SearchStats) Outcome() string {
	switch {
	case stats.Truncated:
		return "truncated"
	case stats.Schedules > 0:
		return "found"
	}
	return "not_found"
}

// SearchRecorder receives the statistics of every completed search
type SearchRecorder interface {
	RecordSearch(stats SearchStats)
}

type nopRecorder struct{}

func (nopRecorder) RecordSearch(SearchStats) {}

type options struct {
	maxResults       int
	nodeBudget       uint64
	feasibilityCheck bool
	recorder         SearchRecorder
	logger           logger.Logger
}

type Option func(*options)

// WithMaxResults lowers the number of schedules returned per search. Values outside 1..MaxSchedules fall back to MaxSchedules
func WithMaxResults(maxResults int) Option {
	return func(o *options) {
		if maxResults < 1 || maxResults > MaxSchedules {
			maxResults = MaxSchedules
		}
		o.maxResults = maxResults
	}
}

// WithNodeBudget stops a search after the given number of candidates has been considered; 0 disables the budget
func WithNodeBudget(nodes uint64) Option {
	return func(o *options) { o.nodeBudget = nodes }
}

func WithFeasibilityCheck(enabled bool) Option {
	return func(o *options) { o.feasibilityCheck = enabled }
}

func WithRecorder(recorder SearchRecorder) Option {
	return func(o *options) {
		if recorder != nil {
			o.recorder = recorder
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

func defaultOptions() options {
	return options{
		maxResults:       MaxSchedules,
		feasibilityCheck: true,
		recorder:         nopRecorder{},
		logger:           logger.NopLogger{},
	}
}
