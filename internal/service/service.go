package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/rooseveltalej/proyecto3/internal/config"
	"github.com/rooseveltalej/proyecto3/pkg/logger"
	"github.com/rooseveltalej/proyecto3/internal/storage"
	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// ErrNoDatabase is returned by operations that need the record store when none was configured.
var ErrNoDatabase = errors.New("no database configured")

type Options struct {
	DB       *sql.DB // Optional record store used by Reload
	Search   config.SearchConfig
	Recorder model.SearchRecorder
	Logger   logger.Logger
}

// Service owns the fact store and serializes reloads against searches:
// searches share a read lock, loads and clears take the write lock.
type Service struct {
	mu             sync.RWMutex
	store          model.FactStore
	scheduler      model.Scheduler
	db             *sql.DB
	defaultCourses []string
	log            logger.Logger
}

func New(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	store := model.NewFactStore()
	return &Service{
		store: store,
		scheduler: model.NewBacktrackingScheduler(store,
			model.WithMaxResults(opts.Search.MaxResults),
			model.WithNodeBudget(opts.Search.NodeBudget),
			model.WithFeasibilityCheck(opts.Search.FeasibilityCheck),
			model.WithRecorder(opts.Recorder),
			model.WithLogger(log),
		),
		db:             opts.DB,
		defaultCourses: opts.Search.DefaultCourses,
		log:            log,
	}
}

// Reload replaces the facts with the contents of the record store.
// Returns the number of professors and courses accepted.
func (s *Service) Reload(ctx context.Context) (int, int, error) {
	if s.db == nil {
		return 0, 0, ErrNoDatabase
	}
	facts, err := storage.LoadFacts(ctx, s.db)
	if err != nil {
		return 0, 0, fmt.Errorf("reloading facts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
	professors, courses := s.load(facts)
	return professors, courses, nil
}

// LoadFacts appends facts to the store. Malformed records are skipped.
func (s *Service) LoadFacts(facts model.Facts) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(facts)
}

func (s *Service) load(facts model.Facts) (int, int) {
	professors := s.store.LoadProfessors(facts.Professors)
	courses := s.store.LoadCourses(facts.Courses)
	if skipped := len(facts.Professors) - professors; skipped > 0 {
		s.log.Warnf("skipped %d malformed or duplicate professor records", skipped)
	}
	if skipped := len(facts.Courses) - courses; skipped > 0 {
		s.log.Warnf("skipped %d malformed or duplicate course records", skipped)
	}
	s.log.Infof("loaded %d professors and %d courses", professors, courses)
	return professors, courses
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
}

// Facts returns the normalized professors and courses currently loaded.
func (s *Service) Facts() ([]model.Professor, []model.Course) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Professors(), s.store.Courses()
}

// ScheduleForCourses searches schedules for the given courses, in the given order.
// An empty list falls back to the configured default courses.
func (s *Service) ScheduleForCourses(courseNames []string) (ScheduleResult, error) {
	if len(courseNames) == 0 {
		if len(s.defaultCourses) == 0 {
			return ScheduleResult{}, &model.RequestError{Reason: "no courses requested and no default courses configured"}
		}
		courseNames = s.defaultCourses
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	schedules, err := s.scheduler.FindScheduleForCourses(courseNames)
	if err != nil {
		return ScheduleResult{}, err
	}
	return ScheduleResult{Mode: model.CoursesMode, Targets: courseNames, Schedules: schedules}, nil
}

// ScheduleForParity searches schedules for every course whose semester has the given parity.
func (s *Service) ScheduleForParity(parity string) (ScheduleResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	targets, err := s.scheduler.ParityTargets(parity)
	if err != nil {
		return ScheduleResult{}, err
	}
	schedules, err := s.scheduler.FindScheduleForSemesterParity(parity)
	if err != nil {
		return ScheduleResult{}, err
	}
	return ScheduleResult{Mode: model.ParityMode, Targets: targets, Schedules: schedules}, nil
}

// Verify re-checks every schedule of result against the current facts.
func (s *Service) Verify(result ScheduleResult) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, schedule := range result.Schedules {
		if !s.scheduler.Verify(schedule, result.Targets) {
			return false
		}
	}
	return true
}
