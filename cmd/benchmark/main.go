package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

const (
	satisfiableTestDirectory           = "../../pkg/model/testdata/satisfiable/"
	unsatisfiableTestDirectory         = "../../pkg/model/testdata/unsatisfiable/"
	resultsFile                        = "benchmark_results.csv"
	repetitions                        = 5
	KB                         float64 = 1024
)

type StrategyType int

const (
	exhaustive StrategyType = iota // Plain backtracking
	prechecked                     // Matching pre-check before backtracking
)

type ResultType int

const (
	found ResultType = iota
	notFound
	truncated
	unexpected // Found schedules for an unsatisfiable instance or none for a satisfiable one
)

var (
	strategyTypes = map[StrategyType]string{
		exhaustive: "exhaustive",
		prechecked: "prechecked",
	}
	resultTypes = map[ResultType]string{
		found:      "found",
		notFound:   "not_found",
		truncated:  "truncated",
		unexpected: "unexpected",
	}
)

type TestMetadata struct {
	Name        string
	Satisfiable bool
	Professors  int
	Courses     int
	Targets     int
	Instance    model.Instance
}

type BenchmarkResult struct {
	Strategy    string `csv:"Strategy"`
	Test        string `csv:"Test"`
	Satisfiable bool   `csv:"Satisfiable"`
	Professors  int    `csv:"Professors"`
	Courses     int    `csv:"Courses"`
	Targets     int    `csv:"Targets"`
	Duration    int64  `csv:"Duration(us)"`
	Nodes       uint64 `csv:"Nodes"`
	Schedules   int    `csv:"Schedules"`
	Allocated   string `csv:"Allocated(KB)"`
	Result      string `csv:"Result"`
}

// statsRecorder keeps the statistics of the last search
type statsRecorder struct {
	last model.SearchStats
}

func (recorder *statsRecorder) RecordSearch(stats model.SearchStats) {
	recorder.last = stats
}

func main() {
	tests := getTests()
	strategies := getStrategies()
	results := make([]*BenchmarkResult, 0, len(tests)*len(strategies))

	for _, test := range tests {
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking test \"%v\" with strategy \"%v\"\n", test.Name, strategyTypes[strategy])
			results = append(results, measure(strategy, test))
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	tests := make([]TestMetadata, 0)
	for _, tuple := range lo.Zip2([]string{satisfiableTestDirectory, unsatisfiableTestDirectory}, []bool{true, false}) {
		directory, satisfiable := tuple.A, tuple.B
		testFiles, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("cannot read directory: %v", err)
		}

		for _, file := range testFiles {
			filename := directory + file.Name()
			instance, err := model.InstanceFromJson(filename)
			if err != nil {
				log.Fatalf("cannot parse input file: %v", err)
			}

			store := newStore(instance)
			targets := len(instance.Query.Courses)
			if instance.Query.Parity != "" {
				parityTargets, err := model.NewBacktrackingScheduler(store).ParityTargets(instance.Query.Parity)
				if err != nil {
					log.Fatalf("invalid query in %v: %v", filename, err)
				}
				targets = len(parityTargets)
			}

			tests = append(tests, TestMetadata{
				Name:        filename,
				Satisfiable: satisfiable,
				Professors:  len(store.Professors()),
				Courses:     len(store.Courses()),
				Targets:     targets,
				Instance:    instance,
			})
		}
	}

	return tests
}

func getStrategies() []StrategyType {
	return []StrategyType{exhaustive, prechecked}
}

func newStore(instance model.Instance) model.FactStore {
	store := model.NewFactStore()
	store.LoadProfessors(instance.Professors)
	store.LoadCourses(instance.Courses)
	return store
}

// measure runs the test query several times and keeps the fastest run
func measure(strategy StrategyType, test TestMetadata) *BenchmarkResult {
	recorder := &statsRecorder{}
	scheduler := model.NewBacktrackingScheduler(newStore(test.Instance),
		model.WithFeasibilityCheck(strategy == prechecked),
		model.WithRecorder(recorder),
	)

	var best time.Duration
	var allocated uint64
	var stats model.SearchStats
	for i := range repetitions {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)

		var err error
		if test.Instance.Query.Parity != "" {
			_, err = scheduler.FindScheduleForSemesterParity(test.Instance.Query.Parity)
		} else {
			_, err = scheduler.FindScheduleForCourses(test.Instance.Query.Courses)
		}
		if err != nil {
			log.Fatalf("an error occurred during the search at test \"%v\" using strategy \"%v\": %v", test.Name, strategyTypes[strategy], err)
		}

		runtime.ReadMemStats(&after)
		if i == 0 || recorder.last.Duration < best {
			best = recorder.last.Duration
			allocated = after.TotalAlloc - before.TotalAlloc
		}
		stats = recorder.last
	}

	return &BenchmarkResult{
		Strategy:    strategyTypes[strategy],
		Test:        test.Name,
		Satisfiable: test.Satisfiable,
		Professors:  test.Professors,
		Courses:     test.Courses,
		Targets:     test.Targets,
		Duration:    best.Microseconds(),
		Nodes:       stats.Nodes,
		Schedules:   stats.Schedules,
		Allocated:   fmt.Sprintf("%.1f", float64(allocated)/KB),
		Result:      resultTypes[classify(stats, test.Satisfiable)],
	}
}

func classify(stats model.SearchStats, satisfiable bool) ResultType {
	switch {
	case stats.Truncated:
		return truncated
	case (stats.Schedules > 0) != satisfiable:
		return unexpected
	case stats.Schedules > 0:
		return found
	}
	return notFound
}

func toCsv(results []*BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV records: %v", err)
	}
}
