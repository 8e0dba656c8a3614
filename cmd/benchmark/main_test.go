package main

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, found, classify(model.SearchStats{Schedules: 3}, true))
	assert.Equal(t, notFound, classify(model.SearchStats{}, false))
	assert.Equal(t, unexpected, classify(model.SearchStats{}, true))
	assert.Equal(t, unexpected, classify(model.SearchStats{Schedules: 1}, false))
	assert.Equal(t, truncated, classify(model.SearchStats{Truncated: true, Schedules: 1}, true))
}

func TestMeasureFixtures(t *testing.T) {
	tests := getTests()
	assert.NotEmpty(t, tests)

	for _, test := range tests {
		for _, strategy := range getStrategies() {
			result := measure(strategy, test)

			assert.Equal(t, test.Name, result.Test)
			assert.Equal(t, strategyTypes[strategy], result.Strategy)
			if test.Satisfiable {
				assert.Equal(t, "found", result.Result, test.Name)
			} else {
				assert.Equal(t, "not_found", result.Result, test.Name)
			}
		}
	}
}

func TestPrecheckSkipsSearch(t *testing.T) {
	test, ok := findTest(getTests(), "single_block_two_courses.json")
	assert.True(t, ok)

	assert.Zero(t, measure(prechecked, test).Nodes)
	assert.NotZero(t, measure(exhaustive, test).Nodes)
}

func findTest(tests []TestMetadata, suffix string) (TestMetadata, bool) {
	return lo.Find(tests, func(test TestMetadata) bool { return strings.HasSuffix(test.Name, suffix) })
}
