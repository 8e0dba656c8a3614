package service

import (
	"fmt"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

type ScheduleResult struct {
	Mode      model.SearchMode
	Targets   []string
	Schedules []model.Schedule
}

func (r ScheduleResult) Found() bool {
	return len(r.Schedules) > 0
}

// Message describes the result for humans; an empty result is reported as "no schedule found".
func (r ScheduleResult) Message() string {
	if !r.Found() {
		if r.Mode == model.ParityMode {
			return "No schedule found for the given parity"
		}
		return "No schedule found for the given courses"
	}
	if len(r.Schedules) == 1 {
		return "Found 1 schedule"
	}
	return fmt.Sprintf("Found %d schedules", len(r.Schedules))
}

func (r ScheduleResult) Records() [][]model.Record {
	return model.FormatAll(r.Schedules)
}
