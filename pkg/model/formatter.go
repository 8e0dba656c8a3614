package model

import "log"

// Record is the external representation of an assignment
type Record struct {
	Course    string `json:"course" csv:"course"`
	Professor string `json:"professor" csv:"professor"`
	RoomType  string `json:"room_type" csv:"room_type"`
	Day       string `json:"day" csv:"day"`
	Start     int    `json:"start" csv:"start"`
	End       int    `json:"end" csv:"end"`
}

// Format converts a schedule into records, preserving the assignment order.
// It panics if the schedule repeats a course, double-books a professor or holds an invalid block,
// since the search engine never produces such schedules
func Format(schedule Schedule) []Record {
	checker := newConstraintChecker()
	records := make([]Record, 0, len(schedule))
	for i, assignment := range schedule {
		if assignment.Course == "" || assignment.Professor == "" || !assignment.Block.Valid() || !checker.IsCompatible(schedule[:i], assignment) {
			log.Panicf("schedule violates its invariants at assignment %d: %+v", i, assignment)
		}

		records = append(records, Record{
			Course:    assignment.Course,
			Professor: assignment.Professor,
			RoomType:  assignment.RoomType,
			Day:       string(assignment.Block.Day),
			Start:     assignment.Block.Start,
			End:       assignment.Block.End,
		})
	}
	return records
}

func FormatAll(schedules []Schedule) [][]Record {
	formatted := make([][]Record, 0, len(schedules))
	for _, schedule := range schedules {
		formatted = append(formatted, Format(schedule))
	}
	return formatted
}
