package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
)

// Days lists the teaching days in week order
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// ParseDay matches a day name case-insensitively
func ParseDay(value string) (Day, bool) {
	day := Day(strings.ToLower(strings.TrimSpace(value)))
	return day, lo.Contains(Days, day)
}

// TimeBlock is a half-open interval [Start, End) of whole hours on a given day
type TimeBlock struct {
	Day   Day
	Start int
	End   int
}

// Overlaps reports whether both blocks fall on the same day and their intervals intersect
func (block TimeBlock) Overlaps(other TimeBlock) bool {
	return block.Day == other.Day && block.Start < other.End && other.Start < block.End
}

func (block TimeBlock) Valid() bool {
	_, ok := ParseDay(string(block.Day))
	return ok && block.Start >= 0 && block.End <= 24 && block.Start < block.End
}

// String returns the compact "day_start_end" encoding
func (block TimeBlock) String() string {
	return fmt.Sprintf("%s_%d_%d", block.Day, block.Start, block.End)
}

// ParseTimeBlock decodes the compact "day_start_end" encoding (e.g. "monday_7_11").
//
// Afternoon blocks written on a 12-hour clock ("wednesday_12_4") are read as ending
// in the afternoon: when the block starts at noon or later and the end is before
// the start, twelve hours are added to the end. Morning blocks with a reversed
// interval ("monday_9_8") are rejected.
func ParseTimeBlock(encoded string) (TimeBlock, error) {
	parts := strings.Split(strings.TrimSpace(encoded), "_")
	if len(parts) != 3 {
		return TimeBlock{}, fmt.Errorf("time block %q must have the form day_start_end", encoded)
	}

	day, ok := ParseDay(parts[0])
	if !ok {
		return TimeBlock{}, fmt.Errorf("time block %q has an unknown day %q", encoded, parts[0])
	}

	start, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeBlock{}, fmt.Errorf("time block %q has a non-integer start hour: %w", encoded, err)
	}
	end, err := strconv.Atoi(parts[2])
	if err != nil {
		return TimeBlock{}, fmt.Errorf("time block %q has a non-integer end hour: %w", encoded, err)
	}

	if start >= 12 && end < start {
		end += 12
	}

	block := TimeBlock{Day: day, Start: start, End: end}
	if !block.Valid() {
		return TimeBlock{}, fmt.Errorf("time block %q is not a valid interval within a day", encoded)
	}
	return block, nil
}
