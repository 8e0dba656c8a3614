package csvio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// scheduleRow is one assignment of one schedule; Schedule numbers schedules from 1.
type scheduleRow struct {
	Schedule  int    `csv:"schedule"`
	Course    string `csv:"course"`
	Professor string `csv:"professor"`
	RoomType  string `csv:"room_type"`
	Day       string `csv:"day"`
	Start     int    `csv:"start"`
	End       int    `csv:"end"`
}

// WriteSchedules writes formatted schedules as CSV, one row per assignment.
func WriteSchedules(out io.Writer, schedules [][]model.Record) error {
	rows := []*scheduleRow{}
	for i, schedule := range schedules {
		for _, record := range schedule {
			rows = append(rows, &scheduleRow{
				Schedule:  i + 1,
				Course:    record.Course,
				Professor: record.Professor,
				RoomType:  record.RoomType,
				Day:       record.Day,
				Start:     record.Start,
				End:       record.End,
			})
		}
	}
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("writing schedules csv: %w", err)
	}
	return nil
}

// WriteProfessors exports professor records in the format ReadProfessors accepts.
func WriteProfessors(out io.Writer, professors []model.ProfessorRecord) error {
	rows := make([]*professorRow, 0, len(professors))
	for _, p := range professors {
		rows = append(rows, &professorRow{
			Name:           p.Name,
			IdNumber:       p.IdNumber,
			AvailableHours: model.FormatListLiteral(p.AvailableHours),
			Courses:        model.FormatListLiteral(p.Courses),
		})
	}
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("writing professors csv: %w", err)
	}
	return nil
}

func WriteCourses(out io.Writer, courses []model.CourseRecord) error {
	rows := make([]*courseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, &courseRow{Name: c.Name, Type: c.Type, Credits: strconv.Itoa(c.Credits), Semester: strconv.Itoa(c.Semester)})
	}
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("writing courses csv: %w", err)
	}
	return nil
}
