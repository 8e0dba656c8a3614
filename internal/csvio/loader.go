package csvio

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// professorRow mirrors the professors table; list columns hold list literals
// such as "['monday_7_11', 'friday_7_11']".
type professorRow struct {
	Name           string `csv:"name"`
	IdNumber       string `csv:"id_number"`
	AvailableHours string `csv:"available_hours"`
	Courses        string `csv:"courses"`
}

// courseRow keeps its numeric columns as text so one bad row does not fail the whole file
type courseRow struct {
	Name     string `csv:"name"`
	Type     string `csv:"type"`
	Credits  string `csv:"credits"`
	Semester string `csv:"semester"`
}

func (row *courseRow) record() (model.CourseRecord, error) {
	credits, err := strconv.Atoi(strings.TrimSpace(row.Credits))
	if err != nil {
		return model.CourseRecord{}, fmt.Errorf("course %q has invalid credits: %w", row.Name, err)
	}
	semester, err := strconv.Atoi(strings.TrimSpace(row.Semester))
	if err != nil {
		return model.CourseRecord{}, fmt.Errorf("course %q has an invalid semester: %w", row.Name, err)
	}
	return model.CourseRecord{Name: row.Name, Type: row.Type, Credits: credits, Semester: semester}, nil
}

// ReadProfessors parses professor records from CSV with a header row.
func ReadProfessors(in io.Reader) ([]model.ProfessorRecord, error) {
	rows := []*professorRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("parsing professors csv: %w", err)
	}
	return lo.Map(rows, func(row *professorRow, _ int) model.ProfessorRecord {
		return model.ProfessorRecord{
			Name:           row.Name,
			IdNumber:       row.IdNumber,
			AvailableHours: model.ParseListLiteral(row.AvailableHours),
			Courses:        model.ParseListLiteral(row.Courses),
		}
	}), nil
}

// ReadCourses parses course records from CSV with a header row. Rows whose numeric
// columns do not parse are dropped; the second result counts them.
func ReadCourses(in io.Reader) ([]model.CourseRecord, int, error) {
	rows := []*courseRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, 0, fmt.Errorf("parsing courses csv: %w", err)
	}

	courses := lo.FilterMap(rows, func(row *courseRow, _ int) (model.CourseRecord, bool) {
		course, err := row.record()
		return course, err == nil
	})
	return courses, len(rows) - len(courses), nil
}

// LoadFacts reads the professors and courses files. Either path may be empty.
// Facts.Skipped counts the course rows that were dropped.
func LoadFacts(professorsFile, coursesFile string) (model.Facts, error) {
	var facts model.Facts
	if professorsFile != "" {
		file, err := os.Open(professorsFile)
		if err != nil {
			return model.Facts{}, fmt.Errorf("failed to open %s: %w", professorsFile, err)
		}
		defer file.Close()
		if facts.Professors, err = ReadProfessors(file); err != nil {
			return model.Facts{}, err
		}
	}
	if coursesFile != "" {
		file, err := os.Open(coursesFile)
		if err != nil {
			return model.Facts{}, fmt.Errorf("failed to open %s: %w", coursesFile, err)
		}
		defer file.Close()
		if facts.Courses, facts.Skipped, err = ReadCourses(file); err != nil {
			return model.Facts{}, err
		}
	}
	return facts, nil
}
