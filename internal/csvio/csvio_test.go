package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

const professorsCsv = `name,id_number,available_hours,courses
Quiros Oviedo Rocio,12345678,"['monday_7_11', 'wednesday_12_4']","['elementos_de_computacion']"
Rojas Vega Diego,16234567,['thursday_7_11'],['compiladores_e_interpretes']
`

const coursesCsv = `name,type,credits,semester
elementos_de_computacion,normal,3,1
compiladores_e_interpretes,normal,4,5
`

func TestReadProfessors(t *testing.T) {
	professors, err := ReadProfessors(strings.NewReader(professorsCsv))

	require.NoError(t, err)
	assert.Equal(t, []model.ProfessorRecord{
		{Name: "Quiros Oviedo Rocio", IdNumber: "12345678", AvailableHours: []string{"monday_7_11", "wednesday_12_4"}, Courses: []string{"elementos_de_computacion"}},
		{Name: "Rojas Vega Diego", IdNumber: "16234567", AvailableHours: []string{"thursday_7_11"}, Courses: []string{"compiladores_e_interpretes"}},
	}, professors)
}

func TestReadCourses(t *testing.T) {
	courses, skipped, err := ReadCourses(strings.NewReader(coursesCsv))

	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, []model.CourseRecord{
		{Name: "elementos_de_computacion", Type: "normal", Credits: 3, Semester: 1},
		{Name: "compiladores_e_interpretes", Type: "normal", Credits: 4, Semester: 5},
	}, courses)
}

func TestReadCoursesSkipsMalformedRows(t *testing.T) {
	//** Arrange
	input := "name,type,credits,semester\nredes,normal,4,7\netica,normal,three,2\nfisica,laboratorio,4,\n"

	//** Act
	courses, skipped, err := ReadCourses(strings.NewReader(input))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, []model.CourseRecord{{Name: "redes", Type: "normal", Credits: 4, Semester: 7}}, courses)
}

func TestWriteCoursesReadsBack(t *testing.T) {
	var out bytes.Buffer
	courses := []model.CourseRecord{{Name: "redes", Type: "normal", Credits: 4, Semester: 7}}

	require.NoError(t, WriteCourses(&out, courses))
	again, skipped, err := ReadCourses(&out)

	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, courses, again)
}

func TestLoadFacts(t *testing.T) {
	dir := t.TempDir()
	professorsFile := filepath.Join(dir, "professors.csv")
	coursesFile := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(professorsFile, []byte(professorsCsv), 0o644))
	require.NoError(t, os.WriteFile(coursesFile, []byte(coursesCsv), 0o644))

	facts, err := LoadFacts(professorsFile, coursesFile)
	require.NoError(t, err)
	assert.Len(t, facts.Professors, 2)
	assert.Len(t, facts.Courses, 2)
	assert.Zero(t, facts.Skipped)

	facts, err = LoadFacts("", coursesFile)
	require.NoError(t, err)
	assert.Empty(t, facts.Professors)

	_, err = LoadFacts(filepath.Join(dir, "missing.csv"), "")
	assert.ErrorContains(t, err, "failed to open")
}

func TestWriteSchedules(t *testing.T) {
	var out bytes.Buffer
	schedules := [][]model.Record{
		{{Course: "calculo", Professor: "ana_mora", RoomType: "normal", Day: "monday", Start: 7, End: 11}},
		{{Course: "calculo", Professor: "ana_mora", RoomType: "normal", Day: "tuesday", Start: 12, End: 16}},
	}

	require.NoError(t, WriteSchedules(&out, schedules))

	assert.Equal(t, "schedule,course,professor,room_type,day,start,end\n"+
		"1,calculo,ana_mora,normal,monday,7,11\n"+
		"2,calculo,ana_mora,normal,tuesday,12,16\n", out.String())
}

func TestWriteProfessorsReadsBack(t *testing.T) {
	var out bytes.Buffer
	professors, err := ReadProfessors(strings.NewReader(professorsCsv))
	require.NoError(t, err)

	require.NoError(t, WriteProfessors(&out, professors))
	again, err := ReadProfessors(&out)

	require.NoError(t, err)
	assert.Equal(t, professors, again)
}
