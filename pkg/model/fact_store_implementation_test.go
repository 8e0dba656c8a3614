package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactStoreLoadProfessors(t *testing.T) {
	//** Arrange
	store := NewFactStore()

	//** Act
	loaded := store.LoadProfessors([]ProfessorRecord{
		{Name: "Ana Mora", IdNumber: "1", AvailableHours: []string{"monday_7_11", "sunday_7_11", "monday_7_11", "tuesday_12_4"}, Courses: []string{"Calculo", "fisica", "calculo"}},
		{Name: "ana mora", AvailableHours: []string{"friday_7_11"}, Courses: []string{"quimica"}},
		{Name: "  ", AvailableHours: []string{"friday_7_11"}},
		{Name: "Luis Soto", AvailableHours: []string{}, Courses: []string{"quimica"}},
	})

	//** Assert
	assert.Equal(t, 2, loaded)

	professors := store.Professors()
	assert.Len(t, professors, 2)
	assert.Equal(t, Professor{
		Name:     "ana_mora",
		IdNumber: "1",
		AvailableBlocks: []TimeBlock{
			{Day: Monday, Start: 7, End: 11},
			{Day: Tuesday, Start: 12, End: 16},
		},
		TeachableCourses: []string{"calculo", "fisica"},
	}, professors[0])
	assert.Equal(t, "luis_soto", professors[1].Name)
	assert.Empty(t, professors[1].AvailableBlocks)

	professor, ok := store.Professor("Ana Mora")
	assert.True(t, ok)
	assert.True(t, professor.CanTeach("fisica"))
	assert.False(t, professor.CanTeach("quimica"))
	assert.True(t, professor.AvailableAt(TimeBlock{Day: Tuesday, Start: 12, End: 16}))
	assert.False(t, professor.AvailableAt(TimeBlock{Day: Tuesday, Start: 12, End: 15}))
}

func TestFactStoreLoadCourses(t *testing.T) {
	store := NewFactStore()

	loaded := store.LoadCourses([]CourseRecord{
		{Name: "Redes", Type: "Lab", Credits: 4, Semester: 7},
		{Name: "redes", Type: "normal", Credits: 3, Semester: 2},
		{Name: "etica", Type: "normal", Credits: 0, Semester: 2},
		{Name: "historia", Type: "normal", Credits: 2, Semester: 0},
		{Name: "compiladores", Type: "normal", Credits: 4, Semester: 5},
	})

	assert.Equal(t, 2, loaded)
	assert.Equal(t, []Course{
		{Name: "redes", RoomType: "lab", Credits: 4, Semester: 7},
		{Name: "compiladores", RoomType: "normal", Credits: 4, Semester: 5},
	}, store.Courses())

	_, ok := store.Course("etica")
	assert.False(t, ok)
}

func TestFactStoreClear(t *testing.T) {
	store := NewFactStore()
	store.LoadProfessors([]ProfessorRecord{{Name: "Ana Mora", AvailableHours: []string{"monday_7_11"}, Courses: []string{"calculo"}}})
	store.LoadCourses([]CourseRecord{{Name: "calculo", Type: "normal", Credits: 4, Semester: 1}})

	store.Clear()

	assert.Empty(t, store.Professors())
	assert.Empty(t, store.Courses())
	_, ok := store.Professor("ana_mora")
	assert.False(t, ok)

	// Names are free again after clearing
	assert.Equal(t, 1, store.LoadCourses([]CourseRecord{{Name: "calculo", Type: "lab", Credits: 4, Semester: 1}}))
	course, ok := store.Course("calculo")
	assert.True(t, ok)
	assert.Equal(t, "lab", course.RoomType)
}

func TestFactStoreReturnsCopies(t *testing.T) {
	store := NewFactStore()
	store.LoadCourses([]CourseRecord{{Name: "calculo", Type: "normal", Credits: 4, Semester: 1}})

	courses := store.Courses()
	courses[0].Name = "mutated"

	assert.Equal(t, "calculo", store.Courses()[0].Name)
}

func TestFactsRecordsReload(t *testing.T) {
	store := NewFactStore()
	store.LoadProfessors([]ProfessorRecord{{Name: "Ana Mora", IdNumber: "7", AvailableHours: []string{"wednesday_12_4"}, Courses: []string{"Redes"}}})
	store.LoadCourses([]CourseRecord{{Name: "Redes", Type: "Lab", Credits: 4, Semester: 7}})

	professor := store.Professors()[0].Record()
	course := store.Courses()[0].Record()
	assert.Equal(t, ProfessorRecord{Name: "ana_mora", IdNumber: "7", AvailableHours: []string{"wednesday_12_16"}, Courses: []string{"redes"}}, professor)
	assert.Equal(t, CourseRecord{Name: "redes", Type: "lab", Credits: 4, Semester: 7}, course)

	reloaded := NewFactStore()
	reloaded.LoadProfessors([]ProfessorRecord{professor})
	reloaded.LoadCourses([]CourseRecord{course})
	assert.Equal(t, store.Professors(), reloaded.Professors())
	assert.Equal(t, store.Courses(), reloaded.Courses())
}
