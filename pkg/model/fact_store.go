package model

import "github.com/samber/lo"

type Professor struct {
	Name             string
	IdNumber         string
	AvailableBlocks  []TimeBlock
	TeachableCourses []string
}

// CanTeach checks whether the course is among the professor's teachable courses
func (professor Professor) CanTeach(course string) bool {
	return lo.Contains(professor.TeachableCourses, course)
}

// AvailableAt checks whether the block is exactly one of the professor's available blocks
func (professor Professor) AvailableAt(block TimeBlock) bool {
	return lo.Contains(professor.AvailableBlocks, block)
}

// Record converts the professor back into an ingestion record with canonical block encodings
func (professor Professor) Record() ProfessorRecord {
	return ProfessorRecord{
		Name:           professor.Name,
		IdNumber:       professor.IdNumber,
		AvailableHours: lo.Map(professor.AvailableBlocks, func(block TimeBlock, _ int) string { return block.String() }),
		Courses:        professor.TeachableCourses,
	}
}

type Course struct {
	Name     string
	RoomType string
	Credits  int
	Semester int
}

func (course Course) Record() CourseRecord {
	return CourseRecord{Name: course.Name, Type: course.RoomType, Credits: course.Credits, Semester: course.Semester}
}

// FactStore holds the normalized professors and courses a search runs against.
// It is not safe for concurrent use: reloading while a search is running must be serialized by the caller.
type FactStore interface {
	// Validates, normalizes and appends professors. Malformed records or time blocks are skipped; returns the number of professors accepted
	LoadProfessors(records []ProfessorRecord) int
	// Validates, normalizes and appends courses. Malformed or duplicate records are skipped; returns the number of courses accepted
	LoadCourses(records []CourseRecord) int
	// Removes every professor and course
	Clear()

	// Professors in insertion order
	Professors() []Professor
	// Courses in insertion (catalogue) order
	Courses() []Course
	Professor(name string) (Professor, bool)
	Course(name string) (Course, bool)
}

func NewFactStore() FactStore {
	return newFactStoreImplementation()
}
