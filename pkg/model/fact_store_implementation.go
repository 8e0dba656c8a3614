package model

import (
	"slices"

	"github.com/samber/lo"
)

type factStoreImplementation struct {
	professors     []Professor
	courses        []Course
	professorIndex map[string]int // Position of each professor in professors
	courseIndex    map[string]int // Position of each course in courses
}

func newFactStoreImplementation() *factStoreImplementation {
	return &factStoreImplementation{
		professorIndex: make(map[string]int),
		courseIndex:    make(map[string]int),
	}
}

func (store *factStoreImplementation) LoadProfessors(records []ProfessorRecord) int {
	loaded := 0
	for _, record := range records {
		name := NormalizeName(record.Name)
		if name == "" {
			continue
		}
		// First record wins, names are unique identifiers
		if _, ok := store.professorIndex[name]; ok {
			continue
		}

		blocks := make([]TimeBlock, 0, len(record.AvailableHours))
		for _, encoded := range record.AvailableHours {
			block, err := ParseTimeBlock(encoded)
			if err != nil {
				continue // Ignore malformed entries
			}
			blocks = append(blocks, block)
		}

		courses := lo.Filter(lo.Map(record.Courses, func(course string, _ int) string { return NormalizeName(course) }), func(course string, _ int) bool {
			return course != ""
		})

		store.professorIndex[name] = len(store.professors)
		store.professors = append(store.professors, Professor{
			Name:             name,
			IdNumber:         record.IdNumber,
			AvailableBlocks:  lo.Uniq(blocks),
			TeachableCourses: lo.Uniq(courses),
		})
		loaded++
	}
	return loaded
}

func (store *factStoreImplementation) LoadCourses(records []CourseRecord) int {
	loaded := 0
	for _, record := range records {
		name := NormalizeName(record.Name)
		if name == "" || record.Credits <= 0 || record.Semester <= 0 {
			continue
		}
		if _, ok := store.courseIndex[name]; ok {
			continue
		}

		store.courseIndex[name] = len(store.courses)
		store.courses = append(store.courses, Course{
			Name:     name,
			RoomType: NormalizeName(record.Type),
			Credits:  record.Credits,
			Semester: record.Semester,
		})
		loaded++
	}
	return loaded
}

func (store *factStoreImplementation) Clear() {
	store.professors = nil
	store.courses = nil
	clear(store.professorIndex)
	clear(store.courseIndex)
}

func (store *factStoreImplementation) Professors() []Professor {
	return slices.Clone(store.professors)
}

func (store *factStoreImplementation) Courses() []Course {
	return slices.Clone(store.courses)
}

func (store *factStoreImplementation) Professor(name string) (Professor, bool) {
	i, ok := store.professorIndex[NormalizeName(name)]
	if !ok {
		return Professor{}, false
	}
	return store.professors[i], true
}

func (store *factStoreImplementation) Course(name string) (Course, bool) {
	i, ok := store.courseIndex[NormalizeName(name)]
	if !ok {
		return Course{}, false
	}
	return store.courses[i], true
}
