package testutil

import "github.com/rooseveltalej/proyecto3/pkg/model"

// SmallFacts is a two-professor catalogue with a known set of schedules:
// calculo/fisica/quimica share Ana's two morning blocks and Luis's monday block.
func SmallFacts() model.Facts {
	return model.Facts{
		Professors: []model.ProfessorRecord{
			{Name: "Ana Mora", IdNumber: "101", AvailableHours: []string{"monday_7_11", "tuesday_7_11"}, Courses: []string{"calculo", "fisica"}},
			{Name: "Luis Soto", IdNumber: "102", AvailableHours: []string{"monday_7_11", "friday_12_4"}, Courses: []string{"fisica", "quimica"}},
		},
		Courses: []model.CourseRecord{
			{Name: "calculo", Type: "normal", Credits: 4, Semester: 1},
			{Name: "fisica", Type: "lab", Credits: 4, Semester: 2},
			{Name: "quimica", Type: "lab", Credits: 3, Semester: 3},
		},
	}
}
