package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestFeasible(t *testing.T) {
	g := NewWithT(t)

	store := NewFactStore()
	store.LoadProfessors([]ProfessorRecord{
		{Name: "Ana Mora", AvailableHours: []string{"monday_7_11"}, Courses: []string{"calculo", "fisica", "quimica"}},
		{Name: "Luis Soto", AvailableHours: []string{"tuesday_7_11"}, Courses: []string{"fisica"}},
	})
	index := newAvailabilityIndex(store.Professors())

	g.Expect(feasible([]string{"calculo", "fisica"}, index)).To(BeTrue())
	// Three courses competing for two slots
	g.Expect(feasible([]string{"calculo", "fisica", "quimica"}, index)).To(BeFalse())
	// Calculo and quimica both depend on Ana's single block
	g.Expect(feasible([]string{"calculo", "quimica"}, index)).To(BeFalse())
	g.Expect(feasible([]string{"calculo", "etica"}, index)).To(BeFalse())
}
