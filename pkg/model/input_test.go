package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListLiteral(t *testing.T) {
	assert.Equal(t, []string{"monday_7_11", "friday_7_11"}, ParseListLiteral("['monday_7_11', 'friday_7_11']"))
	assert.Equal(t, []string{"redes"}, ParseListLiteral(`["redes"]`))
	assert.Equal(t, []string{"a", "b"}, ParseListLiteral("a, ,b"))
	assert.Empty(t, ParseListLiteral("[]"))
	assert.Empty(t, ParseListLiteral(""))
}

func TestFormatListLiteral(t *testing.T) {
	literal := FormatListLiteral([]string{"monday_7_11", "wednesday_12_4"})

	assert.Equal(t, "['monday_7_11', 'wednesday_12_4']", literal)
	assert.Equal(t, []string{"monday_7_11", "wednesday_12_4"}, ParseListLiteral(literal))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "quiros_oviedo_rocio", NormalizeName("  Quiros Oviedo Rocio "))
	assert.Equal(t, "bases_de_datos_i", NormalizeName("bases_de_datos_i"))
}

func TestDecodeFacts(t *testing.T) {
	//** Arrange
	input := map[string]any{
		"professors": []any{
			map[string]any{
				"name":            "Ana Mora",
				"id_number":       "123",
				"available_hours": "['monday_7_11', 'wednesday_12_4']",
				"courses":         []any{"calculo"},
			},
		},
		"courses": []any{
			map[string]any{"name": "calculo", "type": "normal", "credits": "4", "semester": 1.0},
		},
	}

	//** Act
	facts, err := DecodeFacts(input)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, []ProfessorRecord{{
		Name:           "Ana Mora",
		IdNumber:       "123",
		AvailableHours: []string{"monday_7_11", "wednesday_12_4"},
		Courses:        []string{"calculo"},
	}}, facts.Professors)
	assert.Equal(t, []CourseRecord{{Name: "calculo", Type: "normal", Credits: 4, Semester: 1}}, facts.Courses)
}

func TestFactsFromJson(t *testing.T) {
	facts, err := FactsFromJson(seedFactsFile)

	assert.Nil(t, err)
	assert.Len(t, facts.Professors, 17)
	assert.Len(t, facts.Courses, 24)
	assert.Equal(t, []string{"monday_7_11", "wednesday_12_4", "friday_7_11"}, facts.Professors[0].AvailableHours)

	_, err = FactsFromJson("testdata/facts/missing.json")
	assert.NotNil(t, err)
}

func TestInstanceFromJson(t *testing.T) {
	instance, err := InstanceFromJson(satisfiableTestDirectory + "odd_semesters.json")

	assert.Nil(t, err)
	assert.Equal(t, Query{Parity: "odd"}, instance.Query)
	assert.Len(t, instance.Professors, 2)
	assert.Equal(t, []string{"monday_7_11", "wednesday_12_4"}, instance.Professors[0].AvailableHours)
	assert.Len(t, instance.Courses, 3)
}

func TestDecodeFactsSkipsMalformedRecords(t *testing.T) {
	//** Arrange
	input := map[string]any{
		"professors": []any{
			map[string]any{"name": "Ana Mora", "available_hours": []any{"monday_7_11"}, "courses": []any{"redes"}},
			"not a record",
		},
		"courses": []any{
			map[string]any{"name": "redes", "type": "normal", "credits": 4, "semester": 7},
			map[string]any{"name": "etica", "type": "normal", "credits": "three", "semester": 2},
		},
	}

	//** Act
	facts, err := DecodeFacts(input)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, 2, facts.Skipped)
	assert.Len(t, facts.Professors, 1)
	assert.Equal(t, []CourseRecord{{Name: "redes", Type: "normal", Credits: 4, Semester: 7}}, facts.Courses)
}

func TestFactsFromJsonKeepsValidRecords(t *testing.T) {
	//** Arrange
	file := filepath.Join(t.TempDir(), "facts.json")
	content := `{"professors": [], "courses": [
		{"name": "redes", "type": "normal", "credits": 4, "semester": 7},
		{"name": "etica", "type": "normal", "credits": "three", "semester": 2}
	]}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	//** Act
	facts, err := FactsFromJson(file)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, 1, facts.Skipped)
	assert.Equal(t, []CourseRecord{{Name: "redes", Type: "normal", Credits: 4, Semester: 7}}, facts.Courses)
}
