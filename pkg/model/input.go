package model

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ProfessorRecord is a professor as supplied by an ingestion source, before normalization
type ProfessorRecord struct {
	Name           string   `json:"name" mapstructure:"name"`
	IdNumber       string   `json:"id_number" mapstructure:"id_number"`
	AvailableHours []string `json:"available_hours" mapstructure:"available_hours"` // Compact "day_start_end" encodings
	Courses        []string `json:"courses" mapstructure:"courses"`
}

// CourseRecord is a course as supplied by an ingestion source, before normalization
type CourseRecord struct {
	Name     string `json:"name" mapstructure:"name"`
	Type     string `json:"type" mapstructure:"type"`
	Credits  int    `json:"credits" mapstructure:"credits"`
	Semester int    `json:"semester" mapstructure:"semester"`
}

type Facts struct {
	Professors []ProfessorRecord `json:"professors" mapstructure:"professors"`
	Courses    []CourseRecord    `json:"courses" mapstructure:"courses"`

	// Records dropped during ingestion because they could not be decoded
	Skipped int `json:"-" mapstructure:"-"`
}

// NormalizeName lowercases a name and replaces its spaces with underscores
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// ParseListLiteral splits a list literal such as "['monday_7_11', 'friday_7_11']" into its items.
// Brackets and quotes are optional and empty items are dropped.
func ParseListLiteral(literal string) []string {
	trimmed := strings.TrimSpace(literal)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	items := lo.Map(strings.Split(trimmed, ","), func(item string, _ int) string {
		return strings.TrimSpace(strings.Trim(strings.TrimSpace(item), `'"`))
	})
	return lo.Filter(items, func(item string, _ int) bool { return item != "" })
}

// FormatListLiteral is the inverse of ParseListLiteral
func FormatListLiteral(items []string) string {
	quoted := lo.Map(items, func(item string, _ int) string { return "'" + item + "'" })
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Query selects the targets of a search: an explicit course list or a semester parity
type Query struct {
	Courses []string `json:"courses,omitempty" mapstructure:"courses"`
	Parity  string   `json:"parity,omitempty" mapstructure:"parity"`
}

// Instance is a facts file together with the query to run against it
type Instance struct {
	Facts
	Query Query `json:"query"`
}

func FactsFromJson(file string) (Facts, error) {
	inputJson, err := readJsonFile(file)
	if err != nil {
		return Facts{}, err
	}
	return DecodeFacts(inputJson)
}

func InstanceFromJson(file string) (Instance, error) {
	inputJson, err := readJsonFile(file)
	if err != nil {
		return Instance{}, err
	}

	facts, err := DecodeFacts(inputJson)
	if err != nil {
		return Instance{}, err
	}
	instance := Instance{Facts: facts}
	if query, ok := inputJson["query"]; ok {
		if err := decode(query, &instance.Query); err != nil {
			return Instance{}, err
		}
	}
	return instance, nil
}

// DecodeFacts decodes a generic map (e.g. parsed JSON) into Facts. List fields accept either
// arrays or list-literal strings, and numeric fields accept numeric strings.
// Records that cannot be decoded are dropped and counted in Facts.Skipped.
func DecodeFacts(input map[string]any) (Facts, error) {
	var raw struct {
		Professors []any `mapstructure:"professors"`
		Courses    []any `mapstructure:"courses"`
	}
	if err := decode(input, &raw); err != nil {
		return Facts{}, err
	}

	professors, skippedProfessors := decodeEach[ProfessorRecord](raw.Professors)
	courses, skippedCourses := decodeEach[CourseRecord](raw.Courses)
	return Facts{
		Professors: professors,
		Courses:    courses,
		Skipped:    skippedProfessors + skippedCourses,
	}, nil
}

func decodeEach[T any](items []any) ([]T, int) {
	var records []T
	skipped := 0
	for _, item := range items {
		var record T
		if err := decode(item, &record); err != nil {
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, skipped
}

func readJsonFile(file string) (map[string]any, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse input file %v: %w", file, err)
	}
	return inputJson, nil
}

func decode(input any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       listLiteralHook,
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("cannot decode input: %w", err)
	}
	return nil
}

func listLiteralHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	return ParseListLiteral(reflect.ValueOf(data).String()), nil
}
