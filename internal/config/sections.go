package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DatabaseConfig locates the SQLite record store.
type DatabaseConfig struct {
	Path string `json:"path"`
}

func (c *DatabaseConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "scheduling.db"
	}
}

func (c DatabaseConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// SearchConfig tunes the scheduling engine.
type SearchConfig struct {
	// MaxResults caps the schedules returned per request, between 1 and 3.
	MaxResults int `json:"max_results"`
	// NodeBudget stops a search after this many candidates; 0 means unbounded.
	NodeBudget uint64 `json:"node_budget"`
	// FeasibilityCheck runs the matching pre-check before searching.
	FeasibilityCheck bool `json:"feasibility_check"`
	// DefaultCourses are scheduled when a request names no course.
	DefaultCourses []string `json:"default_courses"`
}

func (c *SearchConfig) SetDefaults() {
	if c.MaxResults == 0 {
		c.MaxResults = 3
	}
	if c.DefaultCourses == nil {
		c.DefaultCourses = []string{"elementos_de_computacion", "introduccion_a_la_programacion"}
	}
}

func (c SearchConfig) Validate() error {
	if c.MaxResults < 1 || c.MaxResults > 3 {
		return fmt.Errorf("max_results must be between 1 and 3, got %d", c.MaxResults)
	}
	return nil
}

type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown level %s", c.Level)
	}
	return nil
}
