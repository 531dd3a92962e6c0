// Package importer reads snapshot files produced by an external tracker and
// converts them into domain objects ready for persistence. Refs are local to
// the file; convert resolves them to generated IDs.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot schema versions accepted by this build.
const SchemaVersion = 1

type ImportSchema struct {
	Version  int             `json:"version"`
	Projects []ProjectImport `json:"projects"`
	Workers  []WorkerImport  `json:"workers"`
	Tasks    []TaskImport    `json:"tasks"`
}

type ProjectImport struct {
	Ref       string  `json:"ref"`
	Name      string  `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	// Workers lists worker refs preferred for this project's unassigned tasks.
	Workers []string `json:"workers"`
}

type WorkerImport struct {
	Ref           string  `json:"ref"`
	Name          string  `json:"name"`
	DailyCapacity float64 `json:"daily_capacity"`
	WorkingDays   []int   `json:"working_days"`
}

type TaskImport struct {
	Ref         string           `json:"ref"`
	Project     string           `json:"project"`
	Title       string           `json:"title"`
	StoryPoints float64          `json:"story_points"`
	DependsOn   []string         `json:"depends_on"`
	AssignedTo  *string          `json:"assigned_to"`
	Status      string           `json:"status"`
	Priority    *float64         `json:"priority"`
	CreatedAt   *string          `json:"created_at"`
	Movements   []MovementImport `json:"movements"`
}

type MovementImport struct {
	From string `json:"from"`
	To   string `json:"to"`
	At   string `json:"at"`
}

// Load reads and decodes an import file. Validation is a separate step.
func Load(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
