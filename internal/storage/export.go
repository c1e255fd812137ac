// ABOUTME: Export and import functionality for the workout journal.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports JSON.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fitnessfiend/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the journal.
type ExportData struct {
	Version        string                 `json:"version" yaml:"version"`
	ExportedAt     time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool           string                 `json:"tool" yaml:"tool"`
	InstallationID string                 `json:"installation_id,omitempty" yaml:"installation_id,omitempty"`
	Workouts       []*models.WorkoutEntry `json:"workouts" yaml:"workouts"`
	Profile        *models.Profile        `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// ImportSummary holds counts of imported data.
type ImportSummary struct {
	Workouts int
	Profile  bool
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	workouts, err := d.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	profile, err := d.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	installationID, err := d.InstallationID(ctx)
	if err != nil {
		return nil, fmt.Errorf("installation id: %w", err)
	}

	return &ExportData{
		Version:        "1.0",
		ExportedAt:     time.Now(),
		Tool:           "fiend",
		InstallationID: installationID,
		Workouts:       workouts,
		Profile:        profile,
	}, nil
}

// ImportData inserts every exported workout as a new entry, so ids are
// reassigned, and overwrites the profile when one is present. Entries
// inserted before a failure stay in place.
func (d *DB) ImportData(ctx context.Context, data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}

	for i, w := range data.Workouts {
		if w == nil {
			return summary, fmt.Errorf("import workout #%d: empty entry", i+1)
		}
		e := *w
		e.ID = 0
		if err := d.CreateWorkout(ctx, &e); err != nil {
			return summary, fmt.Errorf("import workout %d: %w", w.ID, err)
		}
		summary.Workouts++
	}

	if data.Profile != nil {
		if err := d.SaveProfile(ctx, data.Profile); err != nil {
			return summary, fmt.Errorf("import profile: %w", err)
		}
		summary.Profile = true
	}

	return summary, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(ctx context.Context, raw []byte) (*ImportSummary, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(ctx, &data)
}

type yamlExercise struct {
	Exercise string        `yaml:"exercise"`
	Stats    yamlStats     `yaml:"stats"`
	Entries  []yamlWorkout `yaml:"entries"`
}

type yamlStats struct {
	Count     int     `yaml:"count"`
	MaxWeight int     `yaml:"max_weight"`
	AvgReps   float64 `yaml:"avg_reps"`
	AvgSets   float64 `yaml:"avg_sets"`
}

type yamlWorkout struct {
	ID     int64  `yaml:"id"`
	Weight int    `yaml:"weight"`
	Reps   int    `yaml:"reps"`
	Sets   int    `yaml:"sets"`
	Notes  string `yaml:"notes,omitempty"`
}

// ExportYAML exports all data as YAML, grouped by exercise with stats.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string          `yaml:"version"`
		ExportedAt string          `yaml:"exported_at"`
		Tool       string          `yaml:"tool"`
		Profile    *models.Profile `yaml:"profile,omitempty"`
		Exercises  []yamlExercise  `yaml:"exercises"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Profile:    data.Profile,
		Exercises:  []yamlExercise{},
	}

	for _, group := range groupByExercise(data.Workouts) {
		ye := yamlExercise{Exercise: group.exercise}
		if s := statsOf(group.exercise, group.entries).Rounded(); s != nil {
			ye.Stats = yamlStats{Count: s.Count, MaxWeight: s.MaxWeight, AvgReps: s.AvgReps, AvgSets: s.AvgSets}
		}
		for _, w := range group.entries {
			ye.Entries = append(ye.Entries, yamlWorkout{
				ID: w.ID, Weight: w.Weight, Reps: w.Reps, Sets: w.Sets, Notes: w.Notes,
			})
		}
		yamlData.Exercises = append(yamlData.Exercises, ye)
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports the journal as Markdown tables, one per exercise.
// A non-nil exercise restricts the export to that exercise.
func (d *DB) ExportMarkdown(ctx context.Context, exercise *string) (string, error) {
	var workouts []*models.WorkoutEntry
	var err error
	if exercise != nil {
		workouts, err = d.ListWorkoutsByExercise(ctx, *exercise)
	} else {
		workouts, err = d.ListWorkouts(ctx)
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Workout Journal - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(workouts) == 0 {
		sb.WriteString("No workouts logged.\n")
		return sb.String(), nil
	}

	for _, group := range groupByExercise(workouts) {
		sb.WriteString(fmt.Sprintf("## %s\n\n", group.exercise))
		if s := statsOf(group.exercise, group.entries).Rounded(); s != nil {
			sb.WriteString(fmt.Sprintf("Max weight: %d lbs · Avg reps: %.2f · Avg sets: %.2f · Entries: %d\n\n",
				s.MaxWeight, s.AvgReps, s.AvgSets, s.Count))
		}
		sb.WriteString("| ID | Weight | Reps | Sets | Volume | Notes |\n")
		sb.WriteString("|----|--------|------|------|--------|-------|\n")
		for _, w := range group.entries {
			sb.WriteString(fmt.Sprintf("| %d | %d lbs | %d | %d | %d | %s |\n",
				w.ID, w.Weight, w.Reps, w.Sets, w.Volume(), escapeCell(w.Notes)))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

type exerciseGroup struct {
	exercise string
	entries  []*models.WorkoutEntry
}

// groupByExercise groups entries by exercise name, sorted by name, keeping
// the input order inside each group.
func groupByExercise(workouts []*models.WorkoutEntry) []exerciseGroup {
	grouped := make(map[string][]*models.WorkoutEntry)
	for _, w := range workouts {
		grouped[w.Exercise] = append(grouped[w.Exercise], w)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]exerciseGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, exerciseGroup{exercise: name, entries: grouped[name]})
	}
	return groups
}

// statsOf computes the same aggregates as ExerciseStats over entries already in memory.
func statsOf(exercise string, entries []*models.WorkoutEntry) *models.ExerciseStats {
	if len(entries) == 0 {
		return nil
	}
	s := &models.ExerciseStats{Exercise: exercise, Count: len(entries), MaxWeight: entries[0].Weight}
	var reps, sets int
	for _, e := range entries {
		if e.Weight > s.MaxWeight {
			s.MaxWeight = e.Weight
		}
		reps += e.Reps
		sets += e.Sets
	}
	s.AvgReps = float64(reps) / float64(len(entries))
	s.AvgSets = float64(sets) / float64(len(entries))
	return s
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
