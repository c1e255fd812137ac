// ABOUTME: Tests for JSON, YAML, and Markdown export and JSON import.
// ABOUTME: Verifies format structure and that import reassigns ids.
package storage

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedJournal(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	for _, w := range []struct {
		exercise          string
		weight, reps, set int
		notes             string
	}{
		{"Squat", 135, 5, 3, "felt strong"},
		{"Squat", 225, 3, 5, "PR"},
		{"Bench", 155, 8, 3, "pause | touch"},
	} {
		if _, err := db.InsertWorkout(ctx, w.exercise, w.weight, w.reps, w.set, w.notes); err != nil {
			t.Fatalf("InsertWorkout failed: %v", err)
		}
	}
	if err := db.SaveProfile(ctx, &models.Profile{Name: "Sam", Weight: "180"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
}

func TestGetAllData(t *testing.T) {
	db := setupTestDB(t)
	seedJournal(t, db)

	data, err := db.GetAllData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "fiend", data.Tool)
	assert.NotEmpty(t, data.InstallationID)
	assert.Len(t, data.Workouts, 3)
	require.NotNil(t, data.Profile)
	assert.Equal(t, "Sam", data.Profile.Name)
}

func TestExportJSONStructure(t *testing.T) {
	db := setupTestDB(t)
	seedJournal(t, db)

	raw, err := db.ExportJSON(context.Background())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "fiend", decoded["tool"])

	workouts, ok := decoded["workouts"].([]any)
	require.True(t, ok)
	require.Len(t, workouts, 3)

	first := workouts[0].(map[string]any)
	assert.Contains(t, first, "workout_id")
	assert.Equal(t, "Squat", first["exercise"])
}

func TestImportJSONIntoFreshStore(t *testing.T) {
	src := setupTestDB(t)
	seedJournal(t, src)
	ctx := context.Background()

	raw, err := src.ExportJSON(ctx)
	require.NoError(t, err)

	dst := setupTestDB(t)
	existing, err := dst.InsertWorkout(ctx, "Row", 95, 10, 3, "")
	require.NoError(t, err)

	summary, err := dst.ImportJSON(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Workouts)
	assert.True(t, summary.Profile)

	all, err := dst.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, existing.ID, all[0].ID)
	for _, w := range all[1:] {
		assert.Greater(t, w.ID, existing.ID, "imported entries get fresh ids")
	}

	stats, err := dst.ExerciseStats(ctx, "Squat")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 225, stats.MaxWeight)

	profile, err := dst.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.ImportJSON(context.Background(), []byte("{not json"))
	assert.Error(t, err)
}

func TestImportJSONNullEntry(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	raw := []byte(`{"workouts":[{"exercise":"Squat","weight":135,"reps":5,"sets":3},null]}`)

	var summary *ImportSummary
	var err error
	require.NotPanics(t, func() { summary, err = db.ImportJSON(ctx, raw) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import workout #2: empty entry")
	assert.Equal(t, 1, summary.Workouts)

	entries, err := db.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Squat", entries[0].Exercise)
}

func TestExportYAMLGroupsByExercise(t *testing.T) {
	db := setupTestDB(t)
	seedJournal(t, db)

	raw, err := db.ExportYAML(context.Background())
	require.NoError(t, err)

	var decoded struct {
		Tool      string `yaml:"tool"`
		Exercises []struct {
			Exercise string `yaml:"exercise"`
			Stats    struct {
				Count     int     `yaml:"count"`
				MaxWeight int     `yaml:"max_weight"`
				AvgReps   float64 `yaml:"avg_reps"`
			} `yaml:"stats"`
			Entries []map[string]any `yaml:"entries"`
		} `yaml:"exercises"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &decoded))

	assert.Equal(t, "fiend", decoded.Tool)
	require.Len(t, decoded.Exercises, 2)
	assert.Equal(t, "Bench", decoded.Exercises[0].Exercise)
	assert.Equal(t, "Squat", decoded.Exercises[1].Exercise)

	squat := decoded.Exercises[1]
	assert.Equal(t, 2, squat.Stats.Count)
	assert.Equal(t, 225, squat.Stats.MaxWeight)
	assert.Equal(t, 4.0, squat.Stats.AvgReps)
	assert.Len(t, squat.Entries, 2)
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	seedJournal(t, db)

	md, err := db.ExportMarkdown(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Workout Journal - "))
	assert.Contains(t, md, "## Bench")
	assert.Contains(t, md, "## Squat")
	assert.Contains(t, md, "Max weight: 225 lbs")
	assert.Contains(t, md, "| ID | Weight | Reps | Sets | Volume | Notes |")
	assert.Contains(t, md, "| 2 | 225 lbs | 3 | 5 | 3375 | PR |")
	assert.Contains(t, md, `pause \| touch`)
}

func TestExportMarkdownFiltered(t *testing.T) {
	db := setupTestDB(t)
	seedJournal(t, db)

	exercise := "Bench"
	md, err := db.ExportMarkdown(context.Background(), &exercise)
	require.NoError(t, err)

	assert.Contains(t, md, "## Bench")
	assert.NotContains(t, md, "## Squat")
}

func TestExportMarkdownEmpty(t *testing.T) {
	db := setupTestDB(t)

	md, err := db.ExportMarkdown(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, md, "No workouts logged.")
}
