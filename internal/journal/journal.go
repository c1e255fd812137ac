// ABOUTME: Journal service that applies a change and returns the resulting view.
// ABOUTME: Sits between the CLI/MCP surfaces and the workout store.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fitnessfiend/internal/models"
)

var (
	// ErrExerciseRequired is returned when an entry has no exercise name.
	ErrExerciseRequired = errors.New("exercise name is required")

	// ErrRefreshFailed means the change was written but the view after it
	// could not be read. The returned View still carries Changed, so callers
	// must not retry the write.
	ErrRefreshFailed = errors.New("change saved but refresh failed")
)

// Store is the subset of the workout store the journal needs.
type Store interface {
	InsertWorkout(ctx context.Context, exercise string, weight, reps, sets any, notes string) (*models.WorkoutEntry, error)
	UpdateWorkout(ctx context.Context, id int64, exercise string, weight, reps, sets any, notes string) (*models.WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, id int64) error
	ListWorkouts(ctx context.Context) ([]*models.WorkoutEntry, error)
	ListWorkoutsByExercise(ctx context.Context, exercise string) ([]*models.WorkoutEntry, error)
	ExerciseStats(ctx context.Context, exercise string) (*models.ExerciseStats, error)
}

// View is what the journal shows after an operation.
// With an empty Filter, Entries holds every row and Stats is nil.
type View struct {
	Filter  string                 `json:"filter,omitempty"`
	Entries []*models.WorkoutEntry `json:"entries"`
	Stats   *models.ExerciseStats  `json:"stats,omitempty"`
	Changed *models.WorkoutEntry   `json:"changed,omitempty"`
}

// Journal runs user actions against a Store.
type Journal struct {
	store Store
}

// New returns a Journal backed by store.
func New(store Store) *Journal {
	return &Journal{store: store}
}

// Add logs a new entry and returns the view under filter.
func (j *Journal) Add(ctx context.Context, filter, exercise string, weight, reps, sets any, notes string) (*View, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return nil, ErrExerciseRequired
	}

	e, err := j.store.InsertWorkout(ctx, exercise, weight, reps, sets, notes)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}
	return j.refresh(ctx, filter, e)
}

// Edit overwrites entry id and returns the view under filter.
func (j *Journal) Edit(ctx context.Context, filter string, id int64, exercise string, weight, reps, sets any, notes string) (*View, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return nil, ErrExerciseRequired
	}

	e, err := j.store.UpdateWorkout(ctx, id, exercise, weight, reps, sets, notes)
	if err != nil {
		return nil, fmt.Errorf("edit workout: %w", err)
	}
	return j.refresh(ctx, filter, e)
}

// Remove deletes entry id and returns the view under filter.
func (j *Journal) Remove(ctx context.Context, filter string, id int64) (*View, error) {
	if err := j.store.DeleteWorkout(ctx, id); err != nil {
		return nil, fmt.Errorf("remove workout: %w", err)
	}
	return j.refresh(ctx, filter, nil)
}

// refresh reads the view after a successful write. On failure it returns a
// view holding only the filter and changed entry, wrapped in ErrRefreshFailed.
func (j *Journal) refresh(ctx context.Context, filter string, changed *models.WorkoutEntry) (*View, error) {
	v, err := j.Show(ctx, filter)
	if err != nil {
		return &View{Filter: strings.TrimSpace(filter), Changed: changed}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	v.Changed = changed
	return v, nil
}

// Show lists the journal. A non-empty filter restricts entries to that
// exercise and attaches its rounded stats. The filter is trimmed the same
// way Add and Edit trim exercise names.
func (j *Journal) Show(ctx context.Context, filter string) (*View, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		entries, err := j.store.ListWorkouts(ctx)
		if err != nil {
			return nil, fmt.Errorf("list workouts: %w", err)
		}
		return &View{Entries: entries}, nil
	}

	entries, err := j.store.ListWorkoutsByExercise(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list workouts for %s: %w", filter, err)
	}
	stats, err := j.store.ExerciseStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("stats for %s: %w", filter, err)
	}
	return &View{Filter: filter, Entries: entries, Stats: stats.Rounded()}, nil
}
