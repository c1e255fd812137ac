// ABOUTME: Tests for the journal service against a real SQLite store.
// ABOUTME: Checks that every action returns the post-change view.
package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/harperreed/fitnessfiend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "workouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestAddReturnsUpdatedView(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	v, err := j.Add(ctx, "", "Squat", 135, 5, 3, "felt strong")
	require.NoError(t, err)
	require.NotNil(t, v.Changed)
	assert.NotZero(t, v.Changed.ID)
	assert.Len(t, v.Entries, 1)
	assert.Nil(t, v.Stats)

	v, err = j.Add(ctx, "", "Squat", 225, 3, 5, "PR")
	require.NoError(t, err)
	assert.Len(t, v.Entries, 2)
}

func TestAddWithFilterIncludesStats(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	_, err := j.Add(ctx, "", "Squat", 135, 5, 3, "")
	require.NoError(t, err)
	_, err = j.Add(ctx, "", "Bench", 155, 8, 3, "")
	require.NoError(t, err)

	v, err := j.Add(ctx, "Squat", "Squat", 225, 3, 5, "")
	require.NoError(t, err)

	assert.Equal(t, "Squat", v.Filter)
	assert.Len(t, v.Entries, 2)
	require.NotNil(t, v.Stats)
	assert.Equal(t, 225, v.Stats.MaxWeight)
	assert.Equal(t, 4.0, v.Stats.AvgReps)
	assert.Equal(t, 4.0, v.Stats.AvgSets)
}

func TestAddCoercesWeight(t *testing.T) {
	j := newTestJournal(t)

	v, err := j.Add(context.Background(), "", "Bench", "abc", 8, 3, "")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Changed.Weight)
	assert.Equal(t, 0, v.Entries[0].Weight)
}

func TestAddRequiresExercise(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.Add(context.Background(), "", "   ", 1, 1, 1, "")
	assert.True(t, errors.Is(err, ErrExerciseRequired))

	v, err := j.Show(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, v.Entries)
}

func TestEdit(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	added, err := j.Add(ctx, "", "Squat", 135, 5, 3, "")
	require.NoError(t, err)
	id := added.Changed.ID

	v, err := j.Edit(ctx, "", id, "Squat", 145, 5, 3, "heavier")
	require.NoError(t, err)
	assert.Equal(t, 145, v.Changed.Weight)
	assert.Equal(t, "heavier", v.Entries[0].Notes)

	_, err = j.Edit(ctx, "", id+100, "Squat", 1, 1, 1, "")
	assert.True(t, errors.Is(err, storage.ErrWorkoutNotFound))

	_, err = j.Edit(ctx, "", id, "", 1, 1, 1, "")
	assert.True(t, errors.Is(err, ErrExerciseRequired))
}

func TestRemove(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	added, err := j.Add(ctx, "", "Squat", 135, 5, 3, "")
	require.NoError(t, err)

	v, err := j.Remove(ctx, "", added.Changed.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Entries)
	assert.Nil(t, v.Changed)

	_, err = j.Remove(ctx, "", added.Changed.ID)
	assert.NoError(t, err)
}

func TestShowFilterWithoutMatches(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	_, err := j.Add(ctx, "", "Squat", 135, 5, 3, "")
	require.NoError(t, err)

	v, err := j.Show(ctx, "Deadlift")
	require.NoError(t, err)
	assert.Equal(t, "Deadlift", v.Filter)
	assert.Empty(t, v.Entries)
	assert.Nil(t, v.Stats)
}

func TestShowRoundsStats(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	for _, reps := range []int{5, 5, 6} {
		_, err := j.Add(ctx, "", "Row", 95, reps, 3, "")
		require.NoError(t, err)
	}

	v, err := j.Show(ctx, "Row")
	require.NoError(t, err)
	require.NotNil(t, v.Stats)
	assert.Equal(t, 5.33, v.Stats.AvgReps)
	assert.Equal(t, 3, v.Stats.Count)
}

func TestAddTrimsFilterLikeExercise(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	v, err := j.Add(ctx, " Squat ", " Squat ", 135, 5, 3, "")
	require.NoError(t, err)

	assert.Equal(t, "Squat", v.Changed.Exercise)
	assert.Equal(t, "Squat", v.Filter)
	assert.Len(t, v.Entries, 1)
	require.NotNil(t, v.Stats)
	assert.Equal(t, 135, v.Stats.MaxWeight)
}

// unreadableStore writes normally but fails every list.
type unreadableStore struct {
	Store
}

var errListFailed = errors.New("list failed")

func (s unreadableStore) ListWorkouts(context.Context) ([]*models.WorkoutEntry, error) {
	return nil, errListFailed
}

func (s unreadableStore) ListWorkoutsByExercise(context.Context, string) ([]*models.WorkoutEntry, error) {
	return nil, errListFailed
}

func TestRefreshFailureKeepsChangedEntry(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "workouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	j := New(unreadableStore{Store: db})
	ctx := context.Background()

	v, err := j.Add(ctx, "Squat", "Squat", 135, 5, 3, "")
	require.ErrorIs(t, err, ErrRefreshFailed)
	assert.ErrorIs(t, err, errListFailed)
	require.NotNil(t, v)
	require.NotNil(t, v.Changed)
	assert.NotZero(t, v.Changed.ID)
	assert.Equal(t, "Squat", v.Filter)

	v, err = j.Edit(ctx, "", v.Changed.ID, "Squat", 145, 5, 3, "")
	require.ErrorIs(t, err, ErrRefreshFailed)
	require.NotNil(t, v.Changed)
	assert.Equal(t, 145, v.Changed.Weight)

	_, err = j.Remove(ctx, "", v.Changed.ID)
	require.ErrorIs(t, err, ErrRefreshFailed)

	entries, err := db.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "writes went through despite the failed refresh")
}

func TestFailedWriteIsNotRefreshError(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.Edit(context.Background(), "", 999, "Squat", 1, 1, 1, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRefreshFailed)
}
