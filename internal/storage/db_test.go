// ABOUTME: Tests for opening the workout database and its failure modes.
// ABOUTME: Covers lazy initialization, concurrent first use, and StorageError.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFileAndDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "workouts.db")

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, dbPath, db.Path())
}

func TestNewIsLazy(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "workouts.db")

	db := New(dbPath)
	t.Cleanup(func() { db.Close() })

	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "New must not touch the filesystem")

	_, err = db.ListWorkouts(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "first operation should create the database")
}

func TestCloseUnopenedStore(t *testing.T) {
	db := New(filepath.Join(t.TempDir(), "workouts.db"))
	assert.NoError(t, db.Close())
}

func TestConcurrentFirstUse(t *testing.T) {
	db := New(filepath.Join(t.TempDir(), "workouts.db"))
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()

	const workers = 16
	ids := make(chan int64, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := db.InsertWorkout(ctx, "Squat", 100+i, 5, 3, "")
			if err != nil {
				errs <- err
				return
			}
			ids <- e.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Errorf("concurrent insert failed: %v", err)
	}

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	all, err := db.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers)
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "workouts.db")
	ctx := context.Background()

	first, err := Open(dbPath)
	require.NoError(t, err)
	_, err = first.InsertWorkout(ctx, "Deadlift", 315, 5, 1, "")
	require.NoError(t, err)
	id1, err := first.InstallationID(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	all, err := second.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Deadlift", all[0].Exercise)

	id2, err := second.InstallationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "installation id must survive reopen")
}

func TestOpenFailureIsStorageError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0600))

	_, err := Open(filepath.Join(blocker, "sub", "workouts.db"))
	require.Error(t, err)

	var se *StorageError
	require.True(t, errors.As(err, &se), "expected *StorageError, got %T", err)
	assert.Equal(t, "open", se.Op)
	assert.Contains(t, err.Error(), "storage failure")
}

func TestEveryOperationReportsOpenFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	db := New(filepath.Join(blocker, "workouts.db"))
	ctx := context.Background()

	_, err := db.InsertWorkout(ctx, "Squat", 1, 1, 1, "")
	assert.True(t, IsStorageFailure(err), "insert: %v", err)

	_, err = db.UpdateWorkout(ctx, 1, "Squat", 1, 1, 1, "")
	assert.True(t, IsStorageFailure(err), "update: %v", err)

	assert.True(t, IsStorageFailure(db.DeleteWorkout(ctx, 1)), "delete")

	_, err = db.ListWorkouts(ctx)
	assert.True(t, IsStorageFailure(err), "list: %v", err)

	_, err = db.ListWorkoutsByExercise(ctx, "Squat")
	assert.True(t, IsStorageFailure(err), "filter: %v", err)

	_, err = db.ExerciseStats(ctx, "Squat")
	assert.True(t, IsStorageFailure(err), "stats: %v", err)

	assert.NoError(t, db.Close())
}

func TestStatementFailureIsStorageError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	raw, err := db.conn()
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	_, err = db.InsertWorkout(ctx, "Squat", 1, 1, 1, "")
	require.Error(t, err)

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "create workout", se.Op)
	assert.False(t, errors.Is(err, ErrWorkoutNotFound))
}

func TestLegacyRowsWithNulls(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "workouts.db")

	// A table created without NOT NULL constraints, as early builds did.
	legacy, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		CREATE TABLE WorkoutEntry (
			workout_id INTEGER PRIMARY KEY AUTOINCREMENT,
			exercise TEXT, weight INTEGER, reps INTEGER, sets INTEGER, notes TEXT
		);
		INSERT INTO WorkoutEntry (exercise, weight, reps, sets, notes) VALUES ('Squat', NULL, 5, NULL, NULL);
	`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	all, err := db.ListWorkouts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Squat", all[0].Exercise)
	assert.Equal(t, 0, all[0].Weight)
	assert.Equal(t, 5, all[0].Reps)
	assert.Equal(t, 0, all[0].Sets)
	assert.Equal(t, "", all[0].Notes)
}
