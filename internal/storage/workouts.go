// ABOUTME: WorkoutEntry CRUD and exercise queries for SQLite storage.
// ABOUTME: Every operation is a single parameterized statement.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/harperreed/fitnessfiend/internal/telemetry/tracing"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Rows written by older builds may hold NULLs; reads never surface them.
const workoutColumns = `workout_id, COALESCE(exercise, ''), COALESCE(weight, 0),
	COALESCE(reps, 0), COALESCE(sets, 0), COALESCE(notes, '')`

// InsertWorkout stores a new entry, coercing weight, reps and sets with
// models.CoerceInt, and returns it with its assigned id.
func (d *DB) InsertWorkout(ctx context.Context, exercise string, weight, reps, sets any, notes string) (*models.WorkoutEntry, error) {
	e := models.NewWorkoutEntry(exercise, weight, reps, sets, notes)
	if err := d.CreateWorkout(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateWorkout stores e as a new row and sets e.ID. Any ID already on e is ignored.
func (d *DB) CreateWorkout(ctx context.Context, e *models.WorkoutEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	db, err := d.conn()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO WorkoutEntry (exercise, weight, reps, sets, notes) VALUES (?, ?, ?, ?, ?)`,
		e.Exercise, e.Weight, e.Reps, e.Sets, e.Notes,
	)
	if err != nil {
		return storageFailure("create workout", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageFailure("create workout", err)
	}
	e.ID = id
	span.SetAttributes(attribute.Int64("workout.id", id))

	logrus.WithFields(logrus.Fields{"workout_id": id, "exercise": e.Exercise}).Debug("workout inserted")
	return nil
}

// UpdateWorkout overwrites every field of the entry with the given id and
// returns the stored result. Returns ErrWorkoutNotFound if no row has that id.
func (d *DB) UpdateWorkout(ctx context.Context, id int64, exercise string, weight, reps, sets any, notes string) (_ *models.WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	e := models.NewWorkoutEntry(exercise, weight, reps, sets, notes)
	e.ID = id

	result, err := db.ExecContext(ctx,
		`UPDATE WorkoutEntry SET exercise = ?, weight = ?, reps = ?, sets = ?, notes = ? WHERE workout_id = ?`,
		e.Exercise, e.Weight, e.Reps, e.Sets, e.Notes, id,
	)
	if err != nil {
		return nil, storageFailure("update workout", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storageFailure("update workout", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("update workout %d: %w", id, ErrWorkoutNotFound)
	}

	logrus.WithField("workout_id", id).Debug("workout updated")
	return e, nil
}

// DeleteWorkout removes the entry with the given id. Deleting an id that is
// already gone succeeds, so repeated deletes are harmless.
func (d *DB) DeleteWorkout(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	db, err := d.conn()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM WorkoutEntry WHERE workout_id = ?`, id)
	if err != nil {
		return storageFailure("delete workout", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageFailure("delete workout", err)
	}
	span.SetAttributes(attribute.Int64("rows.affected", affected))
	if affected == 0 {
		logrus.WithField("workout_id", id).Debug("delete: no such workout")
	}

	return nil
}

// GetWorkout retrieves one entry by id.
func (d *DB) GetWorkout(ctx context.Context, id int64) (_ *models.WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+workoutColumns+` FROM WorkoutEntry WHERE workout_id = ?`, id)

	var e models.WorkoutEntry
	if err := row.Scan(&e.ID, &e.Exercise, &e.Weight, &e.Reps, &e.Sets, &e.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get workout %d: %w", id, ErrWorkoutNotFound)
		}
		return nil, storageFailure("get workout", err)
	}
	return &e, nil
}

// ListWorkouts returns every entry, oldest first.
func (d *DB) ListWorkouts(ctx context.Context) (_ []*models.WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return d.queryWorkouts(ctx, "list workouts",
		`SELECT `+workoutColumns+` FROM WorkoutEntry ORDER BY workout_id ASC`)
}

// ListWorkoutsByExercise returns the entries whose exercise equals the
// filter exactly (case-sensitive, no trimming), oldest first.
func (d *DB) ListWorkoutsByExercise(ctx context.Context, exercise string) (_ []*models.WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.list-by-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	return d.queryWorkouts(ctx, "list workouts by exercise",
		`SELECT `+workoutColumns+` FROM WorkoutEntry WHERE exercise = ? ORDER BY workout_id ASC`,
		exercise)
}

// ExerciseStats computes max weight and average reps/sets over the entries
// of one exercise. Returns nil stats, not zeros, when nothing matches.
func (d *DB) ExerciseStats(ctx context.Context, exercise string) (_ *models.ExerciseStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT COUNT(*), MAX(weight), AVG(reps), AVG(sets)
		FROM WorkoutEntry
		WHERE exercise = ?
	`, exercise)

	var count int
	var maxWeight sql.NullInt64
	var avgReps, avgSets sql.NullFloat64
	if err := row.Scan(&count, &maxWeight, &avgReps, &avgSets); err != nil {
		return nil, storageFailure("exercise stats", err)
	}
	if count == 0 {
		return nil, nil
	}

	return &models.ExerciseStats{
		Exercise:  exercise,
		Count:     count,
		MaxWeight: int(maxWeight.Int64),
		AvgReps:   avgReps.Float64,
		AvgSets:   avgSets.Float64,
	}, nil
}

// ListExercises returns the distinct exercise names in sorted order.
func (d *DB) ListExercises(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT COALESCE(exercise, '') FROM WorkoutEntry ORDER BY 1`)
	if err != nil {
		return nil, storageFailure("list exercises", err)
	}
	defer rows.Close()

	exercises := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageFailure("list exercises", err)
		}
		exercises = append(exercises, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageFailure("list exercises", err)
	}
	return exercises, nil
}

// queryWorkouts runs a SELECT over workoutColumns and materializes every row.
func (d *DB) queryWorkouts(ctx context.Context, op, query string, args ...any) ([]*models.WorkoutEntry, error) {
	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageFailure(op, err)
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, storageFailure(op, err)
	}
	return workouts, nil
}

// scanWorkouts scans multiple rows into a slice of entries. Never returns a nil slice.
func scanWorkouts(rows *sql.Rows) ([]*models.WorkoutEntry, error) {
	workouts := []*models.WorkoutEntry{}

	for rows.Next() {
		var e models.WorkoutEntry
		if err := rows.Scan(&e.ID, &e.Exercise, &e.Weight, &e.Reps, &e.Sets, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, &e)
	}

	return workouts, rows.Err()
}
