// ABOUTME: Repository interface for the workout log store.
// ABOUTME: Defines the contract for workout entries, stats, and profile settings.
package storage

import (
	"context"

	"github.com/harperreed/fitnessfiend/internal/models"
)

// Repository defines the storage interface for the journal.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Workout entry operations
	InsertWorkout(ctx context.Context, exercise string, weight, reps, sets any, notes string) (*models.WorkoutEntry, error)
	CreateWorkout(ctx context.Context, e *models.WorkoutEntry) error
	UpdateWorkout(ctx context.Context, id int64, exercise string, weight, reps, sets any, notes string) (*models.WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, id int64) error
	GetWorkout(ctx context.Context, id int64) (*models.WorkoutEntry, error)
	ListWorkouts(ctx context.Context) ([]*models.WorkoutEntry, error)

	// Exercise queries
	ListWorkoutsByExercise(ctx context.Context, exercise string) ([]*models.WorkoutEntry, error)
	ExerciseStats(ctx context.Context, exercise string) (*models.ExerciseStats, error)
	ListExercises(ctx context.Context) ([]string, error)

	// Profile settings
	LoadProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) error
	SetProfileField(ctx context.Context, field models.ProfileField, value []byte) error
	InstallationID(ctx context.Context) (string, error)

	// Export/Import
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) (*ImportSummary, error)

	// Lifecycle
	Close() error
}
