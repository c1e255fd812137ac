// ABOUTME: WorkoutEntry and ExerciseStats models for the lifting journal.
// ABOUTME: An entry is one logged exercise with weight, reps, sets, and notes.
package models

import "math"

// WorkoutEntry represents one logged performance of an exercise.
type WorkoutEntry struct {
	ID       int64  `json:"workout_id" yaml:"workout_id"`
	Exercise string `json:"exercise" yaml:"exercise"`
	Weight   int    `json:"weight" yaml:"weight"` // pounds
	Reps     int    `json:"reps" yaml:"reps"`
	Sets     int    `json:"sets" yaml:"sets"`
	Notes    string `json:"notes" yaml:"notes"`
}

// NewWorkoutEntry builds an unsaved entry, coercing the numeric fields with CoerceInt.
// The ID stays zero until the store assigns one.
func NewWorkoutEntry(exercise string, weight, reps, sets any, notes string) *WorkoutEntry {
	return &WorkoutEntry{
		Exercise: exercise,
		Weight:   CoerceInt(weight),
		Reps:     CoerceInt(reps),
		Sets:     CoerceInt(sets),
		Notes:    notes,
	}
}

// Volume is weight × reps × sets.
func (e *WorkoutEntry) Volume() int {
	return e.Weight * e.Reps * e.Sets
}

// ExerciseStats aggregates every entry of a single exercise.
type ExerciseStats struct {
	Exercise  string  `json:"exercise" yaml:"exercise"`
	Count     int     `json:"count" yaml:"count"`
	MaxWeight int     `json:"max_weight" yaml:"max_weight"`
	AvgReps   float64 `json:"avg_reps" yaml:"avg_reps"`
	AvgSets   float64 `json:"avg_sets" yaml:"avg_sets"`
}

// Rounded returns a copy with the averages rounded to two decimal places.
func (s *ExerciseStats) Rounded() *ExerciseStats {
	if s == nil {
		return nil
	}
	out := *s
	out.AvgReps = Round2(s.AvgReps)
	out.AvgSets = Round2(s.AvgSets)
	return &out
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
