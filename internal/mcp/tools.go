// ABOUTME: MCP tool implementations for the workout journal.
// ABOUTME: Provides workout CRUD, filtered listing, stats, and profile tools.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/fitnessfiend/internal/journal"
	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Log an exercise with weight (lbs), reps, and sets. Non-numeric values are stored as 0.",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Overwrite every field of an existing workout entry",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout entry by ID. Deleting a missing ID succeeds.",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workout entries, optionally filtered to one exercise (exact match) with its stats",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_stats",
		Description: "Max weight, average reps, and average sets for one exercise",
	}, s.handleExerciseStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the distinct exercise names in the journal",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the lifter profile (name, age, height, weight)",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Set one or more profile fields; omitted fields are unchanged",
	}, s.handleSetProfile)
}

// Tool input/output types

type addWorkoutInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name, matched exactly when filtering"`
	Weight   any    `json:"weight,omitempty" jsonschema:"Weight in pounds"`
	Reps     any    `json:"reps,omitempty" jsonschema:"Repetitions per set"`
	Sets     any    `json:"sets,omitempty" jsonschema:"Number of sets"`
	Notes    string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type updateWorkoutInput struct {
	ID       int64  `json:"workout_id" jsonschema:"Workout entry ID"`
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
	Weight   any    `json:"weight,omitempty" jsonschema:"Weight in pounds"`
	Reps     any    `json:"reps,omitempty" jsonschema:"Repetitions per set"`
	Sets     any    `json:"sets,omitempty" jsonschema:"Number of sets"`
	Notes    string `json:"notes,omitempty" jsonschema:"Notes; replaces any existing notes"`
}

type workoutOutput struct {
	Workout *models.WorkoutEntry `json:"workout"`
	Message string               `json:"message"`
}

type deleteWorkoutInput struct {
	ID int64 `json:"workout_id" jsonschema:"Workout entry ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listWorkoutsInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Only entries for this exercise"`
}

type exerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
}

type statsOutput struct {
	Exercise string                `json:"exercise"`
	Stats    *models.ExerciseStats `json:"stats,omitempty"`
	Message  string                `json:"message"`
}

type exercisesOutput struct {
	Exercises []string `json:"exercises"`
}

type profileOutput struct {
	Name      string `json:"name"`
	Age       string `json:"age"`
	Height    string `json:"height"`
	Weight    string `json:"weight"`
	HasAvatar bool   `json:"has_avatar"`
}

type setProfileInput struct {
	Name   *string `json:"name,omitempty" jsonschema:"Display name"`
	Age    *string `json:"age,omitempty" jsonschema:"Age"`
	Height *string `json:"height,omitempty" jsonschema:"Height"`
	Weight *string `json:"weight,omitempty" jsonschema:"Body weight"`
}

// Tool handlers

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	v, err := s.journal.Add(ctx, "", input.Exercise, input.Weight, input.Reps, input.Sets, input.Notes)
	if err != nil && !errors.Is(err, journal.ErrRefreshFailed) {
		return nil, workoutOutput{}, fmt.Errorf("failed to add workout: %w", err)
	}

	w := v.Changed
	return nil, workoutOutput{
		Workout: w,
		Message: fmt.Sprintf("Logged %s: %d lbs × %d reps × %d sets (ID: %d)", w.Exercise, w.Weight, w.Reps, w.Sets, w.ID),
	}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	v, err := s.journal.Edit(ctx, "", input.ID, input.Exercise, input.Weight, input.Reps, input.Sets, input.Notes)
	if err != nil && !errors.Is(err, journal.ErrRefreshFailed) {
		return nil, workoutOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}

	return nil, workoutOutput{
		Workout: v.Changed,
		Message: fmt.Sprintf("Updated workout %d", input.ID),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	if _, err := s.journal.Remove(ctx, "", input.ID); err != nil && !errors.Is(err, journal.ErrRefreshFailed) {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %d", input.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, journal.View, error) {
	v, err := s.journal.Show(ctx, input.Exercise)
	if err != nil {
		return nil, journal.View{}, fmt.Errorf("failed to list workouts: %w", err)
	}
	return nil, *v, nil
}

func (s *Server) handleExerciseStats(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, statsOutput, error) {
	stats, err := s.repo.ExerciseStats(ctx, input.Exercise)
	if err != nil {
		return nil, statsOutput{}, fmt.Errorf("failed to compute stats: %w", err)
	}

	out := statsOutput{Exercise: input.Exercise, Stats: stats.Rounded()}
	if stats == nil {
		out.Message = fmt.Sprintf("No entries for %s.", input.Exercise)
	} else {
		out.Message = fmt.Sprintf("%s: max %d lbs, avg %.2f reps, avg %.2f sets over %d entries",
			input.Exercise, out.Stats.MaxWeight, out.Stats.AvgReps, out.Stats.AvgSets, out.Stats.Count)
	}
	return nil, out, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, exercisesOutput, error) {
	names, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, exercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	return nil, exercisesOutput{Exercises: names}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, profileOutput, error) {
	p, err := s.repo.LoadProfile(ctx)
	if err != nil {
		return nil, profileOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return nil, toProfileOutput(p), nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	fields := map[models.ProfileField]*string{
		models.ProfileName:   input.Name,
		models.ProfileAge:    input.Age,
		models.ProfileHeight: input.Height,
		models.ProfileWeight: input.Weight,
	}
	for _, f := range models.AllProfileFields {
		if v := fields[f]; v != nil {
			if err := s.repo.SetProfileField(ctx, f, []byte(*v)); err != nil {
				return nil, profileOutput{}, fmt.Errorf("failed to set %s: %w", f, err)
			}
		}
	}
	return s.handleGetProfile(ctx, req, struct{}{})
}

func toProfileOutput(p *models.Profile) profileOutput {
	return profileOutput{
		Name:      p.Name,
		Age:       p.Age,
		Height:    p.Height,
		Weight:    p.Weight,
		HasAvatar: p.HasAvatar(),
	}
}
