// ABOUTME: MCP resource implementations for the workout journal.
// ABOUTME: Provides fiend://journal and fiend://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	journalURI = "fiend://journal"
	summaryURI = "fiend://summary"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         journalURI,
		Name:        "Workout Journal",
		Description: "Every logged workout entry",
		MIMEType:    "application/json",
	}, s.handleJournalResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Exercise Summary",
		Description: "Per-exercise max weight, average reps, and average sets",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleJournalResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	v, err := s.journal.Show(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	result := map[string]any{
		"count":    len(v.Entries),
		"workouts": v.Entries,
	}
	return jsonResource(journalURI, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	names, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	exercises := make([]*models.ExerciseStats, 0, len(names))
	total := 0
	for _, name := range names {
		stats, err := s.repo.ExerciseStats(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats for %s: %w", name, err)
		}
		if stats == nil {
			continue
		}
		total += stats.Count
		exercises = append(exercises, stats.Rounded())
	}

	result := map[string]any{
		"generated_at":  time.Now().Format(time.RFC3339),
		"exercises":     exercises,
		"total_entries": total,
	}
	return jsonResource(summaryURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
