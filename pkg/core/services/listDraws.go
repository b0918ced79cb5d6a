package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/pkg/db"
)

// HistoryStore defines the database operations needed to inspect past draws
type HistoryStore interface {
	GetDrawRuns(ctx context.Context) ([]db.DrawRun, error)
	GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error)
}

// ListDraws fetches the recorded draw runs, most recent first
func ListDraws(ctx context.Context, store HistoryStore, logger *zap.Logger) ([]db.DrawRun, error) {
	logger.Debug("Fetching draw history")

	runs, err := store.GetDrawRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draw runs: %w", err)
	}

	logger.Debug("Draw history fetched", zap.Int("count", len(runs)))
	return runs, nil
}

// ShowDraw fetches one recorded draw run with its assignments
func ShowDraw(ctx context.Context, store HistoryStore, logger *zap.Logger, runID string) (*db.DrawRun, []db.Assignment, error) {
	logger.Debug("Fetching draw run", zap.String("run_id", runID))

	runs, err := store.GetDrawRuns(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch draw runs: %w", err)
	}

	var run *db.DrawRun
	for i := range runs {
		if runs[i].ID == runID {
			run = &runs[i]
			break
		}
	}
	if run == nil {
		return nil, nil, fmt.Errorf("no recorded draw with id %s", runID)
	}

	assignments, err := store.GetAssignments(ctx, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	return run, assignments, nil
}
