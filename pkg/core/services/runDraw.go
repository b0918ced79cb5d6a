package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/internal/config"
	"github.com/acampayo/mealdraw/pkg/core/assigner"
	"github.com/acampayo/mealdraw/pkg/core/model"
	"github.com/acampayo/mealdraw/pkg/db"
	"github.com/acampayo/mealdraw/pkg/parser"
)

// DrawStore defines the database operations needed to record a draw
type DrawStore interface {
	InsertDrawRun(ctx context.Context, run db.DrawRun, assignments []db.Assignment, notes []db.CapacityNote) error
}

// RunDrawResult contains the outcome of a completed draw
type RunDrawResult struct {
	RunID     string
	Seed      int64
	Universe  []model.GroupSpec
	Outcome   *assigner.Outcome
	Warnings  []assigner.CapacityWarning
	Persisted bool
}

// RunDraw parses the pasted message, resolves constraints against the
// configured group universe, runs the balanced assignment and records
// the result. With dryRun set, or with no store configured, nothing is
// persisted.
func RunDraw(
	ctx context.Context,
	store DrawStore,
	cfg *config.Config,
	logger *zap.Logger,
	message string,
	seed int64,
	dryRun bool,
) (*RunDrawResult, error) {
	logger.Debug("Starting draw", zap.Int64("seed", seed), zap.Bool("dry_run", dryRun))

	universe, err := cfg.Universe()
	if err != nil {
		return nil, fmt.Errorf("failed to build group universe: %w", err)
	}
	logger.Debug("Group universe built", zap.Int("groups", len(universe)))

	parsed := parser.ParseMessage(message)
	if len(parsed.People) == 0 {
		return nil, fmt.Errorf("no participants detected in the message")
	}
	logger.Debug("Message parsed",
		zap.Int("people", len(parsed.People)),
		zap.Int("declared_groups", len(parsed.Groups)))

	outcome, warnings, err := assigner.Draw(assigner.DrawConfig{
		PersonSpecs: parsed.People,
		Universe:    universe,
		Rand:        assigner.NewSeededRand(seed),
	})
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		logger.Warn("Capacity exceeded", zap.String("group", w.GroupID),
			zap.Int("ceiling", w.Ceiling), zap.Int("overflow", w.Overflow))
	}

	result := &RunDrawResult{
		RunID:    uuid.New().String(),
		Seed:     seed,
		Universe: universe,
		Outcome:  outcome,
		Warnings: warnings,
	}

	if store == nil || dryRun {
		logger.Info("Draw completed without persisting",
			zap.Int("people", len(outcome.Assignment)),
			zap.Int("warnings", len(warnings)))
		return result, nil
	}

	run := db.DrawRun{
		ID:          result.RunID,
		CreatedAt:   time.Now().UTC(),
		Seed:        seed,
		PeopleCount: len(outcome.Assignment),
		GroupCount:  len(universe),
	}

	var assignments []db.Assignment
	for _, g := range outcome.Groups {
		for position, member := range g.Members {
			assignments = append(assignments, db.Assignment{
				ID:       uuid.New().String(),
				RunID:    run.ID,
				GroupID:  g.ID(),
				Person:   member.Name,
				Position: position,
			})
		}
	}

	var notes []db.CapacityNote
	for _, w := range warnings {
		notes = append(notes, db.CapacityNote{
			ID:       uuid.New().String(),
			RunID:    run.ID,
			GroupID:  w.GroupID,
			Ceiling:  w.Ceiling,
			Overflow: w.Overflow,
		})
	}

	if err := store.InsertDrawRun(ctx, run, assignments, notes); err != nil {
		return nil, fmt.Errorf("failed to record draw: %w", err)
	}
	result.Persisted = true

	logger.Info("Draw completed and recorded",
		zap.String("run_id", run.ID),
		zap.Int("people", run.PeopleCount),
		zap.Int("warnings", len(warnings)))

	return result, nil
}
