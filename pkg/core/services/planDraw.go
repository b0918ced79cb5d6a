package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/internal/config"
	"github.com/acampayo/mealdraw/pkg/core/assigner"
	"github.com/acampayo/mealdraw/pkg/core/model"
)

// PlannedGroup is one group with its planned target ceiling
type PlannedGroup struct {
	Spec          model.GroupSpec
	TargetCeiling int
}

// PlanDraw computes the target sizes the configured groups would get
// for the given number of people, without running an assignment
func PlanDraw(cfg *config.Config, logger *zap.Logger, peopleCount int) ([]PlannedGroup, error) {
	if peopleCount < 0 {
		return nil, fmt.Errorf("people count must not be negative, got %d", peopleCount)
	}

	universe, err := cfg.Universe()
	if err != nil {
		return nil, fmt.Errorf("failed to build group universe: %w", err)
	}

	targets, err := assigner.PlanTargetSizes(peopleCount, universe)
	if err != nil {
		return nil, err
	}

	logger.Debug("Planned target sizes",
		zap.Int("people", peopleCount),
		zap.Int("groups", len(universe)))

	planned := make([]PlannedGroup, len(universe))
	for i, spec := range universe {
		planned[i] = PlannedGroup{Spec: spec, TargetCeiling: targets[spec.ID()]}
	}

	return planned, nil
}
