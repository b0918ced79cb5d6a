package assigner

import (
	"fmt"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

// Validate checks the outcome's post-conditions, in order:
//
//  1. every input person appears exactly once across all member lists
//  2. every person's group is in their eligibility set
//  3. max-minus-min size per meal kind is at most 1
//
// Failures of 1 or 2 are engine defects, returned as *InvariantError.
// Check 3 is relaxed for runs where fixed constraints breached a
// ceiling; those groups are reported as capacity warnings instead.
func Validate(people []Person, outcome *Outcome) ([]CapacityWarning, error) {
	seen := make(map[string]int, len(people))
	for _, g := range outcome.Groups {
		for _, m := range g.Members {
			seen[m.Name]++
		}
	}

	for _, p := range people {
		switch seen[p.Name] {
		case 1:
			// assigned exactly once
		case 0:
			return nil, &InvariantError{
				Check:  "completeness",
				Detail: fmt.Sprintf("person %q was never assigned", p.Name),
			}
		default:
			return nil, &InvariantError{
				Check:  "completeness",
				Detail: fmt.Sprintf("person %q was assigned %d times", p.Name, seen[p.Name]),
			}
		}
	}

	eligibleByName := make(map[string]map[string]bool, len(people))
	for _, p := range people {
		eligibleByName[p.Name] = p.Eligible
	}
	for _, g := range outcome.Groups {
		for _, m := range g.Members {
			if !eligibleByName[m.Name][g.ID()] {
				return nil, &InvariantError{
					Check:  "eligibility",
					Detail: fmt.Sprintf("person %q landed in %q which is outside their eligibility set", m.Name, g.ID()),
				}
			}
		}
	}

	if len(outcome.CapacityFlags) > 0 {
		return capacityWarnings(outcome), nil
	}

	for _, kind := range []model.MealKind{model.MealLunch, model.MealDinner} {
		if err := checkSpread(outcome.Groups, kind); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// checkSpread verifies the size-balance bound for one meal kind
func checkSpread(groups []*Group, kind model.MealKind) error {
	minSize, maxSize := -1, -1
	for _, g := range groups {
		if g.Spec.Kind != kind {
			continue
		}
		if minSize == -1 || g.Size() < minSize {
			minSize = g.Size()
		}
		if g.Size() > maxSize {
			maxSize = g.Size()
		}
	}

	if minSize != -1 && maxSize-minSize > 1 {
		return &InvariantError{
			Check:  "balance",
			Detail: fmt.Sprintf("%s group sizes spread from %d to %d", kind, minSize, maxSize),
		}
	}
	return nil
}

// capacityWarnings reports each flagged group and by how much it
// exceeded its ceiling
func capacityWarnings(outcome *Outcome) []CapacityWarning {
	warnings := make([]CapacityWarning, 0, len(outcome.CapacityFlags))
	for _, g := range outcome.Groups {
		if !g.Overflowed {
			continue
		}
		warnings = append(warnings, CapacityWarning{
			GroupID:  g.ID(),
			Ceiling:  g.TargetCeiling,
			Size:     g.Size(),
			Overflow: g.Size() - g.TargetCeiling,
		})
	}
	return warnings
}
