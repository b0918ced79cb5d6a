package assigner

import "github.com/acampayo/mealdraw/pkg/core/model"

// PlanTargetSizes computes the target ceiling for each group so that
// sizes come out as equal as possible while dinners stay smallest.
//
// Every group gets a base of peopleCount / len(universe). The remainder
// is handed out one unit at a time to lunch groups in declaration
// order, then to dinner groups, so a dinner only grows past base when
// every lunch already has its extra unit.
//
// Returns ErrNoGroupsDefined for an empty universe. A zero people
// count yields all-zero ceilings.
func PlanTargetSizes(peopleCount int, universe []model.GroupSpec) (map[string]int, error) {
	if len(universe) == 0 {
		return nil, ErrNoGroupsDefined
	}

	base := peopleCount / len(universe)
	remainder := peopleCount % len(universe)

	targets := make(map[string]int, len(universe))
	for _, g := range universe {
		targets[g.ID()] = base
	}

	// Lunches first, then dinners, each in declaration order
	for _, kind := range []model.MealKind{model.MealLunch, model.MealDinner} {
		for _, g := range universe {
			if remainder == 0 {
				return targets, nil
			}
			if g.Kind == kind {
				targets[g.ID()]++
				remainder--
			}
		}
	}

	return targets, nil
}
