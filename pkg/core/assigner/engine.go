package assigner

import (
	"sort"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

// DrawConfig carries everything one draw needs. Each run gets its own
// instances; nothing here is shared or reused across runs.
type DrawConfig struct {
	// PersonSpecs is the ordered list of participants with their declared
	// constraints, as produced by the input boundary
	PersonSpecs []model.PersonSpec

	// Universe is the ordered list of declared groups
	Universe []model.GroupSpec

	// Rand resolves ties between equally good groups. When nil the
	// earliest-declared group wins, which makes the whole draw
	// deterministic without a seed.
	Rand Rand
}

// Draw runs the full pipeline: resolve eligibility, plan target sizes,
// assign, validate. Configuration errors abort before any assignment
// work; capacity warnings ride along with a successful outcome.
func Draw(cfg DrawConfig) (*Outcome, []CapacityWarning, error) {
	if len(cfg.Universe) == 0 {
		return nil, nil, ErrNoGroupsDefined
	}

	people, err := ResolveEligibility(cfg.PersonSpecs, cfg.Universe)
	if err != nil {
		return nil, nil, err
	}

	targets, err := PlanTargetSizes(len(people), cfg.Universe)
	if err != nil {
		return nil, nil, err
	}

	outcome := Assign(people, cfg.Universe, targets, cfg.Rand)

	warnings, err := Validate(people, outcome)
	if err != nil {
		return nil, nil, err
	}

	return outcome, warnings, nil
}

// Assign produces the final person-to-group mapping.
//
// Fixed persons (eligibility a strict subset of the universe) go first,
// most-constrained first, each into the smallest of their eligible
// groups regardless of ceiling: hard constraints are never dropped, a
// breached ceiling is only flagged. Flexible persons follow in input
// order, into the smallest group still under its ceiling (or any group
// once all are full), ties resolved lunch-before-dinner and then by
// the injected random source.
func Assign(people []Person, universe []model.GroupSpec, targets map[string]int, rng Rand) *Outcome {
	groups := make([]*Group, len(universe))
	for i, spec := range universe {
		groups[i] = &Group{
			Spec:          spec,
			Index:         i,
			TargetCeiling: targets[spec.ID()],
		}
	}

	var fixed, flexible []Person
	for _, p := range people {
		if p.Unrestricted(len(universe)) {
			flexible = append(flexible, p)
		} else {
			fixed = append(fixed, p)
		}
	}

	// Most-constrained first; stable sort keeps input order within a tier
	sort.SliceStable(fixed, func(i, j int) bool {
		return personLess(fixed[i], fixed[j])
	})

	for _, p := range fixed {
		candidates := make([]*Group, 0, len(p.Eligible))
		for _, g := range groups {
			if p.Eligible[g.ID()] {
				candidates = append(candidates, g)
			}
		}
		place(p, bestGroup(candidates))
	}

	for _, p := range flexible {
		under := make([]*Group, 0, len(groups))
		for _, g := range groups {
			if g.UnderCeiling() {
				under = append(under, g)
			}
		}
		candidates := under
		if len(candidates) == 0 {
			candidates = groups
		}

		tied := tiedBestGroups(candidates)
		chosen := tied[0]
		if len(tied) > 1 && rng != nil {
			chosen = tied[rng.Intn(len(tied))]
		}
		place(p, chosen)
	}

	outcome := &Outcome{
		Groups:     groups,
		Assignment: make(map[string]string, len(people)),
	}
	for _, g := range groups {
		for _, m := range g.Members {
			outcome.Assignment[m.Name] = g.ID()
		}
		if g.Overflowed {
			outcome.CapacityFlags = append(outcome.CapacityFlags, g.ID())
		}
	}

	return outcome
}

// place appends the person to the group and flags the group if hard
// constraints pushed it past its planned ceiling
func place(p Person, g *Group) {
	g.Members = append(g.Members, p)
	if g.Size() > g.TargetCeiling {
		g.Overflowed = true
	}
}
