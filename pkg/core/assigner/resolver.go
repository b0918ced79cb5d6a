package assigner

import (
	"fmt"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

// ResolveEligibility turns each person's declared constraint into a
// concrete eligibility set validated against the group universe.
//
// An unrestricted constraint resolves to the full universe. A pinned
// constraint resolves to exactly the named groups; naming a group that
// does not exist fails the whole run with ErrUnknownGroupReference.
//
// Output order matches input order and the function has no side
// effects, so resolution is deterministic for deterministic input.
func ResolveEligibility(specs []model.PersonSpec, universe []model.GroupSpec) ([]Person, error) {
	known := make(map[string]bool, len(universe))
	for _, g := range universe {
		known[g.ID()] = true
	}

	people := make([]Person, 0, len(specs))
	for i, spec := range specs {
		eligible := make(map[string]bool)

		if spec.Constraint.Anywhere {
			for _, g := range universe {
				eligible[g.ID()] = true
			}
		} else {
			for _, id := range spec.Constraint.Groups {
				if !known[id] {
					return nil, fmt.Errorf("%w: %q names group %q which is not in the universe",
						ErrUnknownGroupReference, spec.Name, id)
				}
				eligible[id] = true
			}
		}

		if len(eligible) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoEligibleGroups, spec.Name)
		}

		people = append(people, Person{
			Name:       spec.Name,
			Eligible:   eligible,
			InputIndex: i,
		})
	}

	return people, nil
}
