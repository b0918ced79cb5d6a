package assigner

// The balancing policy is expressed as explicit comparator keys rather
// than ad-hoc conditionals: a group is preferred when it has fewer
// members, then when it is a lunch rather than a dinner, then when it
// was declared earlier. Persons are ordered most-constrained first.

// groupLess reports whether a is a strictly better placement target
// than b under the (current-size, meal-kind-rank, declaration-index) key
func groupLess(a, b *Group) bool {
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	if a.Spec.Kind.Rank() != b.Spec.Kind.Rank() {
		return a.Spec.Kind.Rank() < b.Spec.Kind.Rank()
	}
	return a.Index < b.Index
}

// personLess reports whether a should be placed before b: fewer
// eligible groups first. Equal counts keep stable input order, so this
// is only ever used with a stable sort.
func personLess(a, b Person) bool {
	return len(a.Eligible) < len(b.Eligible)
}

// bestGroup returns the single best group among candidates under the
// full deterministic comparator. Candidates must be non-empty.
func bestGroup(candidates []*Group) *Group {
	best := candidates[0]
	for _, g := range candidates[1:] {
		if groupLess(g, best) {
			best = g
		}
	}
	return best
}

// tiedBestGroups returns every candidate tied on the (current-size,
// meal-kind-rank) key with the best candidate, preserving declaration
// order. The caller resolves the remaining tie, randomly or otherwise.
func tiedBestGroups(candidates []*Group) []*Group {
	best := bestGroup(candidates)
	tied := make([]*Group, 0, len(candidates))
	for _, g := range candidates {
		if g.Size() == best.Size() && g.Spec.Kind.Rank() == best.Spec.Kind.Rank() {
			tied = append(tied, g)
		}
	}
	return tied
}
