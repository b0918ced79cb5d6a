package assigner

import "github.com/acampayo/mealdraw/pkg/core/model"

// Person is a participant with a resolved eligibility set.
// Eligible holds group identifiers; it is never empty. Persons are
// immutable once created by the resolver.
type Person struct {
	// Name identifies the person (unique within a run)
	Name string

	// Eligible is the set of group identifiers this person may be assigned to
	Eligible map[string]bool

	// InputIndex is the person's position in the parsed input, used as the
	// stable ordering key for tie-breaks
	InputIndex int
}

// Unrestricted reports whether the person may go to every group in a
// universe of the given size
func (p Person) Unrestricted(universeSize int) bool {
	return len(p.Eligible) == universeSize
}

// Group is a meal slot being filled during assignment
type Group struct {
	// Spec is the declared group (kind + day)
	Spec model.GroupSpec

	// Index is the group's declaration-order position, used as the final
	// deterministic tie-break key
	Index int

	// TargetCeiling is the planned maximum size from the size planner
	TargetCeiling int

	// Members is the ordered list of assigned persons (insertion order =
	// assignment order)
	Members []Person

	// Overflowed is set when a fixed person pushed the group past its
	// ceiling; the ceiling is advisory for this group from then on
	Overflowed bool
}

// ID returns the group identifier
func (g *Group) ID() string {
	return g.Spec.ID()
}

// Size returns the current number of assigned members
func (g *Group) Size() int {
	return len(g.Members)
}

// UnderCeiling reports whether the group still has room below its
// planned ceiling
func (g *Group) UnderCeiling() bool {
	return g.Size() < g.TargetCeiling
}

// Outcome is the result of a completed assignment run
type Outcome struct {
	// Groups holds the final member lists, in declaration order
	Groups []*Group

	// Assignment maps each person's name to their group identifier
	Assignment map[string]string

	// CapacityFlags lists the identifiers of groups whose ceiling was
	// breached by fixed-constraint pressure, in declaration order
	CapacityFlags []string
}
