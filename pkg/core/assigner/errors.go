package assigner

import (
	"errors"
	"fmt"
)

// Configuration errors. These are user-facing: they abort the run before
// any assignment work begins and are surfaced verbatim.
var (
	// ErrUnknownGroupReference is returned when a person's constraint names
	// a group that does not exist in the group universe
	ErrUnknownGroupReference = errors.New("unknown group reference")

	// ErrNoGroupsDefined is returned when the group universe is empty
	ErrNoGroupsDefined = errors.New("no groups defined")

	// ErrNoEligibleGroups is returned when a person's constraint resolves
	// to an empty eligibility set
	ErrNoEligibleGroups = errors.New("person has no eligible groups")
)

// InvariantError reports a defect in the engine itself: the final state
// violated a post-condition that no user input can legally cause.
// It is distinct from configuration errors so callers can tell a bad
// message apart from a bug.
type InvariantError struct {
	Check  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("assignment invariant violated (%s): %s", e.Check, e.Detail)
}

// CapacityWarning reports a group whose final size exceeded its planned
// ceiling because hard constraints forced extra members in. It is
// informational: the draw still completes.
type CapacityWarning struct {
	GroupID  string
	Ceiling  int
	Size     int
	Overflow int
}

func (w CapacityWarning) String() string {
	return fmt.Sprintf("group %q exceeded its target of %d by %d (final size %d)",
		w.GroupID, w.Ceiling, w.Overflow, w.Size)
}
