package model

import "fmt"

// MealKind identifies the kind of meal slot a group represents
type MealKind string

const (
	MealLunch  MealKind = "lunch"
	MealDinner MealKind = "dinner"
)

func (k MealKind) IsValid() bool {
	return k == MealLunch || k == MealDinner
}

// Rank returns the tie-break rank of the meal kind.
// Lunch groups rank before dinner groups so they absorb extra people first.
func (k MealKind) Rank() int {
	if k == MealLunch {
		return 0
	}
	return 1
}

// Label returns the display label used in group identifiers ("Lunch", "Dinner")
func (k MealKind) Label() string {
	if k == MealLunch {
		return "Lunch"
	}
	return "Dinner"
}

// GroupSpec declares a meal group: a lunch or dinner slot tied to a day
type GroupSpec struct {
	Kind MealKind
	Day  int
}

// ID returns the group identifier, e.g. "Lunch 9" or "Dinner 10"
func (g GroupSpec) ID() string {
	return fmt.Sprintf("%s %d", g.Kind.Label(), g.Day)
}

// ConstraintSpec declares where a person may be assigned.
// Anywhere means any group in the universe; otherwise Groups lists the
// group identifiers the person is pinned to.
type ConstraintSpec struct {
	Anywhere bool
	Groups   []string
}

// PersonSpec is a parsed participant together with their declared constraint
type PersonSpec struct {
	Name       string
	Constraint ConstraintSpec
}
