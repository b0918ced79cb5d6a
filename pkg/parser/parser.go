package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

// The message format is the one people paste from the group chat: an
// optional "TODO:" section listing people who can go anywhere, then one
// "- Lunch 9" / "- Dinner 9" header per group (Spanish "Comida"/"Cena"
// headers are accepted too) followed by the names pinned to it.

var (
	headerRe = regexp.MustCompile(`(?i)^\s*-\s*(Comida|Cena|Lunch|Dinner)\s+(\d+)\s*$`)
	todoRe   = regexp.MustCompile(`(?i)^\s*TODO\s*:\s*$`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Result holds the structured form of a parsed message
type Result struct {
	// People is the ordered list of participants with their declared
	// constraints, first-appearance order preserved
	People []model.PersonSpec

	// Groups lists the groups declared by headers, in declaration order
	Groups []model.GroupSpec
}

// ParseMessage reads the pasted message into people, constraints and
// declared groups. Lines outside any section are ignored, as are bare
// bullet markers. A person listed in several sections gets the union
// of those constraints; appearing under "TODO:" makes them fully
// unrestricted.
func ParseMessage(msg string) *Result {
	type entry struct {
		anywhere bool
		groups   []string
		seen     map[string]bool
	}

	var order []string
	entries := make(map[string]*entry)
	var groups []model.GroupSpec
	groupSeen := make(map[string]bool)

	inTodo := false
	currentGroup := ""

	for _, raw := range strings.Split(msg, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if todoRe.MatchString(line) {
			inTodo = true
			currentGroup = ""
			continue
		}

		if m := headerRe.FindStringSubmatch(line); m != nil {
			day, _ := strconv.Atoi(m[2])
			spec := model.GroupSpec{Kind: kindForKeyword(m[1]), Day: day}
			if !groupSeen[spec.ID()] {
				groupSeen[spec.ID()] = true
				groups = append(groups, spec)
			}
			currentGroup = spec.ID()
			inTodo = false
			continue
		}

		name := NormalizeName(line)
		if name == "" || name == "-" || name == "•" {
			continue
		}

		if !inTodo && currentGroup == "" {
			// Stray line before any section
			continue
		}

		e, ok := entries[name]
		if !ok {
			e = &entry{seen: make(map[string]bool)}
			entries[name] = e
			order = append(order, name)
		}

		if inTodo {
			e.anywhere = true
		} else if !e.seen[currentGroup] {
			e.seen[currentGroup] = true
			e.groups = append(e.groups, currentGroup)
		}
	}

	people := make([]model.PersonSpec, 0, len(order))
	for _, name := range order {
		e := entries[name]
		constraint := model.ConstraintSpec{Anywhere: e.anywhere}
		if !e.anywhere {
			constraint.Groups = e.groups
		}
		people = append(people, model.PersonSpec{Name: name, Constraint: constraint})
	}

	return &Result{People: people, Groups: groups}
}

// NormalizeName trims a name line and collapses runs of whitespace
func NormalizeName(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

func kindForKeyword(keyword string) model.MealKind {
	switch strings.ToLower(keyword) {
	case "comida", "lunch":
		return model.MealLunch
	default:
		return model.MealDinner
	}
}
