package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/acampayo/mealdraw/pkg/core/assigner"
)

// Report renders a completed draw as the plain-text summary people
// paste back into the group chat: participant roster, per-group sizes
// against their targets, member lists and the seed needed to repeat
// the draw.
func Report(outcome *assigner.Outcome, warnings []assigner.CapacityWarning, seed int64) string {
	var b strings.Builder

	names := make([]string, 0, len(outcome.Assignment))
	for name := range outcome.Assignment {
		names = append(names, name)
	}
	sortNames(names)

	fmt.Fprintf(&b, "Participants (%d): %s\n\n", len(names), strings.Join(names, ", "))

	b.WriteString("Group sizes:\n")
	for _, g := range outcome.Groups {
		marker := "ok"
		if delta := g.Size() - g.TargetCeiling; delta != 0 {
			marker = fmt.Sprintf("%+d", delta)
		}
		fmt.Fprintf(&b, "  %-10s %d people (target %d, %s)\n", g.ID()+":", g.Size(), g.TargetCeiling, marker)
	}
	b.WriteString("\n")

	b.WriteString("Assignments:\n")
	for _, g := range outcome.Groups {
		fmt.Fprintf(&b, "- %s\n", g.ID())
		members := make([]string, 0, g.Size())
		for _, m := range g.Members {
			members = append(members, m.Name)
		}
		sortNames(members)
		for _, name := range members {
			fmt.Fprintf(&b, "  • %s\n", name)
		}
	}
	b.WriteString("\n")

	if len(warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "  ! %s\n", w)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Seed: %d (reuse it to repeat this exact draw)\n", seed)

	return b.String()
}

// sortNames orders names case-insensitively for display; assignment
// order inside groups is an implementation detail
func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}
