package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acampayo/mealdraw/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history [run_id]",
		Short: "List recorded draw runs, or show one run's assignments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Database == nil {
				return fmt.Errorf("no database configured: add a database section to the config to record draws")
			}

			if len(args) == 1 {
				return showRun(app, args[0])
			}

			runs, err := services.ListDraws(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No draws recorded yet.")
				return nil
			}

			fmt.Printf("\nRecorded draws (%d):\n\n", len(runs))
			for _, run := range runs {
				fmt.Printf("  %s  %s  seed=%-8d %d people over %d groups\n",
					run.CreatedAt.Format("2006-01-02 15:04"),
					run.ID,
					run.Seed,
					run.PeopleCount,
					run.GroupCount,
				)
			}
			fmt.Println()

			return nil
		},
	}
}

// showRun prints one recorded draw with its assignments grouped by meal
func showRun(app *AppContext, runID string) error {
	run, assignments, err := services.ShowDraw(app.Ctx, app.Database, app.Logger, runID)
	if err != nil {
		return err
	}

	fmt.Printf("\nRun %s (%s, seed %d)\n\n",
		run.ID, run.CreatedAt.Format("2006-01-02 15:04"), run.Seed)

	byGroup := make(map[string][]string)
	var order []string
	for _, a := range assignments {
		if _, ok := byGroup[a.GroupID]; !ok {
			order = append(order, a.GroupID)
		}
		byGroup[a.GroupID] = append(byGroup[a.GroupID], a.Person)
	}

	for _, groupID := range order {
		fmt.Printf("- %s\n", groupID)
		for _, person := range byGroup[groupID] {
			fmt.Printf("  • %s\n", person)
		}
	}
	fmt.Println()

	return nil
}
