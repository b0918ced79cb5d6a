package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acampayo/mealdraw/pkg/core/services"
)

// PlanCmd creates the plan command
func PlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <people_count>",
		Short: "Show the target group sizes for a given number of people",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peopleCount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("people_count must be a number: %w", err)
			}

			planned, err := services.PlanDraw(app.Cfg, app.Logger, peopleCount)
			if err != nil {
				return err
			}

			fmt.Printf("\nTarget sizes for %d people:\n\n", peopleCount)
			for _, p := range planned {
				fmt.Printf("  %-10s %d\n", p.Spec.ID()+":", p.TargetCeiling)
			}
			fmt.Println()

			return nil
		},
	}
}
