package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GroupsCmd creates the groups command
func GroupsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the configured meal groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, err := app.Cfg.Universe()
			if err != nil {
				return err
			}

			fmt.Printf("\nConfigured groups (%d):\n\n", len(universe))
			for i, g := range universe {
				fmt.Printf("  %2d. %s\n", i+1, g.ID())
			}
			fmt.Println()

			return nil
		},
	}
}
