package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/pkg/core/services"
	"github.com/acampayo/mealdraw/pkg/render"
)

// DrawCmd creates the draw command
func DrawCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw [file]",
		Short: "Run a meal draw from a pasted message",
		Long: `Parse the participant message (from a file, or stdin when no file is
given) and assign everyone to the configured meal groups.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedFlag, _ := cmd.Flags().GetString("seed")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			message, err := readMessage(args)
			if err != nil {
				return err
			}

			seed, err := resolveSeed(seedFlag)
			if err != nil {
				return err
			}

			app.Logger.Debug("draw command",
				zap.Int64("seed", seed),
				zap.Bool("dry_run", dryRun))

			var store services.DrawStore
			if app.Database != nil {
				store = app.Database
			}

			result, err := services.RunDraw(app.Ctx, store, app.Cfg, app.Logger, message, seed, dryRun)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Print(render.Report(result.Outcome, result.Warnings, result.Seed))

			if result.Persisted {
				fmt.Printf("\nRecorded as run %s\n", result.RunID)
			} else if dryRun {
				fmt.Println("\nDry run: nothing recorded")
			}

			return nil
		},
	}

	cmd.Flags().String("seed", "", "Seed for tie-break decisions (empty for a fresh one)")
	cmd.Flags().Bool("dry-run", false, "Run without recording the draw")

	return cmd
}

// readMessage reads the draw message from the given file or from stdin
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}
	return string(data), nil
}

// resolveSeed parses the seed flag, generating a timestamp-based seed
// when none was given so the draw can always be repeated
func resolveSeed(flag string) (int64, error) {
	if flag == "" {
		return time.Now().UnixMilli() % 1_000_000, nil
	}

	seed, err := strconv.ParseInt(flag, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed must be a number: %w", err)
	}
	return seed, nil
}
