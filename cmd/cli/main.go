package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acampayo/mealdraw/cmd/cli/commands"
	"github.com/acampayo/mealdraw/internal/config"
	"github.com/acampayo/mealdraw/pkg/postgres"
	"github.com/acampayo/mealdraw/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool
	app        *commands.AppContext
)

func main() {
	app = &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "mealdraw",
		Short: "Mealdraw - assign people to lunch and dinner groups",
		Long: `A CLI tool that parses a pasted participant message and distributes
everyone across the configured meal groups, keeping sizes balanced and
dinners small.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default: mealdraw_config.yaml lookup)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.DrawCmd(app))
	rootCmd.AddCommand(commands.PlanCmd(app))
	rootCmd.AddCommand(commands.GroupsCmd(app))
	rootCmd.AddCommand(commands.HistoryCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration and the optional database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded")

	if app.Cfg.Database != nil {
		database, err := postgres.NewDB(app.Ctx, app.Cfg.Database.ConnString)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = database
		app.Logger.Debug("Database connected")
	}

	return nil
}
