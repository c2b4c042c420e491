package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/cmd/commands"
	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/tui"
	"github.com/quickfind/quickfind-terminal/pkg/widget"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quiet   bool
	noColor bool
	yes     bool
)

var rootCmd = &cobra.Command{
	Use:   "quickfind",
	Short: "Terminal quick-search over people, files, chats and lists",
	Long: `Quickfind is a quick-search widget for the terminal. Type to search a
catalog of people, files, chats and lists; results settle after a short pause
and can be narrowed with category tabs. The catalog and settings are plain
YAML files in the .quickfind directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, yes)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewCommandContext()
		if err := ctx.ValidateProject(); err != nil {
			return err
		}

		settings := ctx.LoadSettingsWithDefault()
		catalog, err := ctx.LoadCatalog()
		if err != nil {
			return err
		}

		logger, err := ctx.FileLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		w := widget.New(catalog,
			widget.WithSettings(settings),
			widget.WithLogger(logger.Named("widget")),
		)
		defer w.Close()

		logger.Info("starting terminal UI", zap.Int("items", len(catalog)))
		if err := tui.Run(w, settings, tui.WithLogger(logger.Named("tui")), tui.WithFacetSaver(facets.Save)); err != nil {
			return fmt.Errorf("%w\nThis could be due to terminal compatibility issues. Try running in a different terminal", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new quickfind project",
	Long:  `Creates the .quickfind folder with default settings and the demo catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		if _, err := os.Stat(files.ProjectDir); err == nil {
			ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Reset settings and catalog?", files.ProjectDir), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Nothing changed")
				return nil
			}
		}

		cli.PrintInfo("Initializing quickfind project in %s...", cwd)
		if err := commands.InitProject(); err != nil {
			return err
		}

		cli.PrintSuccess("Created %s with default settings and the demo catalog", files.ProjectDir)
		cli.PrintInfo("Run 'quickfind' to start the interactive TUI.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quickfind",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quickfind version %s\n", version)
	},
}

func init() {
	// run the root hook before subcommand hooks such as facets
	cobra.EnableTraverseRunHooks = true

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewFacetsCommand())
	rootCmd.AddCommand(commands.NewLinkCommand())
	rootCmd.AddCommand(commands.NewCatalogCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
