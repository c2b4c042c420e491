package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/examples"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

func NewExamplesCommand() *cobra.Command {
	var category string
	var listOnly bool
	var force bool

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Add example items to your catalog",
		Long: `Add example people, files, chats and lists to .quickfind/catalog.yaml.

Categories:
  demo  - The Dribbble workspace used by the default catalog (default)
  team  - Release chats, checklists and assets
  all   - Install every example category

Items whose kind and name are already in the catalog are skipped unless
--force is given.`,
		Example: `  # Add the demo items
  quickfind examples

  # List available examples without installing
  quickfind examples --list

  # Replace existing team items
  quickfind examples team --force`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				category = args[0]
			} else if category == "" {
				if listOnly {
					category = "all"
				} else {
					category = "demo"
				}
			}

			if !cli.Contains(examples.Categories, category) {
				return fmt.Errorf("invalid category '%s'. Valid categories: %s",
					category, strings.Join(examples.Categories, ", "))
			}

			if listOnly {
				return listExamples(cmd, category)
			}
			return installExamples(cmd, category, force)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category of examples to add")
	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available examples without installing")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace items already in the catalog")

	return cmd
}

func listExamples(cmd *cobra.Command, category string) error {
	out := cmd.OutOrStdout()

	if category == "all" {
		fmt.Fprintf(out, "Available examples (all categories):\n\n")
	} else {
		fmt.Fprintf(out, "Available examples in category '%s':\n\n", category)
	}

	for _, set := range examples.GetExamples(category) {
		if category == "all" {
			fmt.Fprintf(out, "📦 [%s] %s\n", set.Category, set.Name)
		} else {
			fmt.Fprintf(out, "📦 %s\n", set.Name)
		}
		fmt.Fprintf(out, "   %s\n", set.Description)
		for _, item := range set.Items {
			fmt.Fprintf(out, "   • %s (%s)\n", models.NameOf(item), item.Kind())
		}
		fmt.Fprintln(out)
	}

	if category == "all" {
		fmt.Fprintf(out, "To install a category, run: quickfind examples <category>\n")
	} else {
		fmt.Fprintf(out, "To install these examples, run: quickfind examples %s\n", category)
	}
	return nil
}

func installExamples(cmd *cobra.Command, category string, force bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Installing %s examples...\n\n", category)

	total := 0
	skipped := 0
	for _, set := range examples.GetExamples(category) {
		written, err := examples.InstallSet(set, force)
		if err != nil {
			return err
		}
		total += written
		skipped += len(set.Items) - written
		fmt.Fprintf(out, "📦 %s: %d of %d items written\n", set.Name, written, len(set.Items))
	}

	fmt.Fprintf(out, "\n✨ Installation complete!\n")
	fmt.Fprintf(out, "  • %d items written\n", total)
	if skipped > 0 {
		fmt.Fprintf(out, "  • %d items skipped (already in catalog, use --force to replace)\n", skipped)
	}
	return nil
}
