package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// NewLinkCommand creates the link command
func NewLinkCommand() *cobra.Command {
	var copyLink bool

	cmd := &cobra.Command{
		Use:   "link <name>",
		Short: "Print the shareable link of a catalog item",
		Long: `Print the deep link of a catalog item. The item is found by its exact
name, its slug, or a unique part of its name.

Examples:
  quickfind link "Caroline Dribsson"
  quickfind link caroline-dribsson --copy`,
		Args:    cobra.MinimumNArgs(1),
		Aliases: []string{"copy"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			settings := ctx.LoadSettingsWithDefault()
			catalog, err := ctx.LoadCatalog()
			if err != nil {
				return err
			}

			item, err := cli.ResolveItem(catalog, strings.Join(args, " "))
			if err != nil {
				return err
			}

			link := search.DeepLink(settings.Search.LinkOrigin, item)
			fmt.Fprintln(cmd.OutOrStdout(), link)

			if copyLink {
				if err := copyToClipboard(link); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				cli.PrintSuccess("Link copied!")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyLink, "copy", "c", false, "Also copy the link to the clipboard")
	return cmd
}
