package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// FacetOutput is one row of the facets listing
type FacetOutput struct {
	Facet   models.FacetKey `json:"facet" yaml:"facet"`
	Enabled bool            `json:"enabled" yaml:"enabled"`
}

// NewFacetsCommand creates the facets command and its subcommands
func NewFacetsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Show or change which category tabs are offered",
		Long: `Show which category tabs are offered next to the All tab, or toggle one.

Disabling a tab only hides its chip. Its matches still count towards All
and the tab's own count.

Examples:
  quickfind facets
  quickfind facets toggle chats`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacetsList(cmd, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List facets and whether their tabs are offered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacetsList(cmd, output)
		},
	}
	list.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	toggle := &cobra.Command{
		Use:   "toggle <facet>",
		Short: "Flip whether a facet's tab is offered",
		Args:  cobra.ExactArgs(1),
		RunE:  runFacetsToggle,
	}

	cmd.AddCommand(list, toggle)
	return cmd
}

func runFacetsList(cmd *cobra.Command, output string) error {
	if err := cli.ValidateOutputFormat(output); err != nil {
		return err
	}

	store, err := facets.Load()
	if err != nil {
		return err
	}

	rows := make([]FacetOutput, 0, len(models.Facets))
	for _, facet := range models.Facets {
		rows = append(rows, FacetOutput{Facet: facet, Enabled: store.IsEnabled(facet)})
	}

	if output != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), output, rows)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("TAB", "OFFERED")
	table.Row(string(models.TabAll), "always")
	for _, row := range rows {
		offered := "no"
		if row.Enabled {
			offered = "yes"
		}
		table.Row(string(row.Facet), offered)
	}
	table.Flush()
	return nil
}

func runFacetsToggle(cmd *cobra.Command, args []string) error {
	facet, err := cli.ParseFacetArg(args[0])
	if err != nil {
		return err
	}

	store, err := facets.Load()
	if err != nil {
		return err
	}

	enabled, err := store.Toggle(facet)
	if err != nil {
		return err
	}
	if err := facets.Save(store); err != nil {
		return err
	}

	state := "hidden"
	if enabled {
		state = "offered"
	}
	cli.PrintSuccess("%s tab is now %s", facet, state)
	fmt.Fprintln(cmd.OutOrStdout(), enabled)
	return nil
}
