package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query     string             `json:"query" yaml:"query"`
	ActiveTab models.Tab         `json:"active_tab" yaml:"active_tab"`
	Counts    models.Counts      `json:"counts" yaml:"counts"`
	Tabs      []models.TabChip   `json:"tabs" yaml:"tabs"`
	Results   []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput represents a single search result item
type SearchItemOutput struct {
	Name    string          `json:"name" yaml:"name"`
	Kind    models.Kind     `json:"kind" yaml:"kind"`
	Facet   models.FacetKey `json:"facet" yaml:"facet"`
	Subtext string          `json:"subtext" yaml:"subtext"`
	Link    string          `json:"link" yaml:"link"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var tabArg string
	var output string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog once and print the results",
		Long: `Search the catalog for items whose name or details contain the query,
ignoring case. Counts always cover every match; --tab narrows the listed
results to one category. Only the tabs enabled in settings are shown.

Examples:
  # Search everything
  quickfind search drib

  # Only list people
  quickfind search drib --tab people

  # Machine-readable output
  quickfind search "design team" -o json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(output); err != nil {
				return err
			}
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := cli.ParseTabArg(tabArg)
			if err != nil {
				return err
			}
			return runSearch(cmd, strings.Join(args, " "), tab, output)
		},
	}

	cmd.Flags().StringVarP(&tabArg, "tab", "t", string(models.TabAll), "Tab to list: all, files, people, chats or lists")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, tab models.Tab, output string) error {
	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()
	catalog, err := ctx.LoadCatalog()
	if err != nil {
		return err
	}

	engine := search.NewEngine(catalog)
	view, tabs := engine.Compute(query, tab, facets.NewStoreFrom(settings.Facets.Map()))

	result := SearchResultOutput{
		Query:     query,
		ActiveTab: view.ActiveTab,
		Counts:    view.Counts,
		Tabs:      tabs,
		Results:   []SearchItemOutput{},
	}
	for _, item := range view.Items {
		result.Results = append(result.Results, SearchItemOutput{
			Name:    models.NameOf(item),
			Kind:    item.Kind(),
			Facet:   search.FacetOf(item),
			Subtext: search.Subtext(item),
			Link:    search.DeepLink(settings.Search.LinkOrigin, item),
		})
	}

	if output != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), output, result)
	}

	out := cmd.OutOrStdout()
	offered := make([]models.Tab, 0, len(tabs))
	for _, chip := range tabs {
		offered = append(offered, chip.Tab)
	}
	fmt.Fprintln(out, cli.FormatCounts(view.Counts, offered))

	if len(result.Results) == 0 {
		fmt.Fprintln(out, "\nNo results found")
		fmt.Fprintln(out, "Try adjusting your search terms")
		return nil
	}

	fmt.Fprintln(out)
	table := cli.NewTableFormatter(out)
	table.Header("NAME", "KIND", "DETAILS")
	for _, r := range result.Results {
		table.Row(cli.TruncateString(r.Name, 40), string(r.Kind), cli.TruncateString(r.Subtext, 60))
	}
	table.Flush()

	return nil
}
