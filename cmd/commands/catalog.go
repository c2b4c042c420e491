package commands

import (
	"github.com/spf13/cobra"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	var output string
	var facetArg string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the items quickfind searches",
		Long: `List the catalog in .quickfind/catalog.yaml. When the project has no
catalog the built-in demo items are listed instead.

Examples:
  quickfind catalog
  quickfind catalog --facet people
  quickfind catalog -o yaml > backup.yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(output); err != nil {
				return err
			}
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := cli.NewCommandContext().LoadCatalog()
			if err != nil {
				return err
			}

			if facetArg != "" {
				facet, err := cli.ParseFacetArg(facetArg)
				if err != nil {
					return err
				}
				catalog = search.FilterByTab(catalog, facet.Tab())
			}

			if output != string(cli.FormatText) {
				doc := models.CatalogFile{Items: make([]models.CatalogEntry, 0, len(catalog))}
				for _, item := range catalog {
					doc.Items = append(doc.Items, models.EntryFor(item))
				}
				return cli.OutputResults(cmd.OutOrStdout(), output, doc)
			}

			if len(catalog) == 0 {
				cli.PrintInfo("No items in %s", files.CatalogPath())
				return nil
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("NAME", "KIND", "FACET", "DETAILS")
			for _, item := range catalog {
				table.Row(
					cli.TruncateString(models.NameOf(item), 40),
					string(item.Kind()),
					string(search.FacetOf(item)),
					cli.TruncateString(search.Subtext(item), 50),
				)
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVarP(&facetArg, "facet", "f", "", "Only list one facet: files, people, chats or lists")
	return cmd
}
