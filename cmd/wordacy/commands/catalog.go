package commands

import (
	"strings"

	"wordacy/internal/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// CatalogCommand returns the command that lists the question/answer templates
func CatalogCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog [version]",
		Short: "List the question/answer templates",
		Long: `List the question/answer templates of a catalog version in the order
records are generated, with the slot each template asks for.

Known versions: ` + strings.Join(catalog.Versions(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := catalog.DefaultVersion
			if len(args) == 1 {
				version = args[0]
			}
			cat, err := catalog.Lookup(version)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"#", "Slot", "Question", "Answer"})
			for i, tmpl := range cat.Templates() {
				fields := make([]string, len(tmpl.Answer))
				for j, a := range tmpl.Answer {
					fields[j] = string(a)
				}
				t.AppendRow(table.Row{i + 1, tmpl.Slot, tmpl.Question, strings.Join(fields, catalog.AnswerSeparator)})
			}
			render(t, f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv or markdown (default: table on a terminal, csv otherwise)")

	return cmd
}
