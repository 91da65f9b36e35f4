package commands

import (
	"fmt"
	"strings"

	"wordacy/internal/catalog"
	"wordacy/internal/config"
	"wordacy/internal/dataset"
	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"
	"wordacy/internal/vocabulary"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ValidateCommand returns the command that checks a vocabulary document
func ValidateCommand(cfg *config.Config, logger *observability.Logger) *cobra.Command {
	ds := cfg.Dataset
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the vocabulary document and template catalog",
		Long: `Check the vocabulary document and template catalog.

This command will:
- Validate the document against its JSON schema and field rules
- Run the verb/override consistency check on every set
- Report overrides that leave some forms to the suffix rules

Partial overrides are warnings; use --strict to treat them as errors.`,
		Args: cobra.NoArgs,
		RunE: runValidate(logger, &ds, &strict),
	}

	cmd.Flags().StringVar(&ds.VocabularyFile, "vocabulary", ds.VocabularyFile, "Vocabulary YAML file (default: embedded)")
	cmd.Flags().StringVar(&ds.CatalogVersion, "catalog", ds.CatalogVersion, "Template catalog version")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any override is partial")

	return cmd
}

// runValidate executes the vocabulary checks
func runValidate(logger *observability.Logger, ds *config.DatasetConfig, strict *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		doc, err := vocabulary.Load(ctx, ds.VocabularyFile)
		if err != nil {
			logger.Error(ctx, "Vocabulary document is invalid", err, map[string]interface{}{"file": ds.VocabularyFile})
			return err
		}
		cat, err := catalog.Lookup(ds.CatalogVersion)
		if err != nil {
			return err
		}

		t := newTable(out, table.Row{"Set", "Verbs", "Regular", "Partial", "Records"})
		partials := 0
		for i := range doc.Sets {
			set := &doc.Sets[i]
			if err := dataset.CheckConsistency(set.Verbs(), set.Table()); err != nil {
				return err
			}
			for _, p := range set.PartialOverrides() {
				partials++
				logger.Warn(ctx, "Partial override backfilled from base spelling", map[string]interface{}{
					"set":     set.Name,
					"verb":    p.Verb,
					"missing": p.Missing,
				})
				_, _ = fmt.Fprintf(out, "warning: %s/%s leaves %s to the suffix rules\n", set.Name, p.Verb, strings.Join(p.Missing, ", "))
			}
			t.AppendRow(table.Row{set.Name, set.Len(), set.RegularCount(), len(set.PartialOverrides()), set.Len() * cat.Len()})
		}
		t.Render()

		if *strict && partials > 0 {
			return contextutils.WrapErrorf(contextutils.ErrValidationFailed, "%d partial overrides found", partials)
		}
		_, _ = fmt.Fprintf(out, "%s is valid (catalog %s, %d templates)\n", doc.Source(), cat.Version(), cat.Len())
		return nil
	}
}
