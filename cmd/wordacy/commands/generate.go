package commands

import (
	"fmt"
	"io"

	"wordacy/internal/catalog"
	"wordacy/internal/config"
	"wordacy/internal/dataset"
	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// GenerateCommand returns the dataset synthesis command
func GenerateCommand(cfg *config.Config, logger *observability.Logger, metrics *observability.DatasetMetrics) *cobra.Command {
	ds := cfg.Dataset

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the verb-form SFT dataset as JSONL",
		Long: `Write the verb-form SFT dataset as JSONL.

Every verb of the selected vocabulary set is resolved to its five forms and
expanded against every template of the catalog, one JSON record per line.
Verbs are written in alphabetical order, so identical inputs always produce
identical files. The output replaces the target file only once it is complete.`,
		Args: cobra.NoArgs,
		RunE: runGenerate(logger, metrics, &ds),
	}

	cmd.Flags().StringVarP(&ds.OutputPath, "out", "o", ds.OutputPath, "Output JSONL path")
	cmd.Flags().StringVar(&ds.VocabularySet, "set", ds.VocabularySet, "Vocabulary set to expand")
	cmd.Flags().StringVar(&ds.VocabularyFile, "vocabulary", ds.VocabularyFile, "Vocabulary YAML file (default: embedded)")
	cmd.Flags().StringVar(&ds.CatalogVersion, "catalog", ds.CatalogVersion, "Template catalog version")

	return cmd
}

// runGenerate executes the dataset synthesis
func runGenerate(logger *observability.Logger, metrics *observability.DatasetMetrics, ds *config.DatasetConfig) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ds.OutputPath == "" {
			return contextutils.WrapErrorf(contextutils.ErrMissingRequired, "an output path is required")
		}

		_, set, err := loadSet(ctx, *ds)
		if err != nil {
			logger.Error(ctx, "Failed to load vocabulary", err, map[string]interface{}{"set": ds.VocabularySet, "file": ds.VocabularyFile})
			return err
		}
		cat, err := catalog.Lookup(ds.CatalogVersion)
		if err != nil {
			return err
		}

		verbs := set.Verbs()
		overrides := set.Table()
		logger.Info(ctx, "Starting dataset synthesis", map[string]interface{}{
			"set":             set.Name,
			"verbs":           len(verbs),
			"overrides":       len(overrides),
			"catalog_version": cat.Version(),
			"templates":       cat.Len(),
		})

		s := dataset.NewSynthesizer(logger, metrics)
		count, err := s.SynthesizeFile(ctx, ds.OutputPath, verbs, overrides, cat)
		if err != nil {
			logger.Error(ctx, "Dataset synthesis failed", err, map[string]interface{}{"path": ds.OutputPath})
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Generated %d records into %s\n", count, ds.OutputPath)
		renderSlotBalance(out, cat, len(verbs))
		return nil
	}
}

// renderSlotBalance prints how many records each template slot produced
func renderSlotBalance(out io.Writer, cat *catalog.Catalog, verbs int) {
	counts := cat.SlotCounts()
	t := newTable(out, table.Row{"Slot", "Templates", "Records"})
	for _, slot := range cat.Slots() {
		t.AppendRow(table.Row{slot, counts[slot], counts[slot] * verbs})
	}
	t.AppendFooter(table.Row{"total", cat.Len(), cat.Len() * verbs})
	t.Render()
}
