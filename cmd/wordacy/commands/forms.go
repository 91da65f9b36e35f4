package commands

import (
	"io"

	"wordacy/internal/config"
	"wordacy/internal/inflect"
	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"
	"wordacy/internal/vocabulary"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// Form sources shown by the forms command
const (
	sourceOverride = "override"
	sourcePartial  = "partial"
	sourceRules    = "rules"
)

// FormsCommand returns the command that prints resolved verb forms
func FormsCommand(cfg *config.Config, logger *observability.Logger) *cobra.Command {
	ds := cfg.Dataset
	var format string

	cmd := &cobra.Command{
		Use:   "forms [verb...]",
		Short: "Show the resolved forms of vocabulary verbs",
		Long: `Show the resolved forms of vocabulary verbs.

With no arguments every verb of the set is listed. The source column tells
whether the forms come from a full override, a partial override backfilled by
the suffix rules, or the suffix rules alone.`,
		RunE: runForms(logger, &ds, &format),
	}

	cmd.Flags().StringVar(&ds.VocabularySet, "set", ds.VocabularySet, "Vocabulary set to list")
	cmd.Flags().StringVar(&ds.VocabularyFile, "vocabulary", ds.VocabularyFile, "Vocabulary YAML file (default: embedded)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv or markdown (default: table on a terminal, csv otherwise)")

	return cmd
}

// runForms executes the forms listing
func runForms(logger *observability.Logger, ds *config.DatasetConfig, format *string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		f, err := resolveFormat(*format, out)
		if err != nil {
			return err
		}
		_, set, err := loadSet(ctx, *ds)
		if err != nil {
			return err
		}

		verbs, err := selectVerbs(set, args)
		if err != nil {
			return err
		}

		logger.Debug(ctx, "Listing verb forms", map[string]interface{}{"set": set.Name, "verbs": len(verbs), "format": f})
		renderForms(out, set, verbs, f)
		return nil
	}
}

// selectVerbs returns the requested verbs, or the whole set when none are given
func selectVerbs(set *vocabulary.Set, args []string) ([]string, error) {
	if len(args) == 0 {
		return set.Verbs(), nil
	}
	verbs := make([]string, 0, len(args))
	for _, arg := range args {
		v := normalizeVerb(arg)
		if _, ok := set.Overrides[v]; !ok {
			return nil, contextutils.WrapErrorf(contextutils.ErrRecordNotFound, "verb %q is not in vocabulary set %q", arg, set.Name)
		}
		verbs = append(verbs, v)
	}
	return verbs, nil
}

func renderForms(out io.Writer, set *vocabulary.Set, verbs []string, format string) {
	overrides := set.Table()
	t := newTable(out, table.Row{"Base", "Past", "Past participle", "3rd person singular", "Present participle", "Source"})
	for _, v := range verbs {
		fs := inflect.Resolve(v, overrides)
		t.AppendRow(table.Row{fs.Base, fs.Past, fs.PastParticiple, fs.ThirdPersonSingular, fs.PresentParticiple, formSource(overrides[v])})
	}
	render(t, format)
}

func formSource(o inflect.Override) string {
	switch {
	case o == (inflect.Override{}):
		return sourceRules
	case o.IsPartial():
		return sourcePartial
	default:
		return sourceOverride
	}
}
