package commands

import (
	"fmt"
	"os"

	"wordacy/internal/config"
	"wordacy/internal/observability"
	"wordacy/internal/tokens"
	contextutils "wordacy/internal/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// CounterFactory builds the token counter for an encoding name
type CounterFactory func(encoding string) (tokens.Counter, error)

func tiktokenFactory(encoding string) (tokens.Counter, error) {
	return tokens.NewTiktokenCounter(encoding)
}

// TokensCommand returns the JSONL token counting command
func TokensCommand(cfg *config.Config, logger *observability.Logger) *cobra.Command {
	return tokensCommand(cfg, logger, tiktokenFactory)
}

func tokensCommand(cfg *config.Config, logger *observability.Logger, factory CounterFactory) *cobra.Command {
	tc := cfg.Tokens
	var summary bool

	cmd := &cobra.Command{
		Use:   "tokens <jsonl-path>",
		Short: "Count tokenizer tokens in one field of a JSONL file",
		Long: `Count tokenizer tokens in one field of a JSONL file and print the total.

Blank lines are ignored, and missing, null or empty values are skipped.
Non-string values are counted by their text form unless --skip-nonstring is set.
The encoding comes from --encoding, else from --model, else cl100k_base;
--tokenizer gpt2 always uses the GPT-2 (r50k_base) vocabulary.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokens(logger, factory, &tc, &summary),
	}

	cmd.Flags().StringVar(&tc.Field, "field", tc.Field, "JSON field to count")
	cmd.Flags().StringVar(&tc.Tokenizer, "tokenizer", tc.Tokenizer, "Tokenizer family: tiktoken or gpt2")
	cmd.Flags().StringVar(&tc.Model, "model", tc.Model, "Model name used to pick the encoding")
	cmd.Flags().StringVar(&tc.Encoding, "encoding", tc.Encoding, "Explicit tiktoken encoding, e.g. cl100k_base")
	cmd.Flags().BoolVar(&tc.SkipNonString, "skip-nonstring", tc.SkipNonString, "Skip values that are not strings")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a breakdown instead of the bare total")

	return cmd
}

// runTokens executes the token count
func runTokens(logger *observability.Logger, factory CounterFactory, tc *config.TokensConfig, summary *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]
		if tc.Field == "" {
			return contextutils.WrapErrorf(contextutils.ErrMissingRequired, "a field name is required")
		}

		encoding, err := tokens.ResolveEncoding(tc.Tokenizer, tc.Model, tc.Encoding)
		if err != nil {
			return err
		}
		counter, err := factory(encoding)
		if err != nil {
			logger.Error(ctx, "Failed to load tokenizer", err, map[string]interface{}{"encoding": encoding})
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return contextutils.WrapErrorf(contextutils.ErrReadFailed, "failed to open %s: %v", path, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logger.Warn(ctx, "Failed to close input", map[string]interface{}{"path": path, "error": cerr.Error()})
			}
		}()

		res, err := tokens.CountField(ctx, f, tokens.Options{Field: tc.Field, SkipNonString: tc.SkipNonString}, counter)
		if err != nil {
			return contextutils.WrapErrorf(err, "failed to count tokens in %s", path)
		}

		logger.Info(ctx, "Token count completed", map[string]interface{}{
			"path":     path,
			"field":    tc.Field,
			"encoding": encoding,
			"total":    res.Total,
			"counted":  res.Counted,
			"skipped":  res.Skipped,
		})

		out := cmd.OutOrStdout()
		if !*summary {
			_, _ = fmt.Fprintln(out, res.Total)
			return nil
		}
		t := newTable(out, table.Row{"Field", "Encoding", "Lines", "Counted", "Skipped", "Tokens"})
		t.AppendRow(table.Row{tc.Field, encoding, res.Lines, res.Counted, res.Skipped, res.Total})
		t.Render()
		return nil
	}
}
