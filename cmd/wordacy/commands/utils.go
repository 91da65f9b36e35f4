// Package commands provides the subcommands of the wordacy CLI
package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"wordacy/internal/config"
	contextutils "wordacy/internal/utils"
	"wordacy/internal/vocabulary"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Output formats shared by the listing commands
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

var lowerCaser = cases.Lower(language.English)

// normalizeVerb folds user input onto the vocabulary's lowercase spelling
func normalizeVerb(s string) string {
	return lowerCaser.String(strings.TrimSpace(s))
}

// loadSet loads the configured vocabulary document and picks one set from it
func loadSet(ctx context.Context, ds config.DatasetConfig) (*vocabulary.Document, *vocabulary.Set, error) {
	doc, err := vocabulary.Load(ctx, ds.VocabularyFile)
	if err != nil {
		return nil, nil, err
	}
	set, err := doc.Set(ds.VocabularySet)
	if err != nil {
		return nil, nil, err
	}
	return doc, set, nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat picks the explicit format, or a table on terminals and CSV otherwise
func resolveFormat(format string, w io.Writer) (string, error) {
	switch f := strings.ToLower(format); f {
	case "":
		if isTerminal(w) {
			return FormatTable, nil
		}
		return FormatCSV, nil
	case FormatTable, FormatCSV, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", contextutils.WrapErrorf(contextutils.ErrInvalidInput, "unknown format %q (want table, csv or markdown)", format)
	}
}

// newTable creates a go-pretty table writer mirrored to w
func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// render writes t in the requested format
func render(t table.Writer, format string) {
	switch format {
	case FormatCSV:
		t.RenderCSV()
	case FormatMarkdown:
		t.RenderMarkdown()
	default:
		t.Render()
	}
}
