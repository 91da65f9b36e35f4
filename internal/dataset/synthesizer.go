// Package dataset expands a verb vocabulary against a template catalog into
// JSONL supervised fine-tuning records.
package dataset

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"wordacy/internal/catalog"
	"wordacy/internal/inflect"
	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"
)

// Synthesizer writes one record per (verb, template) pair.
type Synthesizer struct {
	logger  *observability.Logger
	metrics *observability.DatasetMetrics
}

// NewSynthesizer creates a Synthesizer. A nil metrics value disables counting.
func NewSynthesizer(logger *observability.Logger, metrics *observability.DatasetMetrics) *Synthesizer {
	if logger == nil {
		logger = observability.NewNopLogger()
	}
	return &Synthesizer{logger: logger, metrics: metrics}
}

// CheckConsistency verifies that verbs and table describe the same closed
// vocabulary: equal cardinality, no duplicate verbs, and an entry for every verb.
func CheckConsistency(verbs []string, table inflect.OverrideTable) error {
	if len(verbs) != len(table) {
		return contextutils.WrapErrorf(contextutils.ErrConfigMismatch, "%d verbs but %d override entries", len(verbs), len(table))
	}
	seen := make(map[string]bool, len(verbs))
	var missing []string
	for _, v := range verbs {
		if seen[v] {
			return contextutils.WrapErrorf(contextutils.ErrConfigMismatch, "verb %q listed more than once", v)
		}
		seen[v] = true
		if _, ok := table.Lookup(v); !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return contextutils.WrapErrorf(contextutils.ErrConfigMismatch, "no override entry for: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Synthesize writes len(verbs) * cat.Len() records to w and returns the count.
// Nothing is written when the consistency check fails. Verbs are emitted in
// ascending order; the caller's slice is left untouched.
func (s *Synthesizer) Synthesize(ctx context.Context, w io.Writer, verbs []string, table inflect.OverrideTable, cat *catalog.Catalog) (result0 int, err error) {
	if cat == nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrInvalidInput, "template catalog is required")
	}
	ctx, span := observability.TraceDatasetFunction(ctx, "Synthesize",
		observability.AttributeVerbCount(len(verbs)),
		observability.AttributeCatalogVersion(cat.Version()),
	)
	defer observability.FinishSpan(span, &err)

	if err := CheckConsistency(verbs, table); err != nil {
		s.logger.Error(ctx, "Vocabulary and override table do not match", err, map[string]interface{}{
			"verbs":     len(verbs),
			"overrides": len(table),
		})
		return 0, err
	}

	sorted := slices.Clone(verbs)
	slices.Sort(sorted)

	templates := cat.Templates()
	bw := bufio.NewWriter(w)
	enc := NewEncoder(bw)
	overridden := 0

	count := 0
	for _, verb := range sorted {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		forms := inflect.Resolve(verb, table)
		n := overriddenFields(table[verb])
		overridden += n
		s.metrics.VerbResolved(ctx, n, observability.AttributeCatalogVersion(cat.Version()))
		s.logger.Debug(ctx, "Resolved verb forms", map[string]interface{}{
			"verb":                  forms.Base,
			"past":                  forms.Past,
			"past_participle":       forms.PastParticiple,
			"third_person_singular": forms.ThirdPersonSingular,
			"present_participle":    forms.PresentParticiple,
		})

		for _, t := range templates {
			question, err := t.RenderQuestion(verb)
			if err != nil {
				return 0, err
			}
			rec := Record{Context: "", Question: question, Answer: t.RenderAnswer(forms)}
			if err := enc.Encode(rec); err != nil {
				return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to write record for verb %q: %w", verb, err)
			}
			count++
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to flush records: %w", err)
	}

	s.metrics.RecordsWritten(ctx, count, observability.AttributeCatalogVersion(cat.Version()))
	span.SetAttributes(observability.AttributeRecordCount(count))
	s.logger.Info(ctx, "Dataset synthesized", map[string]interface{}{
		"records":           count,
		"verbs":             len(sorted),
		"overrides":         len(table),
		"overridden_fields": overridden,
		"catalog_version":   cat.Version(),
	})
	return count, nil
}

// SynthesizeFile writes the dataset to path. Records go to a temporary file
// in the same directory which replaces path only once every record is
// flushed, so a failed run never leaves a partial dataset behind.
func (s *Synthesizer) SynthesizeFile(ctx context.Context, path string, verbs []string, table inflect.OverrideTable, cat *catalog.Catalog) (result0 int, err error) {
	ctx, span := observability.TraceDatasetFunction(ctx, "SynthesizeFile")
	defer observability.FinishSpan(span, &err)

	// fail before touching the filesystem
	if err := CheckConsistency(verbs, table); err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to create output directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to create temporary output in %s: %w", dir, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
				s.logger.Warn(ctx, "Failed to remove temporary output", map[string]interface{}{"path": tmp.Name(), "error": rmErr.Error()})
			}
		}
	}()

	count, err := s.Synthesize(ctx, tmp, verbs, table, cat)
	if err != nil {
		return 0, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to set permissions on %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, contextutils.WrapErrorf(contextutils.ErrWriteFailed, "failed to move dataset into place at %s: %w", path, err)
	}
	committed = true

	s.logger.Info(ctx, "Dataset written", map[string]interface{}{"path": path, "records": count})
	return count, nil
}

func overriddenFields(o inflect.Override) int {
	n := 0
	for _, v := range []string{o.Past, o.PastParticiple, o.ThirdPersonSingular, o.PresentParticiple} {
		if v != "" {
			n++
		}
	}
	return n
}
