// Package vocabulary loads the closed verb vocabularies and their override
// tables from a versioned YAML document.
//
// A document holds named sets. Each set maps a base verb to a (possibly empty)
// override, so the verb list and the override table can never drift apart in
// the file itself.
package vocabulary

import (
	"context"
	"embed"
	"os"
	"sort"
	"strings"

	"wordacy/internal/inflect"
	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml schema.json
var embedded embed.FS

// EmbeddedFile is the document shipped with the binary.
const EmbeddedFile = "data/english.yaml"

// DocumentVersion is the only document version understood.
const DocumentVersion = 1

// Document is a parsed vocabulary file.
type Document struct {
	Version int   `yaml:"version"`
	Sets    []Set `yaml:"sets" validate:"required,min=1"`

	source string
}

// Set is one named vocabulary with its overrides.
type Set struct {
	Name        string                      `yaml:"name" validate:"required"`
	Description string                      `yaml:"description"`
	Overrides   map[string]inflect.Override `yaml:"verbs" validate:"required,min=1"`
}

// Source returns where the document was loaded from.
func (d *Document) Source() string {
	return d.source
}

// Load reads a vocabulary document from path, or the embedded document when
// path is empty.
func Load(ctx context.Context, path string) (result0 *Document, err error) {
	source := path
	if source == "" {
		source = "embedded:" + EmbeddedFile
	}
	_, span := observability.TraceVocabularyFunction(ctx, "Load")
	defer observability.FinishSpan(span, &err)

	var data []byte
	if path == "" {
		data, err = embedded.ReadFile(EmbeddedFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrReadFailed, "failed to read vocabulary %s: %v", source, err)
	}
	return Parse(data, source)
}

// Parse checks data against the document schema, decodes it and validates
// every verb and override.
func Parse(data []byte, source string) (*Document, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInvalidFormat, "failed to parse vocabulary %s: %v", source, err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, contextutils.WrapErrorf(err, "vocabulary %s", source)
	}

	doc := &Document{source: source}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInvalidFormat, "failed to decode vocabulary %s: %v", source, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks set names are unique, every key is a valid base verb and
// no override value would break the comma-joined answer format.
func (d *Document) Validate() error {
	if err := contextutils.ValidateStruct(d, "invalid vocabulary document"); err != nil {
		return err
	}
	if d.Version != DocumentVersion {
		return contextutils.WrapErrorf(contextutils.ErrValidationFailed, "unsupported vocabulary version %d (want %d)", d.Version, DocumentVersion)
	}
	seen := make(map[string]bool, len(d.Sets))
	for i := range d.Sets {
		s := &d.Sets[i]
		if err := contextutils.ValidateStruct(s, "invalid vocabulary set"); err != nil {
			return err
		}
		if seen[s.Name] {
			return contextutils.WrapErrorf(contextutils.ErrValidationFailed, "duplicate vocabulary set %q", s.Name)
		}
		seen[s.Name] = true

		for _, verb := range s.Verbs() {
			if !contextutils.IsValidVerb(verb) {
				return contextutils.WrapErrorf(contextutils.ErrValidationFailed, "set %q: %q is not a lowercase alphabetic verb", s.Name, verb)
			}
			if err := contextutils.ValidateStruct(s.Overrides[verb], "set "+s.Name+": invalid override for "+verb); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetNames lists the sets in document order.
func (d *Document) SetNames() []string {
	names := make([]string, len(d.Sets))
	for i, s := range d.Sets {
		names[i] = s.Name
	}
	return names
}

// Set returns the named set.
func (d *Document) Set(name string) (*Set, error) {
	for i := range d.Sets {
		if d.Sets[i].Name == name {
			return &d.Sets[i], nil
		}
	}
	return nil, contextutils.WrapErrorf(contextutils.ErrRecordNotFound, "unknown vocabulary set %q (known: %s)", name, strings.Join(d.SetNames(), ", "))
}

// Len returns the number of verbs in the set.
func (s *Set) Len() int {
	return len(s.Overrides)
}

// Verbs returns the base verbs in ascending order.
func (s *Set) Verbs() []string {
	verbs := make([]string, 0, len(s.Overrides))
	for v := range s.Overrides {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// Table returns a copy of the set's override table.
func (s *Set) Table() inflect.OverrideTable {
	table := make(inflect.OverrideTable, len(s.Overrides))
	for v, o := range s.Overrides {
		table[v] = o
	}
	return table
}

// Partial describes an override that leaves some fields to the suffix rules.
type Partial struct {
	Verb    string
	Missing []string
}

// PartialOverrides lists the overrides that supply some but not all derived
// forms, in verb order.
func (s *Set) PartialOverrides() []Partial {
	var out []Partial
	for _, verb := range s.Verbs() {
		o := s.Overrides[verb]
		if o.IsPartial() {
			out = append(out, Partial{Verb: verb, Missing: o.MissingFields()})
		}
	}
	return out
}

// RegularCount returns how many verbs carry no override values at all.
func (s *Set) RegularCount() int {
	n := 0
	for _, o := range s.Overrides {
		if o == (inflect.Override{}) {
			n++
		}
	}
	return n
}
