// Package catalog defines the frozen, versioned question/answer templates that
// turn a resolved verb FormSet into supervised training examples.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"wordacy/internal/inflect"
	contextutils "wordacy/internal/utils"
)

// AnswerSeparator joins the fields of a composite answer.
const AnswerSeparator = ","

// DefaultVersion is the catalog used when none is configured.
const DefaultVersion = "v1"

// Slot is the semantic label a template asks for. The number of templates per
// slot determines label balance in the generated dataset.
type Slot string

// Template slots
const (
	SlotBase                Slot = "base"
	SlotPast                Slot = "past"
	SlotPastParticiple      Slot = "past_participle"
	SlotThirdPersonSingular Slot = "third_person_singular"
	SlotPresentParticiple   Slot = "present_participle"
	SlotPastPair            Slot = "past_pair"
	SlotPresentPair         Slot = "present_pair"
	SlotAllForms            Slot = "all_forms"
)

// QuestionData is the value a question pattern is executed against.
type QuestionData struct {
	Verb string
}

// Template is one question/answer pair. The answer is the ordered list of form
// fields joined by AnswerSeparator; the order is never permuted.
type Template struct {
	Slot     Slot
	Question string
	Answer   []inflect.Field

	question *template.Template
}

// RenderQuestion substitutes verb into the question pattern.
func (t Template) RenderQuestion(verb string) (string, error) {
	var b strings.Builder
	if err := t.question.Execute(&b, QuestionData{Verb: verb}); err != nil {
		return "", contextutils.WrapErrorf(err, "failed to render question for verb %q", verb)
	}
	return b.String(), nil
}

// RenderAnswer joins the answer fields of fs in template order.
func (t Template) RenderAnswer(fs inflect.FormSet) string {
	values := make([]string, len(t.Answer))
	for i, f := range t.Answer {
		values[i] = fs.Get(f)
	}
	return strings.Join(values, AnswerSeparator)
}

// Catalog is an ordered, immutable list of templates.
type Catalog struct {
	version   string
	templates []Template
}

// Version returns the catalog version label.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Templates returns a copy of the templates in catalog order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	for i, t := range c.templates {
		t.Answer = append([]inflect.Field(nil), t.Answer...)
		out[i] = t
	}
	return out
}

// SlotCounts returns how many templates target each slot.
func (c *Catalog) SlotCounts() map[Slot]int {
	counts := make(map[Slot]int)
	for _, t := range c.templates {
		counts[t.Slot]++
	}
	return counts
}

// Slots returns the distinct slots in first-seen order.
func (c *Catalog) Slots() []Slot {
	seen := make(map[Slot]bool)
	var slots []Slot
	for _, t := range c.templates {
		if !seen[t.Slot] {
			seen[t.Slot] = true
			slots = append(slots, t.Slot)
		}
	}
	return slots
}

type definition struct {
	slot     Slot
	question string
	answer   []inflect.Field
}

var definitions = map[string][]definition{
	"v1": v1Definitions,
}

// Versions lists the known catalog versions.
func Versions() []string {
	versions := make([]string, 0, len(definitions))
	for v := range definitions {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// Lookup builds the catalog for version.
func Lookup(version string) (*Catalog, error) {
	if version == "" {
		version = DefaultVersion
	}
	defs, ok := definitions[version]
	if !ok {
		return nil, contextutils.WrapErrorf(contextutils.ErrRecordNotFound, "unknown template catalog version %q (known: %s)", version, strings.Join(Versions(), ", "))
	}
	return build(version, defs)
}

// V1 returns the 21-template reference catalog.
func V1() *Catalog {
	c, err := build("v1", v1Definitions)
	if err != nil {
		panic(err)
	}
	return c
}

func build(version string, defs []definition) (*Catalog, error) {
	templates := make([]Template, 0, len(defs))
	for i, d := range defs {
		if len(d.answer) == 0 {
			return nil, contextutils.ErrorWithContextf("template %d of catalog %s has no answer fields", i, version)
		}
		name := fmt.Sprintf("%s-%02d", version, i+1)
		tmpl, err := template.New(name).Option("missingkey=error").Parse(d.question)
		if err != nil {
			return nil, contextutils.WrapErrorf(err, "failed to parse template %s", name)
		}
		answer := make([]inflect.Field, len(d.answer))
		copy(answer, d.answer)
		templates = append(templates, Template{
			Slot:     d.slot,
			Question: d.question,
			Answer:   answer,
			question: tmpl,
		})
	}
	return &Catalog{version: version, templates: templates}, nil
}
