package inflect

// FormSet holds the five canonical forms of one verb. Every field is non-empty
// once produced by Resolve.
type FormSet struct {
	Base                string `json:"base" yaml:"base"`
	Past                string `json:"past" yaml:"past"`
	PastParticiple      string `json:"past_participle" yaml:"past_participle"`
	ThirdPersonSingular string `json:"third_person_singular" yaml:"third_person_singular"`
	PresentParticiple   string `json:"present_participle" yaml:"present_participle"`
}

// Override is a partial FormSet for an irregular (or hand-checked) verb.
// An empty field means "not supplied" and is derived from the base spelling.
type Override struct {
	Past                string `json:"past,omitempty" yaml:"past,omitempty" validate:"omitempty,excludesall=0x2C"`
	PastParticiple      string `json:"past_participle,omitempty" yaml:"past_participle,omitempty" validate:"omitempty,excludesall=0x2C"`
	ThirdPersonSingular string `json:"third_person_singular,omitempty" yaml:"third_person_singular,omitempty" validate:"omitempty,excludesall=0x2C"`
	PresentParticiple   string `json:"present_participle,omitempty" yaml:"present_participle,omitempty" validate:"omitempty,excludesall=0x2C"`
}

// IsPartial reports whether the override supplies some, but not all, of the
// derived forms. Backfilled fields come from the base spelling, not from an
// irregular stem chosen for another field.
func (o Override) IsPartial() bool {
	supplied := 0
	for _, v := range []string{o.Past, o.PastParticiple, o.ThirdPersonSingular, o.PresentParticiple} {
		if v != "" {
			supplied++
		}
	}
	return supplied > 0 && supplied < 4
}

// MissingFields returns the names of the derived fields the override leaves
// to the suffix rules.
func (o Override) MissingFields() []string {
	var missing []string
	if o.Past == "" {
		missing = append(missing, "past")
	}
	if o.PastParticiple == "" {
		missing = append(missing, "past_participle")
	}
	if o.ThirdPersonSingular == "" {
		missing = append(missing, "third_person_singular")
	}
	if o.PresentParticiple == "" {
		missing = append(missing, "present_participle")
	}
	return missing
}

// OverrideTable maps a base verb to its overrides. It is treated as read-only
// once loaded.
type OverrideTable map[string]Override

// Lookup returns the override for base and whether one exists.
func (t OverrideTable) Lookup(base string) (Override, bool) {
	o, ok := t[base]
	return o, ok
}

// ResolveField prefers a supplied override value over the computed one.
func ResolveField(override, computed string) string {
	if override != "" {
		return override
	}
	return computed
}

// Regular returns the FormSet the suffix rules produce for base.
func Regular(base string) FormSet {
	return FormSet{
		Base:                base,
		Past:                PastTenseRegular(base),
		PastParticiple:      PastParticipleRegular(base),
		ThirdPersonSingular: ThirdPersonSingular(base),
		PresentParticiple:   PresentParticiple(base),
	}
}

// Resolve returns the complete FormSet for base. Verbs missing from table fall
// back to the regular rules without error.
func Resolve(base string, table OverrideTable) FormSet {
	regular := Regular(base)
	o, ok := table.Lookup(base)
	if !ok {
		return regular
	}
	return FormSet{
		Base:                base,
		Past:                ResolveField(o.Past, regular.Past),
		PastParticiple:      ResolveField(o.PastParticiple, regular.PastParticiple),
		ThirdPersonSingular: ResolveField(o.ThirdPersonSingular, regular.ThirdPersonSingular),
		PresentParticiple:   ResolveField(o.PresentParticiple, regular.PresentParticiple),
	}
}

// Field names one of the five forms.
type Field string

// Form fields in their canonical order.
const (
	FieldBase                Field = "base"
	FieldPast                Field = "past"
	FieldPastParticiple      Field = "past_participle"
	FieldThirdPersonSingular Field = "third_person_singular"
	FieldPresentParticiple   Field = "present_participle"
)

// Fields lists every form field in canonical order.
var Fields = []Field{FieldBase, FieldPast, FieldPastParticiple, FieldThirdPersonSingular, FieldPresentParticiple}

// Get returns the value of field f, or "" for an unknown field.
func (fs FormSet) Get(f Field) string {
	switch f {
	case FieldBase:
		return fs.Base
	case FieldPast:
		return fs.Past
	case FieldPastParticiple:
		return fs.PastParticiple
	case FieldThirdPersonSingular:
		return fs.ThirdPersonSingular
	case FieldPresentParticiple:
		return fs.PresentParticiple
	}
	return ""
}

// Complete reports whether every field is populated.
func (fs FormSet) Complete() bool {
	for _, f := range Fields {
		if fs.Get(f) == "" {
			return false
		}
	}
	return true
}
