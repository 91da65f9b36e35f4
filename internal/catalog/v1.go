package catalog

import "wordacy/internal/inflect"

var (
	base    = inflect.FieldBase
	past    = inflect.FieldPast
	pp      = inflect.FieldPastParticiple
	s3      = inflect.FieldThirdPersonSingular
	ing     = inflect.FieldPresentParticiple
	allFive = []inflect.Field{base, past, pp, s3, ing}
)

// v1Definitions is frozen. Append a new version instead of editing it: the
// order fixes how often each slot appears in a dataset.
var v1Definitions = []definition{
	{SlotBase, `Give me the base form of the verb "{{.Verb}}".`, []inflect.Field{base}},

	{SlotPast, `Give me the past tense form of the verb "{{.Verb}}".`, []inflect.Field{past}},
	{SlotPast, `What is the past tense of the verb "{{.Verb}}"?`, []inflect.Field{past}},

	{SlotPastParticiple, `Give me the past participle form of the verb "{{.Verb}}".`, []inflect.Field{pp}},
	{SlotPastParticiple, `What is the past participle of the verb "{{.Verb}}"?`, []inflect.Field{pp}},

	{SlotThirdPersonSingular, `Give me the third-person singular present form of the verb "{{.Verb}}".`, []inflect.Field{s3}},
	{SlotThirdPersonSingular, `Conjugate the verb "{{.Verb}}" for he/she/it (present simple).`, []inflect.Field{s3}},

	{SlotPresentParticiple, `Give me the present participle (gerund) form of the verb "{{.Verb}}".`, []inflect.Field{ing}},
	{SlotPresentParticiple, `What is the -ing form of the verb "{{.Verb}}"?`, []inflect.Field{ing}},

	{SlotPastPair, `Give me all past forms in order: past tense, past participle, of the verb "{{.Verb}}".`, []inflect.Field{past, pp}},
	{SlotPresentPair, `Give me all present forms in order: third-person singular present, present participle, of the verb "{{.Verb}}".`, []inflect.Field{s3, ing}},

	{SlotAllForms, `Give me all forms in order: base form, past tense, past participle, third-person singular present, present participle, of the verb "{{.Verb}}".`, allFive},
	{SlotAllForms, `List all forms in order: base form, past tense, past participle, third-person singular present, present participle, of the verb "{{.Verb}}".`, allFive},

	{SlotBase, `What is the base form of the verb "{{.Verb}}"?`, []inflect.Field{base}},
	{SlotPast, `Return the past tense form for the verb "{{.Verb}}".`, []inflect.Field{past}},
	{SlotPastParticiple, `Return the past participle form for the verb "{{.Verb}}".`, []inflect.Field{pp}},
	{SlotThirdPersonSingular, `What is the third-person singular present form of "{{.Verb}}" (he/she/it)?`, []inflect.Field{s3}},
	{SlotPresentParticiple, `Return the present participle form of the verb "{{.Verb}}" (ending with -ing).`, []inflect.Field{ing}},
	{SlotPastPair, `List the past tense form and the past participle form in this order for the verb "{{.Verb}}".`, []inflect.Field{past, pp}},
	{SlotPresentPair, `List the third-person singular present form and the present participle form in this order for the verb "{{.Verb}}".`, []inflect.Field{s3, ing}},

	{SlotBase, `Give me the dictionary form of the verb "{{.Verb}}".`, []inflect.Field{base}},
}
