// Package inflect derives the five canonical English verb forms from a base
// verb, combining orthographic suffix rules with curated irregular overrides.
package inflect

import "strings"

// isVowel reports whether b is one of the five written vowels.
func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// endsInConsonantY reports whether base ends in a non-vowel followed by 'y'
// (try, study), but not a vowel followed by 'y' (play, stay).
func endsInConsonantY(base string) bool {
	n := len(base)
	return n >= 2 && base[n-1] == 'y' && !isVowel(base[n-2])
}

// endsInSibilant reports whether base ends in s, x, z, ch or sh.
func endsInSibilant(base string) bool {
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// ThirdPersonSingular returns the he/she/it present form: watch -> watches,
// try -> tries, go -> goes, play -> plays.
func ThirdPersonSingular(base string) string {
	switch {
	case endsInSibilant(base):
		return base + "es"
	case endsInConsonantY(base):
		return base[:len(base)-1] + "ies"
	case strings.HasSuffix(base, "o"):
		return base + "es"
	default:
		return base + "s"
	}
}

// PresentParticiple returns the -ing form: die -> dying, make -> making,
// see -> seeing. Final consonants are never doubled (run -> runing), so
// verbs like run need an override.
func PresentParticiple(base string) string {
	switch {
	case strings.HasSuffix(base, "ie"):
		return base[:len(base)-2] + "ying"
	case strings.HasSuffix(base, "e") && !strings.HasSuffix(base, "ee"):
		return base[:len(base)-1] + "ing"
	default:
		return base + "ing"
	}
}

// PastTenseRegular returns the regular simple past: use -> used,
// study -> studied, play -> played. No consonant doubling (stop -> stoped).
func PastTenseRegular(base string) string {
	switch {
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case endsInConsonantY(base):
		return base[:len(base)-1] + "ied"
	default:
		return base + "ed"
	}
}

// PastParticipleRegular is identical to PastTenseRegular for regular verbs.
func PastParticipleRegular(base string) string {
	return PastTenseRegular(base)
}
