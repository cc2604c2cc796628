package plate

import "strings"

// Sanitize prepares a raw plate string for matching: outer whitespace
// is trimmed, letters are upper-cased and look-alike characters are
// replaced with their canonical plate counterparts. Interior
// whitespace is kept and rejected later by character validation.
func Sanitize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := lookalikes[r]; ok {
			r = repl
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateCharacters returns an InvalidCharacterError for the first
// character outside the plate alphabet, nil otherwise. The ambiguous
// О/0 pair is part of the alphabet and passes.
func ValidateCharacters(s string) error {
	for _, r := range s {
		if !isAllowedLetter(r) && !isAllowedNumber(r) {
			return &InvalidCharacterError{Char: r}
		}
	}
	return nil
}
