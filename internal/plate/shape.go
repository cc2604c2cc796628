package plate

import "strings"

// buildShape classifies every character of a sanitized, validated
// string as a letter slot, a digit slot or a wildcard (О or 0).
func buildShape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == 'О' || r == '0':
			b.WriteRune(wildcardSlot)
		case isAllowedLetter(r):
			b.WriteRune(letterSlot)
		default:
			b.WriteRune(digitSlot)
		}
	}
	return b.String()
}

// compatible reports whether a shape can be read as the given format:
// lengths match and every position is either the same slot kind or a
// wildcard.
func compatible(shape, format string) bool {
	if len(shape) != len(format) {
		return false
	}
	for i := 0; i < len(shape); i++ {
		if shape[i] != format[i] && shape[i] != byte(wildcardSlot) {
			return false
		}
	}
	return true
}

// matchFormat picks the format for a shape: preferred formats are
// tried in the order given, then the catalog in declaration order.
func matchFormat(shape string, prefer []string) (string, error) {
	for _, f := range prefer {
		if compatible(shape, f) {
			return f, nil
		}
	}
	for _, f := range AllowedFormats {
		if compatible(shape, f) {
			return f, nil
		}
	}
	return "", &InvalidFormatError{Shape: shape}
}

// CheckFormats rejects format strings outside the catalog. Used for
// the prefer argument of Normalize and for validating configured
// preferred formats up front.
func CheckFormats(formats []string) error {
	var unknown []string
	for _, f := range formats {
		known := false
		for _, allowed := range AllowedFormats {
			if f == allowed {
				known = true
				break
			}
		}
		if !known {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) > 0 {
		return &UnknownFormatError{Formats: unknown}
	}
	return nil
}
