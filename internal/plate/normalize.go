package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// Plate is a fully resolved registration number together with the
// format it was matched against.
type Plate struct {
	Value  string
	Format string
}

// Normalize corrects manual-entry errors in a plate number and
// returns its canonical form. Input may be a string or any value with
// a canonical decimal rendering (integers). Optional preferred
// formats are consulted, in order, before the catalog when the input
// is ambiguous.
//
// A failure is always one of the typed errors of this package:
// UnsupportedTypeError, UnknownFormatError, InvalidCharacterError,
// InvalidFormatError, ErrAllZeroSequence or ErrRegionFirstDigitZero.
func Normalize(input any, prefer ...string) (string, error) {
	p, err := Parse(input, prefer...)
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

// Parse is Normalize plus the matched format.
func Parse(input any, prefer ...string) (Plate, error) {
	raw, err := render(input)
	if err != nil {
		return Plate{}, err
	}
	if err := CheckFormats(prefer); err != nil {
		return Plate{}, err
	}

	s := Sanitize(raw)
	if err := ValidateCharacters(s); err != nil {
		return Plate{}, err
	}

	shape := buildShape(s)
	format, err := matchFormat(shape, prefer)
	if err != nil {
		return Plate{}, err
	}

	resolved := resolve(s, shape, format)
	if err := validateDigitRuns(resolved, format); err != nil {
		return Plate{}, err
	}

	return Plate{Value: string(resolved), Format: format}, nil
}

// render turns the input into its string form. Only strings, integers
// and Stringers are accepted; silent coercion of anything else would
// hide caller bugs.
func render(input any) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", &UnsupportedTypeError{Value: input}
	}
}

// resolve substitutes every wildcard position with the character the
// chosen format demands there: 'О' in a letter slot, '0' in a digit
// slot.
func resolve(s, shape, format string) []rune {
	resolved := []rune(s)
	for i := 0; i < len(shape); i++ {
		if shape[i] != byte(wildcardSlot) {
			continue
		}
		if format[i] == byte(letterSlot) {
			resolved[i] = 'О'
		} else {
			resolved[i] = '0'
		}
	}
	return resolved
}

// validateDigitRuns walks the maximal digit runs of the format (the
// serial number and the region code) and rejects runs that resolved
// to zeros only, then rejects a three-digit region code with a
// leading zero. The all-zero check runs first: an all-zero plate is
// reported as such even though its region code also starts with zero.
func validateDigitRuns(resolved []rune, format string) error {
	for i := 0; i < len(format); {
		if format[i] != byte(digitSlot) {
			i++
			continue
		}
		j := i
		allZero := true
		for j < len(format) && format[j] == byte(digitSlot) {
			if resolved[j] != '0' {
				allZero = false
			}
			j++
		}
		if allZero {
			return ErrAllZeroSequence
		}
		i = j
	}

	if strings.HasSuffix(format, "999") && resolved[len(resolved)-3] == '0' {
		return ErrRegionFirstDigitZero
	}
	return nil
}
