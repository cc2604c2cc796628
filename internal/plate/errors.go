package plate

import (
	"errors"
	"fmt"
)

var (
	// ErrRegionFirstDigitZero is returned when a three-digit region
	// code starts with zero.
	ErrRegionFirstDigitZero = errors.New("first digit of a three-digit region code cannot be zero")

	// ErrAllZeroSequence is returned when a digit sequence (serial
	// number or region code) resolves to zeros only.
	ErrAllZeroSequence = errors.New("plate cannot contain an all-zero digit sequence")
)

// InvalidCharacterError reports the first character outside the plate
// alphabet.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}

// InvalidFormatError reports an input whose shape matches none of the
// allowed formats. Shape uses the X/9/* placeholder notation.
type InvalidFormatError struct {
	Shape string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid plate format %q", e.Shape)
}

// UnknownFormatError reports preferred formats that are not part of
// AllowedFormats.
type UnknownFormatError struct {
	Formats []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown preferred formats %v", e.Formats)
}

// UnsupportedTypeError reports an input value that has no canonical
// string rendering.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported input type %T", e.Value)
}

// ErrorCode maps a normalization error to a stable machine-readable
// code. The second return is false for errors outside the taxonomy.
func ErrorCode(err error) (string, bool) {
	var (
		charErr    *InvalidCharacterError
		formatErr  *InvalidFormatError
		unknownErr *UnknownFormatError
		typeErr    *UnsupportedTypeError
	)
	switch {
	case errors.As(err, &charErr):
		return "invalid_character", true
	case errors.As(err, &formatErr):
		return "invalid_format", true
	case errors.As(err, &unknownErr):
		return "unknown_format", true
	case errors.As(err, &typeErr):
		return "unsupported_type", true
	case errors.Is(err, ErrRegionFirstDigitZero):
		return "region_first_digit_zero", true
	case errors.Is(err, ErrAllZeroSequence):
		return "all_zero_sequence", true
	default:
		return "", false
	}
}
