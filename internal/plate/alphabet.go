// Package plate normalizes manually entered RF vehicle registration
// numbers: it maps Latin look-alike characters to their Cyrillic
// counterparts, validates the character set, matches the input against
// the GOST R 50577-2018 plate formats and resolves the О/0 ambiguity
// to whatever the matched format demands.
package plate

import "strings"

// AllowedLetters are the Cyrillic letters permitted on RF plates
// (the twelve letters that have a visually identical Latin glyph).
const AllowedLetters = "АВЕКМНОРСТУХ"

// AllowedNumbers are the digit characters permitted on RF plates.
const AllowedNumbers = "0123456789"

// AllowedSymbols is the full plate alphabet.
const AllowedSymbols = AllowedLetters + AllowedNumbers

// Shape placeholders: 'X' marks a letter slot, '9' a digit slot and
// '*' a position that may be either (the character was О or 0).
const (
	letterSlot   = 'X'
	digitSlot    = '9'
	wildcardSlot = '*'
)

// AllowedFormats lists the supported plate formats in placeholder
// notation. Declaration order is the tie-break order when an input is
// compatible with more than one format.
var AllowedFormats = []string{
	"X999XX99",  // type 1: cars, trucks and buses
	"X999XX999", // type 1, three-digit region code
	"XX99999",   // type 1Б: taxis
	"XX999999",  // type 2: trailers and semi-trailers
	"9999XX99",  // type 3: tractors and road-building machinery
	"XX99XX99",  // type 4Б: mopeds
}

// lookalikes maps characters commonly typed instead of the canonical
// plate character. Mostly Latin capitals standing in for Cyrillic
// ones, plus two digit confusions (Latin I for 1, Cyrillic З for 3).
var lookalikes = map[rune]rune{
	'A': 'А',
	'B': 'В',
	'C': 'С',
	'E': 'Е',
	'H': 'Н',
	'I': '1',
	'K': 'К',
	'M': 'М',
	'O': 'О',
	'P': 'Р',
	'T': 'Т',
	'X': 'Х',
	'Y': 'У',
	'З': '3',
}

func isAllowedLetter(r rune) bool {
	return strings.ContainsRune(AllowedLetters, r)
}

func isAllowedNumber(r rune) bool {
	return strings.ContainsRune(AllowedNumbers, r)
}
