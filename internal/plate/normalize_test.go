package plate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"latin lookalikes and trailing ambiguous digit", "YY1239O", "УУ12390"},
		{"leading ambiguous resolves per format", "000100102", "О001ОО102"},
		{"tractor format with ambiguous letters", "12340078", "1234ОО78"},
		{"lowercase cyrillic with ambiguous tail", "о123оо9о9", "О123ОО909"},
		{"outer whitespace and lowercase", "   оо12345  ", "ОО12345"},
		{"latin I becomes digit one", "YI23YY77", "У123УУ77"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"YY1239O", "000100102", "12340078", "о123оо9о9", "   оо12345  "}

	for _, input := range inputs {
		once, err := Normalize(input)
		require.NoError(t, err)

		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "re-normalizing %q must be stable", input)
	}
}

func TestNormalizeIntegerInput(t *testing.T) {
	got, err := Normalize(12340078)
	require.NoError(t, err)
	assert.Equal(t, "1234ОО78", got)

	_, err = Normalize(12345678)
	var formatErr *InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "99999999", formatErr.Shape)
}

func TestNormalizeUnsupportedType(t *testing.T) {
	for _, input := range []any{12.5, nil, []byte("УУ12345"), true} {
		_, err := Normalize(input)
		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr, "input %#v", input)
	}
}

func TestNormalizePreferredFormats(t *testing.T) {
	cases := []struct {
		input  string
		prefer []string
		want   string
	}{
		{"o123oo97", []string{"X999XX99"}, "О123ОО97"},
		{"o123oo97", []string{"9999XX99"}, "0123ОО97"},
		{"о001тр98", []string{"X999XX99"}, "О001ТР98"},
		{"о001тр98", []string{"XX99XX99"}, "ОО01ТР98"},
		{"о001тр98", []string{"9999XX99"}, "0001ТР98"},
		{"о001тр98", []string{"9999XX99", "XX99XX99", "X999XX99"}, "0001ТР98"},
	}

	for _, tc := range cases {
		got, err := Normalize(tc.input, tc.prefer...)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q prefer %v", tc.input, tc.prefer)
	}
}

func TestNormalizeUnknownPreferredFormat(t *testing.T) {
	_, err := Normalize("о001тр98", "99999999")

	var unknownErr *UnknownFormatError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"99999999"}, unknownErr.Formats)
}

func TestNormalizeInvalidCharacter(t *testing.T) {
	_, err := Normalize("ГН99900")

	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 'Г', charErr.Char)
}

func TestNormalizeInteriorWhitespace(t *testing.T) {
	_, err := Normalize("ОО12 345")

	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, ' ', charErr.Char)
}

func TestNormalizeInvalidFormat(t *testing.T) {
	cases := []struct {
		input string
		shape string
	}{
		{"", ""},
		{"123", "999"},
		{"НН01ВВ67ОО78", "XX*9XX99**99"},
	}

	for _, tc := range cases {
		_, err := Normalize(tc.input)
		var formatErr *InvalidFormatError
		require.ErrorAs(t, err, &formatErr, "input %q", tc.input)
		assert.Equal(t, tc.shape, formatErr.Shape)
	}
}

func TestNormalizeAllZeroSequence(t *testing.T) {
	// Both the serial number and the region resolve to zeros; the
	// all-zero check fires before the region leading-zero check.
	_, err := Normalize("000000000")
	require.ErrorIs(t, err, ErrAllZeroSequence)
}

func TestNormalizeRegionFirstDigitZero(t *testing.T) {
	_, err := Normalize("000100001")
	require.ErrorIs(t, err, ErrRegionFirstDigitZero)

	// Trailer shape: the trailing digit run starts with zeros only
	// after the region boundary, still rejected (matches the legacy
	// behavior for formats ending in three digit slots).
	_, err = Normalize("YYOOO099")
	require.ErrorIs(t, err, ErrRegionFirstDigitZero)
}

func TestParseReportsMatchedFormat(t *testing.T) {
	p, err := Parse("о123оо97")
	require.NoError(t, err)
	assert.Equal(t, "О123ОО97", p.Value)
	assert.Equal(t, "X999XX99", p.Format)

	p, err = Parse("о001тр98", "9999XX99")
	require.NoError(t, err)
	assert.Equal(t, "0001ТР98", p.Value)
	assert.Equal(t, "9999XX99", p.Format)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "УУ12390", Sanitize("  yy1239o "))
	assert.Equal(t, "АВСЕНКМОРТХУ", Sanitize("ABCEHKMOPTXY"))
	assert.Equal(t, "13", Sanitize("IЗ"))
	assert.Equal(t, "ОО12345", Sanitize("оо12345"))
}

func TestAlphabetConstants(t *testing.T) {
	assert.Equal(t, AllowedLetters+AllowedNumbers, AllowedSymbols)

	for _, r := range AllowedNumbers {
		assert.True(t, r >= '0' && r <= '9', "rune %q", r)
	}

	assert.False(t, strings.ContainsRune(AllowedLetters, 'Ю'))

	for latin, canonical := range lookalikes {
		assert.True(t, strings.ContainsRune(AllowedSymbols, canonical),
			"lookalike %q must map into the alphabet", latin)
	}
}

func TestAllowedFormatsArePlaceholderStrings(t *testing.T) {
	for _, f := range AllowedFormats {
		require.NotEmpty(t, f)
		for i := 0; i < len(f); i++ {
			assert.Contains(t, []byte{'X', '9'}, f[i], "format %q", f)
		}
	}
}
