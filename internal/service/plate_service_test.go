package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plate-service/internal/plate"
)

func TestPlateServiceNormalize(t *testing.T) {
	t.Run("uses configured preferred formats", func(t *testing.T) {
		svc := NewPlateService([]string{"9999XX99"})

		normalized, err := svc.Normalize("о001тр98", nil)
		require.NoError(t, err)
		assert.Equal(t, "0001ТР98", normalized.Value)
		assert.Equal(t, "9999XX99", normalized.Format)
	})

	t.Run("request preference overrides configuration", func(t *testing.T) {
		svc := NewPlateService([]string{"9999XX99"})

		normalized, err := svc.Normalize("о001тр98", []string{"X999XX99"})
		require.NoError(t, err)
		assert.Equal(t, "О001ТР98", normalized.Value)
	})

	t.Run("falls back to catalog order without preference", func(t *testing.T) {
		svc := NewPlateService(nil)

		normalized, err := svc.Normalize("о123оо97", nil)
		require.NoError(t, err)
		assert.Equal(t, "О123ОО97", normalized.Value)
		assert.Equal(t, "X999XX99", normalized.Format)
	})
}

func TestPlateServiceFormats(t *testing.T) {
	svc := NewPlateService(nil)

	formats := svc.Formats()
	assert.Equal(t, plate.AllowedFormats, formats)

	// The returned slice is a copy; mutating it must not affect the
	// catalog.
	formats[0] = "mutated"
	assert.Equal(t, "X999XX99", plate.AllowedFormats[0])
}
