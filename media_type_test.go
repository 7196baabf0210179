package tgmedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMediaType(t *testing.T) {
	t.Run("parses every kind", func(t *testing.T) {
		for _, want := range []MediaType{MediaTypeAnimation, MediaTypeAudio, MediaTypeDocument, MediaTypePhoto, MediaTypeVideo} {
			got, err := ParseMediaType(string(want))
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		got, err := ParseMediaType("Photo")
		assert.NoError(t, err)
		assert.Equal(t, MediaTypePhoto, got)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := ParseMediaType("sticker")
		assert.Error(t, err)
	})
}
