package tgmedia

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}

func TestNewInputFile(t *testing.T) {
	t.Run("sniffs the mime type from content", func(t *testing.T) {
		f := NewInputFile(pngHeader, "")
		assert.Equal(t, "image/png", f.MimeType)
	})

	t.Run("derives a default filename from the mime type", func(t *testing.T) {
		f := NewInputFile(pngHeader, "")
		assert.Equal(t, "image.png", f.Filename)
	})

	t.Run("keeps an explicit filename", func(t *testing.T) {
		f := NewInputFile(pngHeader, "vacation.png")
		assert.Equal(t, "vacation.png", f.Filename)
		assert.Equal(t, "image/png", f.MimeType)
	})

	t.Run("strips charset parameters when sniffing text", func(t *testing.T) {
		f := NewInputFile([]byte("hello world"), "")
		assert.Equal(t, "text/plain", f.MimeType)
		assert.Equal(t, "text.plain", f.Filename)
	})

	t.Run("falls back to octet-stream for unrecognizable content", func(t *testing.T) {
		f := NewInputFile([]byte{0x00, 0x01, 0x02}, "")
		assert.Equal(t, DefaultMimeType, f.MimeType)
		assert.Equal(t, "application.octet-stream", f.Filename)
	})

	t.Run("payload can be read more than once for byte-backed files", func(t *testing.T) {
		f := NewInputFile(pngHeader, "")
		first, err := io.ReadAll(f.Payload())
		assert.NoError(t, err)
		second, err := io.ReadAll(f.Payload())
		assert.NoError(t, err)
		assert.Equal(t, pngHeader, first)
		assert.Equal(t, pngHeader, second)
	})

	t.Run("payload is never nil", func(t *testing.T) {
		f := NewInputFile(nil, "empty.bin")
		assert.NotNil(t, f.Payload())
		content, err := io.ReadAll(f.Payload())
		assert.NoError(t, err)
		assert.Empty(t, content)
	})
}

func TestNewInputFileReader(t *testing.T) {
	t.Run("guesses the mime type from the filename extension", func(t *testing.T) {
		f := NewInputFileReader(strings.NewReader("not really a png"), "chart.png")
		assert.Equal(t, "image/png", f.MimeType)
	})

	t.Run("strips charset parameters from extension guesses", func(t *testing.T) {
		f := NewInputFileReader(strings.NewReader("<html></html>"), "page.html")
		assert.Equal(t, "text/html", f.MimeType)
	})

	t.Run("defaults to octet-stream without a usable name", func(t *testing.T) {
		f := NewInputFileReader(strings.NewReader("opaque"), "")
		assert.Equal(t, DefaultMimeType, f.MimeType)
		assert.Equal(t, "application.octet-stream", f.Filename)
	})

	t.Run("hands the stream through as the payload", func(t *testing.T) {
		f := NewInputFileReader(strings.NewReader("stream data"), "blob.bin")
		content, err := io.ReadAll(f.Payload())
		assert.NoError(t, err)
		assert.Equal(t, "stream data", string(content))
	})
}

func TestAttachNames(t *testing.T) {
	t.Run("are stable per file and unique across files", func(t *testing.T) {
		first := NewInputFile(pngHeader, "")
		second := NewInputFile(pngHeader, "")

		assert.Equal(t, first.AttachName(), first.AttachName())
		assert.NotEqual(t, first.AttachName(), second.AttachName())
		assert.Equal(t, "attach://"+first.AttachName(), first.AttachURI())
	})
}
