package resolver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestResolvePNG(t *testing.T) {
	uri, err := Resolve("logo.png", pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), "got %q", uri)
}

func TestResolvePDF(t *testing.T) {
	uri, err := Resolve("doc.pdf", []byte("%PDF-1.7\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:application/pdf;base64,"), "got %q", uri)
}

func TestResolveSVGByExtension(t *testing.T) {
	// content sniffing sees text, the extension disambiguates
	uri, err := Resolve("logo.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"), "got %q", uri)
}

func TestResolveRejectsOversize(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxFileSize)...)

	_, err := Resolve("huge.png", big)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestResolveRejectsUnsupportedType(t *testing.T) {
	_, err := Resolve("script.exe", []byte{'M', 'Z', 0x90, 0x00, 0x03})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Resolve("notes.txt", []byte("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
