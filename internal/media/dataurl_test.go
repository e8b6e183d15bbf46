package media

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func TestEncode_PNG(t *testing.T) {
	got, err := Converter{MaxBytes: 1024}.Encode(bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "image/png", got.MIME)
	assert.Equal(t, len(pngHeader), got.Size)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), got.URL)
}

func TestEncode_TextDropsCharset(t *testing.T) {
	got, err := Converter{}.Encode(strings.NewReader("passport number 123"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", got.MIME)
	assert.True(t, strings.HasPrefix(got.URL, "data:text/plain;base64,"))
}

func TestEncode_Limits(t *testing.T) {
	_, err := Converter{MaxBytes: 4}.Encode(bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = Converter{}.Encode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestEncode_Allowed(t *testing.T) {
	c := Converter{Allowed: []string{"image/png", "image/jpeg", "application/pdf"}}

	_, err := c.Encode(bytes.NewReader(pngHeader))
	assert.NoError(t, err)

	_, err = c.Encode(strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrNotAllowed)
}
