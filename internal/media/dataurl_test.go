package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDataURL(t *testing.T) {
	got := EncodeDataURL("image/png", []byte("abc"))
	require.Equal(t, "data:image/png;base64,YWJj", got)
}

func TestEncodeDataURLDetectsContentType(t *testing.T) {
	// PNG magic bytes; the sniffer should recognise them.
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	got := EncodeDataURL("", png)
	require.True(t, strings.HasPrefix(got, "data:image/png;base64,"), got)
}

func TestEncodeReaderWithinLimit(t *testing.T) {
	got, err := EncodeReader(strings.NewReader("hello"), "text/plain", 5)
	require.NoError(t, err)
	require.Equal(t, "data:text/plain;base64,aGVsbG8=", got)
}

func TestEncodeReaderOverLimit(t *testing.T) {
	_, err := EncodeReader(strings.NewReader("hello!"), "text/plain", 5)
	require.ErrorIs(t, err, ErrTooLarge)
}
