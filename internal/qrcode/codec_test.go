package qrcode

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURLToPNG(t *testing.T, dataURL string) []byte {
	t.Helper()

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	return raw
}

func blankFrame(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncode(t *testing.T) {
	codec := NewCodec()

	dataURL, err := codec.Encode("https://example.com")
	require.NoError(t, err)

	raw := dataURLToPNG(t, dataURL)
	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, imageSize, img.Bounds().Dx())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewCodec()

	tests := []string{
		"https://example.com",
		"plain text payload",
		"wifi:T:WPA;S:home;P:secret;;",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			dataURL, err := codec.Encode(text)
			require.NoError(t, err)

			decoded, found, err := codec.Decode(dataURLToPNG(t, dataURL))
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, text, decoded)
		})
	}
}

func TestDecodeNoCodeInFrame(t *testing.T) {
	codec := NewCodec()

	text, found, err := codec.Decode(blankFrame(t))
	require.NoError(t, err, "a frame without a code is not an error")
	assert.False(t, found)
	assert.Empty(t, text)
}

func TestDecodeUnreadableFrame(t *testing.T) {
	codec := NewCodec()

	_, _, err := codec.Decode([]byte("definitely not an image"))
	assert.Error(t, err)
}
