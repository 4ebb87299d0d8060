// Package qrcode wraps the third-party QR encode and decode libraries behind
// a small adapter so the rest of the service never touches image formats
// directly.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	qrc "github.com/skip2/go-qrcode"
)

const imageSize = 256

type Codec struct {
	reader gozxing.Reader
}

func NewCodec() *Codec {
	return &Codec{
		reader: zxqr.NewQRCodeReader(),
	}
}

// Encode renders text into a PNG QR image and returns it as a data URL,
// ready for an <img> tag or an email body.
func (c *Codec) Encode(text string) (string, error) {
	png, err := qrc.Encode(text, qrc.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr image: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Decode looks for a single QR code in a PNG or JPEG frame. A frame without
// a readable code reports found=false with a nil error; camera frames
// usually contain no code at all.
func (c *Codec) Decode(frame []byte) (string, bool, error) {
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return "", false, fmt.Errorf("decode frame image: %w", err)
	}

	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false, fmt.Errorf("binarize frame: %w", err)
	}

	result, err := c.reader.Decode(bitmap, nil)
	if err != nil {
		var notFound gozxing.NotFoundException
		if errors.As(err, &notFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("decode qr code: %w", err)
	}

	return result.GetText(), true, nil
}
