package bitmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/spf13/afero"
)

// Encode returns src as PNG, the only format screenshots are written in.
func Encode(src image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("png encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode accepts PNG or JPEG.
func Decode(bs []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}
	return img, nil
}

func Load(fs afero.Fs, path string) (image.Image, error) {
	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return Decode(bs)
}
