package shot

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"fancyshot/pkg/capture"
)

type fakeCapturer struct {
	calls []capture.Region
	err   error
}

func (f *fakeCapturer) Capture(r capture.Region) (image.Image, error) {
	f.calls = append(f.calls, r)
	if f.err != nil {
		return nil, f.err
	}

	img := image.NewRGBA(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height))
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img, nil
}

type fakeClipboard struct {
	writes [][]byte
	err    error
}

func (f *fakeClipboard) WriteImage(png []byte) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, png)
	return nil
}

var errBoom = errors.New("boom")
