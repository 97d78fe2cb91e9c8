package fancy

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbaOf(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func assertNear(t *testing.T, want, got color.RGBA, delta float64) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, delta, "R")
	assert.InDelta(t, want.G, got.G, delta, "G")
	assert.InDelta(t, want.B, got.B, delta, "B")
	assert.InDelta(t, want.A, got.A, delta, "A")
}

func TestGradientPadded(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	fn := colorFunc(NewLinearGradient(image.Pt(0, 0), image.Pt(10, 0), black, white))

	assertNear(t, color.RGBA{0, 0, 0, 255}, rgbaOf(fn(-20, 3)), 1)
	assertNear(t, color.RGBA{255, 255, 255, 255}, rgbaOf(fn(50, 3)), 1)
	assertNear(t, color.RGBA{128, 128, 128, 255}, rgbaOf(fn(5, 7)), 2)
}

func TestFillDiagonal(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fillDiagonal(dst, black, white)

	assertNear(t, color.RGBA{64, 64, 64, 255}, dst.RGBAAt(0, 0), 2)
	assertNear(t, color.RGBA{128, 128, 128, 255}, dst.RGBAAt(1, 0), 2)
	assertNear(t, color.RGBA{128, 128, 128, 255}, dst.RGBAAt(0, 1), 2)
	assertNear(t, color.RGBA{191, 191, 191, 255}, dst.RGBAAt(1, 1), 2)
}

func TestFillDiagonalMatchesSampling(t *testing.T) {
	const side = 37
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	fillDiagonal(dst, DefaultStart, DefaultEnd)

	fn := colorFunc(NewLinearGradient(image.Pt(0, 0), image.Pt(side, side), DefaultStart, DefaultEnd))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			require.Equal(t, rgbaOf(fn(x, y)), dst.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestFillDiagonalOffsetBounds(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 20, 20))
	dst := base.SubImage(image.Rect(5, 5, 15, 15)).(*image.RGBA)
	fillDiagonal(dst, DefaultStart, DefaultEnd)

	assert.Equal(t, color.RGBA{}, base.RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{}, base.RGBAAt(15, 15))
	assertNear(t, rgbaOf(DefaultStart), base.RGBAAt(5, 5), 16)
	assertNear(t, rgbaOf(DefaultEnd), base.RGBAAt(14, 14), 16)
}
