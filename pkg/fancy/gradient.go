package fancy

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
)

// NewLinearGradient is a two stop gradient running from p0 to p1 in pixel
// space. Points beyond either end take that end's color.
func NewLinearGradient(p0, p1 image.Point, start, end color.NRGBA) *rasterx.Gradient {
	return &rasterx.Gradient{
		Points: [5]float64{float64(p0.X), float64(p0.Y), float64(p1.X), float64(p1.Y)},
		Stops:  []rasterx.GradStop{gradStop(start, 0), gradStop(end, 1)},
		Matrix: rasterx.Identity,
		Spread: rasterx.PadSpread,
		Units:  rasterx.UserSpaceOnUse,
	}
}

func gradStop(c color.NRGBA, offset float64) rasterx.GradStop {
	return rasterx.GradStop{
		StopColor: color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff},
		Offset:    offset,
		Opacity:   float64(c.A) / 0xff,
	}
}

// colorFunc samples g per pixel whatever rasterx resolves it to.
func colorFunc(g *rasterx.Gradient) rasterx.ColorFunc {
	switch f := g.GetColorFunction(1).(type) {
	case rasterx.ColorFunc:
		return f
	case color.Color:
		return func(int, int) color.Color { return f }
	}
	return func(int, int) color.Color { return color.Transparent }
}

// fillDiagonal paints the square dst with a gradient from its top-left to
// its bottom-right corner. Along that diagonal the color only depends on
// x+y, so each anti-diagonal is sampled once and rows are written directly.
func fillDiagonal(dst *image.RGBA, start, end color.NRGBA) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	side := min(b.Dx(), b.Dy())
	fn := colorFunc(NewLinearGradient(b.Min, b.Min.Add(image.Pt(side, side)), start, end))

	lut := make([]color.RGBA, 2*side-1)
	for k := range lut {
		x := min(k, side-1)
		lut[k] = color.RGBAModel.Convert(fn(b.Min.X+x, b.Min.Y+k-x)).(color.RGBA)
	}

	for y := 0; y < side; y++ {
		i := dst.PixOffset(b.Min.X, b.Min.Y+y)
		row := dst.Pix[i : i+side*4 : i+side*4]
		for x := 0; x < side; x++ {
			c := lut[x+y]
			px := row[x*4 : x*4+4 : x*4+4]
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		}
	}
}
