package fancy

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
)

type rectF struct {
	x0, y0, x1, y1 float64
}

func rectOf(r image.Rectangle) rectF {
	return rectF{float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)}
}

// radii clamps an absolute corner radius to half of each side.
func (r rectF) radii(radius float64) (rx, ry float64) {
	radius = max(radius, 0)
	return min(radius, (r.x1-r.x0)/2), min(radius, (r.y1-r.y0)/2)
}

// addRoundedRect appends a closed rounded rectangle to a filler or stroker.
func addRoundedRect(p rasterx.Adder, r rectF, radius float64) {
	rx, ry := r.radii(radius)
	rasterx.AddRoundRect(r.x0, r.y0, r.x1, r.y1, rx, ry, 0, rasterx.RoundGap, p)
}

// roundedMask is the coverage of a rounded rectangle spanning a w×h area.
func roundedMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	scanner.SetColor(color.Opaque)

	addRoundedRect(filler, rectOf(mask.Bounds()), radius)
	filler.Draw()

	return mask
}

// Round returns a copy of img clipped to an antialiased rounded rectangle
// spanning its full bounds. Pixels away from the corners are copied exactly.
func Round(img image.Image, radius float64) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return dst
	}

	mask := roundedMask(b.Dx(), b.Dy(), radius)
	draw.DrawMask(dst, dst.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)

	return dst
}
