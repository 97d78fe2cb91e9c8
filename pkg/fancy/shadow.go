package fancy

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

const (
	shadowAlpha   = 80
	shadowStrokes = 5
)

var shadowOffset = image.Pt(5, 5)

// ShadowStep is one 1px rounded-rect stroke of the drop shadow.
type ShadowStep struct {
	Rect  image.Rectangle
	Alpha uint8
}

// ShadowSteps lists the strokes painted under a screenshot placed at rect,
// outermost first. Each step pulls in only the right and bottom edges.
func ShadowSteps(rect image.Rectangle) []ShadowStep {
	r := rect.Add(shadowOffset)
	steps := make([]ShadowStep, 0, shadowStrokes)

	for i := shadowStrokes; i > 0; i-- {
		steps = append(steps, ShadowStep{
			Rect:  r,
			Alpha: uint8(shadowAlpha - shadowAlpha*i/shadowStrokes),
		})
		r.Max = r.Max.Sub(image.Pt(1, 1))
	}

	return steps
}

// shadowArea bounds every stroke of the shadow under rect, including the
// half pixel each stroke spills outside its path.
func shadowArea(rect image.Rectangle) image.Rectangle {
	return rect.Add(shadowOffset).Inset(-1)
}

// drawShadow strokes the shadow into a layer covering only shadowArea and
// composites that layer onto dst.
func drawShadow(dst *image.RGBA, rect image.Rectangle, radius float64) {
	area := shadowArea(rect)
	w, h := area.Dx(), area.Dy()
	layer := image.NewRGBA(image.Rect(0, 0, w, h))

	var painted bool
	for _, step := range ShadowSteps(rect) {
		if step.Alpha == 0 || step.Rect.Empty() {
			continue
		}

		scanner := rasterx.NewScannerGV(w, h, layer, layer.Bounds())
		stroker := rasterx.NewStroker(w, h, scanner)
		stroker.SetStroke(fixed.I(1), fixed.I(4), rasterx.ButtCap, nil, rasterx.RoundGap, rasterx.Round)
		scanner.SetColor(color.NRGBA{A: step.Alpha})

		addRoundedRect(stroker, rectOf(step.Rect.Sub(area.Min)), radius)
		stroker.Draw()
		painted = true
	}

	if painted {
		draw.Draw(dst, area, layer, image.Point{}, draw.Over)
	}
}
