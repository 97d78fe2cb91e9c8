package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
	"github.com/pkg/errors"
)

var (
	ErrEmptyRegion = errors.New("empty region")
	ErrNoDisplay   = errors.New("no active display")
)

type Capturer interface {
	Capture(r Region) (image.Image, error)
}

// Region is a screen rectangle in desktop coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// FromPoints normalizes a drag from a to b. Both points are inside the
// region, so a click without movement gives a 1×1 region.
func FromPoints(a, b image.Point) Region {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	return Region{X: r.Min.X, Y: r.Min.Y, Width: r.Dx() + 1, Height: r.Dy() + 1}
}

func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyRegion, r.Width, r.Height)
	}
	return nil
}

// ParseRegion reads "x,y,w,h".
func ParseRegion(s string) (Region, error) {
	var r Region
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &r.X, &r.Y, &r.Width, &r.Height); err != nil {
		return r, fmt.Errorf("region %q: %w", s, err)
	}
	return r, r.Validate()
}

func NewScreen() *Screen {
	return &Screen{}
}

// Screen grabs pixels straight from the active displays.
type Screen struct{}

func (s *Screen) Bounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, ErrNoDisplay
	}

	var all image.Rectangle
	for i := 0; i < n; i++ {
		all = all.Union(screenshot.GetDisplayBounds(i))
	}
	return all, nil
}

func (s *Screen) Capture(r Region) (image.Image, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	img, err := screenshot.CaptureRect(r.Rect())
	if err != nil {
		return nil, fmt.Errorf("capture %s failed: %w", r, err)
	}

	return img, nil
}
