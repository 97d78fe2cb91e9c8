package fancy

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const DefaultRadius = 20

var ErrEmptyImage = errors.New("empty image")

func New(opts ...Option) *Compositor {
	c := &Compositor{
		radius: DefaultRadius,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compositor turns a raw capture into the decorated screenshot. It is safe
// for concurrent use; only the random source is shared between calls.
type Compositor struct {
	mu     sync.Mutex
	radius float64
	rand   *rand.Rand
	logger *zap.Logger
}

// Size returns the side of the square canvas for a w×h capture and the
// offset that centres the capture on it.
func Size(w, h int) (side, x, y int) {
	side = lo.Max([]int{w, h}) * 5 / 4
	return side, (side - w) / 2, (side - h) / 2
}

// Validate rejects captures the compositor cannot decorate.
func Validate(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	return nil
}

// Render is Compose behind the input check used by callers that receive
// images from the outside.
func (c *Compositor) Render(img image.Image, p Policy) (image.Image, error) {
	if err := Validate(img); err != nil {
		return nil, err
	}
	return c.Compose(img, p), nil
}

// Compose draws img with rounded corners and a drop shadow centred on a
// square canvas, then fills the margin with the policy's gradient.
// img must be at least 1×1.
func (c *Compositor) Compose(img image.Image, p Policy) *image.RGBA {
	b := img.Bounds()
	side, x, y := Size(b.Dx(), b.Dy())

	bounds := image.Rect(0, 0, side, side)
	canvas := image.NewRGBA(bounds)

	rounded := Round(img, c.radius)
	placed := rounded.Bounds().Add(image.Pt(x, y))

	drawShadow(canvas, placed, c.radius)
	draw.Draw(canvas, placed, rounded, image.Point{}, draw.Over)

	start, end := c.colors(p)
	out := image.NewRGBA(bounds)
	fillDiagonal(out, start, end)
	// canvas over gradient is the gradient drawn behind the canvas
	draw.Draw(out, bounds, canvas, image.Point{}, draw.Over)

	c.logger.With(
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
		zap.Int("side", side),
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Stringer("policy", p),
		zap.String("start", FormatColor(start)),
		zap.String("end", FormatColor(end)),
	).Debug("composed")

	return out
}

func (c *Compositor) colors(p Policy) (start, end color.NRGBA) {
	switch p.Kind {
	case KindRandom:
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.randColor(), c.randColor()
	case KindFixed:
		return p.Start, p.End
	}
	return DefaultStart, DefaultEnd
}

func (c *Compositor) randColor() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.rand.Intn(256)),
		G: uint8(c.rand.Intn(256)),
		B: uint8(c.rand.Intn(256)),
		A: 255,
	}
}
