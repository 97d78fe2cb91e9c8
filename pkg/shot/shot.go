package shot

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"fancyshot/pkg/bitmap"
	"fancyshot/pkg/capture"
	"fancyshot/pkg/clipboard"
	"fancyshot/pkg/fancy"
)

const PreviewWidth = 400

var (
	ErrSave      = errors.New("save screenshot failed")
	ErrClipboard = errors.New("copy to clipboard failed")
)

// Composer renders the decorated image, locally or over RPC.
type Composer interface {
	Render(img image.Image, p fancy.Policy) (image.Image, error)
}

type Saver interface {
	Save(img image.Image) (string, error)
}

type Result struct {
	ID    xid.ID
	Image image.Image
	Path  string
}

// Preview is the image scaled to the preview window width.
func (r *Result) Preview() image.Image {
	if r.Image.Bounds().Dx() <= PreviewWidth {
		return r.Image
	}
	return imaging.Resize(r.Image, PreviewWidth, 0, imaging.Lanczos)
}

func New(capturer capture.Capturer, c Composer, s Saver, clip clipboard.Writer, logger *zap.Logger, opts ...Option) *Service {
	svc := &Service{
		capturer: capturer,
		composer: c,
		saver:    s,
		clip:     clip,
		logger:   logger,
		history:  NewHistory(),
		copy:     true,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

type Service struct {
	capturer capture.Capturer
	composer Composer
	saver    Saver
	clip     clipboard.Writer
	logger   *zap.Logger
	history  *History
	copy     bool
}

func (s *Service) History() *History {
	return s.history
}

// Take captures r and decorates it. Degenerate regions never reach the
// compositor.
func (s *Service) Take(r capture.Region, p fancy.Policy) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	img, err := s.capturer.Capture(r)
	if err != nil {
		return nil, fmt.Errorf("capture failed: %w", err)
	}

	return s.Decorate(img, p)
}

// Decorate composes img, saves it and copies it when enabled. When saving
// or copying fails the result is still returned with the error so the
// image can be shown and the user told.
func (s *Service) Decorate(img image.Image, p fancy.Policy) (*Result, error) {
	id := xid.New()
	log := s.logger.With(zap.Stringer("id", id))

	out, err := s.composer.Render(img, p)
	if err != nil {
		return nil, fmt.Errorf("compose failed: %w", err)
	}

	res := &Result{ID: id, Image: out}
	s.history.Add(res)

	path, err := s.saver.Save(out)
	if err != nil {
		log.With(zap.Error(err)).Info("save failed")
		return res, fmt.Errorf("%w: %w", ErrSave, err)
	}
	res.Path = path

	log = log.With(zap.String("path", path))

	if s.copy {
		if err := s.copyImage(out); err != nil {
			log.With(zap.Error(err)).Info("clipboard failed")
			return res, fmt.Errorf("%w: %w", ErrClipboard, err)
		}
	}

	log.With(zap.Stringer("policy", p), zap.Bool("copied", s.copy)).Info("screenshot")
	return res, nil
}

func (s *Service) copyImage(img image.Image) error {
	bs, err := bitmap.Encode(img)
	if err != nil {
		return err
	}
	return s.clip.WriteImage(bs)
}
