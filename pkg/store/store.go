package store

import (
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"fancyshot/pkg/bitmap"
)

var ErrNoDir = errors.New("no output dir")

func New(fs afero.Fs, dir string, logger *zap.Logger) *Store {
	return &Store{
		fs:    fs,
		dir:   dir,
		log:   logger.With(zap.String("via", "store")),
		token: token,
	}
}

type Store struct {
	fs    afero.Fs
	dir   string
	log   *zap.Logger
	token func() string
}

func token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) ensureDir() error {
	if s.dir == "" {
		return ErrNoDir
	}

	if exists, err := afero.DirExists(s.fs, s.dir); err != nil {
		return err
	} else if !exists {
		if err2 := s.fs.MkdirAll(s.dir, 0755); err2 != nil {
			return err2
		}
	}

	return nil
}

// Save writes img as <dir>/<hex token>.png and returns that path.
func (s *Store) Save(img image.Image) (string, error) {
	return s.write(s.token()+".png", img)
}

// SavePreview writes a thumbnail next to an image saved earlier.
func (s *Store) SavePreview(saved string, img image.Image) (string, error) {
	base := strings.TrimSuffix(path.Base(saved), path.Ext(saved))
	return s.write(base+"_preview.png", img)
}

func (s *Store) write(name string, img image.Image) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", fmt.Errorf("create output dir failed: %w", err)
	}

	bs, err := bitmap.Encode(img)
	if err != nil {
		return "", err
	}

	file := path.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, file, bs, 0644); err != nil {
		return "", fmt.Errorf("write %s failed: %w", file, err)
	}

	s.log.With(
		zap.String("file", file),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Debug("saved")

	return file, nil
}
