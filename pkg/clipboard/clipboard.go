package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

type Writer interface {
	WriteImage(png []byte) error
}

// Owner is a Writer whose last write stays on the clipboard only while the
// process owns the selection, as on X11.
type Owner interface {
	Writer
	// Lost is signalled once another program replaces the content. It is
	// nil before the first successful write.
	Lost() <-chan struct{}
}

func NewSystem() *System {
	return &System{}
}

// System writes to the desktop clipboard. The backend is initialised on
// first use.
type System struct {
	once sync.Once
	err  error

	l    sync.Mutex
	lost <-chan struct{}
}

func (s *System) WriteImage(png []byte) error {
	s.once.Do(func() {
		s.err = clipboard.Init()
	})
	if s.err != nil {
		return s.err
	}

	lost := clipboard.Write(clipboard.FmtImage, png)

	s.l.Lock()
	s.lost = lost
	s.l.Unlock()
	return nil
}

func (s *System) Lost() <-chan struct{} {
	s.l.Lock()
	defer s.l.Unlock()
	return s.lost
}

// Discard drops everything; used when copying is turned off.
type Discard struct{}

func (Discard) WriteImage([]byte) error {
	return nil
}
