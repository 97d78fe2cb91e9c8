package shot

import "github.com/samber/lo"

type Option func(s *Service)

func WithClipboard(enabled bool) Option {
	return func(s *Service) {
		s.copy = enabled
	}
}

// WithHistory keeps the last n results; anything below 1 keeps one.
func WithHistory(n int) Option {
	return func(s *Service) {
		s.history = &History{max: lo.Max([]int{n, 1})}
	}
}
