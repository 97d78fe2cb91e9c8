package fancy

import (
	"math/rand"

	"go.uber.org/zap"
)

type Option func(c *Compositor)

func WithRadius(radius float64) Option {
	return func(c *Compositor) {
		c.radius = radius
	}
}

func WithRand(r *rand.Rand) Option {
	return func(c *Compositor) {
		c.rand = r
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Compositor) {
		c.logger = logger.With(zap.String("via", "compositor"))
	}
}
