package remote

import (
	"context"
	"net"
	"net/http"
	"net/rpc"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fancyshot/pkg/bitmap"
	"fancyshot/pkg/fancy"
)

// NewHandler serves the compositor at rpc.DefaultRPCPath.
func NewHandler(c *fancy.Compositor, logger *zap.Logger) (http.Handler, error) {
	srv := rpc.NewServer()
	if err := srv.Register(&Service{c: c, log: logger}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, srv)
	return mux, nil
}

func Proxy(handler http.Handler, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) {
	srv.Handler = handler

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.With(zap.String("addr", ln.Addr().String())).Info("listening")

			go func() {
				if err := srv.Serve(ln); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Error("serve failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

type Service struct {
	c   *fancy.Compositor
	log *zap.Logger
}

func (s *Service) Compose(req *ComposeRequest, resp *ComposeResponse) error {
	img, err := bitmap.Decode(req.Image)
	if err != nil {
		return err
	}

	p := req.Policy.policy()
	out, err := s.c.Render(img, p)
	if err != nil {
		return err
	}

	bs, err := bitmap.Encode(out)
	if err != nil {
		return err
	}

	b := img.Bounds()
	resp.Side, resp.X, resp.Y = fancy.Size(b.Dx(), b.Dy())
	resp.Image = bs

	s.log.With(zap.Int("w", b.Dx()), zap.Int("h", b.Dy()), zap.Stringer("policy", p)).Debug("compose")
	return nil
}
