package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"fancyshot/pkg/fancy"
	"fancyshot/pkg/remote"
)

var listen = flag.String("listen", ":9123", "listen addr")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			func() (*http.Server, *zap.Logger, error) {
				logger, err := newLogger()
				return &http.Server{Addr: *listen}, logger, err
			},
			func(logger *zap.Logger) *fancy.Compositor {
				return fancy.New(fancy.WithLogger(logger))
			},
			remote.NewHandler,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
