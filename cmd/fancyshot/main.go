package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"fancyshot/pkg/bitmap"
	"fancyshot/pkg/capture"
	"fancyshot/pkg/clipboard"
	"fancyshot/pkg/config"
	"fancyshot/pkg/fancy"
	"fancyshot/pkg/remote"
	"fancyshot/pkg/shot"
	"fancyshot/pkg/store"
)

var configFile = flag.String("config", config.DefaultFile, "options file")
var dotenv = flag.String("env", ".env", "dotenv file with FANCYSHOT_* overrides")
var region = flag.String("region", "", "capture screen region x,y,w,h")
var input = flag.String("input", "", "decorate an image file instead of capturing")
var out = flag.String("out", "", "output dir")
var start = flag.String("start", "", "gradient start color, #rrggbb")
var end = flag.String("end", "", "gradient end color, #rrggbb")
var random = flag.Bool("random", false, "random gradient colors")
var copyClip = flag.Bool("clipboard", true, "copy the result to the clipboard")
var persist = flag.Bool("persist", false, "write the resulting options back to the config file")
var preview = flag.Bool("preview", false, "also write a preview thumbnail")
var remoteAddr = flag.String("remote", "", "render on a fancyd instance at addr")
var hold = flag.Duration("hold", lo.Ternary(runtime.GOOS == "linux", time.Minute, 0), "keep serving the clipboard copy until replaced or this long")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	var logger *zap.Logger
	if *debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() {
		_ = logger.Sync()
	}()

	fs := afero.NewOsFs()

	opts, err := loadOptions(fs)
	if err != nil {
		log.Fatal(err)
	}

	if *persist {
		if err := config.Save(fs, *configFile, opts); err != nil {
			log.Fatal(err)
		}
		logger.With(zap.String("file", *configFile)).Info("options saved")
	}

	if *region == "" && *input == "" {
		if *persist {
			return
		}
		log.Fatal("nothing to do, pass --region or --input")
	}

	var composer shot.Composer
	if *remoteAddr != "" {
		client, err := remote.New(*remoteAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			_ = client.Close()
		}()
		composer = client
	} else {
		composer = fancy.New(fancy.WithLogger(logger))
	}

	var clip clipboard.Writer = clipboard.Discard{}
	if opts.CopyToClipboard {
		clip = clipboard.NewSystem()
	}

	st := store.New(fs, opts.OutputDir, logger)
	svc := shot.New(capture.NewScreen(), composer, st, clip, logger, shot.WithClipboard(opts.CopyToClipboard))

	res, err := run(fs, svc, opts.Policy())
	copied := opts.CopyToClipboard && err == nil
	if err != nil {
		if !errors.Is(err, shot.ErrClipboard) {
			log.Fatal(err)
		}
		logger.With(zap.Error(err)).Warn("screenshot saved but not copied")
	}

	if *preview {
		if _, err := st.SavePreview(res.Path, res.Preview()); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(res.Path)

	if copied {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		holdClipboard(ctx, clip, *hold, logger)
	}
}

// holdClipboard keeps the process alive while it owns the clipboard, until
// another program takes it over, d elapses or ctx is done. It reports
// whether the copy was replaced.
func holdClipboard(ctx context.Context, clip clipboard.Writer, d time.Duration, logger *zap.Logger) bool {
	owner, ok := clip.(clipboard.Owner)
	if !ok || d <= 0 {
		return false
	}
	lost := owner.Lost()
	if lost == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	logger.With(zap.Duration("hold", d)).Info("serving clipboard")
	select {
	case <-lost:
		logger.Debug("clipboard replaced")
		return true
	case <-ctx.Done():
		return false
	}
}

func run(fs afero.Fs, svc *shot.Service, p fancy.Policy) (*shot.Result, error) {
	if *input != "" {
		img, err := bitmap.Load(fs, *input)
		if err != nil {
			return nil, err
		}
		return svc.Decorate(img, p)
	}

	r, err := capture.ParseRegion(*region)
	if err != nil {
		return nil, err
	}
	return svc.Take(r, p)
}

func loadOptions(fs afero.Fs) (*config.Options, error) {
	opts, err := config.Load(fs, *configFile)
	if err != nil {
		return nil, err
	}

	vars, err := config.Env(fs, *dotenv)
	if err != nil {
		return nil, err
	}
	if err := opts.ApplyEnv(vars); err != nil {
		return nil, err
	}

	if *start != "" || *end != "" {
		s, err := fancy.ParseColor(*start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		e, err := fancy.ParseColor(*end)
		if err != nil {
			return nil, fmt.Errorf("--end: %w", err)
		}
		opts.SetGradient(s, e)
	}

	if flag.CommandLine.Changed("random") {
		opts.RandomColors = *random
	}
	if flag.CommandLine.Changed("clipboard") {
		opts.CopyToClipboard = *copyClip
	}
	if *out != "" {
		opts.OutputDir = *out
	}

	return opts, nil
}
