package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"fancyshot/pkg/fancy"
)

const (
	EnvStart     = "FANCYSHOT_GRADIENT_START"
	EnvEnd       = "FANCYSHOT_GRADIENT_END"
	EnvRandom    = "FANCYSHOT_RANDOM_COLORS"
	EnvClipboard = "FANCYSHOT_COPY_TO_CLIPBOARD"
	EnvOutputDir = "FANCYSHOT_OUTPUT_DIR"
)

// Env collects overrides from an optional dotenv file and the process
// environment. Process variables win.
func Env(fs afero.Fs, dotenv string) (map[string]string, error) {
	vars := make(map[string]string)

	if dotenv != "" {
		if exists, err := afero.Exists(fs, dotenv); err != nil {
			return nil, err
		} else if exists {
			f, err := fs.Open(dotenv)
			if err != nil {
				return nil, err
			}
			defer func() {
				_ = f.Close()
			}()

			parsed, err := godotenv.Parse(f)
			if err != nil {
				return nil, fmt.Errorf("parse %s failed: %w", dotenv, err)
			}
			vars = parsed
		}
	}

	for _, key := range []string{EnvStart, EnvEnd, EnvRandom, EnvClipboard, EnvOutputDir} {
		if v, ok := getenv(key); ok {
			vars[key] = v
		}
	}

	return vars, nil
}

// ApplyEnv overlays vars onto o. Colors need both ends, like the file keys.
func (o *Options) ApplyEnv(vars map[string]string) error {
	start, okS := vars[EnvStart]
	end, okE := vars[EnvEnd]
	if okS && okE {
		s, err := fancy.ParseColor(start)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStart, err)
		}
		e, err := fancy.ParseColor(end)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEnd, err)
		}
		o.Start, o.End, o.HasGradient = s, e, true
	}

	if v, ok := vars[EnvRandom]; ok {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRandom, err)
		}
		o.RandomColors = b
	}

	if v, ok := vars[EnvClipboard]; ok {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClipboard, err)
		}
		o.CopyToClipboard = b
	}

	if v, ok := vars[EnvOutputDir]; ok && v != "" {
		o.OutputDir = v
	}

	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "yes", "Yes", "on", "On":
		return true, nil
	case "no", "No", "off", "Off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func getenv(key string) (string, bool) {
	return os.LookupEnv(key)
}
