package config

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"

	"fancyshot/pkg/fancy"
)

const (
	DefaultFile      = "config.ini"
	DefaultOutputDir = "screenshots"

	section = "Options"

	keyStart     = "gradient_start_color"
	keyEnd       = "gradient_end_color"
	keyRandom    = "random_colors"
	keyClipboard = "copy_to_clipboard"
)

// Options are the persisted user settings. OutputDir is never written back.
type Options struct {
	Start           color.NRGBA
	End             color.NRGBA
	HasGradient     bool
	RandomColors    bool
	CopyToClipboard bool
	OutputDir       string
}

func Defaults() *Options {
	return &Options{
		CopyToClipboard: true,
		OutputDir:       DefaultOutputDir,
	}
}

// Policy resolves the background policy; random wins over saved colors.
func (o *Options) Policy() fancy.Policy {
	switch {
	case o.RandomColors:
		return fancy.Random()
	case o.HasGradient:
		return fancy.Fixed(o.Start, o.End)
	}
	return fancy.Default()
}

func (o *Options) SetGradient(start, end color.NRGBA) {
	o.Start, o.End = start, end
	o.HasGradient = true
	o.RandomColors = false
}

func loadOptions() ini.LoadOptions {
	// colors are stored as bare "#rrggbb"; key names match in any case but
	// the section name does not
	return ini.LoadOptions{IgnoreInlineComment: true, InsensitiveKeys: true}
}

// Load reads path from fs. A missing file yields Defaults.
func Load(fs afero.Fs, path string) (*Options, error) {
	o := Defaults()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	} else if !exists {
		return o, nil
	}

	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	f, err := ini.LoadSources(loadOptions(), bs)
	if err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	if err := o.apply(f.Section(section)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}

func (o *Options) apply(sec *ini.Section) error {
	if sec.HasKey(keyStart) && sec.HasKey(keyEnd) {
		start, err := fancy.ParseColor(sec.Key(keyStart).String())
		if err != nil {
			return fmt.Errorf("%s: %w", keyStart, err)
		}
		end, err := fancy.ParseColor(sec.Key(keyEnd).String())
		if err != nil {
			return fmt.Errorf("%s: %w", keyEnd, err)
		}
		o.Start, o.End, o.HasGradient = start, end, true
	}

	for key, dst := range map[string]*bool{
		keyRandom:    &o.RandomColors,
		keyClipboard: &o.CopyToClipboard,
	} {
		if !sec.HasKey(key) {
			continue
		}
		v, err := sec.Key(key).Bool()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = v
	}

	return nil
}

// Save writes every persisted key, creating the file if needed.
func Save(fs afero.Fs, path string, o *Options) error {
	f := ini.Empty(loadOptions())
	sec, err := f.NewSection(section)
	if err != nil {
		return err
	}

	pairs := [][2]string{
		{keyRandom, pyBool(o.RandomColors)},
		{keyClipboard, pyBool(o.CopyToClipboard)},
	}
	if o.HasGradient {
		pairs = append([][2]string{
			{keyStart, fancy.FormatColor(o.Start)},
			{keyEnd, fancy.FormatColor(o.End)},
		}, pairs...)
	}

	for _, kv := range pairs {
		if _, err := sec.NewKey(kv[0], kv[1]); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return err
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config failed: %w", err)
	}

	return nil
}

// pyBool writes booleans as True/False so older settings files stay readable.
func pyBool(b bool) string {
	return lo.Ternary(b, "True", "False")
}
