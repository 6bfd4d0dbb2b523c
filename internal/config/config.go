// Package config loads the typetonic configuration file.
//
// The file is TOML and optional; a missing file yields [Default]. Flags given
// on the command line override whatever the file sets.
//
//	keyboard = "Keychron K8"
//	palette  = "Ocean"
//	pattern  = "spiral"
//	style    = "keycap"
//	delay    = "1.5s"
//	stripe_width = 2
//
//	[[palettes]]
//	name   = "Sunset"
//	colors = ["#ff5e5b", "#d8d8d8", "#ffffea", "#00cecb", "#ffed66"]
//
//	[[layouts]]
//	name = "Macro Pad"
//	rows = [
//	  [{ width = 1, label = "1" }, { width = 1, label = "2" }],
//	  [{ width = 2, label = "ENTER" }],
//	]
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/pattern"
)

const (
	appName  = "typetonic"
	fileName = "config.toml"
)

// Duration is a time.Duration written as a string such as "800ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "negative duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds user defaults.
type Config struct {
	Keyboard    string   `toml:"keyboard"`
	Palette     string   `toml:"palette"`
	Pattern     string   `toml:"pattern"`
	Style       string   `toml:"style"`
	Format      string   `toml:"format"`
	Unit        float64  `toml:"unit"`
	Spacing     float64  `toml:"spacing"`
	PNGScale    float64  `toml:"png_scale"`
	StripeWidth int      `toml:"stripe_width"`
	Delay       Duration `toml:"delay"`
	Seed        uint64   `toml:"seed"`
	EmbedFont   bool     `toml:"embed_font"`

	Palettes []colors.Scheme   `toml:"palettes"`
	Layouts  []keyboard.Layout `toml:"layouts"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Keyboard: keyboard.KeychronK6,
		Palette:  "Pastel",
		Pattern:  string(pattern.Gradient),
		Style:    "simple",
		Format:   "svg",
		Unit:     54,
		Spacing:  4,
		PNGScale: 2,

		StripeWidth: pattern.DefaultStripeWidth,
	}
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/typetonic/config.toml or ~/.config/typetonic/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. An empty path means [Path]. A missing file
// is not an error. Values the file leaves unset keep their defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config")
	}
	return Parse(string(data))
}

// Parse decodes config text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the scalar settings. Palettes and layouts are checked when
// they are registered.
func (c Config) Validate() error {
	if c.Unit <= 0 || c.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "unit must be positive and spacing non-negative (unit=%g, spacing=%g)", c.Unit, c.Spacing)
	}
	if c.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "png_scale must be positive, got %g", c.PNGScale)
	}
	if c.StripeWidth < 1 {
		return errors.New(errors.ErrCodeInvalidDimensions, "stripe_width must be at least 1, got %d", c.StripeWidth)
	}
	return nil
}

// Catalog returns the built-in keyboards plus the configured layouts.
func (c Config) Catalog() (*keyboard.Catalog, error) {
	cat := keyboard.DefaultCatalog()
	for _, l := range c.Layouts {
		if err := cat.Add(l); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Schemes returns the built-in palettes plus the configured ones.
func (c Config) Schemes() (*colors.Schemes, error) {
	s := colors.DefaultSchemes()
	for _, p := range c.Palettes {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}
