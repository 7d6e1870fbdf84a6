// Package config loads the editor settings: canvas geometry, LED palette
// and export defaults, stored as TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OpenTraceLab/protoface/pkg/face/export"
	"github.com/OpenTraceLab/protoface/pkg/face/layout"
	"github.com/OpenTraceLab/protoface/pkg/face/render"
)

// Config is the on-disk configuration.
type Config struct {
	Canvas  layout.Geometry `toml:"canvas"`
	Palette Palette         `toml:"palette"`
	Export  Export          `toml:"export"`
}

// Palette holds colors as #rrggbb strings.
type Palette struct {
	Background string `toml:"background"`
	Lit        string `toml:"lit"`
	Dim        string `toml:"dim"`
}

// Export holds export defaults.
type Export struct {
	Filename string `toml:"filename"`
	Format   string `toml:"format"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Canvas: layout.Default(),
		Palette: Palette{
			Background: "#000000",
			Lit:        "#ff0000",
			Dim:        "#3c0000",
		},
		Export: Export{
			Filename: export.DefaultFilename,
			Format:   string(export.JSON),
		},
	}
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\ProtoFace
		return filepath.Join(appData, "ProtoFace", "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "protoface", "config.toml"), nil
}

// Load reads path on top of the defaults. A missing file yields the
// defaults; unknown keys and invalid values are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("config: encode: %w", err)
	}
	return f.Close()
}

// Validate checks geometry, colors and export settings.
func (c *Config) Validate() error {
	if err := c.Canvas.Validate(); err != nil {
		return err
	}
	if _, err := c.RenderPalette(); err != nil {
		return err
	}
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	if c.Export.Filename == "" {
		return errors.New("export filename is empty")
	}
	return nil
}

// RenderPalette converts the configured colors.
func (c *Config) RenderPalette() (render.Palette, error) {
	var p render.Palette
	var err error
	if p.Background, err = ParseColor(c.Palette.Background); err != nil {
		return p, fmt.Errorf("palette background: %w", err)
	}
	if p.Lit, err = ParseColor(c.Palette.Lit); err != nil {
		return p, fmt.Errorf("palette lit: %w", err)
	}
	if p.Dim, err = ParseColor(c.Palette.Dim); err != nil {
		return p, fmt.Errorf("palette dim: %w", err)
	}
	return p, nil
}

// ExportFormat returns the configured default export format.
func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Export.Format)
}

// ParseColor parses #rgb or #rrggbb into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("want #rgb or #rrggbb")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}
