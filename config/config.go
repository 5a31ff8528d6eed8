// Package config loads propui settings from a TOML file: window geometry,
// logging verbosity and palette overrides.
//
//	verbose = true
//
//	[window]
//	width = 420
//	height = 360
//	title = "Properties"
//
//	[theme]
//	accent = "#3a7bd5"
//
//	[theme.colors]
//	panel_bg = "#141414e6"
//	text = "#f0f0f0"
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/go-theft-auto/propui"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrInvalidColor is returned for color strings that are not #rgb, #rrggbb or #rrggbbaa.
	ErrInvalidColor = errors.New("config: invalid color")
	// ErrUnknownRole is returned for palette keys that name no color role.
	ErrUnknownRole = errors.New("config: unknown color role")
	// ErrInvalidWindow is returned for non-positive window sizes.
	ErrInvalidWindow = errors.New("config: invalid window size")
)

// Config is the file layout.
type Config struct {
	Verbose bool         `toml:"verbose"`
	Window  WindowConfig `toml:"window"`
	Theme   ThemeConfig  `toml:"theme"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// ThemeConfig overrides palette entries. Accent seeds the highlight roles;
// Colors is keyed by role name (see propui.ColorRole.String) and wins over
// anything derived from Accent.
type ThemeConfig struct {
	Accent string            `toml:"accent"`
	Colors map[string]string `toml:"colors"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  420,
			Height: 360,
			Title:  "propui",
		},
	}
}

// Load reads path. A missing file yields Default without error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("%w: %dx%d", ErrInvalidWindow, cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// Palette builds the palette described by the theme, starting from the default.
func (c Config) Palette() (propui.Palette, error) {
	p := propui.DefaultPalette()

	if c.Theme.Accent != "" {
		accent, alpha, err := parseHex(c.Theme.Accent)
		if err != nil {
			return p, fmt.Errorf("theme.accent: %w", err)
		}
		black := colorful.Color{}
		white := colorful.Color{R: 1, G: 1, B: 1}
		p[propui.ColorCheckMark] = pack(accent, alpha)
		p[propui.ColorSliderFill] = pack(accent.BlendLab(black, 0.25), alpha)
		p[propui.ColorSelection] = pack(accent.BlendLab(black, 0.25), alpha)
		p[propui.ColorHeaderHovered] = pack(accent.BlendLab(black, 0.45), alpha)
		p[propui.ColorSliderThumbActive] = pack(accent.BlendLab(white, 0.2), alpha)
	}

	// sorted so the first bad key reported is stable
	keys := make([]string, 0, len(c.Theme.Colors))
	for k := range c.Theme.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		role, ok := propui.ColorRoleByName(k)
		if !ok {
			return p, fmt.Errorf("%w: %q", ErrUnknownRole, k)
		}
		v, err := ParseColor(c.Theme.Colors[k])
		if err != nil {
			return p, fmt.Errorf("theme.colors.%s: %w", k, err)
		}
		p[role] = v
	}
	return p, nil
}

// Apply installs the verbosity and palette. It must run before anything is
// drawn; see propui.ConfigurePalette.
func (c Config) Apply() error {
	propui.SetVerbose(c.Verbose)
	p, err := c.Palette()
	if err != nil {
		return err
	}
	return propui.ConfigurePalette(p)
}

// ParseColor converts #rgb, #rrggbb or #rrggbbaa to a packed propui color.
func ParseColor(s string) (uint32, error) {
	c, alpha, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	return pack(c, alpha), nil
}

func parseHex(s string) (colorful.Color, uint8, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, alpha, nil
}

func pack(c colorful.Color, alpha uint8) uint32 {
	r, g, b := c.Clamped().RGB255()
	return propui.RGBA(r, g, b, alpha)
}
