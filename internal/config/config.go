// Package config holds the editor defaults, stored in the fyne preferences.
package config

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
)

const (
	keyFillColor       = "editor.fill_color"
	keyLineColor       = "editor.line_color"
	keyBackgroundColor = "editor.background_color"
	keyAnchorSize      = "editor.anchor_size"
	keyLineTolerance   = "editor.line_tolerance"
	keyHistoryLimit    = "editor.history_limit"
	keyWindowWidth     = "window.width"
	keyWindowHeight    = "window.height"
)

// Config is the set of editor defaults.
type Config struct {
	FillColor       color.Color // fill for new shapes
	LineColor       color.Color // outline for new shapes and the selection marquee
	BackgroundColor color.Color
	AnchorSize      float32 // edge length of resize handles
	LineTolerance   float32 // hit distance for lines
	HistoryLimit    int     // snapshots kept for undo, 0 keeps all
	WindowWidth     float32
	WindowHeight    float32
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		FillColor:       color.White,
		LineColor:       color.Black,
		BackgroundColor: color.NRGBA{R: 245, G: 246, B: 248, A: 255},
		AnchorSize:      8,
		LineTolerance:   4,
		HistoryLimit:    100,
		WindowWidth:     1024,
		WindowHeight:    768,
	}
}

// Load reads the configuration from p, falling back to the defaults for
// missing or malformed values.
func Load(p fyne.Preferences) Config {
	def := Default()
	cfg := Config{
		FillColor:       loadColor(p, keyFillColor, def.FillColor),
		LineColor:       loadColor(p, keyLineColor, def.LineColor),
		BackgroundColor: loadColor(p, keyBackgroundColor, def.BackgroundColor),
		AnchorSize:      float32(p.FloatWithFallback(keyAnchorSize, float64(def.AnchorSize))),
		LineTolerance:   float32(p.FloatWithFallback(keyLineTolerance, float64(def.LineTolerance))),
		HistoryLimit:    p.IntWithFallback(keyHistoryLimit, def.HistoryLimit),
		WindowWidth:     float32(p.FloatWithFallback(keyWindowWidth, float64(def.WindowWidth))),
		WindowHeight:    float32(p.FloatWithFallback(keyWindowHeight, float64(def.WindowHeight))),
	}
	if cfg.AnchorSize <= 0 {
		log.Printf("[CONFIG] %s must be positive, using %g", keyAnchorSize, def.AnchorSize)
		cfg.AnchorSize = def.AnchorSize
	}
	if cfg.LineTolerance < 0 {
		log.Printf("[CONFIG] %s must not be negative, using %g", keyLineTolerance, def.LineTolerance)
		cfg.LineTolerance = def.LineTolerance
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth, cfg.WindowHeight = def.WindowWidth, def.WindowHeight
	}
	return cfg
}

// Save writes cfg to p.
func (c Config) Save(p fyne.Preferences) {
	p.SetString(keyFillColor, FormatColor(c.FillColor))
	p.SetString(keyLineColor, FormatColor(c.LineColor))
	p.SetString(keyBackgroundColor, FormatColor(c.BackgroundColor))
	p.SetFloat(keyAnchorSize, float64(c.AnchorSize))
	p.SetFloat(keyLineTolerance, float64(c.LineTolerance))
	p.SetInt(keyHistoryLimit, c.HistoryLimit)
	p.SetFloat(keyWindowWidth, float64(c.WindowWidth))
	p.SetFloat(keyWindowHeight, float64(c.WindowHeight))
}

func loadColor(p fyne.Preferences, key string, fallback color.Color) color.Color {
	s := p.StringWithFallback(key, FormatColor(fallback))
	c, err := ParseColor(s)
	if err != nil {
		log.Printf("[CONFIG] %s: %v, using default", key, err)
		return fallback
	}
	return c
}

var namedColors = map[string]color.Color{
	"transparent": color.Transparent,
	"black":       color.Black,
	"white":       color.White,
	"red":         color.NRGBA{R: 255, A: 255},
	"green":       color.NRGBA{G: 255, A: 255},
	"blue":        color.NRGBA{B: 255, A: 255},
	"yellow":      color.NRGBA{R: 255, G: 255, A: 255},
}

// ParseColor accepts a colour name or a "#rrggbb" / "#rrggbbaa" hex string.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("parse colour %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("parse colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c in the hex form read by ParseColor.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
