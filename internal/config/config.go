package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir     string `json:"base_dir" yaml:"base_dir"`
	TextureDir  string `json:"texture_dir" yaml:"texture_dir"`
	TextureName string `json:"texture" yaml:"texture"`
	OutputDir   string `json:"output_dir" yaml:"output_dir"`
	Script      string `json:"script" yaml:"script"`

	// Render settings
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
	Supersample int    `json:"supersample" yaml:"supersample"`
	Background  string `json:"background" yaml:"background"` // #rrggbb
	Workers     int    `json:"workers" yaml:"workers"`
	Frames      int    `json:"frames" yaml:"frames"`
	TPS         int    `json:"tps" yaml:"tps"`
}

// Load reads a JSON or YAML config file (chosen by extension) and returns
// Config. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Script != "" {
		c.Script = flags.Script
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	c.TextureDir = c.under(c.TextureDir, "Resources")
	c.OutputDir = c.under(c.OutputDir, "frames")
	if c.Script != "" {
		c.Script = c.under(c.Script, "")
	}
	if c.TextureName == "" {
		c.TextureName = "player.png"
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Background == "" {
		c.Background = "#193366"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 60
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

func (c *Config) under(p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// BackgroundColor parses Background as #rrggbb.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	s := strings.TrimPrefix(c.Background, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("config: background %q: want #rrggbb", c.Background)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: background %q: %w", c.Background, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir   string
	OutputDir string
	Script    string
	Workers   int
	Frames    int
	Width     int
	Height    int
}
