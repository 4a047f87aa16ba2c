// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/adposter/pkg/orchestrator"
	"github.com/user/adposter/pkg/pipeline"
)

// Config represents the full configuration for adposter.
type Config struct {
	// Output
	OutDir      string `yaml:"out_dir"`
	CollageFile string `yaml:"collage"`

	// Composition
	CanvasSize int            `yaml:"canvas_size"`
	Quality    int            `yaml:"quality"`
	Gradient   GradientConfig `yaml:"gradient"`
	QR         bool           `yaml:"qr"`

	// Ad text
	Text TextConfig `yaml:"text"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// GradientConfig holds the post background gradient stops as hex colors.
type GradientConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// TextConfig holds the ad attributes overlaid on the posts.
type TextConfig struct {
	Model     string `yaml:"model"`
	Year      string `yaml:"manufacture_year"`
	Price     string `yaml:"price"`
	PriceType string `yaml:"price_type"`
	Condition string `yaml:"condition"`
	Location  string `yaml:"location"`
	Phone     string `yaml:"phone"`
	SiteName  string `yaml:"site_name"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutDir:      ".",
		CollageFile: "collage.jpg",
		CanvasSize:  1080,
		Quality:     90,
		Gradient: GradientConfig{
			Start: "#151b24",
			End:   "#0a0c12",
		},
		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string (#rrggbb) to an NRGBA color.
// Malformed input yields opaque black.
func ParseColor(hex string) color.NRGBA {
	black := color.NRGBA{A: 255}
	if len(hex) == 0 {
		return black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return black
	}

	return color.NRGBA{
		R: hexValue(hex[0])<<4 | hexValue(hex[1]),
		G: hexValue(hex[2])<<4 | hexValue(hex[3]),
		B: hexValue(hex[4])<<4 | hexValue(hex[5]),
		A: 255,
	}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config for the
// given photo paths.
func (c Config) ToOrchestratorConfig(photos []string) orchestrator.Config {
	return orchestrator.Config{
		Photos:      photos,
		OutDir:      c.OutDir,
		CollageFile: c.CollageFile,
		Text: pipeline.AdText{
			Model:     c.Text.Model,
			Year:      c.Text.Year,
			Price:     c.Text.Price,
			PriceType: c.Text.PriceType,
			Condition: c.Text.Condition,
			Location:  c.Text.Location,
			Phone:     c.Text.Phone,
			SiteName:  c.Text.SiteName,
		},
		CanvasSize: c.CanvasSize,
		Quality:    c.Quality,
		Background: pipeline.Gradient{
			Start: ParseColor(c.Gradient.Start),
			End:   ParseColor(c.Gradient.End),
		},
		QR: c.QR,
	}
}
