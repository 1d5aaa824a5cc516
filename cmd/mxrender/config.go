package main

import (
	"image/color"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/korakanchan/mxgraph/mxcolor"
	"github.com/korakanchan/mxgraph/mxxml"
)

// Config is read from the MXRENDER_* environment variables.
type Config struct {
	Input      string     `envconfig:"INPUT"`  // empty for stdin
	Output     string     `envconfig:"OUTPUT"` // empty for stdout
	Width      int        `envconfig:"WIDTH" default:"800"`
	Height     int        `envconfig:"HEIGHT" default:"600"`
	Background string     `envconfig:"BACKGROUND" default:"white"`
	ImageDir   string     `envconfig:"IMAGE_DIR"`
	LogLevel   slog.Level `envconfig:"LOG_LEVEL" default:"info"`
	Strict     bool       `envconfig:"STRICT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("mxrender", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// background returns nil for a transparent image.
func (cfg *Config) background() (color.Color, error) {
	if cfg.Background == "" || cfg.Background == mxcolor.None {
		return nil, nil
	}
	return mxcolor.Parse(cfg.Background)
}

func (cfg *Config) errorMode() mxxml.ErrorMode {
	if cfg.Strict {
		return mxxml.StrictErrorMode
	}
	return mxxml.WarnErrorMode
}
