// Command mxrender replays an XML directive document onto a raster image
// and writes it as PNG.
//
// Configuration is read from the environment:
//
//	MXRENDER_INPUT       document path (default: stdin)
//	MXRENDER_OUTPUT      PNG path (default: stdout)
//	MXRENDER_WIDTH       image width (default: 800)
//	MXRENDER_HEIGHT      image height (default: 600)
//	MXRENDER_BACKGROUND  background color, "none" for transparent (default: white)
//	MXRENDER_IMAGE_DIR   base directory of relative image sources
//	MXRENDER_LOG_LEVEL   debug, info, warn or error (default: info)
//	MXRENDER_STRICT      fail on unsupported elements
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/korakanchan/mxgraph/mxcanvas"
	"github.com/korakanchan/mxgraph/mximage"
	"github.com/korakanchan/mxgraph/mxraster"
)

func main() {
	cfg, err := Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	mxcanvas.SetLogger(logger)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("render", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config, stdin io.Reader, stdout io.Writer) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	background, err := cfg.background()
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	in := stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	img, err := mxraster.RasterDirectivesToImage(in, cfg.Width, cfg.Height,
		&mxraster.Options{Background: background, ErrorMode: cfg.errorMode()},
		&mxcanvas.Options{Images: mximage.NewLoader(cfg.ImageDir)})
	if err != nil {
		return err
	}

	if err := writePNG(cfg.Output, img, stdout); err != nil {
		return err
	}
	slog.Info("rendered", "width", cfg.Width, "height", cfg.Height, "output", cfg.Output)
	return nil
}

// writePNG encodes img to the named file, or to stdout if file is empty.
func writePNG(file string, img image.Image, stdout io.Writer) error {
	if file == "" {
		return png.Encode(stdout, img)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
