package main

import (
	"bytes"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const doc = `<output>
	<fillcolor color="blue"/>
	<rect x="0" y="0" w="4" h="4"/>
	<fill/>
	<polygon/>
</output>`

func TestLoad(t *testing.T) {
	t.Setenv("MXRENDER_WIDTH", "20")
	t.Setenv("MXRENDER_LOG_LEVEL", "debug")
	t.Setenv("MXRENDER_STRICT", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 20 || cfg.Height != 600 || cfg.LogLevel != slog.LevelDebug || !cfg.Strict {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Background != "white" || cfg.Input != "" {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	t.Setenv("MXRENDER_HEIGHT", "tall")
	if _, err = Load(); err == nil {
		t.Error("expected an error for an invalid height")
	}
}

func TestRun(t *testing.T) {
	cfg := &Config{Width: 10, Height: 10, Background: "none"}
	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(doc), &out); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.NRGBAModel.Convert(img.At(2, 2)); got != (color.NRGBA{B: 0xff, A: 0xff}) {
		t.Errorf("expected blue, got %v", got)
	}
	if _, _, _, a := img.At(7, 7).RGBA(); a != 0 {
		t.Errorf("expected a transparent background, got %v", img.At(7, 7))
	}

	cfg.Strict = true
	if err := run(cfg, strings.NewReader(doc), &out); err == nil {
		t.Error("expected an error in strict mode")
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Input:      filepath.Join(dir, "missing.xml"),
		Output:     filepath.Join(dir, "out.png"),
		Width:      10,
		Height:     10,
		Background: "white",
	}
	if err := run(cfg, nil, nil); err == nil {
		t.Error("expected an error for a missing input")
	}

	cfg.Input = ""
	cfg.Background = "not-a-color"
	if err := run(cfg, strings.NewReader(doc), nil); err == nil {
		t.Error("expected an error for an invalid background")
	}

	cfg.Background = "white"
	cfg.Width = 0
	if err := run(cfg, strings.NewReader(doc), nil); err == nil {
		t.Error("expected an error for an empty image")
	}
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.xml")
	if err := os.WriteFile(input, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{Input: input, Output: filepath.Join(dir, "out.png"), Width: 8, Height: 8, Background: "white"}
	if err := run(cfg, nil, nil); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("unexpected bounds %v", b)
	}

	// the output directory does not exist
	cfg.Output = filepath.Join(dir, "missing", "out.png")
	if err := run(cfg, nil, nil); err == nil {
		t.Error("expected an error for an invalid output")
	}
}
