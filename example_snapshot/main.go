// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Renders one page off-screen, without a window, and saves it as a PNG at
// logical (device-independent) size.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	ultralightui "github.com/YindSoft/ultralight-ebitengine-bridge"
)

func main() {
	url := flag.String("url", "https://example.com", "page to render")
	out := flag.String("out", "snapshot.png", "output PNG path")
	width := flag.Int("width", 800, "logical width")
	height := flag.Int("height", 600, "logical height")
	settle := flag.Duration("settle", 2*time.Second, "time to let the page load after the first frame")
	timeout := flag.Duration("timeout", 10*time.Second, "give up when no frame arrives in time")
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	flag.Parse()

	ultralightui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*configPath, *url, *out, *width, *height, *settle, *timeout); err != nil {
		slog.Error("snapshot", "err", err)
		os.Exit(1)
	}
}

func run(configPath, url, out string, width, height int, settle, timeout time.Duration) error {
	cfg := ultralightui.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = ultralightui.LoadConfig(configPath); err != nil {
			return err
		}
	}

	engine, err := ultralightui.NewEngine(&cfg.Engine)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	defer engine.Close()

	view, widget, err := engine.NewView(cfg)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	defer widget.Close()
	defer view.Close()

	view.Layout(ultralightui.Tight(width*cfg.ScaleFactor, height*cfg.ScaleFactor))
	widget.LoadURL(url)
	view.Show()

	deadline := time.Now().Add(timeout)
	for view.Frame() == nil {
		if time.Now().After(deadline) {
			return fmt.Errorf("no frame from %s within %s", url, timeout)
		}
		time.Sleep(50 * time.Millisecond)
	}
	time.Sleep(settle)

	frame := view.Frame()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	frame.DrawTo(dst, dst.Bounds())

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	slog.Info("snapshot written", "path", out, "frame", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()))
	return nil
}
