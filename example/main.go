// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	ultralightui "github.com/YindSoft/ultralight-ebitengine-bridge"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	screenWidth  = 800
	screenHeight = 600
	mainUIWidth  = 600
	sidebarWidth = 200
)

type pane struct {
	view   *ultralightui.View
	widget *ultralightui.NativeWidget
	input  *ultralightui.Input
}

type Game struct {
	engine  *ultralightui.Engine
	scale   int
	main    pane
	sidebar pane
}

func findBaseDir() string {
	// Look for the bridge in current dir, then parent (for running from example/).
	for _, lib := range []string{"ul_bridge.dll", "libul_bridge.so", "libul_bridge.dylib"} {
		if _, err := os.Stat(lib); err == nil {
			return ""
		}
		if _, err := os.Stat(filepath.Join("..", lib)); err == nil {
			return ".."
		}
	}
	return ""
}

func newPane(engine *ultralightui.Engine, cfg ultralightui.Config, url string, x, w int) (pane, error) {
	view, widget, err := engine.NewView(cfg)
	if err != nil {
		return pane{}, err
	}
	view.SetScreenOrigin(func() (int, int) {
		wx, wy := ebiten.WindowPosition()
		return wx * cfg.ScaleFactor, wy * cfg.ScaleFactor
	})
	widget.LoadURL(url)
	view.Show()

	input := ultralightui.NewInput(view)
	input.SetBounds(x*cfg.ScaleFactor, 0, w*cfg.ScaleFactor, screenHeight*cfg.ScaleFactor)
	return pane{view: view, widget: widget, input: input}, nil
}

func (p pane) close() {
	p.view.Close()
	p.widget.Close()
}

func newGame(cfg ultralightui.Config, mainURL, sidebarURL string) (*Game, error) {
	engine, err := ultralightui.NewEngine(&cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	mainPane, err := newPane(engine, cfg, mainURL, 0, mainUIWidth)
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("main UI: %w", err)
	}
	sidebar, err := newPane(engine, cfg, sidebarURL, mainUIWidth, sidebarWidth)
	if err != nil {
		mainPane.close()
		engine.Close()
		return nil, fmt.Errorf("sidebar UI: %w", err)
	}
	mainPane.view.RequestFocus()
	return &Game{engine: engine, scale: cfg.ScaleFactor, main: mainPane, sidebar: sidebar}, nil
}

func (g *Game) Update() error {
	g.main.input.Update()
	g.sidebar.input.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	g.main.view.Draw(screen, nil)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(mainUIWidth*g.scale), 0)
	g.sidebar.view.Draw(screen, opts)

	focus := "main"
	if g.sidebar.view.IsFocusOwner() {
		focus = "sidebar"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  focus: %s", ebiten.ActualFPS(), focus))
}

// Layout reports the screen in raw pixels: engine frames are drawn 1:1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * g.scale, screenHeight * g.scale
}

func (g *Game) close() {
	g.main.close()
	g.sidebar.close()
	g.engine.Close()
}

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	mainURL := flag.String("url", "https://example.com", "page for the main view")
	sidebarURL := flag.String("sidebar", "about:blank", "page for the sidebar view")
	flag.Parse()

	logFile, err := os.Create("logs.log")
	if err == nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer logFile.Close()
	}
	ultralightui.SetLogger(slog.Default())

	cfg := ultralightui.DefaultConfig()
	if *configPath != "" {
		if cfg, err = ultralightui.LoadConfig(*configPath); err != nil {
			slog.Error("config", "err", err)
			os.Exit(1)
		}
	}
	if cfg.Engine.BaseDir == "" {
		cfg.Engine.BaseDir = findBaseDir()
	}

	game, err := newGame(cfg, *mainURL, *sidebarURL)
	if err != nil {
		slog.Error("init", "err", err)
		os.Exit(1)
	}
	defer game.close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ultralightui - off-screen view example")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run", "err", err)
	}
}
