// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/purego"
)

// Mouse event types (ULMouseEventType / ULMouseButton)
const (
	mouseEventTypeMoved = 0
	mouseEventTypeDown  = 1
	mouseEventTypeUp    = 2

	mouseButtonNone   = 0
	mouseButtonLeft   = 1
	mouseButtonMiddle = 2
	mouseButtonRight  = 3
)

const scrollEventTypeByPixel = 0

// Key event types for Ultralight
const (
	keyEventRawKeyDown = 0
	keyEventKeyDown    = 1
	keyEventKeyUp      = 2
	keyEventChar       = 3
)

// Key modifier bits
const (
	keyModAlt   = 1
	keyModCtrl  = 2
	keyModMeta  = 4
	keyModShift = 8
)

// Functions exported by the bridge library. Every call must happen on the
// engine thread. The optional ones are nil when the loaded bridge predates
// them; callers fall back (see NativeWidget).
var (
	ulInit             func(baseDir string, debug int32) int32
	ulCreateView       func(width, height int32) int32
	ulDestroyView      func(viewID int32)
	ulViewLoadURL      func(viewID int32, url string)
	ulTick             func()
	ulViewGetPixels    func(viewID int32) uintptr
	ulViewUnlockPixels func(viewID int32)
	ulViewGetWidth     func(viewID int32) uint32
	ulViewGetHeight    func(viewID int32) uint32
	ulViewGetRowBytes  func(viewID int32) uint32
	ulViewFireMouse    func(viewID int32, eventType, x, y, button int32)
	ulViewFireScroll   func(viewID int32, eventType, dx, dy int32)
	ulViewFireKey      func(viewID int32, keyType int32, vk int32, mods uint32, text string)
	ulDestroy          func()

	// Optional.
	ulCreateViewScaled func(width, height, scale int32) int32
	ulViewResize       func(viewID int32, width, height int32)
	ulViewGetDirtyRect func(viewID int32, rect uintptr) int32
	ulViewFocus        func(viewID int32)
	ulViewUnfocus      func(viewID int32)
)

var (
	bridgeOnce sync.Once
	initErr    error

	ulInitMu      sync.Mutex
	ulInitialized bool
)

func initBridge(baseDir string) error {
	bridgeOnce.Do(func() {
		initErr = doInitBridge(baseDir)
	})
	return initErr
}

// ensureULInit calls ul_init(baseDir, debug) unless the renderer is already
// up. Must be called after initBridge.
func ensureULInit(baseDir string, debug bool) error {
	ulInitMu.Lock()
	defer ulInitMu.Unlock()
	if ulInitialized {
		return nil
	}
	d := int32(0)
	if debug {
		d = 1
	}
	if rc := ulInit(baseDir, d); rc != 0 {
		return fmt.Errorf("ul_init failed with code %d", rc)
	}
	ulInitialized = true
	return nil
}

// shutdownUL destroys the renderer so the next engine initializes it again.
func shutdownUL() {
	ulInitMu.Lock()
	defer ulInitMu.Unlock()
	if !ulInitialized {
		return
	}
	ulDestroy()
	ulInitialized = false
}

type symbol struct {
	fptr     any
	name     string
	optional bool
}

func bridgeSymbols() []symbol {
	return []symbol{
		{&ulInit, "ul_init", false},
		{&ulCreateView, "ul_create_view", false},
		{&ulDestroyView, "ul_destroy_view", false},
		{&ulViewLoadURL, "ul_view_load_url", false},
		{&ulTick, "ul_tick", false},
		{&ulViewGetPixels, "ul_view_get_pixels", false},
		{&ulViewUnlockPixels, "ul_view_unlock_pixels", false},
		{&ulViewGetWidth, "ul_view_get_width", false},
		{&ulViewGetHeight, "ul_view_get_height", false},
		{&ulViewGetRowBytes, "ul_view_get_row_bytes", false},
		{&ulViewFireMouse, "ul_view_fire_mouse", false},
		{&ulViewFireScroll, "ul_view_fire_scroll", false},
		{&ulViewFireKey, "ul_view_fire_key", false},
		{&ulDestroy, "ul_destroy", false},
		{&ulCreateViewScaled, "ul_create_view_scaled", true},
		{&ulViewResize, "ul_view_resize", true},
		{&ulViewGetDirtyRect, "ul_view_get_dirty_rect", true},
		{&ulViewFocus, "ul_view_focus", true},
		{&ulViewUnfocus, "ul_view_unfocus", true},
	}
}

func resolveAllSymbols(handle uintptr) error {
	return bindSymbols(bridgeSymbols(),
		func(name string) (uintptr, error) { return getSymbolAddr(handle, name) },
		purego.RegisterFunc)
}

// bindSymbols registers every symbol lookup finds. A missing required symbol
// is an error; a missing optional one is logged and left nil.
func bindSymbols(syms []symbol, lookup func(string) (uintptr, error), register func(fptr any, addr uintptr)) error {
	for _, sym := range syms {
		addr, err := lookup(sym.name)
		if err != nil {
			if sym.optional {
				Logger().Info("ultralightui: optional bridge symbol missing", slog.String("symbol", sym.name))
				continue
			}
			return fmt.Errorf("%s: %w (recompile %s)", sym.name, err, bridgeLibName())
		}
		register(sym.fptr, addr)
	}
	return nil
}
