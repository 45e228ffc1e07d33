// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package ultralightui bridges an off-screen Ultralight view and Ebitengine.
//
// It turns the engine's off-screen paints into Ebiten images without tearing,
// and turns Ebitengine pointer and keyboard input into engine events, keeping
// view geometry, scale factor and focus consistent between the two.
//
// Basic usage:
//
//	import ultralightui "github.com/YindSoft/ultralight-ebitengine-bridge"
//
//	cfg := ultralightui.DefaultConfig()
//	engine, err := ultralightui.NewEngine(&cfg.Engine)
//	if err != nil { ... }
//	defer engine.Close()
//
//	view, widget, err := engine.NewView(cfg)
//	if err != nil { ... }
//	defer widget.Close()
//	widget.LoadURL("https://example.com")
//	view.Show()
//
//	input := ultralightui.NewInput(view)
//	input.SetBounds(0, 0, 1600, 1200) // screen pixels
//
//	// In Ebiten Update():
//	input.Update()
//
//	// In Ebiten Draw():
//	view.Draw(screen, nil)
//
// Paints arrive on the engine thread. Each paint is copied into a
// [PixelBuffer], snapshotted into an immutable [Image] and handed to the UI
// goroutine through a single-slot handoff: only the newest frame is kept and
// the engine thread never waits for the UI.
//
// The translators can be used on their own with any toolkit: build
// [PointerEvent] and [KeyEvent] values and pass them to a [View], or call
// [PointerTranslator] and [KeyTranslator] directly.
//
// The bridge library exports a C ABI. Required:
//
//	int  ul_init(const char* base_dir, int debug);
//	int  ul_create_view(int width, int height);
//	void ul_destroy_view(int view);
//	void ul_view_load_url(int view, const char* url);
//	void ul_tick(void);
//	void* ul_view_get_pixels(int view);   // locks; BGRA premultiplied
//	void ul_view_unlock_pixels(int view);
//	unsigned ul_view_get_width(int view);
//	unsigned ul_view_get_height(int view);
//	unsigned ul_view_get_row_bytes(int view);
//	void ul_view_fire_mouse(int view, int type, int x, int y, int button);
//	void ul_view_fire_scroll(int view, int type, int dx, int dy);
//	void ul_view_fire_key(int view, int type, int vk, unsigned mods, const char* text);
//	void ul_destroy(void);
//
// Optional; older bridges work without them:
//
//	int  ul_create_view_scaled(int width, int height, int scale); // else 1x views in raw pixels
//	void ul_view_resize(int view, int width, int height);         // else the view is recreated
//	int  ul_view_get_dirty_rect(int view, int rect[4]);           // else every tick repaints all
//	void ul_view_focus(int view);                                 // else focus is not forwarded
//	void ul_view_unfocus(int view);
//
// Only one [Engine] may be open at a time; closing it shuts the renderer
// down and a later [NewEngine] starts it again.
//
// Requirements: the bridge shared library (ul_bridge.dll on Windows,
// libul_bridge.so on Linux, libul_bridge.dylib on macOS) and the Ultralight
// SDK libraries must be present next to the executable or in the directory
// specified by [Options.BaseDir].
package ultralightui
