// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unsafe"
)

// fakeBridge stands in for the bridge library's functions.
type fakeBridge struct {
	mu sync.Mutex

	nextID    int32
	created   [][3]int32 // width, height, scale (0 for 1x views)
	destroyed []int32
	resized   [][3]int32 // id, width, height
	loaded    map[int32]string
	mouse     [][3]int32 // id, x, y
	focused   []int32

	width, height, rowBytes uint32
	pixels                  []byte
	dirty                   [4]int32
}

func (b *fakeBridge) lock() func() {
	b.mu.Lock()
	return b.mu.Unlock
}

// stubBridge installs a fake bridge. withOptional also installs the
// optional symbols.
func stubBridge(t *testing.T, withOptional bool) *fakeBridge {
	t.Helper()
	saved := []func(){}
	save := func(restore func()) { saved = append(saved, restore) }
	{
		a, b, c, d, e, f := ulCreateView, ulDestroyView, ulViewLoadURL, ulViewGetWidth, ulViewGetHeight, ulViewGetRowBytes
		g, h, i, j, k := ulViewGetPixels, ulViewUnlockPixels, ulViewFireMouse, ulViewFireScroll, ulViewFireKey
		l, m, n, o, p := ulCreateViewScaled, ulViewResize, ulViewGetDirtyRect, ulViewFocus, ulViewUnfocus
		save(func() {
			ulCreateView, ulDestroyView, ulViewLoadURL, ulViewGetWidth, ulViewGetHeight, ulViewGetRowBytes = a, b, c, d, e, f
			ulViewGetPixels, ulViewUnlockPixels, ulViewFireMouse, ulViewFireScroll, ulViewFireKey = g, h, i, j, k
			ulCreateViewScaled, ulViewResize, ulViewGetDirtyRect, ulViewFocus, ulViewUnfocus = l, m, n, o, p
		})
	}
	t.Cleanup(func() {
		for _, restore := range saved {
			restore()
		}
	})

	fb := &fakeBridge{loaded: map[int32]string{}}
	create := func(w, h, scale int32) int32 {
		defer fb.lock()()
		fb.created = append(fb.created, [3]int32{w, h, scale})
		id := fb.nextID
		fb.nextID++
		return id
	}
	ulCreateView = func(w, h int32) int32 { return create(w, h, 0) }
	ulDestroyView = func(id int32) {
		defer fb.lock()()
		fb.destroyed = append(fb.destroyed, id)
	}
	ulViewLoadURL = func(id int32, url string) {
		defer fb.lock()()
		fb.loaded[id] = url
	}
	ulViewGetWidth = func(int32) uint32 { defer fb.lock()(); return fb.width }
	ulViewGetHeight = func(int32) uint32 { defer fb.lock()(); return fb.height }
	ulViewGetRowBytes = func(int32) uint32 { defer fb.lock()(); return fb.rowBytes }
	ulViewGetPixels = func(int32) uintptr {
		defer fb.lock()()
		if len(fb.pixels) == 0 {
			return 0
		}
		return uintptr(unsafe.Pointer(&fb.pixels[0]))
	}
	ulViewUnlockPixels = func(int32) {}
	ulViewFireMouse = func(id, _, x, y, _ int32) {
		defer fb.lock()()
		fb.mouse = append(fb.mouse, [3]int32{id, x, y})
	}
	ulViewFireScroll = func(int32, int32, int32, int32) {}
	ulViewFireKey = func(int32, int32, int32, uint32, string) {}

	ulCreateViewScaled, ulViewResize, ulViewGetDirtyRect, ulViewFocus, ulViewUnfocus = nil, nil, nil, nil, nil
	if withOptional {
		ulCreateViewScaled = create
		ulViewResize = func(id, w, h int32) {
			defer fb.lock()()
			fb.resized = append(fb.resized, [3]int32{id, w, h})
		}
		ulViewGetDirtyRect = func(_ int32, rect uintptr) int32 {
			defer fb.lock()()
			*(*[4]int32)(unsafe.Pointer(rect)) = fb.dirty
			return 1
		}
		ulViewFocus = func(id int32) {
			defer fb.lock()()
			fb.focused = append(fb.focused, id)
		}
		ulViewUnfocus = func(int32) {}
	}
	return fb
}

// startTestEngine runs the engine loop without loading the bridge. Ticks are
// effectively disabled; tests paint explicitly.
func startTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := newEngine(time.Hour)
	go e.loop()
	t.Cleanup(e.Close)
	return e
}

func flush(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.call(func() {}); err != nil {
		t.Fatal(err)
	}
}

func TestNativeWidgetFallbacks(t *testing.T) {
	fb := stubBridge(t, false)
	e := startTestEngine(t)

	w, err := e.NewWidget(2)
	if err != nil {
		t.Fatal(err)
	}
	w.LoadURL("https://example.com")
	w.Bounds(RectOf(0, 0, 400, 300), RectOf(0, 0, 400, 300))
	w.Focus()
	w.Dispatch(MousePressed{Location: Point{10, 5}, Button: MouseButtonPrimary})
	flush(t, e)

	unlock := fb.lock()
	if len(fb.created) != 2 {
		t.Fatalf("created %d views, want initial + recreated", len(fb.created))
	}
	if fb.created[0] != [3]int32{2, 2, 0} || fb.created[1] != [3]int32{800, 600, 0} {
		t.Errorf("created = %v, want 1x views sized in raw pixels", fb.created)
	}
	if len(fb.destroyed) != 1 || fb.destroyed[0] != 0 {
		t.Errorf("destroyed = %v, want the initial view", fb.destroyed)
	}
	if fb.loaded[1] != "https://example.com" {
		t.Errorf("recreated view loaded %q", fb.loaded[1])
	}
	if len(fb.mouse) != 1 || fb.mouse[0] != [3]int32{1, 20, 10} {
		t.Errorf("mouse = %v, want press at raw (20,10) on view 1", fb.mouse)
	}
	fb.width, fb.height = 800, 600
	unlock()

	var got []PaintRequest
	w.SetPaintCallback(func(req PaintRequest) PaintResponse {
		got = append(got, req)
		return PaintResponse{}
	})
	w.Show()
	if err := e.call(w.paint); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("painted %d times, want 1", len(got))
	}
	if got[0].DirtyRect != RectOf(0, 0, 800, 600) || got[0].Buffer != 1 {
		t.Errorf("paint = %+v, want full-view dirty rect on view 1", got[0])
	}
}

func TestNativeWidgetOptionalSymbols(t *testing.T) {
	fb := stubBridge(t, true)
	e := startTestEngine(t)

	w, err := e.NewWidget(2)
	if err != nil {
		t.Fatal(err)
	}
	w.Bounds(RectOf(0, 0, 400, 300), RectOf(0, 0, 400, 300))
	w.Bounds(RectOf(0, 0, 400, 300), RectOf(0, 0, 400, 300))
	w.Focus()
	w.Dispatch(MouseMoved{Location: Point{10, 5}})
	flush(t, e)

	unlock := fb.lock()
	if len(fb.created) != 1 || fb.created[0] != [3]int32{1, 1, 2} {
		t.Errorf("created = %v, want one scaled view", fb.created)
	}
	if len(fb.resized) != 1 || fb.resized[0] != [3]int32{0, 400, 300} {
		t.Errorf("resized = %v, want one resize to 400x300", fb.resized)
	}
	if len(fb.focused) != 1 {
		t.Errorf("focused = %v", fb.focused)
	}
	if len(fb.mouse) != 1 || fb.mouse[0] != [3]int32{0, 10, 5} {
		t.Errorf("mouse = %v, want device-independent (10,5)", fb.mouse)
	}
	fb.width, fb.height = 800, 600
	fb.dirty = [4]int32{10, 20, 30, 40}
	unlock()

	var got []PaintRequest
	w.SetPaintCallback(func(req PaintRequest) PaintResponse {
		got = append(got, req)
		return PaintResponse{}
	})
	w.Show()
	if err := e.call(w.paint); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].DirtyRect != RectOf(10, 20, 30, 40) {
		t.Errorf("paint = %+v, want dirty rect from the bridge", got)
	}
}

func TestNativeWidgetCopyPixels(t *testing.T) {
	fb := stubBridge(t, false)
	fb.width, fb.height, fb.rowBytes = 2, 2, 12
	fb.pixels = []byte{
		1, 1, 1, 1, 2, 2, 2, 2, 9, 9, 9, 9,
		3, 3, 3, 3, 4, 4, 4, 4, 9, 9, 9, 9,
	}
	w := &NativeWidget{}

	dst := make([]byte, 16)
	if err := w.CopyPixels(0, RectOf(0, 0, 2, 2), Size{2, 2}, dst); err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}
	if string(dst) != string(want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}

	if err := w.CopyPixels(0, RectOf(0, 0, 3, 2), Size{3, 2}, make([]byte, 24)); err == nil {
		t.Error("size mismatch not reported")
	}
	if err := w.CopyPixels(0, RectOf(0, 0, 2, 2), Size{2, 2}, make([]byte, 8)); err == nil {
		t.Error("short destination not reported")
	}
}

func TestEngineClosedCalls(t *testing.T) {
	stubBridge(t, false)
	e := startTestEngine(t)
	e.Close()
	if _, err := e.NewWidget(1); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("NewWidget after Close: err = %v, want ErrEngineClosed", err)
	}
}

func TestNewEngineWhileRunning(t *testing.T) {
	engineActive.Store(true)
	t.Cleanup(func() { engineActive.Store(false) })
	if _, err := NewEngine(nil); !errors.Is(err, ErrEngineRunning) {
		t.Errorf("err = %v, want ErrEngineRunning", err)
	}
}

func TestBindSymbols(t *testing.T) {
	missing := map[string]bool{"ul_view_resize": true, "ul_view_focus": true, "ul_create_view_scaled": true}
	lookup := func(name string) (uintptr, error) {
		if missing[name] {
			return 0, errors.New("not found")
		}
		return 1, nil
	}
	var bound []string
	syms := bridgeSymbols()
	names := map[any]string{}
	for _, s := range syms {
		names[s.fptr] = s.name
	}
	register := func(fptr any, _ uintptr) { bound = append(bound, names[fptr]) }

	if err := bindSymbols(syms, lookup, register); err != nil {
		t.Fatalf("missing optional symbols failed the bind: %v", err)
	}
	if len(bound) != len(syms)-len(missing) {
		t.Errorf("bound %d symbols, want %d", len(bound), len(syms)-len(missing))
	}
	for _, name := range bound {
		if missing[name] {
			t.Errorf("missing symbol %s was registered", name)
		}
	}

	missing["ul_tick"] = true
	err := bindSymbols(syms, lookup, func(any, uintptr) {})
	if err == nil || !strings.Contains(err.Error(), "ul_tick") {
		t.Errorf("err = %v, want a ul_tick error", err)
	}
}

func TestULInitAfterShutdown(t *testing.T) {
	savedInit, savedDestroy := ulInit, ulDestroy
	t.Cleanup(func() {
		ulInit, ulDestroy = savedInit, savedDestroy
		ulInitialized = false
	})
	inits, destroys := 0, 0
	rc := int32(0)
	ulInit = func(string, int32) int32 { inits++; return rc }
	ulDestroy = func() { destroys++ }

	for i := 0; i < 2; i++ {
		if err := ensureULInit("", false); err != nil {
			t.Fatal(err)
		}
	}
	if inits != 1 {
		t.Fatalf("ul_init called %d times, want 1", inits)
	}
	shutdownUL()
	shutdownUL()
	if destroys != 1 {
		t.Errorf("ul_destroy called %d times, want 1", destroys)
	}
	if err := ensureULInit("", false); err != nil {
		t.Fatal(err)
	}
	if inits != 2 {
		t.Errorf("ul_init called %d times after shutdown, want 2", inits)
	}

	shutdownUL()
	rc = 3
	if err := ensureULInit("", false); err == nil {
		t.Error("failing ul_init not reported")
	}
	if ulInitialized {
		t.Error("failed init marked the renderer as up")
	}
}
