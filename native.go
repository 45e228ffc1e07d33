// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	// ErrEngineClosed is returned by calls on an engine that has been closed.
	ErrEngineClosed = errors.New("ultralightui: engine closed")
	// ErrEngineRunning is returned by NewEngine while another engine is open.
	// The renderer is process-wide and bound to one OS thread.
	ErrEngineRunning = errors.New("ultralightui: another engine is running")
)

var engineActive atomic.Bool

// Engine owns the engine thread. Ultralight requires every API call to come
// from the same OS thread, so all native calls are queued to one goroutine
// locked to its thread. Paint callbacks run there too.
type Engine struct {
	cmds chan func()
	stop chan struct{}
	done chan struct{}
	tick time.Duration

	// views is only touched on the engine thread.
	views map[int32]*NativeWidget

	closed    atomic.Bool
	closeOnce sync.Once
}

// tickInterval is how often the engine renders and reports paints.
const tickInterval = time.Second / 60

// NewEngine loads the bridge library and starts the engine thread.
func NewEngine(opts *Options) (*Engine, error) {
	if !engineActive.CompareAndSwap(false, true) {
		return nil, ErrEngineRunning
	}
	baseDir, debug := resolveOpts(opts)
	e := newEngine(tickInterval)
	errc := make(chan error, 1)
	go e.run(baseDir, debug, errc)
	if err := <-errc; err != nil {
		engineActive.Store(false)
		return nil, err
	}
	Logger().Info("ultralightui: engine started", slog.String("baseDir", baseDir))
	return e, nil
}

func newEngine(tick time.Duration) *Engine {
	return &Engine{
		cmds:  make(chan func(), 256),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
		tick:  tick,
		views: make(map[int32]*NativeWidget),
	}
}

func resolveOpts(opts *Options) (string, bool) {
	debug := false
	baseDir := ""
	if opts != nil {
		baseDir = opts.BaseDir
		debug = opts.Debug
	}
	if baseDir == "" {
		baseDir, _ = os.Getwd()
		if _, err := os.Stat(filepath.Join(baseDir, bridgeLibName())); err != nil {
			if exe, _ := os.Executable(); exe != "" {
				baseDir = filepath.Dir(exe)
			}
		}
	}
	return baseDir, debug
}

func (e *Engine) run(baseDir string, debug bool, errc chan<- error) {
	runtime.LockOSThread()

	if err := initBridge(baseDir); err != nil {
		close(e.done)
		errc <- fmt.Errorf("bridge: %w", err)
		return
	}
	if err := ensureULInit(baseDir, debug); err != nil {
		close(e.done)
		errc <- err
		return
	}
	errc <- nil
	e.loop()
}

// loop serves commands and ticks until Close.
func (e *Engine) loop() {
	defer close(e.done)
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()
	for {
		select {
		case fn := <-e.cmds:
			fn()
		case <-ticker.C:
			ulTick()
			for _, w := range e.views {
				w.paint()
			}
		case <-e.stop:
			for id := range e.views {
				ulDestroyView(id)
			}
			e.views = nil
			shutdownUL()
			return
		}
	}
}

// post queues fn for the engine thread. Calls after Close are dropped.
func (e *Engine) post(fn func()) {
	if e.closed.Load() {
		return
	}
	select {
	case e.cmds <- fn:
	case <-e.stop:
	}
}

// call runs fn on the engine thread and waits for it.
func (e *Engine) call(fn func()) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	ran := make(chan struct{})
	e.post(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
		return nil
	case <-e.done:
		return ErrEngineClosed
	}
}

// Close destroys all views and stops the engine thread.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.stop)
		<-e.done
		engineActive.Store(false)
		Logger().Info("ultralightui: engine stopped")
	})
}

// NewWidget creates an engine view. The view has no size until the first
// Bounds call and paints nothing until Show.
func (e *Engine) NewWidget(scale int) (*NativeWidget, error) {
	if scale < 1 {
		scale = 1
	}
	w := &NativeWidget{engine: e, scale: int32(scale), id: -1, width: 1, height: 1}
	var rc int32
	err := e.call(func() {
		w.rawPixels = ulCreateViewScaled == nil
		rc = w.create()
		if rc >= 0 {
			w.id = rc
			e.views[rc] = w
		}
	})
	if err != nil {
		return nil, err
	}
	if rc < 0 {
		return nil, fmt.Errorf("ul_create_view failed with code %d", rc)
	}
	return w, nil
}

// NewView creates an engine view and the View bridging it, with the paint
// callback already registered. Close the widget when done with the view.
func (e *Engine) NewView(cfg Config) (*View, *NativeWidget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("view config: %w", err)
	}
	w, err := e.NewWidget(cfg.ScaleFactor)
	if err != nil {
		return nil, nil, err
	}
	v, err := NewView(w, w, cfg)
	if err != nil {
		w.Close()
		return nil, nil, err
	}
	w.SetPaintCallback(v.OnPaint)
	return v, w, nil
}

// NativeWidget drives one engine view. It implements Widget for the UI
// goroutine and PixelCopier for the paint callback.
//
// Bridges without ul_create_view_scaled render at 1x: the view is then sized
// in raw pixels and event coordinates are multiplied by the scale. Without
// ul_view_resize the view is recreated at the new size and its URL reloaded.
// Without ul_view_get_dirty_rect every tick repaints the whole view. Without
// ul_view_focus/ul_view_unfocus focus changes are not forwarded.
type NativeWidget struct {
	engine *Engine
	scale  int32

	// Engine thread only.
	id        int32
	rawPixels bool
	onPaint   PaintFunc
	visible   bool
	width     int32
	height    int32
	url       string
	focused   bool

	displayID atomic.Int64
}

var _ Widget = (*NativeWidget)(nil)
var _ PixelCopier = (*NativeWidget)(nil)

// SetPaintCallback registers fn as the paint callback. fn runs on the
// engine thread.
func (w *NativeWidget) SetPaintCallback(fn PaintFunc) {
	w.engine.post(func() { w.onPaint = fn })
}

// LoadURL navigates the view.
func (w *NativeWidget) LoadURL(url string) {
	w.engine.post(func() {
		w.url = url
		ulViewLoadURL(w.id, url)
	})
}

// Dispatch implements Widget.
func (w *NativeWidget) Dispatch(ev Event) {
	w.engine.post(func() { w.fire(ev) })
}

// Bounds implements Widget. The engine view is resized to the window
// rectangle; the shim renders it at the widget's scale.
func (w *NativeWidget) Bounds(window, screen Rect) {
	width, height := int32(window.Size.Width), int32(window.Size.Height)
	w.engine.post(func() {
		if width <= 0 || height <= 0 || (width == w.width && height == w.height) {
			return
		}
		w.width, w.height = width, height
		if ulViewResize != nil {
			f := w.pixelFactor()
			ulViewResize(w.id, width*f, height*f)
			return
		}
		w.recreate()
	})
}

// create makes an engine view of the current size.
func (w *NativeWidget) create() int32 {
	if w.rawPixels {
		return ulCreateView(w.width*w.scale, w.height*w.scale)
	}
	return ulCreateViewScaled(w.width, w.height, w.scale)
}

// recreate replaces the engine view with one of the current size.
func (w *NativeWidget) recreate() {
	id := w.create()
	if id < 0 {
		Logger().Warn("ultralightui: recreating view failed", slog.Int("code", int(id)))
		return
	}
	delete(w.engine.views, w.id)
	ulDestroyView(w.id)
	w.id = id
	w.engine.views[id] = w
	if w.url != "" {
		ulViewLoadURL(id, w.url)
	}
	if w.focused && ulViewFocus != nil {
		ulViewFocus(id)
	}
}

// pixelFactor converts device-independent units to the view's units.
func (w *NativeWidget) pixelFactor() int32 {
	if w.rawPixels {
		return w.scale
	}
	return 1
}

// Focus implements Widget.
func (w *NativeWidget) Focus() {
	w.engine.post(func() {
		w.focused = true
		if ulViewFocus != nil {
			ulViewFocus(w.id)
		}
	})
}

// Unfocus implements Widget.
func (w *NativeWidget) Unfocus() {
	w.engine.post(func() {
		w.focused = false
		if ulViewUnfocus != nil {
			ulViewUnfocus(w.id)
		}
	})
}

// Show implements Widget.
func (w *NativeWidget) Show() {
	w.engine.post(func() { w.visible = true })
}

// DisplayID implements Widget. Ultralight renders for a single display, so
// the id is only recorded.
func (w *NativeWidget) DisplayID(id int64) {
	w.displayID.Store(id)
}

// Close destroys the engine view.
func (w *NativeWidget) Close() {
	w.engine.post(func() {
		if _, ok := w.engine.views[w.id]; !ok {
			return
		}
		delete(w.engine.views, w.id)
		ulDestroyView(w.id)
	})
}

// paint reports the dirty region, if any, to the paint callback.
func (w *NativeWidget) paint() {
	if !w.visible || w.onPaint == nil {
		return
	}
	view := Size{Width: int(ulViewGetWidth(w.id)), Height: int(ulViewGetHeight(w.id))}
	dirty := RectOf(0, 0, view.Width, view.Height)
	if ulViewGetDirtyRect != nil {
		var rect [4]int32
		if ulViewGetDirtyRect(w.id, uintptr(unsafe.Pointer(&rect[0]))) == 0 {
			return
		}
		dirty = RectOf(int(rect[0]), int(rect[1]), int(rect[2]), int(rect[3]))
	}
	w.onPaint(PaintRequest{ViewSize: view, DirtyRect: dirty, Buffer: BufferHandle(w.id)})
}

// CopyPixels implements PixelCopier. It runs inside the paint callback on
// the engine thread and copies the whole surface, row by row, into dst.
func (w *NativeWidget) CopyPixels(handle BufferHandle, dirty Rect, view Size, dst []byte) error {
	id := int32(handle)
	ptr := ulViewGetPixels(id)
	if ptr == 0 {
		return fmt.Errorf("view %d: no pixels", id)
	}
	defer ulViewUnlockPixels(id)

	width := int(ulViewGetWidth(id))
	height := int(ulViewGetHeight(id))
	rowBytes := int(ulViewGetRowBytes(id))
	if width != view.Width || height != view.Height {
		return fmt.Errorf("view %d: surface is %dx%d, paint reported %dx%d", id, width, height, view.Width, view.Height)
	}
	if len(dst) < width*height*4 {
		return fmt.Errorf("view %d: destination holds %d bytes, need %d", id, len(dst), width*height*4)
	}

	src := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), rowBytes*height)
	rowLen := width * 4
	for y := 0; y < height; y++ {
		copy(dst[y*rowLen:(y+1)*rowLen], src[y*rowBytes:y*rowBytes+rowLen])
	}
	return nil
}

// fire sends ev to the engine view. The translators produce
// device-independent pixels; 1x views get them multiplied back.
func (w *NativeWidget) fire(ev Event) {
	f := w.pixelFactor()
	mouse := func(typ int32, p Point, button int32) {
		ulViewFireMouse(w.id, typ, int32(p.X)*f, int32(p.Y)*f, button)
	}
	switch e := ev.(type) {
	case MousePressed:
		mouse(mouseEventTypeDown, e.Location, ulMouseButton(e.Button))
	case MouseReleased:
		mouse(mouseEventTypeUp, e.Location, ulMouseButton(e.Button))
	case MouseMoved:
		mouse(mouseEventTypeMoved, e.Location, heldButton(e.MouseModifiers))
	case MouseEntered:
		mouse(mouseEventTypeMoved, e.Location, heldButton(e.MouseModifiers))
	case MouseExited:
		mouse(mouseEventTypeMoved, e.Location, heldButton(e.MouseModifiers))
	case MouseWheel:
		ulViewFireScroll(w.id, scrollEventTypeByPixel, int32(e.DeltaX)*f, int32(e.DeltaY)*f)
	case KeyPressed:
		// RawKeyDown triggers accelerators like Ctrl+C/V/X/A
		ulViewFireKey(w.id, keyEventRawKeyDown, int32(e.Code), ulKeyMods(e.KeyModifiers), "")
	case KeyTyped:
		ulViewFireKey(w.id, keyEventChar, 0, ulKeyMods(e.KeyModifiers), string(e.Char))
	case KeyReleased:
		ulViewFireKey(w.id, keyEventKeyUp, int32(e.Code), ulKeyMods(e.KeyModifiers), "")
	default:
		Logger().Warn("ultralightui: unsupported event", slog.String("type", fmt.Sprintf("%T", ev)))
	}
}

func ulMouseButton(b MouseButton) int32 {
	switch b {
	case MouseButtonPrimary:
		return mouseButtonLeft
	case MouseButtonMiddle:
		return mouseButtonMiddle
	case MouseButtonSecondary:
		return mouseButtonRight
	default:
		return mouseButtonNone
	}
}

// heldButton reports the button held during a move so the engine sees drags.
func heldButton(m MouseModifiers) int32 {
	switch {
	case m.PrimaryDown:
		return mouseButtonLeft
	case m.MiddleDown:
		return mouseButtonMiddle
	case m.SecondaryDown:
		return mouseButtonRight
	default:
		return mouseButtonNone
	}
}

func ulKeyMods(m KeyModifiers) uint32 {
	mods := uint32(0)
	if m.Shift {
		mods |= keyModShift
	}
	if m.Control {
		mods |= keyModCtrl
	}
	if m.Alt {
		mods |= keyModAlt
	}
	if m.Meta {
		mods |= keyModMeta
	}
	return mods
}
