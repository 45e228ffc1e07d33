// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// View connects one engine widget to Ebitengine. OnPaint runs on the engine
// thread; every other method belongs to the UI goroutine.
type View struct {
	widget Widget
	cfg    Config

	pixels *PixelBuffer
	frames *frameSlot

	layout  *LayoutTracker
	pointer *PointerTranslator
	keys    *KeyTranslator

	focused bool
	shown   bool
	// pressed is set between a press and a release that both land in the
	// view; the release then counts as a click.
	pressed bool

	texture *ebiten.Image

	closed bool
}

// NewView wires widget and copier into a view. The returned view's OnPaint
// must be registered as the engine's paint callback.
func NewView(widget Widget, copier PixelCopier, cfg Config) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("view config: %w", err)
	}
	format, _ := cfg.pixelFormat()
	v := &View{
		widget:  widget,
		cfg:     cfg,
		pixels:  NewPixelBuffer(copier, format),
		frames:  newFrameSlot(),
		layout:  NewLayoutTracker(widget, cfg.ScaleFactor),
		pointer: NewPointerTranslator(cfg.ScaleFactor, cfg.ScrollPointsPerUnit),
		keys:    NewKeyTranslator(cfg.MacKeyboard),
	}
	widget.DisplayID(cfg.DisplayID)
	return v, nil
}

// OnPaint is the paint callback. It copies the frame, publishes the
// snapshot for the UI goroutine and always acknowledges, even when the frame
// was dropped.
func (v *View) OnPaint(req PaintRequest) PaintResponse {
	v.pixels.Update(req.ViewSize, req.DirtyRect, req.Buffer, v.frames.publish)
	return PaintResponse{}
}

// Show makes the engine widget visible. Further calls do nothing.
func (v *View) Show() {
	if v.shown {
		return
	}
	v.shown = true
	v.widget.Show()
}

// Layout measures the view under c and pushes the new bounds.
func (v *View) Layout(c Constraints) Size {
	return v.layout.Measure(c)
}

// Positioned records the view's position in the window, in toolkit pixels.
func (v *View) Positioned(x, y int) {
	v.layout.Positioned(x, y)
}

// SetScreenOrigin installs the provider for the window's screen position.
func (v *View) SetScreenOrigin(fn func() (x, y int)) {
	v.layout.SetScreenOrigin(fn)
}

// Bounds returns the view's current window and screen rectangles.
func (v *View) Bounds() Bounds {
	return v.layout.Bounds()
}

// HandlePointer translates ev and dispatches it to the widget. A press
// followed by a release inside the view requests focus, since the toolkit
// does not focus a custom-drawn region on its own.
func (v *View) HandlePointer(ev PointerEvent) {
	if v.closed {
		return
	}
	e, ok := v.pointer.Translate(ev)
	if !ok {
		return
	}
	v.widget.Dispatch(e)

	switch ev.Kind {
	case PointerPress:
		v.pressed = true
	case PointerExit:
		v.pressed = false
	case PointerRelease:
		if v.pressed {
			v.pressed = false
			v.RequestFocus()
		}
	}
}

// HandleKey translates ev and dispatches the resulting events in order.
func (v *View) HandleKey(ev KeyEvent) {
	if v.closed {
		return
	}
	for _, e := range v.keys.Translate(ev) {
		v.widget.Dispatch(e)
	}
}

// HandleFocus forwards a toolkit focus change to the widget. Repeated
// notifications of the same state are ignored.
func (v *View) HandleFocus(gained bool) {
	if v.closed || gained == v.focused {
		return
	}
	v.focused = gained
	if gained {
		v.widget.Focus()
	} else {
		v.widget.Unfocus()
	}
}

// RequestFocus gives this view keyboard focus, taking it from whichever
// view had it.
func (v *View) RequestFocus() {
	if v.closed {
		return
	}
	prev := setFocusOwner(v)
	if prev != nil && prev != v {
		prev.HandleFocus(false)
	}
	v.HandleFocus(true)
}

// IsFocusOwner reports whether this view receives keyboard input.
func (v *View) IsFocusOwner() bool {
	return getFocusOwner() == v
}

// Focused reports whether the widget was last told it has focus.
func (v *View) Focused() bool {
	return v.focused
}

// Frame returns the latest published snapshot, or nil before the first paint.
func (v *View) Frame() *Image {
	return v.frames.current()
}

// Texture returns the Ebiten image holding the last uploaded frame. It may be
// nil before the first frame arrives.
func (v *View) Texture() *ebiten.Image {
	v.sync()
	return v.texture
}

// Draw uploads the latest frame if a new one arrived and draws it onto
// screen. Frames are in engine pixels, which are the toolkit's raw pixels,
// so no scaling is applied beyond opts.
func (v *View) Draw(screen *ebiten.Image, opts *ebiten.DrawImageOptions) {
	v.sync()
	if v.texture == nil {
		return
	}
	screen.DrawImage(v.texture, opts)
}

// sync moves the pending frame, if any, into the texture.
func (v *View) sync() {
	img, ok := v.frames.take()
	if !ok || img == nil || v.closed {
		return
	}
	if img.width == 0 || img.height == 0 {
		return
	}
	if v.texture == nil || v.texture.Bounds().Dx() != img.width || v.texture.Bounds().Dy() != img.height {
		if v.texture != nil {
			v.texture.Deallocate()
		}
		v.texture = ebiten.NewImage(img.width, img.height)
	}
	if img.format == PixelFormatRGBA {
		v.texture.WritePixels(img.pix)
	} else {
		v.texture.WritePixels(img.RGBA().Pix)
	}
}

// Close releases focus and the texture. The view ignores input afterwards.
func (v *View) Close() {
	if v.closed {
		return
	}
	if clearFocusOwner(v) {
		v.HandleFocus(false)
	}
	v.closed = true
	if v.texture != nil {
		v.texture.Deallocate()
		v.texture = nil
	}
	Logger().Info("ultralightui: view closed", slog.Int64("display", v.cfg.DisplayID))
}
