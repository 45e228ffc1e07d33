// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

// Constraints bound the size a view may take in a layout pass, in toolkit
// pixels. The view fills Max; a Max below Min is raised to Min.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Tight returns constraints that allow exactly w x h.
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// LayoutTracker follows the view's size and position and pushes both
// rectangles to the engine widget whenever either changes.
type LayoutTracker struct {
	sink  BoundsSink
	scale int

	size     Size
	position Point

	// screenOrigin returns the top-left of the host window on screen in
	// toolkit pixels. nil means the window sits at the screen origin.
	screenOrigin func() (int, int)
}

// NewLayoutTracker returns a tracker pushing to sink. scale must be >= 1.
func NewLayoutTracker(sink BoundsSink, scale int) *LayoutTracker {
	if scale < 1 {
		scale = 1
	}
	return &LayoutTracker{sink: sink, scale: scale}
}

// SetScreenOrigin installs the provider for the window's screen position.
func (t *LayoutTracker) SetScreenOrigin(fn func() (x, y int)) {
	t.screenOrigin = fn
}

// Measure fills the maximum size c allows, records it and pushes bounds
// using the last known position.
func (t *LayoutTracker) Measure(c Constraints) Size {
	w := c.MaxWidth
	if w < c.MinWidth {
		w = c.MinWidth
	}
	h := c.MaxHeight
	if h < c.MinHeight {
		h = c.MinHeight
	}
	t.size = Size{Width: w, Height: h}
	t.updateBounds()
	return t.size
}

// Positioned records the view's position relative to the window root.
func (t *LayoutTracker) Positioned(x, y int) {
	p := Point{X: x, Y: y}
	if p == t.position {
		return
	}
	t.position = p
	t.updateBounds()
}

// Bounds returns the rectangles for the current size and position.
func (t *LayoutTracker) Bounds() Bounds {
	return t.compute()
}

func (t *LayoutTracker) compute() Bounds {
	window := RectOf(
		t.position.X/t.scale,
		t.position.Y/t.scale,
		t.size.Width/t.scale,
		t.size.Height/t.scale,
	)
	screen := window
	if t.screenOrigin != nil {
		ox, oy := t.screenOrigin()
		screen.Origin.X += ox / t.scale
		screen.Origin.Y += oy / t.scale
	}
	return Bounds{Window: window, Screen: screen}
}

// updateBounds is the only place bounds reach the widget.
func (t *LayoutTracker) updateBounds() {
	b := t.compute()
	t.sink.Bounds(b.Window, b.Screen)
}
