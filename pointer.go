// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

// PointerKind is the kind of a toolkit pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota + 1
	PointerRelease
	PointerMove
	PointerEnter
	PointerExit
	PointerScroll
)

// PointerButtons is the toolkit's pressed-button state at event time.
// Several flags may be set at once.
type PointerButtons struct {
	Primary   bool
	Secondary bool
	Tertiary  bool
	Back      bool
	Forward   bool
}

// NativeButton is the platform's identity of the button that changed state.
type NativeButton int

const (
	NativeNoButton NativeButton = iota
	NativeButtonLeft
	NativeButtonMiddle
	NativeButtonRight
	NativeButtonOther
)

// NativePointer is the platform event behind a toolkit pointer event.
// Synthetic events have none.
type NativePointer struct {
	ScreenX, ScreenY int
	Button           NativeButton
	ClickCount       int
	ScrollType       ScrollType
}

// PointerEvent is a toolkit pointer event. X and Y are raw offsets from the
// view's top-left in toolkit pixels.
type PointerEvent struct {
	Kind     PointerKind
	X, Y     float64
	Buttons  PointerButtons
	Keyboard KeyModifiers
	// ScrollUnits is the wheel rotation in platform scroll units. Positive
	// values scroll the content down.
	ScrollUnits float64
	Native      *NativePointer
}

// PointerTranslator converts toolkit pointer events to engine mouse events.
type PointerTranslator struct {
	scale         int
	pointsPerUnit float64
}

// NewPointerTranslator returns a translator for the given scale factor and
// scroll points per unit.
func NewPointerTranslator(scale int, pointsPerUnit float64) *PointerTranslator {
	if scale < 1 {
		scale = 1
	}
	return &PointerTranslator{scale: scale, pointsPerUnit: pointsPerUnit}
}

// scrollDirection flips toolkit wheel units into the engine's convention.
const scrollDirection = -1

// Translate maps ev to an engine event. It reports false for kinds it does
// not know.
func (t *PointerTranslator) Translate(ev PointerEvent) (Event, bool) {
	local := t.localPoint(ev)
	screen := t.screenPoint(ev, local)
	mouseMods := mouseModifiers(ev.Buttons)

	switch ev.Kind {
	case PointerPress:
		return MousePressed{
			Location:       local,
			ScreenLocation: screen,
			Button:         pressedButton(ev.Buttons),
			ClickCount:     clickCount(ev),
			MouseModifiers: mouseMods,
			KeyModifiers:   ev.Keyboard,
		}, true
	case PointerRelease:
		return MouseReleased{
			Location:       local,
			ScreenLocation: screen,
			Button:         releasedButton(ev.Native),
			ClickCount:     clickCount(ev),
			MouseModifiers: mouseMods,
			KeyModifiers:   ev.Keyboard,
		}, true
	case PointerMove:
		return MouseMoved{
			Location:       local,
			ScreenLocation: screen,
			MouseModifiers: mouseMods,
			KeyModifiers:   ev.Keyboard,
		}, true
	case PointerEnter:
		return MouseEntered{
			Location:       local,
			ScreenLocation: screen,
			Button:         pressedButton(ev.Buttons),
			MouseModifiers: mouseMods,
			KeyModifiers:   ev.Keyboard,
		}, true
	case PointerExit:
		return MouseExited{
			Location:       local,
			ScreenLocation: screen,
			Button:         pressedButton(ev.Buttons),
			MouseModifiers: mouseMods,
			KeyModifiers:   ev.Keyboard,
		}, true
	case PointerScroll:
		return t.wheel(ev, local, screen), true
	}
	return nil, false
}

func (t *PointerTranslator) wheel(ev PointerEvent, local, screen Point) MouseWheel {
	scrollType := ScrollTypeUnspecified
	if ev.Native != nil {
		scrollType = ev.Native.ScrollType
	}
	// No diagonal scrolling: shift turns the whole delta horizontal.
	delta := float32(ev.ScrollUnits * t.pointsPerUnit * scrollDirection)
	w := MouseWheel{
		Location:       local,
		ScreenLocation: screen,
		ScrollType:     scrollType,
		KeyModifiers:   ev.Keyboard,
	}
	if ev.Keyboard.Shift {
		w.DeltaX = delta
	} else {
		w.DeltaY = delta
	}
	return w
}

func (t *PointerTranslator) localPoint(ev PointerEvent) Point {
	return Point{X: int(ev.X) / t.scale, Y: int(ev.Y) / t.scale}
}

func (t *PointerTranslator) screenPoint(ev PointerEvent, local Point) Point {
	if ev.Native == nil {
		return local
	}
	return Point{X: ev.Native.ScreenX, Y: ev.Native.ScreenY}
}

// pressedButton picks one button from flags that may overlap while buttons
// change state. The order is fixed.
func pressedButton(b PointerButtons) MouseButton {
	switch {
	case b.Primary:
		return MouseButtonPrimary
	case b.Back:
		return MouseButtonBack
	case b.Forward:
		return MouseButtonForward
	case b.Secondary:
		return MouseButtonSecondary
	case b.Tertiary:
		return MouseButtonMiddle
	default:
		return MouseButtonNone
	}
}

// releasedButton reads the button from the native event; the pressed flags
// no longer include it at release time.
func releasedButton(n *NativePointer) MouseButton {
	if n == nil {
		return MouseButtonUnspecified
	}
	switch n.Button {
	case NativeButtonLeft:
		return MouseButtonPrimary
	case NativeButtonMiddle:
		return MouseButtonMiddle
	case NativeButtonRight:
		return MouseButtonSecondary
	case NativeNoButton:
		return MouseButtonNone
	default:
		return MouseButtonUnspecified
	}
}

func clickCount(ev PointerEvent) int {
	if ev.Native == nil || ev.Native.ClickCount <= 0 {
		return 1
	}
	return ev.Native.ClickCount
}

func mouseModifiers(b PointerButtons) MouseModifiers {
	return MouseModifiers{
		PrimaryDown:   b.Primary,
		MiddleDown:    b.Tertiary,
		SecondaryDown: b.Secondary,
	}
}
