// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import "fmt"

// Point is a location in engine pixels.
type Point struct {
	X, Y int
}

// Size is a width/height pair in engine pixels.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle in engine pixels.
type Rect struct {
	Origin Point
	Size   Size
}

// RectOf returns the rectangle with origin (x, y) and size (w, h).
func RectOf(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

// Within reports whether r lies inside [0,size.Width]x[0,size.Height].
// All four edges are checked; nothing is clamped.
func (r Rect) Within(size Size) bool {
	return r.Origin.X <= size.Width &&
		r.Origin.Y <= size.Height &&
		r.Origin.X+r.Size.Width <= size.Width &&
		r.Origin.Y+r.Size.Height <= size.Height
}

// Bounds is the pair of rectangles pushed to the engine widget. Window and
// Screen are always computed together.
type Bounds struct {
	Window Rect
	Screen Rect
}

// MouseButton identifies a mouse button in the engine protocol.
type MouseButton int

const (
	MouseButtonUnspecified MouseButton = iota
	MouseButtonNone
	MouseButtonPrimary
	MouseButtonMiddle
	MouseButtonSecondary
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "none"
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonSecondary:
		return "secondary"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	default:
		return "unspecified"
	}
}

// ScrollType is the engine's wheel scroll granularity.
type ScrollType int

const (
	ScrollTypeUnspecified ScrollType = iota
	ScrollTypeUnit
	ScrollTypeBlock
)

// KeyLocation distinguishes keys that appear more than once on a keyboard.
type KeyLocation int

const (
	KeyLocationStandard KeyLocation = iota
	KeyLocationLeft
	KeyLocationRight
	KeyLocationNumpad
)

// MouseModifiers is the pressed-button snapshot attached to mouse events.
type MouseModifiers struct {
	PrimaryDown   bool
	MiddleDown    bool
	SecondaryDown bool
}

// KeyModifiers is the keyboard modifier snapshot attached to input events.
type KeyModifiers struct {
	Alt      bool
	AltGraph bool
	Control  bool
	Shift    bool
	Meta     bool
}

// Event is an engine input event. The set of implementations is closed.
type Event interface {
	inputEvent()
}

// MousePressed is sent when a mouse button goes down.
type MousePressed struct {
	Location       Point
	ScreenLocation Point
	Button         MouseButton
	ClickCount     int
	MouseModifiers MouseModifiers
	KeyModifiers   KeyModifiers
}

// MouseReleased is sent when a mouse button goes up.
type MouseReleased struct {
	Location       Point
	ScreenLocation Point
	Button         MouseButton
	ClickCount     int
	MouseModifiers MouseModifiers
	KeyModifiers   KeyModifiers
}

// MouseMoved is sent when the cursor moves over the view.
type MouseMoved struct {
	Location       Point
	ScreenLocation Point
	MouseModifiers MouseModifiers
	KeyModifiers   KeyModifiers
}

// MouseEntered is sent when the cursor enters the view.
type MouseEntered struct {
	Location       Point
	ScreenLocation Point
	Button         MouseButton
	MouseModifiers MouseModifiers
	KeyModifiers   KeyModifiers
}

// MouseExited is sent when the cursor leaves the view.
type MouseExited struct {
	Location       Point
	ScreenLocation Point
	Button         MouseButton
	MouseModifiers MouseModifiers
	KeyModifiers   KeyModifiers
}

// MouseWheel is sent on scroll. Deltas are in points; positive DeltaY
// scrolls the content up.
type MouseWheel struct {
	Location       Point
	ScreenLocation Point
	DeltaX         float32
	DeltaY         float32
	ScrollType     ScrollType
	KeyModifiers   KeyModifiers
}

// KeyPressed is sent when a key goes down.
type KeyPressed struct {
	Code         KeyCode
	Location     KeyLocation
	KeyModifiers KeyModifiers
	Char         rune
	HasChar      bool
}

// KeyReleased is sent when a key goes up.
type KeyReleased struct {
	Code         KeyCode
	Location     KeyLocation
	KeyModifiers KeyModifiers
}

// KeyTyped is sent after KeyPressed when the key produced a character.
type KeyTyped struct {
	Code         KeyCode
	Location     KeyLocation
	KeyModifiers KeyModifiers
	Char         rune
}

func (MousePressed) inputEvent()  {}
func (MouseReleased) inputEvent() {}
func (MouseMoved) inputEvent()    {}
func (MouseEntered) inputEvent()  {}
func (MouseExited) inputEvent()   {}
func (MouseWheel) inputEvent()    {}
func (KeyPressed) inputEvent()    {}
func (KeyReleased) inputEvent()   {}
func (KeyTyped) inputEvent()      {}
