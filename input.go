// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Double-click detection, in the toolkit's screen pixels.
const (
	doubleClickTime = 500 * time.Millisecond
	doubleClickDist = 5
)

// Wheel notches are reported as this many platform scroll units.
const unitsPerNotch = 3

// keyUnknown stands in for characters that arrive without a key press.
const keyUnknown = ebiten.Key(-1)

// pointerFrame is one tick of Ebitengine pointer state.
type pointerFrame struct {
	x, y             int
	buttons          PointerButtons
	wheelX, wheelY   float64
	keyboard         KeyModifiers
	windowX, windowY int
	now              time.Time
}

// Input polls Ebitengine once per tick and feeds a View. Mouse and scroll
// are only forwarded while the cursor is inside the bounds (or while a drag
// that started inside is in progress). Keyboard goes to the focus owner.
type Input struct {
	view *View

	// Bounds in screen coordinates.
	x, y, w, h int

	inside    bool
	capturing bool
	lastX     int
	lastY     int
	buttons   PointerButtons

	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int

	windowFocused bool
}

// NewInput returns an adapter feeding v. Call SetBounds before Update.
func NewInput(v *View) *Input {
	return &Input{view: v, lastX: -1, lastY: -1, windowFocused: true}
}

// SetBounds sets the screen rectangle of the view, lays it out and pushes
// the new bounds to the engine. Use (0,0,0,0) to disable input.
func (in *Input) SetBounds(x, y, w, h int) {
	in.x, in.y, in.w, in.h = x, y, w, h
	in.view.Positioned(x, y)
	in.view.Layout(Tight(w, h))
}

func (in *Input) contains(mx, my int) bool {
	if in.w <= 0 || in.h <= 0 {
		return false
	}
	return mx >= in.x && mx < in.x+in.w &&
		my >= in.y && my < in.y+in.h
}

// Update reads Ebitengine input state and forwards it. Call it from the
// game's Update.
func (in *Input) Update() {
	for _, ev := range in.pointerEvents(readPointerFrame()) {
		in.view.HandlePointer(ev)
	}

	focused := ebiten.IsFocused()
	if focused != in.windowFocused {
		in.windowFocused = focused
		if in.view.IsFocusOwner() {
			in.view.HandleFocus(focused)
		}
	}

	if in.view.IsFocusOwner() {
		pressed := inpututil.AppendJustPressedKeys(nil)
		released := inpututil.AppendJustReleasedKeys(nil)
		chars := ebiten.AppendInputChars(nil)
		for _, ev := range keyEvents(pressed, released, chars, readKeyboard()) {
			in.view.HandleKey(ev)
		}
	}
}

func readPointerFrame() pointerFrame {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	winX, winY := ebiten.WindowPosition()
	return pointerFrame{
		x: mx, y: my,
		buttons: PointerButtons{
			Primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
			Tertiary:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
			Back:      ebiten.IsMouseButtonPressed(ebiten.MouseButton3),
			Forward:   ebiten.IsMouseButtonPressed(ebiten.MouseButton4),
		},
		wheelX: wx, wheelY: wy,
		keyboard: readKeyboard(),
		windowX:  winX, windowY: winY,
		now: time.Now(),
	}
}

func readKeyboard() KeyModifiers {
	return modifiersFrom(ebiten.IsKeyPressed, runtime.GOOS != "darwin")
}

// modifiersFrom builds the modifier snapshot from key state. Either Alt key
// counts as Alt; right Alt is also AltGraph where layouts have one (macOS
// Option keys are both plain Alt).
func modifiersFrom(pressed func(ebiten.Key) bool, hasAltGraph bool) KeyModifiers {
	return KeyModifiers{
		Alt:      pressed(ebiten.KeyAlt),
		AltGraph: hasAltGraph && pressed(ebiten.KeyAltRight),
		Control:  pressed(ebiten.KeyControl),
		Shift:    pressed(ebiten.KeyShift),
		Meta:     pressed(ebiten.KeyMeta),
	}
}

// pointerEvents diffs f against the previous tick and returns the toolkit
// events in order: enter, move, presses, releases, scroll, exit.
func (in *Input) pointerEvents(f pointerFrame) []PointerEvent {
	inside := in.contains(f.x, f.y)
	active := inside || in.capturing
	lx, ly := f.x-in.x, f.y-in.y

	scale := in.view.cfg.ScaleFactor
	native := func(b NativeButton) *NativePointer {
		return &NativePointer{
			ScreenX:    f.windowX + f.x/scale,
			ScreenY:    f.windowY + f.y/scale,
			Button:     b,
			ClickCount: in.clickCount,
			ScrollType: ScrollTypeUnit,
		}
	}
	event := func(kind PointerKind, buttons PointerButtons, n *NativePointer) PointerEvent {
		return PointerEvent{
			Kind:     kind,
			X:        float64(lx),
			Y:        float64(ly),
			Buttons:  buttons,
			Keyboard: f.keyboard,
			Native:   n,
		}
	}

	var out []PointerEvent
	if inside && !in.inside {
		out = append(out, event(PointerEnter, f.buttons, native(NativeNoButton)))
	}
	if active && (lx != in.lastX || ly != in.lastY) {
		out = append(out, event(PointerMove, f.buttons, native(NativeNoButton)))
	}

	prev := in.buttons
	if inside {
		// Pressed flags build up one button at a time, as the platform would
		// report them.
		state := prev
		for _, b := range buttonOrder {
			if b.get(f.buttons) && !b.get(prev) {
				b.set(&state, true)
				if b.native == NativeButtonLeft {
					in.countClick(f)
				} else {
					in.resetClicks()
				}
				out = append(out, event(PointerPress, state, native(b.native)))
			}
		}
	}
	if active {
		state := prev
		for _, b := range buttonOrder {
			if !b.get(f.buttons) && b.get(prev) {
				b.set(&state, false)
				out = append(out, event(PointerRelease, state, native(b.native)))
			}
		}
	}
	if inside && (f.wheelX != 0 || f.wheelY != 0) {
		ev := event(PointerScroll, f.buttons, native(NativeNoButton))
		notches := f.wheelY
		if notches == 0 {
			notches = f.wheelX
			ev.Keyboard.Shift = true
		}
		ev.ScrollUnits = -notches * unitsPerNotch
		out = append(out, ev)
	}
	if !inside && in.inside {
		out = append(out, event(PointerExit, f.buttons, native(NativeNoButton)))
	}

	anyDown := f.buttons != PointerButtons{}
	in.capturing = anyDown && (in.capturing || inside)
	in.inside = inside
	if active {
		in.lastX, in.lastY = lx, ly
	}
	in.buttons = f.buttons
	return out
}

// countClick updates the click count for a primary press at f.
func (in *Input) countClick(f pointerFrame) {
	dx, dy := f.x-in.lastClickX, f.y-in.lastClickY
	near := dx*dx+dy*dy <= doubleClickDist*doubleClickDist
	if in.clickCount > 0 && near && f.now.Sub(in.lastClickTime) <= doubleClickTime {
		in.clickCount++
	} else {
		in.clickCount = 1
	}
	in.lastClickTime = f.now
	in.lastClickX, in.lastClickY = f.x, f.y
}

// resetClicks makes a non-primary press a single click and breaks any
// primary click sequence in progress.
func (in *Input) resetClicks() {
	in.clickCount = 1
	in.lastClickTime = time.Time{}
}

type pointerButton struct {
	native NativeButton
	get    func(PointerButtons) bool
	set    func(*PointerButtons, bool)
}

var buttonOrder = []pointerButton{
	{NativeButtonLeft, func(b PointerButtons) bool { return b.Primary }, func(b *PointerButtons, v bool) { b.Primary = v }},
	{NativeButtonRight, func(b PointerButtons) bool { return b.Secondary }, func(b *PointerButtons, v bool) { b.Secondary = v }},
	{NativeButtonMiddle, func(b PointerButtons) bool { return b.Tertiary }, func(b *PointerButtons, v bool) { b.Tertiary = v }},
	{NativeButtonOther, func(b PointerButtons) bool { return b.Back }, func(b *PointerButtons, v bool) { b.Back = v }},
	{NativeButtonOther, func(b PointerButtons) bool { return b.Forward }, func(b *PointerButtons, v bool) { b.Forward = v }},
}

// keyEvents turns one tick of key state into toolkit key events. Characters
// from the OS text input are attached to the char-producing keys pressed in
// the same tick, in order; characters left over (key repeat, dead keys) are
// sent as a down/up pair of an unknown key.
func keyEvents(pressed, released []ebiten.Key, chars []rune, mods KeyModifiers) []KeyEvent {
	var out []KeyEvent
	for _, k := range pressed {
		if isVirtualKey(k) {
			continue
		}
		ev := KeyEvent{Type: KeyDown, Key: k, Location: keyLocationOf(k), Char: CharUndefined, Modifiers: mods}
		if producesChar(k) && len(chars) > 0 {
			ev.Char = chars[0]
			chars = chars[1:]
		} else if c, ok := controlChar(k); ok {
			ev.Char = c
		}
		out = append(out, ev)
	}
	for _, r := range chars {
		out = append(out,
			KeyEvent{Type: KeyDown, Key: keyUnknown, Location: NativeLocationStandard, Char: r, Modifiers: mods},
			KeyEvent{Type: KeyUp, Key: keyUnknown, Location: NativeLocationStandard, Char: CharUndefined, Modifiers: mods},
		)
	}
	for _, k := range released {
		if isVirtualKey(k) {
			continue
		}
		out = append(out, KeyEvent{Type: KeyUp, Key: k, Location: keyLocationOf(k), Char: CharUndefined, Modifiers: mods})
	}
	return out
}

// isVirtualKey reports the side-agnostic modifier keys; Ebitengine reports
// them alongside the sided key.
func isVirtualKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyShift, ebiten.KeyControl, ebiten.KeyAlt, ebiten.KeyMeta:
		return true
	}
	return false
}

func keyLocationOf(k ebiten.Key) NativeKeyLocation {
	switch k {
	case ebiten.KeyShiftLeft, ebiten.KeyControlLeft, ebiten.KeyAltLeft, ebiten.KeyMetaLeft:
		return NativeLocationLeft
	case ebiten.KeyShiftRight, ebiten.KeyControlRight, ebiten.KeyAltRight, ebiten.KeyMetaRight:
		return NativeLocationRight
	case ebiten.KeyNumLock, ebiten.KeyNumpadEnter, ebiten.KeyNumpadMultiply, ebiten.KeyNumpadAdd,
		ebiten.KeyNumpadSubtract, ebiten.KeyNumpadDecimal, ebiten.KeyNumpadDivide, ebiten.KeyNumpadEqual:
		return NativeLocationNumpad
	}
	if k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9 {
		return NativeLocationNumpad
	}
	return NativeLocationStandard
}

// controlChar returns the character of keys whose input the OS text stream
// leaves out.
func controlChar(k ebiten.Key) (rune, bool) {
	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return '\r', true
	case ebiten.KeyTab:
		return '\t', true
	}
	return 0, false
}

// producesChar reports whether k normally types a character.
func producesChar(k ebiten.Key) bool {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ,
		k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9,
		k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return true
	}
	switch k {
	case ebiten.KeySpace, ebiten.KeyBackquote, ebiten.KeyQuote, ebiten.KeySemicolon,
		ebiten.KeyBracketLeft, ebiten.KeyBackslash, ebiten.KeyBracketRight, ebiten.KeyEqual,
		ebiten.KeyComma, ebiten.KeyMinus, ebiten.KeyPeriod, ebiten.KeySlash, ebiten.KeyIntlBackslash,
		ebiten.KeyNumpadMultiply, ebiten.KeyNumpadAdd, ebiten.KeyNumpadSubtract,
		ebiten.KeyNumpadDecimal, ebiten.KeyNumpadDivide, ebiten.KeyNumpadEqual:
		return true
	}
	return false
}
