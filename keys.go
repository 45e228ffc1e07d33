// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import "github.com/hajimehoshi/ebiten/v2"

// CharUndefined marks a key event that produced no character.
const CharUndefined rune = 0xFFFF

// KeyEventType is the kind of a toolkit key event.
type KeyEventType int

const (
	KeyDown KeyEventType = iota + 1
	KeyUp
)

// NativeKeyLocation is the platform's location code for a key.
type NativeKeyLocation int

const (
	NativeLocationUnknown NativeKeyLocation = iota
	NativeLocationStandard
	NativeLocationLeft
	NativeLocationRight
	NativeLocationNumpad
)

// KeyEvent is a toolkit key event. Char is CharUndefined (or zero) when the
// key produced no character.
type KeyEvent struct {
	Type      KeyEventType
	Key       ebiten.Key
	Location  NativeKeyLocation
	Char      rune
	Modifiers KeyModifiers
}

// KeyTranslator converts toolkit key events to engine key events.
type KeyTranslator struct {
	macKeyboard bool
}

// NewKeyTranslator returns a translator. macKeyboard enables access-key
// character substitution.
func NewKeyTranslator(macKeyboard bool) *KeyTranslator {
	return &KeyTranslator{macKeyboard: macKeyboard}
}

// Translate maps ev to engine events in dispatch order. A key down with a
// character yields KeyPressed followed by KeyTyped; the toolkit never sends
// a typed event and the engine needs one before the release.
func (t *KeyTranslator) Translate(ev KeyEvent) []Event {
	code := lookupKeyCode(ev.Key, ev.Location)
	loc := keyLocation(ev.Location)
	mods := keyModifiers(ev.Modifiers)

	switch ev.Type {
	case KeyDown:
		char := ev.Char
		if t.macKeyboard && isMacAccessKey(code, mods) {
			char = alphabeticChar(code)
		}
		pressed := KeyPressed{Code: code, Location: loc, KeyModifiers: mods}
		if !charDefined(char) {
			return []Event{pressed}
		}
		pressed.Char, pressed.HasChar = char, true
		return []Event{pressed, KeyTyped{
			Code:         pressed.Code,
			Location:     pressed.Location,
			KeyModifiers: pressed.KeyModifiers,
			Char:         pressed.Char,
		}}
	case KeyUp:
		return []Event{KeyReleased{Code: code, Location: loc, KeyModifiers: mods}}
	}
	return nil
}

// charDefined treats the zero rune like CharUndefined so a KeyEvent built
// without a Char never produces a typed event.
func charDefined(r rune) bool {
	return r != CharUndefined && r != 0
}

// isMacAccessKey reports whether code+mods is a macOS access-key chord
// (Control+Option on an alphanumeric key).
func isMacAccessKey(code KeyCode, mods KeyModifiers) bool {
	if !mods.Control || !mods.Alt || mods.Meta {
		return false
	}
	return code.isLetter() || code.isDigit()
}

func keyLocation(l NativeKeyLocation) KeyLocation {
	switch l {
	case NativeLocationNumpad:
		return KeyLocationNumpad
	case NativeLocationLeft:
		return KeyLocationLeft
	case NativeLocationRight:
		return KeyLocationRight
	default:
		return KeyLocationStandard
	}
}

// keyModifiers keeps the modifiers key events carry; AltGraph is only
// reported on pointer events.
func keyModifiers(m KeyModifiers) KeyModifiers {
	return KeyModifiers{Alt: m.Alt, Control: m.Control, Shift: m.Shift, Meta: m.Meta}
}
