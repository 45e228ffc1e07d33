// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyTranslateDownWithChar(t *testing.T) {
	tr := NewKeyTranslator(false)
	got := tr.Translate(KeyEvent{Type: KeyDown, Key: ebiten.KeyA, Location: NativeLocationStandard, Char: 'a'})
	if len(got) != 2 {
		t.Fatalf("got %d events, want pressed+typed", len(got))
	}
	p, ok := got[0].(KeyPressed)
	if !ok {
		t.Fatalf("first event is %T, want KeyPressed", got[0])
	}
	typed, ok := got[1].(KeyTyped)
	if !ok {
		t.Fatalf("second event is %T, want KeyTyped", got[1])
	}
	if p.Code != KeyCodeA || !p.HasChar || p.Char != 'a' {
		t.Errorf("pressed = %+v", p)
	}
	if typed.Code != p.Code || typed.Char != p.Char || typed.Location != p.Location || typed.KeyModifiers != p.KeyModifiers {
		t.Errorf("typed %+v does not mirror pressed %+v", typed, p)
	}
}

func TestKeyTranslateDownWithoutChar(t *testing.T) {
	tr := NewKeyTranslator(false)
	for _, char := range []rune{CharUndefined, 0} {
		got := tr.Translate(KeyEvent{Type: KeyDown, Key: ebiten.KeyArrowLeft, Location: NativeLocationStandard, Char: char})
		if len(got) != 1 {
			t.Fatalf("char %#x: got %d events, want 1", char, len(got))
		}
		p := got[0].(KeyPressed)
		if p.Code != KeyCodeLeft || p.HasChar {
			t.Errorf("char %#x: pressed = %+v", char, p)
		}
	}
}

func TestKeyTranslateUp(t *testing.T) {
	tr := NewKeyTranslator(false)
	got := tr.Translate(KeyEvent{Type: KeyUp, Key: ebiten.KeyEnter, Location: NativeLocationStandard, Char: 'x'})
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	r, ok := got[0].(KeyReleased)
	if !ok || r.Code != KeyCodeReturn {
		t.Errorf("got %+v, want KeyReleased(Return)", got[0])
	}
}

func TestKeyTranslateUnknownKey(t *testing.T) {
	tr := NewKeyTranslator(false)
	got := tr.Translate(KeyEvent{Type: KeyDown, Key: keyUnknown, Location: NativeLocationStandard, Char: 'é'})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if p := got[0].(KeyPressed); p.Code != KeyCodeUnspecified {
		t.Errorf("Code = %#x, want unspecified", p.Code)
	}
	if typed := got[1].(KeyTyped); typed.Char != 'é' {
		t.Errorf("Char = %q, want é", typed.Char)
	}
}

func TestKeyTranslateUnknownType(t *testing.T) {
	if got := NewKeyTranslator(false).Translate(KeyEvent{Key: ebiten.KeyA}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestKeyTranslateAccessKey(t *testing.T) {
	chord := KeyModifiers{Control: true, Alt: true}
	tests := []struct {
		name     string
		mac      bool
		key      ebiten.Key
		char     rune
		mods     KeyModifiers
		wantChar rune
		wantN    int
	}{
		{"letter on mac", true, ebiten.KeyF, 'ƒ', chord, 'f', 2},
		{"digit on mac", true, ebiten.KeyDigit3, '£', chord, '3', 2},
		{"no char on mac", true, ebiten.KeyQ, CharUndefined, chord, 'q', 2},
		{"meta blocks substitution", true, ebiten.KeyF, 'ƒ', KeyModifiers{Control: true, Alt: true, Meta: true}, 'ƒ', 2},
		{"alt alone keeps char", true, ebiten.KeyF, 'ƒ', KeyModifiers{Alt: true}, 'ƒ', 2},
		{"non-alphanumeric", true, ebiten.KeyArrowUp, CharUndefined, chord, 0, 1},
		{"not mac", false, ebiten.KeyF, 'ƒ', chord, 'ƒ', 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewKeyTranslator(tt.mac).Translate(KeyEvent{Type: KeyDown, Key: tt.key, Location: NativeLocationStandard, Char: tt.char, Modifiers: tt.mods})
			if len(got) != tt.wantN {
				t.Fatalf("got %d events, want %d", len(got), tt.wantN)
			}
			if tt.wantN == 2 {
				if c := got[1].(KeyTyped).Char; c != tt.wantChar {
					t.Errorf("Char = %q, want %q", c, tt.wantChar)
				}
			}
		})
	}
}

func TestKeyTranslateLocation(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		native   NativeKeyLocation
		wantCode KeyCode
		wantLoc  KeyLocation
	}{
		{ebiten.KeyShiftLeft, NativeLocationLeft, KeyCodeLShift, KeyLocationLeft},
		{ebiten.KeyShiftRight, NativeLocationRight, KeyCodeRShift, KeyLocationRight},
		{ebiten.KeyNumpad5, NativeLocationNumpad, KeyCodeNumpad0 + 5, KeyLocationNumpad},
		{ebiten.KeyNumpadEnter, NativeLocationNumpad, KeyCodeReturn, KeyLocationNumpad},
		{ebiten.KeyDigit5, NativeLocationStandard, KeyCode0 + 5, KeyLocationStandard},
		{ebiten.KeyPageDown, NativeLocationStandard, KeyCodeNext, KeyLocationStandard},
		{ebiten.KeyF12, NativeLocationStandard, KeyCodeF1 + 11, KeyLocationStandard},
		{ebiten.KeyA, NativeLocationUnknown, KeyCodeA, KeyLocationStandard},
	}
	tr := NewKeyTranslator(false)
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			p := tr.Translate(KeyEvent{Type: KeyDown, Key: tt.key, Location: tt.native, Char: CharUndefined})[0].(KeyPressed)
			if p.Code != tt.wantCode {
				t.Errorf("Code = %#x, want %#x", p.Code, tt.wantCode)
			}
			if p.Location != tt.wantLoc {
				t.Errorf("Location = %v, want %v", p.Location, tt.wantLoc)
			}
		})
	}
}

func TestKeyTranslateDropsAltGraph(t *testing.T) {
	got := NewKeyTranslator(false).Translate(KeyEvent{Type: KeyUp, Key: ebiten.KeyE, Modifiers: KeyModifiers{AltGraph: true, Shift: true}})
	r := got[0].(KeyReleased)
	if r.KeyModifiers != (KeyModifiers{Shift: true}) {
		t.Errorf("KeyModifiers = %+v, want shift only", r.KeyModifiers)
	}
}

func TestAlphabeticChar(t *testing.T) {
	tests := []struct {
		code KeyCode
		want rune
	}{
		{KeyCodeA, 'a'},
		{KeyCodeZ, 'z'},
		{KeyCode0, '0'},
		{KeyCode9, '9'},
		{KeyCodeSpace, CharUndefined},
	}
	for _, tt := range tests {
		if got := alphabeticChar(tt.code); got != tt.want {
			t.Errorf("alphabeticChar(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
