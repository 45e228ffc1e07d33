// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import "github.com/hajimehoshi/ebiten/v2"

// KeyCode is an engine key code. Values are Windows virtual-key codes, which
// is what the engine expects on every platform.
type KeyCode int32

const (
	KeyCodeUnspecified KeyCode = 0x00

	KeyCodeBack     KeyCode = 0x08
	KeyCodeTab      KeyCode = 0x09
	KeyCodeClear    KeyCode = 0x0C
	KeyCodeReturn   KeyCode = 0x0D
	KeyCodeShift    KeyCode = 0x10
	KeyCodeControl  KeyCode = 0x11
	KeyCodeMenu     KeyCode = 0x12
	KeyCodePause    KeyCode = 0x13
	KeyCodeCapital  KeyCode = 0x14
	KeyCodeEscape   KeyCode = 0x1B
	KeyCodeSpace    KeyCode = 0x20
	KeyCodePrior    KeyCode = 0x21
	KeyCodeNext     KeyCode = 0x22
	KeyCodeEnd      KeyCode = 0x23
	KeyCodeHome     KeyCode = 0x24
	KeyCodeLeft     KeyCode = 0x25
	KeyCodeUp       KeyCode = 0x26
	KeyCodeRight    KeyCode = 0x27
	KeyCodeDown     KeyCode = 0x28
	KeyCodeSnapshot KeyCode = 0x2C
	KeyCodeInsert   KeyCode = 0x2D
	KeyCodeDelete   KeyCode = 0x2E
	KeyCodeHelp     KeyCode = 0x2F
	KeyCode0        KeyCode = 0x30
	KeyCode9        KeyCode = 0x39
	KeyCodeA        KeyCode = 0x41
	KeyCodeZ        KeyCode = 0x5A
	KeyCodeLCmd     KeyCode = 0x5B
	KeyCodeRCmd     KeyCode = 0x5C
	KeyCodeApps     KeyCode = 0x5D
	KeyCodeNumpad0  KeyCode = 0x60
	KeyCodeMultiply KeyCode = 0x6A
	KeyCodeAdd      KeyCode = 0x6B
	KeyCodeSubtract KeyCode = 0x6D
	KeyCodeDecimal  KeyCode = 0x6E
	KeyCodeDivide   KeyCode = 0x6F
	KeyCodeF1       KeyCode = 0x70
	KeyCodeNumLock  KeyCode = 0x90
	KeyCodeScroll   KeyCode = 0x91
	KeyCodeLShift   KeyCode = 0xA0
	KeyCodeRShift   KeyCode = 0xA1
	KeyCodeLControl KeyCode = 0xA2
	KeyCodeRControl KeyCode = 0xA3
	KeyCodeLMenu    KeyCode = 0xA4
	KeyCodeRMenu    KeyCode = 0xA5

	// Punctuation / symbols (Windows VK_OEM codes)
	KeyCodeOEM1      KeyCode = 0xBA // ;:
	KeyCodeOEMPlus   KeyCode = 0xBB
	KeyCodeOEMComma  KeyCode = 0xBC
	KeyCodeOEMMinus  KeyCode = 0xBD
	KeyCodeOEMPeriod KeyCode = 0xBE
	KeyCodeOEM2      KeyCode = 0xBF // /?
	KeyCodeOEM3      KeyCode = 0xC0 // `~
	KeyCodeOEM4      KeyCode = 0xDB // [{
	KeyCodeOEM5      KeyCode = 0xDC // \|
	KeyCodeOEM6      KeyCode = 0xDD // ]}
	KeyCodeOEM7      KeyCode = 0xDE // '"
	KeyCodeOEM102    KeyCode = 0xE2
)

// toolkitKey is an Ebitengine key at a physical location.
type toolkitKey struct {
	key      ebiten.Key
	location NativeKeyLocation
}

var keyCodes = buildKeyCodes()

func buildKeyCodes() map[toolkitKey]KeyCode {
	m := map[toolkitKey]KeyCode{}
	std := func(k ebiten.Key, c KeyCode) { m[toolkitKey{k, NativeLocationStandard}] = c }
	left := func(k ebiten.Key, c KeyCode) { m[toolkitKey{k, NativeLocationLeft}] = c }
	right := func(k ebiten.Key, c KeyCode) { m[toolkitKey{k, NativeLocationRight}] = c }
	numpad := func(k ebiten.Key, c KeyCode) { m[toolkitKey{k, NativeLocationNumpad}] = c }

	// Modifiers: the unsided code at the standard location, sided otherwise.
	std(ebiten.KeyShift, KeyCodeShift)
	std(ebiten.KeyShiftLeft, KeyCodeShift)
	left(ebiten.KeyShiftLeft, KeyCodeLShift)
	right(ebiten.KeyShiftRight, KeyCodeRShift)
	std(ebiten.KeyControl, KeyCodeControl)
	std(ebiten.KeyControlLeft, KeyCodeControl)
	left(ebiten.KeyControlLeft, KeyCodeLControl)
	right(ebiten.KeyControlRight, KeyCodeRControl)
	std(ebiten.KeyAlt, KeyCodeMenu)
	std(ebiten.KeyAltLeft, KeyCodeMenu)
	left(ebiten.KeyAltLeft, KeyCodeLMenu)
	right(ebiten.KeyAltRight, KeyCodeRMenu)
	std(ebiten.KeyMeta, KeyCodeLCmd)
	std(ebiten.KeyMetaLeft, KeyCodeLCmd)
	left(ebiten.KeyMetaLeft, KeyCodeLCmd)
	right(ebiten.KeyMetaRight, KeyCodeRCmd)

	// Editing and navigation
	std(ebiten.KeyEnter, KeyCodeReturn)
	std(ebiten.KeyBackspace, KeyCodeBack)
	std(ebiten.KeyTab, KeyCodeTab)
	std(ebiten.KeyCapsLock, KeyCodeCapital)
	std(ebiten.KeyEscape, KeyCodeEscape)
	std(ebiten.KeySpace, KeyCodeSpace)
	std(ebiten.KeyPageUp, KeyCodePrior)
	std(ebiten.KeyPageDown, KeyCodeNext)
	std(ebiten.KeyEnd, KeyCodeEnd)
	std(ebiten.KeyHome, KeyCodeHome)
	std(ebiten.KeyDelete, KeyCodeDelete)
	std(ebiten.KeyInsert, KeyCodeInsert)
	std(ebiten.KeyArrowUp, KeyCodeUp)
	std(ebiten.KeyArrowLeft, KeyCodeLeft)
	std(ebiten.KeyArrowRight, KeyCodeRight)
	std(ebiten.KeyArrowDown, KeyCodeDown)

	// Lock and system keys
	std(ebiten.KeyScrollLock, KeyCodeScroll)
	std(ebiten.KeyPrintScreen, KeyCodeSnapshot)
	std(ebiten.KeyPause, KeyCodePause)
	std(ebiten.KeyContextMenu, KeyCodeApps)
	numpad(ebiten.KeyNumLock, KeyCodeNumLock)
	std(ebiten.KeyNumLock, KeyCodeNumLock)

	// Punctuation
	std(ebiten.KeyBackquote, KeyCodeOEM3)
	std(ebiten.KeyQuote, KeyCodeOEM7)
	std(ebiten.KeySemicolon, KeyCodeOEM1)
	std(ebiten.KeyBracketLeft, KeyCodeOEM4)
	std(ebiten.KeyBackslash, KeyCodeOEM5)
	std(ebiten.KeyBracketRight, KeyCodeOEM6)
	std(ebiten.KeyEqual, KeyCodeOEMPlus)
	std(ebiten.KeyComma, KeyCodeOEMComma)
	std(ebiten.KeyMinus, KeyCodeOEMMinus)
	std(ebiten.KeyPeriod, KeyCodeOEMPeriod)
	std(ebiten.KeySlash, KeyCodeOEM2)
	std(ebiten.KeyIntlBackslash, KeyCodeOEM102)

	// Numpad
	numpad(ebiten.KeyNumpadEnter, KeyCodeReturn)
	numpad(ebiten.KeyNumpadMultiply, KeyCodeMultiply)
	numpad(ebiten.KeyNumpadAdd, KeyCodeAdd)
	numpad(ebiten.KeyNumpadSubtract, KeyCodeSubtract)
	numpad(ebiten.KeyNumpadDecimal, KeyCodeDecimal)
	numpad(ebiten.KeyNumpadDivide, KeyCodeDivide)
	numpad(ebiten.KeyNumpadEqual, KeyCodeOEMPlus)

	for i := 0; i < 10; i++ {
		std(ebiten.KeyDigit0+ebiten.Key(i), KeyCode0+KeyCode(i))
		numpad(ebiten.KeyNumpad0+ebiten.Key(i), KeyCodeNumpad0+KeyCode(i))
	}
	for i := 0; i < 26; i++ {
		std(ebiten.KeyA+ebiten.Key(i), KeyCodeA+KeyCode(i))
	}
	for i, k := range []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4,
		ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8,
		ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	} {
		std(k, KeyCodeF1+KeyCode(i))
	}
	return m
}

// lookupKeyCode resolves key at loc, falling back to its standard-location
// entry. Unknown keys resolve to KeyCodeUnspecified.
func lookupKeyCode(key ebiten.Key, loc NativeKeyLocation) KeyCode {
	if c, ok := keyCodes[toolkitKey{key, loc}]; ok {
		return c
	}
	if c, ok := keyCodes[toolkitKey{key, NativeLocationStandard}]; ok {
		return c
	}
	return KeyCodeUnspecified
}

func (c KeyCode) isLetter() bool { return c >= KeyCodeA && c <= KeyCodeZ }
func (c KeyCode) isDigit() bool  { return c >= KeyCode0 && c <= KeyCode9 }

// alphabeticChar returns the character printed on an alphanumeric key.
func alphabeticChar(c KeyCode) rune {
	switch {
	case c.isLetter():
		return 'a' + rune(c-KeyCodeA)
	case c.isDigit():
		return '0' + rune(c-KeyCode0)
	}
	return CharUndefined
}
