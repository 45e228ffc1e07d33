// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import "testing"

// recordingWidget is a Widget that records every call.
type recordingWidget struct {
	events    []Event
	bounds    []Bounds
	focus     int
	unfocus   int
	show      int
	displayID int64
}

func (w *recordingWidget) Dispatch(ev Event) { w.events = append(w.events, ev) }
func (w *recordingWidget) Bounds(window, screen Rect) {
	w.bounds = append(w.bounds, Bounds{window, screen})
}
func (w *recordingWidget) Focus()             { w.focus++ }
func (w *recordingWidget) Unfocus()           { w.unfocus++ }
func (w *recordingWidget) Show()              { w.show++ }
func (w *recordingWidget) DisplayID(id int64) { w.displayID = id }

// fillCopier writes one BGRA pixel value over the whole destination.
type fillCopier struct {
	pixel [4]byte
	err   error
	calls int

	lastDirty Rect
	lastView  Size
}

func (c *fillCopier) CopyPixels(_ BufferHandle, dirty Rect, view Size, dst []byte) error {
	c.calls++
	c.lastDirty, c.lastView = dirty, view
	if c.err != nil {
		return c.err
	}
	for i := 0; i+3 < len(dst); i += 4 {
		copy(dst[i:i+4], c.pixel[:])
	}
	return nil
}

func testConfig() Config {
	return Config{
		ScaleFactor:         2,
		ScrollPointsPerUnit: 100.0 / 3,
		OutputFormat:        "bgra",
		DisplayID:           7,
	}
}

func newTestView(t *testing.T) (*View, *recordingWidget, *fillCopier) {
	t.Helper()
	w := &recordingWidget{}
	c := &fillCopier{pixel: [4]byte{10, 20, 30, 255}}
	v, err := NewView(w, c, testConfig())
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	t.Cleanup(func() {
		v.Close()
		setFocusOwner(nil)
	})
	return v, w, c
}
