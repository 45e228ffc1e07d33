// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

// BufferHandle names the engine-side pixel surface of one paint.
type BufferHandle uintptr

// PaintRequest is what the engine hands to the paint callback.
type PaintRequest struct {
	ViewSize  Size
	DirtyRect Rect
	Buffer    BufferHandle
}

// PaintResponse acknowledges a paint. It is returned for every request,
// including dropped frames.
type PaintResponse struct{}

// PaintFunc is the engine -> bridge paint callback.
type PaintFunc func(PaintRequest) PaintResponse

// PixelCopier copies the current engine frame for handle into dst.
// dst is exactly view.Width*view.Height*4 bytes, BGRA premultiplied.
type PixelCopier interface {
	CopyPixels(handle BufferHandle, dirty Rect, view Size, dst []byte) error
}

// BoundsSink receives view geometry. Both rectangles always arrive together.
type BoundsSink interface {
	Bounds(window, screen Rect)
}

// Widget is the engine-side view the bridge drives.
type Widget interface {
	BoundsSink
	Dispatch(ev Event)
	Focus()
	Unfocus()
	Show()
	DisplayID(id int64)
}
