// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import "log/slog"

// PixelBuffer owns the BGRA backing store the engine copies frames into.
// It is only ever used from the paint callback.
type PixelBuffer struct {
	width  int
	height int
	bytes  []byte

	copier PixelCopier
	format PixelFormat
}

// NewPixelBuffer returns an empty buffer that copies frames through copier
// and publishes snapshots in format.
func NewPixelBuffer(copier PixelCopier, format PixelFormat) *PixelBuffer {
	return &PixelBuffer{copier: copier, format: format}
}

// Size returns the current backing store dimensions.
func (b *PixelBuffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// resize reallocates the backing store when the view size changed. Old
// content is discarded; the engine repaints the full view after a resize.
func (b *PixelBuffer) resize(view Size) {
	if b.bytes != nil && b.width == view.Width && b.height == view.Height {
		return
	}
	b.width = view.Width
	b.height = view.Height
	b.bytes = make([]byte, view.Width*view.Height*4)
	Logger().Debug("ultralightui: pixel buffer resized", slog.Int("width", view.Width), slog.Int("height", view.Height))
}

// Update copies the frame behind handle, snapshots it and calls repaint with
// the snapshot. A dirty rect outside the view drops the frame: nothing is
// copied and repaint is not called.
func (b *PixelBuffer) Update(view Size, dirty Rect, handle BufferHandle, repaint func(*Image)) (*Image, bool) {
	if view.Width < 0 || view.Height < 0 {
		Logger().Debug("ultralightui: negative view size, frame dropped", slog.Int("width", view.Width), slog.Int("height", view.Height))
		return nil, false
	}
	b.resize(view)
	if !dirty.Within(view) {
		Logger().Debug("ultralightui: dirty rect outside view, frame dropped",
			slog.String("dirty", dirty.String()), slog.Int("width", view.Width), slog.Int("height", view.Height))
		return nil, false
	}
	if err := b.copier.CopyPixels(handle, dirty, view, b.bytes); err != nil {
		Logger().Warn("ultralightui: pixel copy failed, frame dropped", slog.Any("err", err))
		return nil, false
	}
	img := newImage(b.bytes, b.width, b.height, b.format)
	if repaint != nil {
		repaint(img)
	}
	return img, true
}
