// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"image"
	"image/color"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// PixelFormat is the byte order of a 32-bit premultiplied-alpha pixel.
type PixelFormat int

const (
	// PixelFormatBGRA is what the engine writes.
	PixelFormatBGRA PixelFormat = iota
	// PixelFormatRGBA is what ebiten.Image.WritePixels expects.
	PixelFormatRGBA
)

func (f PixelFormat) String() string {
	if f == PixelFormatRGBA {
		return "rgba"
	}
	return "bgra"
}

// Image is an immutable snapshot of one engine frame. It owns its pixels;
// nothing writes to them after construction, so it may be read from any
// goroutine.
type Image struct {
	width  int
	height int
	format PixelFormat
	pix    []byte
}

// newImage copies src (BGRA premultiplied) into a new Image in the given
// format. Channels are swapped only when format is not BGRA.
func newImage(src []byte, width, height int, format PixelFormat) *Image {
	pix := make([]byte, len(src))
	if format == PixelFormatBGRA {
		copy(pix, src)
	} else {
		for i := 0; i+3 < len(src); i += 4 {
			pix[i+0] = src[i+2]
			pix[i+1] = src[i+1]
			pix[i+2] = src[i+0]
			pix[i+3] = src[i+3]
		}
	}
	return &Image{width: width, height: height, format: format, pix: pix}
}

// Width returns the frame width in engine pixels.
func (m *Image) Width() int { return m.width }

// Height returns the frame height in engine pixels.
func (m *Image) Height() int { return m.height }

// Format returns the channel order of the snapshot.
func (m *Image) Format() PixelFormat { return m.format }

// ColorModel implements image.Image. Pixels are premultiplied, which is what
// color.RGBA holds.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.RGBA{}
	}
	i := (y*m.width + x) * 4
	p := m.pix[i : i+4 : i+4]
	if m.format == PixelFormatBGRA {
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	}
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// RGBA returns a copy of the frame as an *image.RGBA.
func (m *Image) RGBA() *image.RGBA {
	dst := image.NewRGBA(m.Bounds())
	if m.format == PixelFormatRGBA {
		copy(dst.Pix, m.pix)
		return dst
	}
	for i := 0; i+3 < len(m.pix); i += 4 {
		dst.Pix[i+0] = m.pix[i+2]
		dst.Pix[i+1] = m.pix[i+1]
		dst.Pix[i+2] = m.pix[i+0]
		dst.Pix[i+3] = m.pix[i+3]
	}
	return dst
}

// DrawTo composites the frame over r in dst, scaling when r's size differs
// from the frame (e.g. drawing a 2x engine frame into logical pixels).
func (m *Image) DrawTo(dst draw.Image, r image.Rectangle) {
	if r.Dx() == m.width && r.Dy() == m.height {
		draw.Copy(dst, r.Min, m, m.Bounds(), draw.Over, nil)
		return
	}
	draw.ApproxBiLinear.Scale(dst, r, m, m.Bounds(), draw.Over, nil)
}

// frameSlot hands the latest frame from the engine thread to the UI thread.
// publish never blocks; a frame not yet taken is replaced by the next one.
type frameSlot struct {
	latest atomic.Pointer[Image]
	ready  chan struct{}
}

func newFrameSlot() *frameSlot {
	return &frameSlot{ready: make(chan struct{}, 1)}
}

func (s *frameSlot) publish(img *Image) {
	s.latest.Store(img)
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// take returns the latest frame if one was published since the last take.
func (s *frameSlot) take() (*Image, bool) {
	select {
	case <-s.ready:
		return s.latest.Load(), true
	default:
		return nil, false
	}
}

func (s *frameSlot) current() *Image {
	return s.latest.Load()
}
