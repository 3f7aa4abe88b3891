package glyph

import (
	"image"
	"image/draw"
)

// A Bitmap owns the coverage surface of one rasterized glyph. The surface is
// anchored at the origin, so Bounds is always (0, 0, Width, Height).
//
// Release frees the pixels; a released bitmap reports a zero size.
type Bitmap struct {
	img *image.Alpha
}

// NewBitmap takes ownership of img. If img is not anchored at the origin its
// pixels are copied into a fresh surface that is.
func NewBitmap(img *image.Alpha) *Bitmap {
	if img.Rect.Min != (image.Point{}) {
		moved := image.NewAlpha(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
		draw.Draw(moved, moved.Rect, img, img.Rect.Min, draw.Src)
		img = moved
	}

	return &Bitmap{img: img}
}

func (b *Bitmap) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Rect.Dx()
}

func (b *Bitmap) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Rect.Dy()
}

func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width(), b.Height())
}

// Coverage returns the coverage at (x, y), or 0 outside the bitmap.
func (b *Bitmap) Coverage(x, y int) uint8 {
	if b.img == nil || !(image.Point{x, y}).In(b.img.Rect) {
		return 0
	}
	return b.img.AlphaAt(x, y).A
}

// Mask returns the surface for use as a draw mask. It is nil after Release.
func (b *Bitmap) Mask() *image.Alpha {
	return b.img
}

func (b *Bitmap) Released() bool {
	return b.img == nil
}

func (b *Bitmap) Release() {
	b.img = nil
}
