package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"petbots.fbbdev.it/ttf2fnt/glyph"
)

// Rasterize renders r into a new bitmap. The bitmap is one line tall (ascent
// plus descent) and as wide as the larger of the advance and the ink extent;
// ink left of the origin widens it to the left. Coverage is made solid with
// SolidThreshold.
func (f *Font) Rasterize(r rune) (*glyph.Bitmap, error) {
	if f.face == nil {
		return nil, errClosed
	}

	if !f.has(r) {
		return nil, ErrMissingGlyph
	}

	bounds, advance, ok := f.face.GlyphBounds(r)
	if !ok {
		return nil, ErrMissingGlyph
	}

	metrics := f.face.Metrics()

	left := min(0, bounds.Min.X.Floor())
	right := max(advance.Ceil(), bounds.Max.X.Ceil())
	height := (metrics.Ascent + metrics.Descent).Ceil()

	img := image.NewAlpha(image.Rect(0, 0, right-left, max(height, 0)))

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.Point26_6{X: fixed.I(-left), Y: metrics.Ascent},
	}

	drawer.DrawString(string(r))

	for i, a := range img.Pix {
		if a >= SolidThreshold {
			img.Pix[i] = 0xff
		} else {
			img.Pix[i] = 0
		}
	}

	return glyph.NewBitmap(img), nil
}
