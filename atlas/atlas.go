// Package atlas packs a glyph set into a single image of uniform cells laid
// out left to right. Cell 0 is reserved and left blank; glyph i of the set
// goes into cell i+1.
package atlas

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"petbots.fbbdev.it/ttf2fnt/glyph"
)

var ErrEmptyInput = errors.New("no glyphs to pack")

// Glyph coverage is painted in opaque black, used as alpha. The rest of the
// atlas, cell 0 included, keeps the zero value of a new image: transparent.
const inkAlpha = 0xff

func ink() color.NRGBA {
	return color.NRGBA{0, 0, 0, inkAlpha}
}

// CellSize returns the componentwise maximum of the bitmap sizes in glyphs.
func CellSize(glyphs glyph.Set) image.Point {
	var cell image.Point
	for _, g := range glyphs {
		cell.X = max(cell.X, g.Bitmap.Width())
		cell.Y = max(cell.Y, g.Bitmap.Height())
	}
	return cell
}

// An Atlas owns the packed image. Release frees it.
type Atlas struct {
	img   *image.NRGBA
	cell  image.Point
	count int
}

// Build packs glyphs into a new atlas of (cell.X * (len(glyphs)+1), cell.Y)
// pixels. For every glyph the full cell rectangle is requested from the
// bitmap; the copy is clipped to the bitmap's real bounds, so pixels past its
// extent stay transparent.
func Build(glyphs glyph.Set) (*Atlas, error) {
	if len(glyphs) == 0 {
		return nil, ErrEmptyInput
	}

	cell := CellSize(glyphs)
	a := &Atlas{
		img:   image.NewNRGBA(image.Rect(0, 0, cell.X*(len(glyphs)+1), cell.Y)),
		cell:  cell,
		count: len(glyphs),
	}

	fg := image.NewUniform(ink())
	for i, g := range glyphs {
		src := image.Rect(0, 0, cell.X, cell.Y).Intersect(g.Bitmap.Bounds())
		if src.Empty() {
			continue
		}

		dst := src.Add(a.CellRect(i + 1).Min)
		draw.DrawMask(a.img, dst, fg, image.Point{}, g.Bitmap.Mask(), src.Min, draw.Over)
	}

	return a, nil
}

func (a *Atlas) Image() *image.NRGBA {
	return a.img
}

func (a *Atlas) Cell() image.Point {
	return a.cell
}

// Len returns the number of glyph cells, not counting the reserved one.
func (a *Atlas) Len() int {
	return a.count
}

// CellRect returns the rectangle of cell i. Cell 0 is the reserved blank cell.
func (a *Atlas) CellRect(i int) image.Rectangle {
	x := i * a.cell.X
	return image.Rect(x, 0, x+a.cell.X, a.cell.Y)
}

func (a *Atlas) Release() {
	a.img = nil
}
