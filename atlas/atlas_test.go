package atlas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petbots.fbbdev.it/ttf2fnt/glyph"
)

// solid returns a fully covered w×h bitmap.
func solid(w, h int) *glyph.Bitmap {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return glyph.NewBitmap(img)
}

func set(sizes ...image.Point) glyph.Set {
	s := make(glyph.Set, len(sizes))
	for i, sz := range sizes {
		s[i] = glyph.Glyph{Char: '!' + rune(i), Bitmap: solid(sz.X, sz.Y)}
	}
	return s
}

func TestCellSize(t *testing.T) {
	s := set(image.Pt(5, 9), image.Pt(3, 12), image.Pt(7, 4))
	assert.Equal(t, image.Pt(7, 12), CellSize(s))

	for _, g := range s {
		assert.LessOrEqual(t, g.Bitmap.Width(), 7)
		assert.LessOrEqual(t, g.Bitmap.Height(), 12)
	}
}

func TestBuildSize(t *testing.T) {
	for n := 1; n <= 5; n++ {
		sizes := make([]image.Point, n)
		for i := range sizes {
			sizes[i] = image.Pt(2+i, 6-i)
		}

		a, err := Build(set(sizes...))
		require.NoError(t, err)

		cell := a.Cell()
		assert.Equal(t, image.Pt(n+1, 6), cell)
		assert.Equal(t, image.Rect(0, 0, cell.X*(n+1), cell.Y), a.Image().Bounds())
		assert.Equal(t, n, a.Len())
	}
}

func TestBuildEmpty(t *testing.T) {
	a, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, a)

	a, err = Build(glyph.Set{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, a)
}

func TestReservedCellBlank(t *testing.T) {
	a, err := Build(set(image.Pt(4, 4), image.Pt(4, 4), image.Pt(4, 4)))
	require.NoError(t, err)

	img := a.Image()
	r := a.CellRect(0)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			assert.Equal(t, color.NRGBA{}, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestIndexCorrespondence(t *testing.T) {
	// Every glyph fills its own width w = i+1, so in cell i+1 exactly the first
	// w columns are opaque and the rest of the cell is clipped background.
	s := set(image.Pt(1, 3), image.Pt(2, 3), image.Pt(3, 3))
	a, err := Build(s)
	require.NoError(t, err)

	cell := a.Cell()
	require.Equal(t, image.Pt(3, 3), cell)

	img := a.Image()
	for i, g := range s {
		r := a.CellRect(i + 1)
		assert.Equal(t, (i+1)*cell.X, r.Min.X)
		for y := 0; y < cell.Y; y++ {
			for dx := 0; dx < cell.X; dx++ {
				want := uint8(0)
				if dx < g.Bitmap.Width() {
					want = 0xff
				}
				assert.Equal(t, want, img.NRGBAAt(r.Min.X+dx, y).A, "glyph %d at (%d,%d)", i, dx, y)
			}
		}
	}
}

func TestClipToSourceBounds(t *testing.T) {
	// A short glyph next to a tall one: rows below its height stay clear.
	s := set(image.Pt(2, 2), image.Pt(2, 5))
	a, err := Build(s)
	require.NoError(t, err)

	img := a.Image()
	r := a.CellRect(1)
	for y := 0; y < 5; y++ {
		want := uint8(0)
		if y < 2 {
			want = 0xff
		}
		assert.Equal(t, want, img.NRGBAAt(r.Min.X, y).A, "row %d", y)
	}
}

func TestCoverageCopied(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 2, 1))
	img.SetAlpha(1, 0, color.Alpha{A: 0xff})
	s := glyph.Set{{Char: 'x', Bitmap: glyph.NewBitmap(img)}}

	a, err := Build(s)
	require.NoError(t, err)

	out := a.Image()
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, out.NRGBAAt(3, 0))
}

func TestOnlyInkAndTransparent(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 3, 1))
	img.Pix = []uint8{0x00, 0x80, 0xff}
	s := glyph.Set{
		{Char: 'a', Bitmap: glyph.NewBitmap(img)},
		{Char: 'b', Bitmap: solid(2, 4)},
	}

	a, err := Build(s)
	require.NoError(t, err)

	out := a.Image()
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			c := out.NRGBAAt(x, y)
			if c.A == 0 {
				assert.Equal(t, color.NRGBA{}, c, "pixel (%d,%d)", x, y)
				continue
			}
			assert.Equal(t, color.NRGBA{0, 0, 0, c.A}, c, "pixel (%d,%d)", x, y)
		}
	}

	r := a.CellRect(1)
	assert.Equal(t, uint8(0x80), out.NRGBAAt(r.Min.X+1, 0).A)
}

func TestRelease(t *testing.T) {
	a, err := Build(set(image.Pt(1, 1)))
	require.NoError(t, err)
	a.Release()
	assert.Nil(t, a.Image())
}
