package glyph

import (
	"errors"
	"fmt"
)

var ErrEmptyRange = errors.New("empty character range")
var errNilBitmap = errors.New("rasterizer returned no bitmap")

// Range is an inclusive, ascending range of character codes.
type Range struct {
	First rune
	Last  rune
}

// PrintableASCII covers '!' through '~'. Space is not rasterized: atlas cell 0
// stands in for it.
var PrintableASCII = Range{First: '!', Last: '~'}

func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return int(r.Last-r.First) + 1
}

func (r Range) Runes() []rune {
	runes := make([]rune, r.Len())
	for i := range runes {
		runes[i] = r.First + rune(i)
	}
	return runes
}

// A Glyph is a rasterized character.
type Glyph struct {
	Char   rune
	Bitmap *Bitmap
}

// Set is an ordered list of glyphs. Order matters: position i maps to atlas
// cell i+1 and to metrics line i+2.
type Set []Glyph

// Release frees every bitmap in the set.
func (s Set) Release() {
	for _, g := range s {
		if g.Bitmap != nil {
			g.Bitmap.Release()
		}
	}
}

type Rasterizer interface {
	Rasterize(r rune) (*Bitmap, error)
}

type RasterizerFunc func(r rune) (*Bitmap, error)

func (f RasterizerFunc) Rasterize(r rune) (*Bitmap, error) {
	return f(r)
}

// RasterizeError reports the character that could not be rasterized.
type RasterizeError struct {
	Char rune
	Err  error
}

func (e *RasterizeError) Error() string {
	return fmt.Sprintf("rasterize %q (U+%04X): %v", e.Char, e.Char, e.Err)
}

func (e *RasterizeError) Unwrap() error {
	return e.Err
}

// Collect rasterizes every character of rng in ascending order. The first
// failure aborts the collection; bitmaps acquired up to that point are
// released before the error is returned. On success the caller owns the set.
func Collect(rz Rasterizer, rng Range) (Set, error) {
	if rng.Len() == 0 {
		return nil, ErrEmptyRange
	}

	set := make(Set, 0, rng.Len())
	for _, c := range rng.Runes() {
		bm, err := rz.Rasterize(c)
		if err == nil && bm == nil {
			err = errNilBitmap
		}
		if err != nil {
			set.Release()
			return nil, &RasterizeError{Char: c, Err: err}
		}

		set = append(set, Glyph{Char: c, Bitmap: bm})
	}

	return set, nil
}
