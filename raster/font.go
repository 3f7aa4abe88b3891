// Package raster turns characters into glyph bitmaps. TrueType and OpenType
// fonts are rendered with golang.org/x/image/font/opentype, BDF fonts with
// github.com/zachomedia/go-bdf.
package raster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"petbots.fbbdev.it/ttf2fnt/log"
)

var ErrOpenFont = errors.New("could not open font")
var ErrMissingGlyph = errors.New("glyph not found in font")
var errClosed = errors.New("font is closed")

// A Font is an open face, ready to rasterize. It must be closed after use.
type Font struct {
	face font.Face

	// only set for sfnt fonts, where a missing rune maps to glyph 0
	sfnt *sfnt.Font
	buf  sfnt.Buffer
}

// Open loads the font file at path. Files with a .bdf extension are parsed as
// BDF, anything else as TrueType/OpenType. Errors wrap ErrOpenFont.
func Open(path string, opts Options) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenFont, path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".bdf") {
		return openBDF(path, data)
	}

	return openSFNT(path, data, opts)
}

func openBDF(path string, data []byte) (*Font, error) {
	bdfFont, err := bdf.Parse(data)
	if err != nil {
		log.ErrorLogger.Print("bdf: ", err)
		return nil, fmt.Errorf("%w %s: %w", ErrOpenFont, path, err)
	}

	return &Font{face: bdfFont.NewFace()}, nil
}

func openSFNT(path string, data []byte, opts Options) (*Font, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenFont, path, err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		log.ErrorLogger.Print("opentype: ", err)
		return nil, fmt.Errorf("%w %s: %w", ErrOpenFont, path, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     opts.dpi(),
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.ErrorLogger.Print("opentype: ", err)
		return nil, fmt.Errorf("%w %s: %w", ErrOpenFont, path, err)
	}

	return &Font{face: face, sfnt: f}, nil
}

// Metrics reports the metrics of the open face.
func (f *Font) Metrics() font.Metrics {
	if f.face == nil {
		return font.Metrics{}
	}
	return f.face.Metrics()
}

func (f *Font) has(r rune) bool {
	if f.sfnt != nil {
		idx, err := f.sfnt.GlyphIndex(&f.buf, r)
		return err == nil && idx != 0
	}

	_, _, ok := f.face.GlyphBounds(r)
	return ok
}

// Close releases the face. Closing twice is a no-op.
func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}

	err := f.face.Close()
	f.face = nil
	f.sfnt = nil
	return err
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
