package raster

import (
	"errors"
	"fmt"
	"math"
)

// SDL_ttf renders at 72 DPI, so a point is a pixel by default.
const DefaultDPI = 72

// MaxPixelSize bounds the rendered em size in pixels (size * dpi / 72). The
// atlas holds every glyph side by side, so far larger sizes only produce
// images nothing can load.
const MaxPixelSize = 2048

// Coverage at or above SolidThreshold is stored as fully covered, everything
// below as empty.
const SolidThreshold = 0x80

var errInvalidSize = errors.New("font size must be positive")
var errSizeTooLarge = fmt.Errorf("rendered size must not exceed %d pixels", MaxPixelSize)
var errInvalidDPI = errors.New("dpi must be positive")

// Options select the face to open. Size is ignored for BDF fonts.
type Options struct {
	Size float64
	DPI  float64
}

func (o Options) dpi() float64 {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

// Validate checks that Size and DPI are finite and that the rendered em size
// stays within MaxPixelSize. A zero DPI means DefaultDPI.
func (o Options) Validate() error {
	switch {
	case !(o.Size > 0) || math.IsInf(o.Size, 0):
		return fmt.Errorf("%w, got %v", errInvalidSize, o.Size)
	case o.DPI < 0 || math.IsNaN(o.DPI) || math.IsInf(o.DPI, 0):
		return fmt.Errorf("%w, got %v", errInvalidDPI, o.DPI)
	case o.Size*o.dpi()/72 > MaxPixelSize:
		return fmt.Errorf("%w, got %v points at %v dpi", errSizeTooLarge, o.Size, o.dpi())
	}
	return nil
}
