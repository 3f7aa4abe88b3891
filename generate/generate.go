// Package generate runs the whole conversion: it opens the font, rasterizes
// the character range, packs the atlas and writes the PNG and .fnt artifacts.
// Every bitmap, the atlas and the font face are released before Run returns,
// whatever the outcome.
package generate

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"petbots.fbbdev.it/ttf2fnt/atlas"
	"petbots.fbbdev.it/ttf2fnt/glyph"
	"petbots.fbbdev.it/ttf2fnt/log"
	"petbots.fbbdev.it/ttf2fnt/metrics"
	"petbots.fbbdev.it/ttf2fnt/output"
	"petbots.fbbdev.it/ttf2fnt/raster"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	FontPath string
	Size     float64

	// Zero values select the defaults: raster.DefaultDPI, the current
	// directory, metrics.DefaultSpaceWidth and glyph.PrintableASCII.
	DPI        float64
	OutDir     string
	SpaceWidth int
	Range      glyph.Range
}

func (c Config) withDefaults() Config {
	if c.DPI == 0 {
		c.DPI = raster.DefaultDPI
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.SpaceWidth == 0 {
		c.SpaceWidth = metrics.DefaultSpaceWidth
	}
	if c.Range == (glyph.Range{}) {
		c.Range = glyph.PrintableASCII
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.FontPath == "":
		return fmt.Errorf("%w: missing font path", ErrInvalidConfig)
	case c.SpaceWidth < 0:
		return fmt.Errorf("%w: negative space width %d", ErrInvalidConfig, c.SpaceWidth)
	}

	if err := (raster.Options{Size: c.Size, DPI: c.DPI}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

type Artifact struct {
	Path   string
	Status output.Status
}

type Report struct {
	Image   Artifact
	Metrics Artifact
	Cell    image.Point
	Glyphs  int
}

// Written lists the artifacts created by this run.
func (r *Report) Written() []string {
	var paths []string
	for _, a := range []Artifact{r.Image, r.Metrics} {
		if a.Status == output.Wrote {
			paths = append(paths, a.Path)
		}
	}
	return paths
}

func Run(cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	font, err := raster.Open(cfg.FontPath, raster.Options{Size: cfg.Size, DPI: cfg.DPI})
	if err != nil {
		return nil, err
	}
	defer font.Close()

	glyphs, err := glyph.Collect(font, cfg.Range)
	if err != nil {
		return nil, err
	}
	defer glyphs.Release()

	packed, err := atlas.Build(glyphs)
	if err != nil {
		return nil, err
	}
	defer packed.Release()

	stem := raster.Stem(cfg.FontPath)
	report := &Report{
		Image:   Artifact{Path: filepath.Join(cfg.OutDir, output.ImageName(stem, cfg.Size, packed.Cell()))},
		Metrics: Artifact{Path: filepath.Join(cfg.OutDir, output.MetricsName(stem, cfg.Size))},
		Cell:    packed.Cell(),
		Glyphs:  packed.Len(),
	}

	report.Image.Status, err = output.WritePNG(report.Image.Path, packed.Image())
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", report.Image.Path, err)
	}
	logArtifact(report.Image)

	entries := metrics.Entries(glyphs, cfg.SpaceWidth)
	report.Metrics.Status, err = output.Write(report.Metrics.Path, func(w io.Writer) error {
		return metrics.Emit(w, entries)
	})
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", report.Metrics.Path, err)
	}
	logArtifact(report.Metrics)

	return report, nil
}

func logArtifact(a Artifact) {
	if a.Status == output.Skipped {
		log.WarningLogger.Printf("skipped %s: already exists", a.Path)
		return
	}
	log.InfoLogger.Printf("wrote %s", a.Path)
}
