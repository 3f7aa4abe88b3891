// Package metrics reads and writes .fnt metrics files: one glyph per line,
// "<name>\t<width>\n", starting with the synthetic space entry.
package metrics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"petbots.fbbdev.it/ttf2fnt/glyph"
)

const (
	SpaceName         = "space"
	DefaultSpaceWidth = 6
)

var errMalformedLine = errors.New("malformed metrics line")

type Entry struct {
	Name  string
	Width int
}

// Entries lists the space entry followed by one entry per glyph, in order.
// The width of a glyph is the pixel width of its bitmap, not the font's
// advance metric.
func Entries(glyphs glyph.Set, spaceWidth int) []Entry {
	entries := make([]Entry, 0, len(glyphs)+1)
	entries = append(entries, Entry{Name: SpaceName, Width: spaceWidth})
	for _, g := range glyphs {
		entries = append(entries, Entry{Name: string(g.Char), Width: g.Bitmap.Width()})
	}
	return entries
}

func Emit(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", e.Name, e.Width); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads entries written by Emit. Blank lines are ignored.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if text == "" {
			continue
		}

		name, width, ok := strings.Cut(text, "\t")
		if !ok || name == "" {
			return nil, fmt.Errorf("line %d: %w", line, errMalformedLine)
		}

		n, err := strconv.Atoi(width)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, errMalformedLine, err)
		}

		entries = append(entries, Entry{Name: name, Width: n})
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
