package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

type Status int

const (
	Wrote Status = iota
	Skipped
)

func (s Status) String() string {
	switch s {
	case Wrote:
		return "wrote"
	case Skipped:
		return "skipped"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// FormatSize prints a point size in its shortest form: 12, 12.5.
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 32)
}

// ImageName is "<stem>-<size>-table-<cell width>-<cell height>.png".
func ImageName(stem string, size float64, cell image.Point) string {
	return fmt.Sprintf("%s-%s-table-%d-%d.png", stem, FormatSize(size), cell.X, cell.Y)
}

// MetricsName is "<stem>-<size>.fnt".
func MetricsName(stem string, size float64) string {
	return fmt.Sprintf("%s-%s.fnt", stem, FormatSize(size))
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Write creates path with the contents produced by encode. An existing file is
// never touched: Write returns Skipped without calling encode. Otherwise the
// data goes to a temporary file next to path, which is hard-linked into place
// once complete, so a failure never leaves a partial artifact behind. The link
// fails rather than replace a file created at path in the meantime; that also
// counts as Skipped.
func Write(path string, encode func(w io.Writer) error) (Status, error) {
	found, err := exists(path)
	if err != nil {
		return Skipped, err
	}
	if found {
		return Skipped, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return Skipped, err
	}

	defer os.Remove(tmp.Name())
	defer tmp.Close()

	bw := bufio.NewWriter(tmp)
	if err := encode(bw); err != nil {
		return Skipped, err
	}
	if err := bw.Flush(); err != nil {
		return Skipped, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return Skipped, err
	}
	if err := tmp.Close(); err != nil {
		return Skipped, err
	}

	if err := os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Skipped, nil
		}
		return Skipped, err
	}

	return Wrote, nil
}

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// WritePNG encodes img as PNG to path, following the rules of Write.
func WritePNG(path string, img image.Image) (Status, error) {
	return Write(path, func(w io.Writer) error {
		return encoder.Encode(w, img)
	})
}
