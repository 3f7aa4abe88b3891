package raster

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
)

// Resolve returns name unchanged if it names an existing file, otherwise it
// looks name up among the installed system fonts ("DejaVuSans.ttf",
// "dejavusans", ...).
func Resolve(name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrOpenFont, name, err)
	}

	return path, nil
}
