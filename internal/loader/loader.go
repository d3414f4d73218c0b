// Package loader handles cartridge image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/nesinfo/internal/analysis"
)

// maxImageSize limits how much of a file is read into memory, licensed
// cartridge images are all well below 1mb.
const maxImageSize = 16 * 1024 * 1024

// Loader handles loading cartridge image files from disk.
type Loader struct{}

// New creates a new cartridge image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the file and returns it as an image for analysis.
// The display name of the image is the base name of the path.
func (l *Loader) Load(path string) (analysis.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return analysis.Image{}, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return analysis.Image{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > maxImageSize {
		return analysis.Image{}, fmt.Errorf("file %s exceeds the maximum image size of %d bytes", path, maxImageSize)
	}

	return analysis.Image{
		Name: filepath.Base(path),
		Data: data,
	}, nil
}
