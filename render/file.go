package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// SaveFile writes the PNG rendering of w to path, appending ".png" when the
// name lacks it, and returns the final path. An existing file is never
// replaced: SaveFile fails with ErrExists instead.
func SaveFile(path string, w Walls, opts ...Option) (string, error) {
	if !strings.HasSuffix(path, ".png") {
		path += ".png"
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("render.SaveFile(%s): %w", path, ErrExists)
	}
	if err != nil {
		return "", fmt.Errorf("render.SaveFile: %w", err)
	}

	if err := PNG(f, w, opts...); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("render.SaveFile(%s): %w", path, err)
	}
	return path, nil
}
