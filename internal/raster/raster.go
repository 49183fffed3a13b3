package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Render rasterizes the SVG at path into a w x h RGBA image.
func Render(path string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG %s: %w", path, err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	gv := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(w, h, gv)
	icon.Draw(dasher, 1.0)

	return rgba, nil
}

// RenderPNG rasterizes src at size x size and writes the PNG to dst.
func RenderPNG(src, dst string, size int) error {
	img, err := Render(src, size, size)
	if err != nil {
		return err
	}
	return WritePNG(dst, img)
}

// WritePNG encodes img as PNG to path. An existing file is replaced.
func WritePNG(path string, img image.Image) error {
	return WriteFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// WriteFile creates the parent directory, encodes into a temporary file next to
// path and renames it into place. Nothing is left behind when encode fails.
func WriteFile(path string, encode func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
