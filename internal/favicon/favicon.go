package favicon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"github.com/cbv-system/icon-gen/internal/raster"
)

// Frame returns img as a size x size image, rescaling when needed.
func Frame(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// Write encodes a single size x size frame into an ICO file at path.
func Write(path string, img image.Image, size int) error {
	frame := Frame(img, size)
	return raster.WriteFile(path, func(w io.Writer) error {
		return ico.Encode(w, frame)
	})
}

// FromPNG converts the PNG at pngPath into an ICO at icoPath.
func FromPNG(pngPath, icoPath string, size int) error {
	f, err := os.Open(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode PNG %s: %w", pngPath, err)
	}
	return Write(icoPath, img, size)
}
