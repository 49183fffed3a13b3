package raster

import (
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbv-system/icon-gen/internal/testsvg"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return img
}

func TestRender(t *testing.T) {
	src := filepath.Join(t.TempDir(), "icon.svg")
	testsvg.Write(t, src)

	img, err := Render(src, 72, 72)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 72 || img.Bounds().Dy() != 72 {
		t.Errorf("Expected 72x72, got %v", img.Bounds())
	}

	// The centre of the fixture is covered by the filled circle.
	if _, _, _, a := img.At(36, 36).RGBA(); a == 0 {
		t.Errorf("Expected opaque pixel at the centre")
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Render(filepath.Join(dir, "missing.svg"), 32, 32); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	src := filepath.Join(dir, "icon.svg")
	testsvg.Write(t, src)
	if _, err := Render(src, 0, 32); err == nil {
		t.Errorf("Expected error for zero width")
	}
}

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "icon.svg")
	testsvg.Write(t, src)

	dst := filepath.Join(dir, "out", "icon-128x128.png")
	if err := RenderPNG(src, dst, 128); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}
	img := decodePNG(t, dst)
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 128 {
		t.Errorf("Expected 128x128, got %v", img.Bounds())
	}

	// A second render at another size replaces the file.
	if err := RenderPNG(src, dst, 96); err != nil {
		t.Fatalf("RenderPNG overwrite failed: %v", err)
	}
	img = decodePNG(t, dst)
	if img.Bounds().Dx() != 96 {
		t.Errorf("Expected overwritten width 96, got %d", img.Bounds().Dx())
	}
}

func TestWriteFile_EncodeFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	boom := errors.New("boom")

	err := WriteFile(path, func(w io.Writer) error {
		w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped encode error, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory, found %d entries", len(entries))
	}
}

func TestWriteFile_RenameFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon-96x96.png")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("data"))
		return err
	})
	if err == nil {
		t.Fatal("Expected error when the target is a directory")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the blocking directory, found %d entries", len(entries))
	}
}
