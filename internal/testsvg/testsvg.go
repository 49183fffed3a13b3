// Package testsvg provides an SVG fixture for package tests.
package testsvg

import (
	"os"
	"path/filepath"
	"testing"
)

const Icon = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">
  <rect x="0" y="0" width="512" height="512" rx="96" fill="#1e3a8a"/>
  <circle cx="256" cy="256" r="160" fill="#f59e0b"/>
  <path d="M176 256 L240 320 L344 192" stroke="#ffffff" stroke-width="32" fill="none"/>
</svg>
`

// Write stores Icon at path, creating parent directories.
func Write(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(Icon), 0644); err != nil {
		t.Fatal(err)
	}
}
