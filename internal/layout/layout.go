package layout

import (
	"fmt"
	"path/filepath"

	"github.com/cbv-system/icon-gen/internal/constants"
)

// Layout resolves the source and output paths below a public assets root.
type Layout struct {
	PublicDir string
}

func New(publicDir string) *Layout {
	if publicDir == "" {
		publicDir = constants.PublicDir
	}
	return &Layout{PublicDir: publicDir}
}

func (l *Layout) IconsDir() string {
	return filepath.Join(l.PublicDir, constants.IconsDir)
}

func (l *Layout) SourcePath() string {
	return filepath.Join(l.IconsDir(), constants.SourceFile)
}

// IconPath returns the output path for a square icon, e.g. icons/icon-72x72.png.
func (l *Layout) IconPath(size int) string {
	return filepath.Join(l.IconsDir(), IconName(size))
}

func (l *Layout) FaviconPath() string {
	return filepath.Join(l.PublicDir, constants.FaviconFile)
}

func (l *Layout) FaviconTempPath() string {
	return filepath.Join(l.PublicDir, constants.FaviconTempFile)
}

func (l *Layout) TouchIconPath() string {
	return filepath.Join(l.PublicDir, constants.TouchIconFile)
}

// OutputPaths lists every file a complete run produces.
func (l *Layout) OutputPaths() []string {
	var paths []string
	for _, size := range constants.IconSizes {
		paths = append(paths, l.IconPath(size))
	}
	return append(paths, l.FaviconPath(), l.TouchIconPath())
}

func IconName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}
