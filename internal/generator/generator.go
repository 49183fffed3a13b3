// Package generator turns the source SVG into the fixed set of PWA icons.
//
// Every output is attempted independently: a failure is reported and recorded,
// then the run moves on to the next output.
package generator

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbv-system/icon-gen/internal/constants"
	"github.com/cbv-system/icon-gen/internal/favicon"
	"github.com/cbv-system/icon-gen/internal/layout"
	"github.com/cbv-system/icon-gen/internal/raster"
	"github.com/cbv-system/icon-gen/internal/report"
)

var ErrSourceNotFound = errors.New("SVG file not found")

// Failure records one output that could not be written.
type Failure struct {
	Name string
	Err  error
}

// Result summarises a run.
type Result struct {
	Generated int
	Failures  []Failure
}

// OK reports whether the run produced anything usable. Partial output counts.
func (r *Result) OK() bool {
	return r.Generated > 0
}

type Generator struct {
	Layout *layout.Layout
	Report *report.Reporter
}

func New(l *layout.Layout, r *report.Reporter) *Generator {
	if l == nil {
		l = layout.New("")
	}
	if r == nil {
		r = report.New(nil)
	}
	return &Generator{Layout: l, Report: r}
}

// ValidateSource checks that the source SVG exists.
func (g *Generator) ValidateSource() error {
	path := g.Layout.SourcePath()
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}
	return nil
}

// Run validates the source and attempts every output. The returned error is
// non-nil only when the source is missing, in which case nothing is written.
func (g *Generator) Run() (*Result, error) {
	g.Report.Banner("CBV SYSTEM - PNG ICON GENERATOR")

	if err := g.ValidateSource(); err != nil {
		g.Report.MissingSource(g.Layout.SourcePath())
		return &Result{}, err
	}

	g.Report.Paths(g.Layout.SourcePath(), g.Layout.IconsDir())

	res := &Result{}
	g.GenerateSizes(res)
	g.attempt(res, "favicon.ico", "favicon", g.GenerateFavicon)
	g.attempt(res, "apple-touch-icon.png", "apple-touch-icon", g.GenerateTouchIcon)

	g.Report.Summary(res.Generated)
	g.Report.NextSteps()
	return res, nil
}

// GenerateSizes writes one PNG per entry in constants.IconSizes.
func (g *Generator) GenerateSizes(res *Result) {
	for _, size := range constants.IconSizes {
		label := fmt.Sprintf("%dx%d", size, size)
		g.attempt(res, label+" icon", label, func() error {
			return raster.RenderPNG(g.Layout.SourcePath(), g.Layout.IconPath(size), size)
		})
	}
}

// GenerateFavicon renders a temporary 32x32 PNG, converts it into favicon.ico
// and removes the temporary file once it has been created.
func (g *Generator) GenerateFavicon() (err error) {
	tmp := g.Layout.FaviconTempPath()
	if err := raster.RenderPNG(g.Layout.SourcePath(), tmp, constants.FaviconSize); err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(tmp); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to remove %s: %w", tmp, rmErr))
		}
	}()

	return favicon.FromPNG(tmp, g.Layout.FaviconPath(), constants.FaviconSize)
}

// GenerateTouchIcon renders the Apple touch icon straight to its final path.
func (g *Generator) GenerateTouchIcon() error {
	return raster.RenderPNG(g.Layout.SourcePath(), g.Layout.TouchIconPath(), constants.TouchIconSize)
}

// attempt runs fn, recovering panics, and records the outcome under name.
// done is printed on success and failed on failure.
func (g *Generator) attempt(res *Result, done, failed string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("panic: %v", p)
			}
		}()
		return fn()
	}()

	if err != nil {
		res.Failures = append(res.Failures, Failure{Name: failed, Err: err})
		g.Report.Failed(failed, err)
		return
	}
	res.Generated++
	g.Report.Generated(done)
}
