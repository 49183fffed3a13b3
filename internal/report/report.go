package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 70

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	bold  = color.New(color.Bold)
)

// Reporter prints human-readable progress for an icon run.
type Reporter struct {
	Out io.Writer
}

// New returns a Reporter writing to out, or to color.Output when out is nil.
func New(out io.Writer) *Reporter {
	if out == nil {
		out = color.Output
	}
	return &Reporter{Out: out}
}

func (r *Reporter) rule() {
	fmt.Fprintln(r.Out, strings.Repeat("=", ruleWidth))
}

func (r *Reporter) Banner(title string) {
	r.rule()
	bold.Fprintln(r.Out, title)
	r.rule()
	fmt.Fprintln(r.Out)
}

func (r *Reporter) Paths(source, outputDir string) {
	fmt.Fprintf(r.Out, "📁 Source SVG: %s\n", source)
	fmt.Fprintf(r.Out, "📁 Output directory: %s\n", outputDir)
	fmt.Fprintln(r.Out)
}

func (r *Reporter) MissingSource(path string) {
	red.Fprintf(r.Out, "❌ SVG file not found: %s\n", path)
}

func (r *Reporter) Generated(name string) {
	green.Fprintf(r.Out, "  ✓ Generated %s\n", name)
}

func (r *Reporter) Failed(name string, err error) {
	red.Fprintf(r.Out, "  ❌ Failed to generate %s: %v\n", name, err)
}

// Summary prints the completion block with the number of files written.
func (r *Reporter) Summary(generated int) {
	fmt.Fprintln(r.Out)
	r.rule()
	if generated > 0 {
		green.Fprintln(r.Out, "✅ ICON GENERATION COMPLETE")
	} else {
		red.Fprintln(r.Out, "❌ ICON GENERATION FAILED")
	}
	r.rule()
	fmt.Fprintln(r.Out)
	fmt.Fprintf(r.Out, "📊 Generated %d icons successfully\n", generated)
	fmt.Fprintln(r.Out)
}

func (r *Reporter) NextSteps() {
	fmt.Fprintln(r.Out, "📝 Next steps:")
	fmt.Fprintln(r.Out, "   1. Refresh your browser")
	fmt.Fprintln(r.Out, "   2. Check browser console for PWA install prompt")
	fmt.Fprintln(r.Out, "   3. Click install icon in address bar")
	fmt.Fprintln(r.Out)
	r.rule()
}
