// icon-gen renders app/public/icons/icon.svg into the PWA icon set, favicon.ico
// and apple-touch-icon.png.
// Usage: go run ./cmd/icon-gen
package main

import (
	"log"
	"os"

	"github.com/cbv-system/icon-gen/internal/generator"
	"github.com/cbv-system/icon-gen/internal/layout"
	"github.com/cbv-system/icon-gen/internal/report"
)

func main() {
	os.Exit(run(generator.New(layout.New(""), report.New(nil))))
}

// run returns the process exit code: 0 when at least one icon was written.
func run(g *generator.Generator) (code int) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("❌ Error: %v", p)
			code = 1
		}
	}()

	res, err := g.Run()
	if err != nil {
		return 1
	}
	if !res.OK() {
		return 1
	}
	return 0
}
