package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows scan progress. The bar is sized once the number of
// discovered files is known, in Start.
type ProgressBar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar that renders to stderr
func NewProgressBar() *ProgressBar {
	return &ProgressBar{w: os.Stderr}
}

// Start sizes and renders the bar for total files
func (p *ProgressBar) Start(total int) {
	w := p.w
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(scanDescription(0, 0)),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.GreenString("="),
			SaucerHead:    color.GreenString(">"),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func scanDescription(parsed, failed int) string {
	desc := color.CyanString("Scanning test files ") + color.GreenString("%d parsed", parsed)
	if failed > 0 {
		desc += ", " + color.RedString("%d unreadable", failed)
	}
	return desc
}

// Update moves the bar to parsed+failed files
func (p *ProgressBar) Update(parsed, failed int) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(scanDescription(parsed, failed))
	_ = p.bar.Set(parsed + failed)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
