package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"specpath/internal/config"
	"specpath/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
	gray   = color.New(color.FgHiBlack)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to the color-aware stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    color.Output,
	}
}

// SetOutput redirects the formatter's output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

func (f *Formatter) relPath(path string) string {
	return relativeTo(f.config.ProjectPath, path)
}

// relativeTo returns path relative to the project for cleaner display
func relativeTo(projectPath, path string) string {
	if rel, err := filepath.Rel(projectPath, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// PrintCorpus prints the scanned files as a tree, optionally with their
// suite and case declarations.
func (f *Formatter) PrintCorpus(corpus domain.Corpus, showDeclarations bool) {
	paths := corpus.Paths()
	green.Fprintf(f.out, "Found %d test file(s):\n\n", len(paths))

	for i, path := range paths {
		isLastFile := i == len(paths)-1
		if isLastFile {
			cyan.Fprintf(f.out, "└── %s\n", f.relPath(path))
		} else {
			cyan.Fprintf(f.out, "├── %s\n", f.relPath(path))
		}
		if !showDeclarations {
			continue
		}

		indent := "│   "
		if isLastFile {
			indent = "    "
		}

		decls := corpus[path].Declarations
		if len(decls) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, red.Sprint("(no declarations found)"))
		}
		for j, decl := range decls {
			branch := "├── "
			if j == len(decls)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", indent, branch, formatDeclaration(decl))
		}

		// Add spacing between files (except for the last one)
		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}
}

func formatDeclaration(decl domain.Declaration) string {
	var label string
	if decl.Kind == domain.KindSuite {
		label = cyan.Sprintf("describe %s", decl.Label)
	} else {
		label = yellow.Sprintf("it %s", decl.Label)
	}
	if decl.Modifier != "" {
		label += " " + gray.Sprintf("[%s]", decl.Modifier)
	}
	return fmt.Sprintf("%s %s", gray.Sprintf("%4d", decl.Line), label)
}

// PrintIndexStats prints the summary table of a scan
func (f *Formatter) PrintIndexStats(meta domain.IndexMeta) {
	cyan.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.statsRow("Pattern", meta.Pattern)
	f.statsRow("Encoding", meta.Encoding)
	f.statsRow("Test Files", fmt.Sprint(meta.Files))
	f.statsRow("Suites", fmt.Sprint(meta.Suites))
	f.statsRow("Cases", fmt.Sprint(meta.Cases))
	if meta.Timestamp != "" {
		f.statsRow("Timestamp", meta.Timestamp)
	}
	cyan.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
}

func (f *Formatter) statsRow(name, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", name)
	white.Fprintf(f.out, "%-27s │\n", value)
}

// PrintLocation prints one resolution as path:line
func (f *Formatter) PrintLocation(res domain.Resolution) {
	if !res.Found {
		yellow.Fprintf(f.out, "✗ %s › %s: not found\n", res.Suite, res.Case)
		return
	}
	green.Fprintln(f.out, f.location(res))
}

func (f *Formatter) location(res domain.Resolution) string {
	if res.Line > 0 {
		return fmt.Sprintf("%s:%d", f.relPath(res.Path), res.Line)
	}
	return f.relPath(res.Path)
}

// PrintResolutions prints batch resolution results and a summary line
func (f *Formatter) PrintResolutions(resolutions []domain.Resolution) {
	var missing int
	for _, res := range resolutions {
		name := fmt.Sprintf("%s › %s", res.Suite, res.Case)
		if res.Found {
			fmt.Fprintf(f.out, "%s %s\n    %s\n", green.Sprint("✓"), name, cyan.Sprint(f.location(res)))
		} else {
			missing++
			fmt.Fprintf(f.out, "%s %s\n    %s\n", red.Sprint("✗"), name, gray.Sprint("(not found)"))
		}
	}

	fmt.Fprintln(f.out)
	if missing == 0 {
		green.Fprintf(f.out, "✓ Resolved all %d failed test(s)\n", len(resolutions))
	} else {
		red.Fprintf(f.out, "✗ %d of %d failed test(s) could not be resolved\n", missing, len(resolutions))
	}
}
