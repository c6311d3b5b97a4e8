package domain

import "sort"

// DeclarationKind tells a grouping declaration apart from a case declaration
type DeclarationKind string

const (
	// KindSuite is a describe-style grouping declaration
	KindSuite DeclarationKind = "suite"
	// KindCase is an it-style test declaration
	KindCase DeclarationKind = "case"
)

// Declaration is one suite or case declaration found in a test file
type Declaration struct {
	Kind     DeclarationKind `json:"kind"`
	Label    string          `json:"label"`
	Modifier string          `json:"modifier,omitempty"` // "skip", "only" or empty
	Line     int             `json:"line"`               // 1-based
	Offset   int             `json:"offset"`             // byte offset of the keyword
}

// TestFileRecord holds the labels declared in one test file, in document order.
// Describe and It are not paired by index.
type TestFileRecord struct {
	Describe     []string      `json:"describe"`
	It           []string      `json:"it"`
	Declarations []Declaration `json:"declarations,omitempty"`
}

// NewTestFileRecord returns a record with empty, non-nil label sequences
func NewTestFileRecord() TestFileRecord {
	return TestFileRecord{Describe: []string{}, It: []string{}}
}

// Corpus maps a test file path to its record
type Corpus map[string]TestFileRecord

// Paths returns the corpus file paths in lexical order
func (c Corpus) Paths() []string {
	paths := make([]string, 0, len(c))
	for path := range c {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
