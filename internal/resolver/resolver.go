package resolver

import (
	"errors"
	"strings"

	"specpath/internal/domain"
)

// ErrNotFound is returned by callers that treat a missing test as an error
var ErrNotFound = errors.New("test not found")

// Resolver answers (suite, case) queries against one corpus snapshot.
// A file matches when its describe labels contain the suite and its it
// labels contain the case; the two need not be nested together.
type Resolver struct {
	corpus domain.Corpus
	paths  []string
}

// New creates a Resolver over corpus. The corpus must not be mutated afterwards.
func New(corpus domain.Corpus) *Resolver {
	return &Resolver{corpus: corpus, paths: corpus.Paths()}
}

// Locate returns the path of the file declaring both labels
func Locate(corpus domain.Corpus, suite, testCase string) (string, bool) {
	return New(corpus).Locate(suite, testCase)
}

// Locate returns the path of the first file, in path order, declaring both labels
func (r *Resolver) Locate(suite, testCase string) (string, bool) {
	for _, path := range r.paths {
		record := r.corpus[path]
		if containsLabel(record.Describe, suite) && containsLabel(record.It, testCase) {
			return path, true
		}
	}
	return "", false
}

// LocateDeclaration is Locate plus the line of the case declaration, when
// the record carries declaration positions.
func (r *Resolver) LocateDeclaration(suite, testCase string) (domain.Resolution, bool) {
	res := domain.Resolution{Suite: suite, Case: testCase}
	path, ok := r.Locate(suite, testCase)
	if !ok {
		return res, false
	}

	res.Path = path
	res.Found = true
	for _, decl := range r.corpus[path].Declarations {
		if decl.Kind == domain.KindCase && labelMatches(decl.Label, testCase) {
			res.Line = decl.Line
			break
		}
	}
	return res, true
}

// ResolveAll resolves every failed test, keeping input order
func (r *Resolver) ResolveAll(failed []domain.FailedTest) []domain.Resolution {
	resolutions := make([]domain.Resolution, 0, len(failed))
	for _, f := range failed {
		res, _ := r.LocateDeclaration(f.Suite, f.Case)
		resolutions = append(resolutions, res)
	}
	return resolutions
}

func containsLabel(labels []string, query string) bool {
	for _, label := range labels {
		if labelMatches(label, query) {
			return true
		}
	}
	return false
}

// labelMatches compares a stored label to a query either raw, or with the
// stored label's quote escapes removed.
func labelMatches(label, query string) bool {
	return label == query || Unescape(label) == query
}

// Unescape drops every run of backslashes that directly precedes a quote,
// turning the raw label \'s4\' into 's4'. Other backslashes are kept.
func Unescape(label string) string {
	if !strings.Contains(label, `\`) {
		return label
	}

	var b strings.Builder
	b.Grow(len(label))
	for i := 0; i < len(label); i++ {
		if label[i] != '\\' {
			b.WriteByte(label[i])
			continue
		}
		end := i
		for end < len(label) && label[end] == '\\' {
			end++
		}
		if end < len(label) && (label[end] == '\'' || label[end] == '"') {
			i = end - 1
			continue
		}
		b.WriteString(label[i:end])
		i = end - 1
	}
	return b.String()
}
