package parser

import (
	"sort"
	"strings"

	"specpath/internal/domain"
)

// AnomalyReason classifies text the label scanner could not fully understand
type AnomalyReason string

const (
	// ReasonUnterminatedLiteral: a label literal has no closing quote on its line
	ReasonUnterminatedLiteral AnomalyReason = "unterminated label literal"
	// ReasonDynamicLabel: the label argument is not (only) string literals
	ReasonDynamicLabel AnomalyReason = "non-literal label"
	// ReasonUnterminatedComment: a block comment runs to the end of the file
	ReasonUnterminatedComment AnomalyReason = "unterminated block comment"
)

// Anomaly is a tolerated problem found while extracting labels
type Anomaly struct {
	Reason AnomalyReason
	Line   int
	Offset int
}

type scanState int

const (
	stateCode scanState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateTemplate
)

type keyword struct {
	kind     domain.DeclarationKind
	modifier string
}

var keywords = map[string]keyword{
	"describe":  {domain.KindSuite, ""},
	"xdescribe": {domain.KindSuite, "skip"},
	"fdescribe": {domain.KindSuite, "only"},
	"it":        {domain.KindCase, ""},
	"xit":       {domain.KindCase, "skip"},
	"fit":       {domain.KindCase, "only"},
}

var suffixModifiers = map[string]string{
	"skip": "skip",
	"only": "only",
}

// labelScanner walks source text once, outside of comments and unrelated
// string literals, picking up describe/it declarations.
type labelScanner struct {
	text      string
	newlines  []int
	record    domain.TestFileRecord
	anomalies []Anomaly
}

// ExtractLabels returns the suite and case labels declared in text, in
// document order, along with the anomalies it tolerated. It never fails:
// malformed input yields a partial record.
func ExtractLabels(text string) (domain.TestFileRecord, []Anomaly) {
	s := &labelScanner{text: text, record: domain.NewTestFileRecord()}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.newlines = append(s.newlines, i)
		}
	}
	s.run()
	return s.record, s.anomalies
}

func (s *labelScanner) run() {
	text := s.text
	state := stateCode
	var quote byte
	openedAt := 0

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			}

		case stateBlockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = stateCode
				i++
			}

		case stateString:
			if c == '\n' {
				state = stateCode
			} else if c == quote && !oddBackslashes(text, i) {
				state = stateCode
			}

		case stateTemplate:
			if c == '`' && !oddBackslashes(text, i) {
				state = stateCode
			}

		case stateCode:
			switch {
			case c == '/' && i+1 < len(text) && text[i+1] == '/':
				state = stateLineComment
				i++
			case c == '/' && i+1 < len(text) && text[i+1] == '*':
				state = stateBlockComment
				openedAt = i
				i++
			case c == '\'' || c == '"':
				state = stateString
				quote = c
			case c == '`':
				state = stateTemplate
				openedAt = i
			case isIdentStart(c):
				end := identEnd(text, i)
				if next, ok := s.declaration(i, end); ok {
					i = next - 1
				} else {
					i = end - 1
				}
			}
		}
	}

	switch state {
	case stateBlockComment:
		s.anomaly(ReasonUnterminatedComment, openedAt)
	case stateTemplate:
		s.anomaly(ReasonUnterminatedLiteral, openedAt)
	}
}

// declaration tries to read a declaration whose keyword spans text[start:end].
// On success it records the declaration and returns the offset right after
// the label argument.
func (s *labelScanner) declaration(start, end int) (int, bool) {
	text := s.text
	kw, ok := keywords[text[start:end]]
	if !ok || memberAccess(text, start) {
		return 0, false
	}

	modifier := kw.modifier
	pos := end
	if pos < len(text) && text[pos] == '.' {
		suffixEnd := identEnd(text, pos+1)
		mod, ok := suffixModifiers[text[pos+1:suffixEnd]]
		if !ok || modifier != "" {
			return 0, false
		}
		modifier = mod
		pos = suffixEnd
	}

	pos = skipSpace(text, pos)
	if pos >= len(text) || text[pos] != '(' {
		return 0, false
	}
	pos = skipSpace(text, pos+1)
	if pos >= len(text) || !isQuote(text[pos]) {
		s.anomaly(ReasonDynamicLabel, start)
		return 0, false
	}

	var label strings.Builder
	at := pos
	for first := true; ; first = false {
		content, next, ok := readLiteral(text, at)
		if !ok {
			s.anomaly(ReasonUnterminatedLiteral, at)
			return 0, false
		}
		if calledOn(text, next) {
			// 'a'.toUpperCase(), 'a'[0]
			s.anomaly(ReasonDynamicLabel, start)
			if first {
				return 0, false
			}
			break
		}
		label.WriteString(content)
		pos = next

		after := skipSpace(text, pos)
		if after >= len(text) || text[after] != '+' {
			break
		}
		at = skipSpace(text, after+1)
		if at >= len(text) || !isQuote(text[at]) {
			s.anomaly(ReasonDynamicLabel, start)
			break
		}
	}

	s.add(domain.Declaration{
		Kind:     kw.kind,
		Label:    label.String(),
		Modifier: modifier,
		Line:     s.lineAt(start),
		Offset:   start,
	})
	return pos, true
}

func (s *labelScanner) add(decl domain.Declaration) {
	switch decl.Kind {
	case domain.KindSuite:
		s.record.Describe = append(s.record.Describe, decl.Label)
	case domain.KindCase:
		s.record.It = append(s.record.It, decl.Label)
	}
	s.record.Declarations = append(s.record.Declarations, decl)
}

func (s *labelScanner) anomaly(reason AnomalyReason, offset int) {
	s.anomalies = append(s.anomalies, Anomaly{Reason: reason, Line: s.lineAt(offset), Offset: offset})
}

// lineAt returns the 1-based line of offset
func (s *labelScanner) lineAt(offset int) int {
	return sort.SearchInts(s.newlines, offset) + 1
}

// readLiteral reads the quoted literal opening at text[open]. Quotes of the
// other kind are plain content and escapes are kept verbatim. A matching
// quote closes the literal when no backslash precedes it, or when an even
// run of backslashes precedes it and the argument visibly ends there
// (followed by ',', ')' or '+'). A quote after an odd run never closes.
func readLiteral(text string, open int) (content string, next int, ok bool) {
	quote := text[open]
	for i := open + 1; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			return "", 0, false
		}
		if c != quote || oddBackslashes(text, i) {
			continue
		}
		if text[i-1] != '\\' || endsArgument(text, i+1) {
			return text[open+1 : i], i + 1, true
		}
	}
	return "", 0, false
}

// oddBackslashes reports whether text[i] follows an odd run of backslashes,
// i.e. is escaped under JavaScript rules.
func oddBackslashes(text string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func endsArgument(text string, pos int) bool {
	pos = skipSpace(text, pos)
	if pos >= len(text) {
		return true
	}
	switch text[pos] {
	case ',', ')', '+':
		return true
	}
	return false
}

// calledOn reports whether the literal ending before pos is the receiver of
// a member access or index expression.
func calledOn(text string, pos int) bool {
	pos = skipSpace(text, pos)
	return pos < len(text) && (text[pos] == '.' || text[pos] == '[')
}

// memberAccess reports whether the identifier at start follows a '.', as in foo.it(...)
func memberAccess(text string, start int) bool {
	for i := start - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '.':
			return true
		default:
			return false
		}
	}
	return false
}

func skipSpace(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func identEnd(text string, pos int) int {
	for pos < len(text) && isIdentPart(text[pos]) {
		pos++
	}
	return pos
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
