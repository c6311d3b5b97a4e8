package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specpath/internal/domain"
)

func TestExtractLabels(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		describe []string
		it       []string
	}{
		{
			name:     "single suite and case",
			text:     `describe('s1', function() { it('d1', function() {}); });`,
			describe: []string{"s1"},
			it:       []string{"d1"},
		},
		{
			name:     "arrow functions and double quotes",
			text:     `describe("s1", () => { it("d1", () => {}) })`,
			describe: []string{"s1"},
			it:       []string{"d1"},
		},
		{
			name:     "cases inside and after a suite",
			text:     `describe('s3', function() { it('d3.1', function() {}); }); it('d3.2', function() {}); });`,
			describe: []string{"s3"},
			it:       []string{"d3.1", "d3.2"},
		},
		{
			name:     "escaped single quotes are kept",
			text:     `describe('\'s4\'', function() { it('\'d4\'', function() {}); });`,
			describe: []string{`\'s4\'`},
			it:       []string{`\'d4\'`},
		},
		{
			name:     "escaped double quotes are kept",
			text:     `describe('\"s5\"', function() { it('\"d5\"', function() {}); });`,
			describe: []string{`\"s5\"`},
			it:       []string{`\"d5\"`},
		},
		{
			name:     "mixed quotes and backslashes",
			text:     `describe('s6"\\'\\'"', function() { it('d6"\\'\\'"', function() {}); });`,
			describe: []string{`s6"\\'\\'"`},
			it:       []string{`d6"\\'\\'"`},
		},
		{
			name:     "single quotes inside a double-quoted label",
			text:     `describe("it's", () => { it("can't fail", () => {}) })`,
			describe: []string{"it's"},
			it:       []string{"can't fail"},
		},
		{
			name:     "skip modifiers",
			text:     `describe.skip('s8', function() { it.skip('d8', function() {}); });`,
			describe: []string{"s8"},
			it:       []string{"d8"},
		},
		{
			name: "prefix and suffix modifiers",
			text: `describe('s9', function() { xit('d9.1', function() {}); });` +
				`describe('s9.2', function() { it.skip('d9.2', function() {}); });` +
				`describe('s9.3', function() { xit('d9.3', function() {}); });` +
				`describe('s9.4', function() { describe.skip('s9.4.1'+'text', function() { ` +
				`fit('d9.4.1'+'text', function() {}); }); });`,
			describe: []string{"s9", "s9.2", "s9.3", "s9.4", "s9.4.1text"},
			it:       []string{"d9.1", "d9.2", "d9.3", "d9.4.1text"},
		},
		{
			name:     "focus modifiers",
			text:     `fdescribe('a', () => { it.only('b', () => {}); xdescribe('c', () => {}) })`,
			describe: []string{"a", "c"},
			it:       []string{"b"},
		},
		{
			name:     "concatenation across lines",
			text:     "describe('part one, ' +\n  \"part two\" + 'three', () => {})",
			describe: []string{"part one, part twothree"},
			it:       []string{},
		},
		{
			name:     "no declarations",
			text:     `const answer = 42;`,
			describe: []string{},
			it:       []string{},
		},
		{
			name: "comments and unrelated strings are skipped",
			text: `// describe('commented', () => {})
/* it('block commented') */
const s = "describe('in a string')";
describe('real', () => { it('case', () => {}) })`,
			describe: []string{"real"},
			it:       []string{"case"},
		},
		{
			name:     "template ending in an escaped backslash",
			text:     "const p = `C:\\\\`;\ndescribe('after template', () => { it('x', () => {}) })",
			describe: []string{"after template"},
			it:       []string{"x"},
		},
		{
			name:     "string ending in an escaped backslash",
			text:     `const sep = '\\'; describe("after string", () => {})`,
			describe: []string{"after string"},
			it:       []string{},
		},
		{
			name:     "label ending in an escaped backslash",
			text:     `it('ends with backslash \\', () => {}); it("next", () => {})`,
			describe: []string{},
			it:       []string{`ends with backslash \\`, "next"},
		},
		{
			name:     "member calls and look-alike identifiers are ignored",
			text:     `foo.it('x'); audit('y'); describe.each('z'); describer('w'); it ('spaced', () => {})`,
			describe: []string{},
			it:       []string{"spaced"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, _ := ExtractLabels(tt.text)
			assert.Equal(t, tt.describe, record.Describe)
			assert.Equal(t, tt.it, record.It)
		})
	}
}

func TestExtractLabels_DocumentOrder(t *testing.T) {
	text := `describe('s7', function() { it('d7.1', function() {}); });` +
		`describe('s7.2', function() { it('d7.2', function() {}); });` +
		`describe('s7.3', function() { it('d7.3', function() {}); });` +
		`describe('s7.4', function() { describe('s7.4.1', function() { ` +
		`it('d7.4.1', function() {}); }); });`

	record, anomalies := ExtractLabels(text)
	assert.Empty(t, anomalies)
	assert.Equal(t, []string{"s7", "s7.2", "s7.3", "s7.4", "s7.4.1"}, record.Describe)
	assert.Equal(t, []string{"d7.1", "d7.2", "d7.3", "d7.4.1"}, record.It)
}

func TestExtractLabels_Declarations(t *testing.T) {
	text := "describe('suite', () => {\n" +
		"  it('first', () => {})\n" +
		"\n" +
		"  xit('second', () => {})\n" +
		"})\n"

	record, _ := ExtractLabels(text)
	require.Len(t, record.Declarations, 3)

	assert.Equal(t, domain.Declaration{Kind: domain.KindSuite, Label: "suite", Line: 1, Offset: 0}, record.Declarations[0])
	assert.Equal(t, domain.KindCase, record.Declarations[1].Kind)
	assert.Equal(t, 2, record.Declarations[1].Line)
	assert.Equal(t, "", record.Declarations[1].Modifier)
	assert.Equal(t, 4, record.Declarations[2].Line)
	assert.Equal(t, "skip", record.Declarations[2].Modifier)
}

func TestExtractLabels_Anomalies(t *testing.T) {
	t.Run("unterminated literal", func(t *testing.T) {
		record, anomalies := ExtractLabels("describe('open, () => {\n  it('ok', () => {})\n})")
		require.NotEmpty(t, anomalies)
		assert.Equal(t, ReasonUnterminatedLiteral, anomalies[0].Reason)
		assert.Equal(t, 1, anomalies[0].Line)
		assert.Equal(t, []string{}, record.Describe)
		assert.Equal(t, []string{"ok"}, record.It)
	})

	t.Run("dynamic label", func(t *testing.T) {
		record, anomalies := ExtractLabels("it(name, () => {}); it('prefix ' + name, () => {})")
		require.Len(t, anomalies, 2)
		assert.Equal(t, ReasonDynamicLabel, anomalies[0].Reason)
		assert.Equal(t, []string{"prefix "}, record.It)
	})

	t.Run("unterminated comment", func(t *testing.T) {
		record, anomalies := ExtractLabels("it('a', () => {}) /* it('b')")
		require.Len(t, anomalies, 1)
		assert.Equal(t, ReasonUnterminatedComment, anomalies[0].Reason)
		assert.Equal(t, []string{"a"}, record.It)
	})

	t.Run("unterminated template", func(t *testing.T) {
		record, anomalies := ExtractLabels("it('a', () => {})\nconst t = `open")
		require.Len(t, anomalies, 1)
		assert.Equal(t, ReasonUnterminatedLiteral, anomalies[0].Reason)
		assert.Equal(t, 2, anomalies[0].Line)
		assert.Equal(t, []string{"a"}, record.It)
	})

	t.Run("method call on a concatenated literal", func(t *testing.T) {
		record, anomalies := ExtractLabels("describe('a' + 'b'.toUpperCase(), () => { it('c', () => {}) })")
		require.Len(t, anomalies, 1)
		assert.Equal(t, ReasonDynamicLabel, anomalies[0].Reason)
		assert.Equal(t, []string{"a"}, record.Describe)
		assert.Equal(t, []string{"c"}, record.It)
	})

	t.Run("method call on the only literal", func(t *testing.T) {
		record, anomalies := ExtractLabels("it('x'.repeat(2), () => {}); it('y'[0], () => {}); it('z', () => {})")
		require.Len(t, anomalies, 2)
		assert.Equal(t, []string{"z"}, record.It)
	})

	t.Run("empty text", func(t *testing.T) {
		record, anomalies := ExtractLabels("")
		assert.Empty(t, anomalies)
		assert.Equal(t, domain.NewTestFileRecord(), record)
	})
}
