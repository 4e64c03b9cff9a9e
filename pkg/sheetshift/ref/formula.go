package ref

import (
	"strings"

	"github.com/xuri/efp"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
)

// Token is one reference found in a formula.
type Token struct {
	Text string
	Area ReferenceArea
}

// Formula is a formula split into references and the literal text around
// them. Segments always has exactly one more element than Tokens.
type Formula struct {
	Segments []string
	Tokens   []Token
}

// String reassembles the original formula text.
func (f Formula) String() string {
	return f.Rewrite(func(t Token) string { return t.Text })
}

// Rewrite reassembles the formula with each reference replaced by fn's result.
func (f Formula) Rewrite(fn func(Token) string) string {
	var b strings.Builder
	for i, seg := range f.Segments {
		b.WriteString(seg)
		if i < len(f.Tokens) {
			b.WriteString(fn(f.Tokens[i]))
		}
	}
	return b.String()
}

// Split extracts every reference in formula written in notation n. Text in
// string literals and A1 structured-reference brackets is never matched, and
// a candidate followed by a name character or "(" (a function name such as
// LOG10) is not a reference.
func Split(formula string, n coord.Notation) Formula {
	var f Formula
	segStart := 0
	for i := 0; i < len(formula); {
		c := formula[i]
		switch {
		case c == '"':
			i = skipString(formula, i)
			continue
		case c == '[' && n == coord.NotationA1:
			i = skipBrackets(formula, i)
			continue
		case !atWordStart(formula, i):
			i++
			continue
		}

		ra, end, ok := scanQualified(formula, i, n)
		if !ok || !atWordEnd(formula, end) {
			i++
			continue
		}
		f.Segments = append(f.Segments, formula[segStart:i])
		f.Tokens = append(f.Tokens, Token{Text: formula[i:end], Area: ra})
		segStart, i = end, end
	}
	f.Segments = append(f.Segments, formula[segStart:])
	return f
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	p := s[i-1]
	return !coord.IsNameChar(p) && p != '$' && p != '!' && p != '#' && p != '\''
}

func atWordEnd(s string, i int) bool {
	if i == len(s) {
		return true
	}
	c := s[i]
	return !coord.IsNameChar(c) && c != '(' && c != '!' && c != '$' && c != '[' && c != '\''
}

// skipString returns the index after the string literal starting at s[i].
func skipString(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		if s[j] != '"' {
			continue
		}
		if j+1 < len(s) && s[j+1] == '"' {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

func skipBrackets(s string, i int) int {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	return len(s)
}

// Operands lists the range operands of an A1 formula as reported by the
// efp formula tokenizer, in order of appearance.
func Operands(formula string) []string {
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}
	ps := efp.ExcelParser()
	var operands []string
	for _, token := range ps.Parse(formula) {
		if token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeRange {
			operands = append(operands, token.TValue)
		}
	}
	return operands
}
