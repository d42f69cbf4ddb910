package resolve

import (
	"regexp"
	"strings"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// crossSheetRef matches a sheet-qualified reference: a quoted sheet name or
// a bare identifier, followed by "!" and an A1-style coordinate. Anchors are
// stripped before matching, so the patterns carry no $.
var crossSheetRef = regexp.MustCompile(`(?:'([^']+)'|([A-Za-z_][A-Za-z0-9_.]*))!([A-Za-z]{1,3}[0-9]+)`)

// sameSheetRef matches a bare coordinate left over after the cross-sheet pass.
var sameSheetRef = regexp.MustCompile(`\b([A-Za-z]{1,3}[0-9]+)\b`)

// Preprocess strips $ anchor markers and a single leading "=" from a formula.
// Applying it to already-clean input is a no-op.
func Preprocess(formula string) string {
	s := strings.TrimSpace(strings.ReplaceAll(formula, "$", ""))
	s = strings.TrimPrefix(s, "=")
	return strings.TrimSpace(s)
}

// Expand rewrites every cell reference in formula with its resolved text,
// preserving operators, literals and function names. sheet is the sheet the
// formula lives on; bare coordinates resolve against it.
func (r *Resolver) Expand(book, sheet, formula string) string {
	return r.expand(formula, book, sheet, make(pathSet), 0)
}

// expand runs two ordered substitution passes. Cross-sheet references go
// first: their coordinate portion would otherwise be picked up as a bare
// same-sheet token by the second pass.
func (r *Resolver) expand(formula, book, sheet string, visited pathSet, depth int) string {
	text := Preprocess(formula)
	replaced := 0

	text = substitute(text, crossSheetRef, func(m []string) string {
		replaced++
		name := m[1]
		if name == "" {
			name = m[2]
		}
		s, _ := r.resolve(models.NewCellAddress(book, name, m[3]), visited, depth+1)
		return s
	})

	text = substitute(text, sameSheetRef, func(m []string) string {
		replaced++
		s, _ := r.resolve(models.NewCellAddress(book, sheet, m[1]), visited, depth+1)
		return s
	})

	// A formula with no reference tokens passes through byte-identical.
	// Otherwise collapse the splice padding into single spaces.
	if replaced == 0 {
		return text
	}
	return strings.Join(strings.Fields(text), " ")
}

// substitute replaces every match of re in text with repl's output, padded
// with one space on each side. A match immediately followed by "(" is a
// function call such as LOG10(, not a reference, and is left alone.
func substitute(text string, re *regexp.Regexp, repl func(m []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if end < len(text) && text[end] == '(' {
			continue
		}
		m := make([]string, 0, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			if loc[i] < 0 {
				m = append(m, "")
			} else {
				m = append(m, text[loc[i]:loc[i+1]])
			}
		}
		b.WriteString(text[last:start])
		b.WriteByte(' ')
		b.WriteString(repl(m))
		b.WriteByte(' ')
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}
