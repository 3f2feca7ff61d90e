package skriptparse

import "strings"

// Pattern walker: the single source of truth for pattern syntax (spec.md
// §4.1). Every other component locates brackets, markers and alternation
// spans through these functions rather than re-deriving the grammar.

const escapeChars = `[](){}%<>\|`

// nextMatching returns the index in P of the close-bracket that balances
// open, searching from just after 'from'. A '\' consumes the next
// character unconditionally, the way koblas-swerver's balanced-match port
// walks a string looking for the outermost matching pair, except here the
// walk is escape-aware and bound to a single declared bracket kind per
// call instead of searching for both delimiters at once.
func nextMatching(p string, open, close byte, from int) (int, error) {
	depth := 1
	i := from + 1
	for i < len(p) {
		switch p[i] {
		case '\\':
			if i+1 >= len(p) {
				return 0, malformed(p, i, errDanglingEscape)
			}
			i += 2
			continue
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
		i++
	}
	return 0, malformed(p, from, errUnbalancedBracket)
}

// nextUnescaped returns the index of the next unescaped occurrence of c in
// p starting at from, or -1 if none exists.
func nextUnescaped(p string, c byte, from int) int {
	i := from
	for i < len(p) {
		if p[i] == '\\' {
			i += 2
			continue
		}
		if p[i] == c {
			return i
		}
		i++
	}
	return -1
}

// nextUnescapedQuote scans input starting at from for the next unescaped
// '"'. A `""` digraph is consumed as an embedded quote and does not
// terminate the region; it returns the index of the terminating quote, or
// -1 if the region never closes.
func nextUnescapedQuote(e string, from int) int {
	i := from
	for i < len(e) {
		if e[i] == '"' {
			if i+1 < len(e) && e[i+1] == '"' {
				i += 2
				continue
			}
			return i
		}
		i++
	}
	return -1
}

// splitAlternation returns the '|'-delimited spans [start,end) of the
// immediate alternation group whose body runs from j to end (exclusive of
// the enclosing parens); nested brackets are opaque to the split.
func splitAlternation(p string, j, end int) []span {
	var spans []span
	start := j
	i := j
	for i < end {
		switch p[i] {
		case '\\':
			i += 2
			continue
		case '(', '[', '<':
			close := byte(')')
			switch p[i] {
			case '[':
				close = ']'
			case '<':
				close = '>'
			}
			if ci, err := nextMatching(p, p[i], close, i); err == nil {
				i = ci + 1
				continue
			}
			i++
			continue
		case '|':
			spans = append(spans, span{start, i})
			start = i + 1
		}
		i++
	}
	spans = append(spans, span{start, end})
	return spans
}

type span struct {
	start, end int
}

func (s span) text(p string) string {
	return p[s.start:s.end]
}

// validatePattern checks the invariant spec.md §9 flags: a well-formed
// pattern must carry the same '%' placeholder count on every branch of
// every alternation group, since the slot index computed at bind time
// (strings.Count(P[:j], "%")/2) is only path-independent under that
// assumption. It also rejects the structural mistakes nextMatching/
// nextUnescaped already catch (a '[' or '(' without its closing bracket,
// dangling escapes, an odd total '%' count, unterminated '<' slots). A
// stray ']' or ')' with no opener is not rejected.
func validatePattern(p string) error {
	if strings.Count(p, "%")%2 != 0 {
		return malformed(p, strings.IndexByte(p, '%'), errUnterminatedVar)
	}
	return validateSpan(p, 0, len(p))
}

func validateSpan(p string, from, to int) error {
	i := from
	for i < to {
		switch p[i] {
		case '\\':
			if i+1 >= to {
				return malformed(p, i, errDanglingEscape)
			}
			i += 2
			continue
		case '[':
			ci, err := nextMatching(p, '[', ']', i)
			if err != nil {
				return err
			}
			if err := validateSpan(p, i+1, ci); err != nil {
				return err
			}
			i = ci + 1
			continue
		case '(':
			ci, err := nextMatching(p, '(', ')', i)
			if err != nil {
				return err
			}
			alts := splitAlternation(p, i+1, ci)
			var firstCount = -1
			for _, a := range alts {
				if err := validateSpan(p, a.start, a.end); err != nil {
					return err
				}
				count := strings.Count(p[a.start:a.end], "%")
				if firstCount == -1 {
					firstCount = count
				} else if count != firstCount {
					return malformed(p, i, "alternation branches bind a different number of placeholders")
				}
			}
			i = ci + 1
			continue
		case '<':
			ci := strings.IndexByte(p[i+1:], '>')
			if ci < 0 {
				return malformed(p, i, errUnterminatedRegex)
			}
			i = i + 1 + ci + 1
			continue
		case '%':
			ci := nextUnescaped(p, '%', i+1)
			if ci < 0 {
				return malformed(p, i, errUnterminatedVar)
			}
			i = ci + 1
			continue
		default:
			i++
		}
	}
	return nil
}
