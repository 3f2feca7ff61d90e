package skriptparse

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Token match engine + pattern matcher (spec.md §4.2): a recursive
// backtracking driver over a single pattern against the input. matchAt
// mutates a shared matchState in place and restores it on backtrack,
// the same save/restore discipline the teacher's context.go uses around
// ctx.call/ctx.returns for its own callstack frames.

// matchState is the running state of one matchAt recursion tree: the
// mutable bindings/regexes/matchedChars a successful path builds, plus a
// bounded recursion depth counter (spec.md §9's "explicit stack... to
// keep depth bounded", implemented here as a counter since the call
// stack itself already bounds depth the same way).
type matchState struct {
	ep           *ExprParser
	bindings     []ExprSlot
	regexes      []RegexMatch
	matchedChars int
	depth        int
	spanScans    int
}

type matchSnapshot struct {
	bindings     []ExprSlot
	regexesLen   int
	matchedChars int
}

func newMatchState(ep *ExprParser, totalSlots int) *matchState {
	return &matchState{ep: ep, bindings: make([]ExprSlot, totalSlots)}
}

func (ms *matchState) snapshot() matchSnapshot {
	cp := make([]ExprSlot, len(ms.bindings))
	copy(cp, ms.bindings)
	return matchSnapshot{bindings: cp, regexesLen: len(ms.regexes), matchedChars: ms.matchedChars}
}

func (ms *matchState) restore(s matchSnapshot) {
	copy(ms.bindings, s.bindings)
	ms.regexes = ms.regexes[:s.regexesLen]
	ms.matchedChars = s.matchedChars
}

// matchPattern runs the match engine for one (pattern, input) pair,
// returning nil, nil on a clean dismatch and a non-nil MatchResult on a
// full pattern+input consumption (spec.md §3 invariant).
func matchPattern(ep *ExprParser, pattern string) (*MatchResult, error) {
	if len(ep.input) == 0 {
		return nil, malformed(pattern, 0, errEmptyInput.Error())
	}
	totalSlots := countPlaceholders(pattern)
	ms := newMatchState(ep, totalSlots)
	ok, err := matchAt(ms, 0, 0, pattern)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &MatchResult{
		Input:        ep.input,
		Bindings:     ms.bindings,
		Regexes:      ms.regexes,
		MatchedChars: ms.matchedChars,
	}, nil
}

func countPlaceholders(p string) int {
	n := 0
	for i := 0; i < len(p); i++ {
		if p[i] == '\\' {
			i++
			continue
		}
		if p[i] == '%' {
			n++
		}
	}
	return n / 2
}

// matchAt implements the pattern-head switch table of spec.md §4.2.
func matchAt(ms *matchState, i, j int, p string) (bool, error) {
	limit := ms.ep.rt.Limits.MaxDepth
	if limit > 0 && ms.depth >= limit {
		return false, errDepthOverflow
	}
	ms.depth++
	defer func() { ms.depth-- }()

	e := ms.ep.input

	if i == len(e) && j == len(p) {
		return true, nil
	}
	if j >= len(p) {
		return false, nil
	}

	switch p[j] {
	case '[':
		return matchOptional(ms, i, j, p)
	case '(':
		return matchAlternation(ms, i, j, p)
	case '%':
		return resolvePlaceholder(ms, i, j, p)
	case '<':
		return matchRegexSlot(ms, i, j, p)
	case ')', ']':
		return matchAt(ms, i, j+1, p)
	case '|':
		return matchAt(ms, i, skipToGroupEnd(p, j), p)
	case ' ':
		return matchSpace(ms, i, j, p)
	case '\\':
		if j+1 >= len(p) {
			return false, malformed(p, j, errDanglingEscape)
		}
		return matchLiteral(ms, i, j+1, p)
	default:
		return matchLiteral(ms, i, j, p)
	}
}

func matchOptional(ms *matchState, i, j int, p string) (bool, error) {
	close, err := nextMatching(p, '[', ']', j)
	if err != nil {
		return false, err
	}

	saved := ms.snapshot()
	ok, err := matchAt(ms, i, j+1, p)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	ms.restore(saved)

	next := close + 1
	precededByOpener := j == 0 || p[j-1] == ' ' || p[j-1] == '(' || p[j-1] == '['
	followedBySpace := next < len(p) && p[next] == ' '
	if precededByOpener && followedBySpace {
		next++
	}
	return matchAt(ms, i, next, p)
}

func matchAlternation(ms *matchState, i, j int, p string) (bool, error) {
	close, err := nextMatching(p, '(', ')', j)
	if err != nil {
		return false, err
	}

	alts := splitAlternation(p, j+1, close)
	for _, a := range alts {
		saved := ms.snapshot()
		ok, err := matchAt(ms, i, a.start, p)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		ms.restore(saved)
	}
	return false, nil
}

func skipToGroupEnd(p string, j int) int {
	i := j
	for i < len(p) {
		switch p[i] {
		case '\\':
			i += 2
			continue
		case '(', '[', '<':
			closeB := byte(')')
			switch p[i] {
			case '[':
				closeB = ']'
			case '<':
				closeB = '>'
			}
			if ci, err := nextMatching(p, p[i], closeB, i); err == nil {
				i = ci + 1
				continue
			}
			return i
		case ')':
			return i
		default:
			i++
		}
	}
	return i
}

func matchSpace(ms *matchState, i, j int, p string) (bool, error) {
	e := ms.ep.input
	if i >= len(e) || (i > 0 && e[i-1] == ' ') {
		return matchAt(ms, i, j+1, p)
	}
	if e[i] == ' ' {
		ms.matchedChars++
		return matchAt(ms, i+1, j+1, p)
	}
	return false, nil
}

func matchLiteral(ms *matchState, i, j int, p string) (bool, error) {
	e := ms.ep.input
	if i >= len(e) {
		return false, nil
	}

	pr, pw := utf8.DecodeRuneInString(p[j:])
	er, ew := utf8.DecodeRuneInString(e[i:])
	if !runeEqualFold(pr, er) {
		return false, nil
	}
	ms.matchedChars++
	return matchAt(ms, i+ew, j+pw, p)
}

func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// matchRegexSlot implements the '<' row of spec.md §4.2: try ascending
// input split points, recurse on the rest of the pattern, then fully
// match the regex source against the candidate span.
func matchRegexSlot(ms *matchState, i, j int, p string) (bool, error) {
	end := indexByteFrom(p, '>', j+1)
	if end < 0 {
		return false, malformed(p, j, errUnterminatedRegex)
	}
	source := p[j+1 : end]
	re, err := regexp.Compile(source)
	if err != nil {
		return false, malformed(p, j, "invalid regex slot: "+err.Error())
	}

	e := ms.ep.input
	for i2 := i + 1; i2 <= len(e); i2++ {
		if err := ms.countSpanScan(); err != nil {
			return false, err
		}

		saved := ms.snapshot()
		ok, err := matchAt(ms, i2, end+1, p)
		if err != nil {
			return false, err
		}
		if !ok {
			ms.restore(saved)
			continue
		}

		loc := re.FindStringSubmatchIndex(e[i:i2])
		if loc == nil || loc[0] != 0 || loc[1] != i2-i {
			ms.restore(saved)
			continue
		}
		groups := make([]string, 0, len(loc)/2)
		for g := 0; g < len(loc)/2; g++ {
			if loc[2*g] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, e[i:i2][loc[2*g]:loc[2*g+1]])
		}
		ms.regexes = append([]RegexMatch{{Groups: groups}}, ms.regexes...)
		return true, nil
	}
	return false, nil
}

func indexByteFrom(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func (ms *matchState) countSpanScan() error {
	limit := ms.ep.rt.Limits.MaxSpanScan
	if limit <= 0 {
		return nil
	}
	ms.spanScans++
	if ms.spanScans > limit {
		return errSpanScanOverflow
	}
	return nil
}
