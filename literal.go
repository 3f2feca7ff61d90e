package skriptparse

import (
	"regexp"
	"strings"
)

// Literal list parser (spec.md §4.6): splits a leaf substring into an
// ordered list of trimmed, optionally-dequoted parts with an and/or
// conjunction flag, warning when the input's separators are ambiguous.

// literalSeparator matches one list separator anchored at the scan
// cursor: a bare comma run, an "and" conjunction with an optional
// leading comma, or an "or"/"nor" conjunction with an optional leading
// comma. Quoted regions are skipped by the caller before this is ever
// tested, so it never needs to reason about them itself.
var literalSeparator = regexp.MustCompile(`(?i)^(,\s*|,?\s+and\s+|,?\s+n?or\s+)`)

// UnparsedLiteral is a leaf value pending later conversion to a typed
// literal: a list of trimmed strings plus a boolean and/or flag.
type UnparsedLiteral struct {
	Parts []string
	IsAnd bool
}

// IsSingle reports whether the literal has exactly one part.
func (u *UnparsedLiteral) IsSingle() bool {
	return len(u.Parts) <= 1
}

// SetTime is meaningless for an unparsed literal; it never has a
// past/future state.
func (u *UnparsedLiteral) SetTime(time int) bool {
	return time == 0
}

// GetConverted has no generic conversion for an unparsed literal; typed
// conversion happens through TypeRegistry.ParseLiteral instead.
func (u *UnparsedLiteral) GetConverted(TypeHandle) Expr {
	return nil
}

func (u *UnparsedLiteral) String() string {
	conj := "and"
	if !u.IsAnd {
		conj = "or"
	}
	return strings.Join(u.Parts, ", ") + " (" + conj + ")"
}

// ParseLiteralList splits s into an UnparsedLiteral, returning any
// warnings the spec's ambiguity rules produce.
func ParseLiteralList(s string) (*UnparsedLiteral, []string) {
	var parts []string
	conj := ""
	multiConj := false
	sawBareComma := false

	i, start := 0, 0
	for i < len(s) {
		if s[i] == '"' {
			end := nextUnescapedQuote(s, i+1)
			if end < 0 {
				i = len(s)
				break
			}
			i = end + 1
			continue
		}

		if loc := literalSeparator.FindStringIndex(s[i:]); loc != nil {
			parts = append(parts, dequote(strings.TrimSpace(s[start:i])))

			kind := conjunctionKind(s[i : i+loc[1]])
			switch {
			case kind == "":
				sawBareComma = true
			case conj == "":
				conj = kind
			case conj != kind:
				multiConj = true
			}

			i += loc[1]
			start = i
			continue
		}
		i++
	}
	parts = append(parts, dequote(strings.TrimSpace(s[start:])))

	var warnings []string
	isAnd := true
	switch {
	case multiConj:
		warnings = append(warnings, "list has multiple 'and' or 'or', will default to 'and'")
	case conj == "or":
		isAnd = false
	case conj == "and":
		isAnd = true
	case sawBareComma:
		warnings = append(warnings, "list is missing 'and' or 'or', will default to 'and'")
	}

	return &UnparsedLiteral{Parts: parts, IsAnd: isAnd}, warnings
}

func conjunctionKind(sep string) string {
	lower := strings.ToLower(sep)
	if strings.Contains(lower, "and") {
		return "and"
	}
	if strings.Contains(lower, "or") {
		return "or"
	}
	return ""
}

func dequote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}
	return s
}
