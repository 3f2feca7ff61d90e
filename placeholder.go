package skriptparse

import (
	"strconv"
	"strings"
)

// Placeholder resolution (spec.md §4.3–§4.4): parsing a '%...%' slot's
// VarInfo, choosing candidate right boundaries, and recursively parsing
// the chosen span as a sub-expression or literal.

// VarInfo describes one placeholder slot: the declared type name (after
// pluralization), whether the placeholder accepts a list, and the
// requested tense shift.
type VarInfo struct {
	TypeName string
	IsPlural bool
	Time     int
}

// parseVarInfo parses the "[-] baseName [ @ timeInt ]" grammar of
// spec.md §3 out of one placeholder's body text (the text between the
// two '%' markers, not including them).
func parseVarInfo(pattern string, at int, body string, pluralize func(string) (string, bool)) (VarInfo, bool, error) {
	optional := false
	rest := body
	if strings.HasPrefix(rest, "-") {
		optional = true
		rest = rest[1:]
	}

	time := 0
	name := rest
	if idx := strings.LastIndexByte(rest, '@'); idx >= 0 {
		name = rest[:idx]
		t, err := strconv.Atoi(rest[idx+1:])
		if err != nil {
			return VarInfo{}, false, malformed(pattern, at, "invalid @time suffix in placeholder")
		}
		time = t
	}

	base, isPlural := pluralize(name)
	return VarInfo{TypeName: base, IsPlural: isPlural, Time: time}, optional, nil
}

// patternVarInfos scans a whole pattern string linearly for its
// placeholder slots, independent of which alternation branch ultimately
// matches; validatePattern guarantees every branch carries the same
// placeholder count, so a left-to-right textual scan yields the same
// slot indexing the match engine computes at bind time.
func patternVarInfos(pattern string, pluralize func(string) (string, bool)) ([]VarInfo, error) {
	var infos []VarInfo
	i := 0
	for i < len(pattern) {
		switch pattern[i] {
		case '\\':
			i += 2
			continue
		case '%':
			end := nextUnescaped(pattern, '%', i+1)
			if end < 0 {
				return nil, malformed(pattern, i, errUnterminatedVar)
			}
			vi, _, err := parseVarInfo(pattern, i, pattern[i+1:end], pluralize)
			if err != nil {
				return nil, err
			}
			infos = append(infos, vi)
			i = end + 1
			continue
		default:
			i++
		}
	}
	return infos, nil
}

// resolvePlaceholder implements the '%' row of spec.md §4.2 together
// with §4.3: it locates the closing '%', computes VarInfo, then searches
// ascending candidate right boundaries, recursing into the rest of the
// pattern before committing to a boundary.
func resolvePlaceholder(ms *matchState, i, j int, p string) (bool, error) {
	end := nextUnescaped(p, '%', j+1)
	if end < 0 {
		return false, malformed(p, j, errUnterminatedVar)
	}

	vi, _, err := parseVarInfo(p, j, p[j+1:end], ms.ep.rt.Pluralize)
	if err != nil {
		return false, err
	}

	typeHandle, ok := ms.ep.rt.Types.Lookup(vi.TypeName)
	if !ok {
		return false, apiMisuse("unknown placeholder type %q", vi.TypeName)
	}

	e := ms.ep.input
	greedyFinal := end == len(p)-1

	i2 := i + 1
	if greedyFinal {
		i2 = len(e)
	} else if i < len(e) && e[i] == '"' {
		qend := nextUnescapedQuote(e, i+1)
		if qend < 0 {
			return false, nil
		}
		i2 = qend + 1
	}

	for i2 <= len(e) {
		if err := ms.countSpanScan(); err != nil {
			return false, err
		}

		candidate := i2
		if candidate < len(e) && e[candidate] == '"' {
			if qend := nextUnescapedQuote(e, candidate+1); qend >= 0 {
				candidate = qend + 1
			}
		}

		saved := ms.snapshot()
		matched, err := matchAt(ms, candidate, end+1, p)
		if err != nil {
			return false, err
		}

		if matched {
			v, notAVarMsg := resolveVar(ms.ep, typeHandle, e[i:candidate], vi)
			if v != nil {
				if !vi.IsPlural && !v.IsSingle() {
					ms.ep.best.record(QualitySemantic,
						"this expression can only accept a single "+vi.TypeName+", but multiple are given.")
					ms.restore(saved)
					return false, nil
				}
				if vi.Time != 0 && !v.SetTime(vi.Time) {
					ms.ep.best.record(QualitySemantic,
						vi.TypeName+" does not have a past/future state")
					ms.restore(saved)
					return false, nil
				}
				slot := strings.Count(p[:j], "%") / 2
				ms.bindings[slot] = ExprSlot{Value: v}
				return true, nil
			}

			if ms.matchedChars >= ms.ep.rt.Limits.MatchedCharsFloor {
				ms.ep.best.record(QualityNotAVariable, notAVarMsg)
			}
			ms.restore(saved)
		}

		if greedyFinal || candidate >= len(e) {
			break
		}
		i2 = candidate + 1
	}
	return false, nil
}

// resolveVar implements spec.md §4.4. It returns a resolved expression on
// success, or (nil, msg) where msg is the NOT_A_VARIABLE diagnostic the
// caller may choose to record once it has applied the matchedChars
// threshold (spec.md §4.3 step 4).
func resolveVar(ep *ExprParser, t TypeHandle, s string, vi VarInfo) (Expr, string) {
	var inner *ExprParser
	if !ep.parseStatic {
		inner = newExprParser(ep.rt, s, false)
		defs := expressionDefsFromVariables(ep.rt.Variables)
		found, _, _, _ := runExpressionSearch(inner, defs)
		if found != nil {
			if conv := found.GetConverted(t); conv != nil {
				ep.promote(inner)
				return conv, ""
			}
			inner.best.record(QualityWrongType, found.String()+" is not "+withArticle(t.Name()))
		}
	}

	lit, warnings := ParseLiteralList(s)
	for _, w := range warnings {
		ep.rt.Sink.Warning(w)
	}

	var converted Expr
	ok := false
	if IsUniversal(t) {
		converted, ok = lit, true
	} else {
		converted, ok = ep.rt.Types.ParseLiteral(lit, t)
	}

	if inner != nil {
		ep.promote(inner)
	}

	if ok {
		return converted, ""
	}
	if inner != nil && inner.best.has() {
		return nil, inner.best.message
	}
	return nil, "'" + s + "' is not " + withArticle(t.Name())
}

func expressionDefsFromVariables(vars []VariableDefinition) []ExpressionDefinition {
	out := make([]ExpressionDefinition, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}
