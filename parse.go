package skriptparse

// Public entry points (spec.md §6, "Exposed"): the only surface a host
// calls directly. Everything else in this package is reachable only
// through these three operations or through nested variable resolution.
// On failure, the chosen diagnostic (the attempt's best recorded error,
// or defaultError if none was recorded) is pushed to the runtime's Sink
// as an error line rather than returned, matching how init() hooks
// already report through the same sink.

// ParseExpression searches candidates in order for one whose pattern
// matches input (spec.md §4.5). If none match and allowLiteralFallback is
// set, input is parsed as an untyped literal list and returned as-is.
func (rt *Runtime) ParseExpression(input string, candidates []ExpressionDefinition, allowLiteralFallback bool, defaultError string) Expr {
	ep := newExprParser(rt, input, false)

	inst, _, _, err := runExpressionSearch(ep, candidates)
	if err != nil {
		rt.Sink.Error(err.Error())
		return nil
	}
	if inst != nil {
		return inst
	}

	if allowLiteralFallback {
		lit, warnings := ParseLiteralList(input)
		for _, w := range warnings {
			rt.Sink.Warning(w)
		}
		return lit
	}

	rt.Sink.Error(ep.LastError(defaultError))
	return nil
}

// ParseLiteral parses input as a literal list and converts it to t's
// typed form via the host's TypeRegistry, returning nil if the parts
// don't parse as that type.
func (rt *Runtime) ParseLiteral(input string, t TypeHandle) TypedLiteral {
	lit, warnings := ParseLiteralList(input)
	for _, w := range warnings {
		rt.Sink.Warning(w)
	}
	if IsUniversal(t) {
		return lit
	}
	converted, ok := rt.Types.ParseLiteral(lit, t)
	if !ok {
		rt.Sink.Error("'" + input + "' is not " + withArticle(t.Name()))
		return nil
	}
	return converted
}

// ParseEvent searches rt.Events for an event header matching input
// (spec.md §4.7): parseStatic is forced true, so every placeholder
// resolves as a literal rather than a nested expression.
func (rt *Runtime) ParseEvent(input string, defaultError string) (EventDefinition, EventInstance) {
	ep := newExprParser(rt, input, true)

	def, inst, _, _, err := runEventSearch(ep, rt.Events)
	if err != nil {
		rt.Sink.Error(err.Error())
		return nil, nil
	}
	if inst != nil {
		return def, inst
	}

	rt.Sink.Error(ep.LastError(defaultError))
	return nil, nil
}

// LastError renders ep's best recorded diagnostic, falling back to
// defaultMsg when nothing was recorded (spec.md §7).
func (ep *ExprParser) LastError(defaultMsg string) string {
	if ep.best.has() {
		return ep.best.message
	}
	return defaultMsg
}
