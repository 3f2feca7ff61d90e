package skriptparse

// Candidate driver (spec.md §4.5): walks a registry's definitions in
// registration order, each definition's patterns in declared order,
// running the match engine and then the definition's own init hook.

// runExpressionSearch implements spec.md §4.5. It returns the first
// expression instance whose pattern matched and whose init accepted the
// bindings, the index of the pattern that matched, and the MatchResult
// that produced it. A non-nil error is a fatal author/API mistake that
// aborts the whole search immediately; a nil instance with a nil error
// means the search was exhausted (the caller should consult ep.best for
// the surfaced diagnostic, if any).
func runExpressionSearch(ep *ExprParser, defs []ExpressionDefinition) (ExpressionInstance, int, *MatchResult, error) {
	for _, def := range defs {
		for patIdx, pat := range def.Patterns() {
			ep.rt.Logger.Debugf("trying pattern %d of %d: %q", patIdx+1, len(def.Patterns()), pat)

			if err := validatePattern(pat); err != nil {
				return nil, 0, nil, err
			}

			result, err := matchPattern(ep, pat)
			if err != nil {
				return nil, 0, nil, err
			}
			if result == nil {
				if ep.best.quality == QualitySemantic {
					return nil, 0, nil, nil
				}
				continue
			}

			if err := fillDefaults(ep, pat, result); err != nil {
				return nil, 0, nil, err
			}

			inst := def.New()
			ep.rt.Sink.StartSub()
			accepted := inst.Init(result.Bindings, patIdx, result, ep.rt.Sink)
			if !accepted {
				if ep.rt.Sink.HasErrors() {
					msg := ep.rt.Sink.GetLastError()
					ep.rt.Sink.PrintLog()
					ep.best.record(QualitySemantic, msg)
					return nil, 0, nil, nil
				}
				ep.rt.Sink.StopSub()
				continue
			}
			ep.rt.Sink.PrintLog()
			return inst, patIdx, result, nil
		}
	}
	return nil, 0, nil, nil
}

// runEventSearch implements spec.md §4.7: identical to runExpressionSearch
// except parseStatic forces every placeholder to resolve as a literal,
// and the resulting bindings feed an EventInstance instead.
func runEventSearch(ep *ExprParser, defs []EventDefinition) (EventDefinition, EventInstance, int, *MatchResult, error) {
	for _, def := range defs {
		for patIdx, pat := range def.Patterns() {
			ep.rt.Logger.Debugf("trying event pattern %d of %d: %q", patIdx+1, len(def.Patterns()), pat)

			if err := validatePattern(pat); err != nil {
				return nil, nil, 0, nil, err
			}

			result, err := matchPattern(ep, pat)
			if err != nil {
				return nil, nil, 0, nil, err
			}
			if result == nil {
				if ep.best.quality == QualitySemantic {
					return nil, nil, 0, nil, nil
				}
				continue
			}

			if err := fillDefaults(ep, pat, result); err != nil {
				return nil, nil, 0, nil, err
			}

			inst := def.New()
			ep.rt.Sink.StartSub()
			accepted := inst.Init(result.Bindings, patIdx, result, ep.rt.Sink)
			if !accepted {
				if ep.rt.Sink.HasErrors() {
					msg := ep.rt.Sink.GetLastError()
					ep.rt.Sink.PrintLog()
					ep.best.record(QualitySemantic, msg)
					return nil, nil, 0, nil, nil
				}
				ep.rt.Sink.StopSub()
				continue
			}
			ep.rt.Sink.PrintLog()
			return def, inst, patIdx, result, nil
		}
	}
	return nil, nil, 0, nil, nil
}

// fillDefaults substitutes a registered default for every placeholder
// slot a successful match left unbound (spec.md §4.5 step 1's last
// bullet). Plurality/tense incompatibility between a pattern and its
// type's registered default is an API mistake, not a user error.
func fillDefaults(ep *ExprParser, pat string, result *MatchResult) error {
	varInfos, err := patternVarInfos(pat, ep.rt.Pluralize)
	if err != nil {
		return err
	}

	for idx, vi := range varInfos {
		if idx >= len(result.Bindings) || result.Bindings[idx].Bound() {
			continue
		}
		provider, ok := ep.rt.Types.DefaultFor(vi.TypeName)
		if !ok {
			return apiMisuse("no default registered for optional placeholder of type %q", vi.TypeName)
		}
		def, derr := provider.Init()
		if derr != nil {
			return apiMisuse("default for %q failed to initialize: %v", vi.TypeName, derr)
		}
		if !vi.IsPlural && !def.IsSingle() {
			return apiMisuse("default for %q is plural but its placeholder requires a single value", vi.TypeName)
		}
		if vi.Time != 0 && !def.SetTime(vi.Time) {
			return apiMisuse("default for %q does not support the requested tense", vi.TypeName)
		}
		result.Bindings[idx] = ExprSlot{Value: def}
	}
	return nil
}
