package skriptparse

// Runtime bundles the registries and ambient services a parse attempt
// reads; spec.md §5 treats it as immutable for the duration of a call,
// and a host embedding this in a concurrent environment must give each
// parse its own ExprParser while serializing any registry mutation
// externally.
type Runtime struct {
	Types     TypeRegistry
	Variables []VariableDefinition
	Events    []EventDefinition

	// Pluralize splits a placeholder base name into its singular form
	// and a plurality flag (spec.md §3, "Placeholder name grammar").
	Pluralize func(name string) (base string, isPlural bool)

	Sink   *Sink
	Logger Logger
	Limits MatchLimits
}

// NewRuntime constructs a Runtime with the default MatchLimits and a
// default (non-debug) logger. Overwrite Limits afterward to customize or
// disable a bound (MatchLimits's zero value disables all three).
func NewRuntime(types TypeRegistry, variables []VariableDefinition, pluralize func(string) (string, bool)) *Runtime {
	return &Runtime{
		Types:     types,
		Variables: variables,
		Pluralize: pluralize,
		Sink:      NewSink(),
		Logger:    NewLogger(false),
		Limits:    DefaultMatchLimits(),
	}
}

// ExprParser is the per-attempt context spec.md §3 describes: the input
// being parsed, whether nested variable parsing is disabled (used for
// event headers, spec.md §4.7), and the best-error slot shared across
// the attempt. A fresh one is created per top-level parse request and
// per nested variable resolution (spec.md §4.4 step 1); it is destroyed
// when that request returns.
type ExprParser struct {
	rt          *Runtime
	input       string
	parseStatic bool
	best        bestError
}

func newExprParser(rt *Runtime, input string, parseStatic bool) *ExprParser {
	inner := &Runtime{
		Types:     rt.Types,
		Variables: rt.Variables,
		Events:    rt.Events,
		Pluralize: rt.Pluralize,
		Sink:      rt.Sink,
		Logger:    rt.Logger,
		Limits:    rt.Limits,
	}
	return &ExprParser{rt: inner, input: input, parseStatic: parseStatic}
}

// promote folds inner's best error into ep's when inner's quality
// strictly exceeds what ep already has (spec.md §4.4 step 3).
func (ep *ExprParser) promote(inner *ExprParser) {
	ep.best.record(inner.best.quality, inner.best.message)
}
