package skriptparse

// This file declares the interfaces consumed from the host application
// (spec.md §6, "Consumed from the host"). No concrete implementation
// ships in this module: registries of expression/event/variable/literal
// definitions, the semantics of the produced expressions, and default
// value providers are all out of scope (spec.md §1).

// TypeHandle identifies a host-registered expression type.
type TypeHandle interface {
	// Name is the type's script-facing name, used in diagnostics such as
	// "'%s' is not a %s".
	Name() string
}

// TypeRegistry resolves a placeholder's declared type name and looks up
// the default-value provider registered for it, if any.
type TypeRegistry interface {
	Lookup(typeName string) (TypeHandle, bool)
	DefaultFor(typeName string) (DefaultProvider, bool)

	// ParseLiteral attempts to convert an UnparsedLiteral into t's typed
	// form (spec.md §4.4 step 2's literal fallback), returning false if
	// the parts don't parse as that type.
	ParseLiteral(lit *UnparsedLiteral, t TypeHandle) (TypedLiteral, bool)
}

// DefaultProvider constructs the implicit value substituted for an absent
// optional placeholder.
type DefaultProvider interface {
	Init() (Expr, error)
}

// Expr is a resolved sub-expression bound to a placeholder.
type Expr interface {
	// IsSingle reports whether this expression yields a single value, as
	// opposed to a list (spec.md §4.3 plurality enforcement).
	IsSingle() bool

	// SetTime requests a tense shift (-1 past, 0 present, +1 future) and
	// reports whether the expression supports that tense.
	SetTime(time int) bool

	// GetConverted attempts to view this expression as the given type,
	// returning nil if no such conversion exists.
	GetConverted(t TypeHandle) Expr

	// String renders a human-readable form for diagnostics.
	String() string
}

// TypedLiteral is the typed conversion of an UnparsedLiteral (spec.md
// §4.4 step 2, §4.6).
type TypedLiteral interface {
	Expr
}

// MatchResult is the result of a successful pattern match (spec.md §3).
type MatchResult struct {
	Input string

	// Bindings has length (# of '%' in the pattern)/2; entries have a nil
	// Value for placeholders not yet resolved to a default.
	Bindings []ExprSlot

	// Regexes holds the raw regex submatches in source-pattern order.
	Regexes []RegexMatch

	// MatchedChars counts literal characters consumed; a heuristic used
	// purely for error-quality gating (spec.md §4.3).
	MatchedChars int
}

// RegexMatch is one `<...>` slot's match result against its input span.
type RegexMatch struct {
	Groups []string
}

// ExprSlot is a resolved binding: either a sub-expression (Value != nil)
// or an unbound optional placeholder awaiting a default.
type ExprSlot struct {
	Value Expr
}

// Bound reports whether this slot already carries a resolved expression.
func (s ExprSlot) Bound() bool {
	return s.Value != nil
}

// ExpressionInstance is produced by an ExpressionDefinition's factory and
// completes construction via Init once the pattern driver has resolved
// every binding (spec.md §4.5).
type ExpressionInstance interface {
	// Init finalizes construction; patternIndex identifies which of the
	// definition's patterns matched. Returning false silently rejects the
	// candidate unless the instance also logged errors to the sink, in
	// which case the driver raises SEMANTIC_ERROR and aborts the search.
	Init(bindings []ExprSlot, patternIndex int, result *MatchResult, sink *Sink) bool

	Expr
}

// ExpressionDefinition is a host-registered extension: one or more
// patterns in declared order, and a factory producing a fresh instance
// per match attempt.
type ExpressionDefinition interface {
	Patterns() []string
	New() ExpressionInstance
}

// VariableDefinition is consumed by nested variable resolution (spec.md
// §4.4 step 1): the registry of candidates tried when a placeholder span
// is parsed recursively as a script variable rather than a literal.
type VariableDefinition interface {
	ExpressionDefinition
}

// EventInstance is the event-header counterpart of ExpressionInstance
// (spec.md §4.7): bindings are typed as literals rather than
// recursively-parsed expressions.
type EventInstance interface {
	Init(bindings []ExprSlot, patternIndex int, result *MatchResult, sink *Sink) bool
}

// EventDefinition is a host-registered event header: the same pattern/
// factory shape as ExpressionDefinition but producing an EventInstance.
type EventDefinition interface {
	Patterns() []string
	New() EventInstance
}

// UniversalType is the well-known type handle meaning "accept any literal
// as-is without a typed conversion" (spec.md §4.4 step 2).
var UniversalType TypeHandle = universalType{}

type universalType struct{}

func (universalType) Name() string { return "object" }

// IsUniversal reports whether t is the universal type handle.
func IsUniversal(t TypeHandle) bool {
	_, ok := t.(universalType)
	return ok
}
