package skriptparse

import "strings"

// Shared test doubles for the host-consumed interfaces (spec.md §6).
// Kept minimal: just enough behavior for each _test.go file to drive
// the engine without a real host application.

type fakeType struct {
	name string
}

func (t fakeType) Name() string { return t.name }

type fakeLiteral struct {
	raw    string
	single bool
}

func (f *fakeLiteral) IsSingle() bool            { return f.single }
func (f *fakeLiteral) SetTime(time int) bool     { return time == 0 }
func (f *fakeLiteral) GetConverted(TypeHandle) Expr { return nil }
func (f *fakeLiteral) String() string            { return f.raw }

type fakeRegistry struct {
	types    map[string]TypeHandle
	defaults map[string]DefaultProvider
	parse    func(lit *UnparsedLiteral, t TypeHandle) (TypedLiteral, bool)
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		types:    map[string]TypeHandle{},
		defaults: map[string]DefaultProvider{},
	}
}

func (r *fakeRegistry) withType(name string) *fakeRegistry {
	r.types[name] = fakeType{name: name}
	return r
}

func (r *fakeRegistry) withDefault(name string, p DefaultProvider) *fakeRegistry {
	r.defaults[name] = p
	return r
}

func (r *fakeRegistry) Lookup(name string) (TypeHandle, bool) {
	t, ok := r.types[name]
	return t, ok
}

func (r *fakeRegistry) DefaultFor(name string) (DefaultProvider, bool) {
	d, ok := r.defaults[name]
	return d, ok
}

func (r *fakeRegistry) ParseLiteral(lit *UnparsedLiteral, t TypeHandle) (TypedLiteral, bool) {
	if r.parse != nil {
		return r.parse(lit, t)
	}
	return &fakeLiteral{raw: strings.Join(lit.Parts, ", "), single: lit.IsSingle()}, true
}

type constDefault struct {
	expr Expr
}

func (d constDefault) Init() (Expr, error) { return d.expr, nil }

type fakeExprDef struct {
	patterns []string
	factory  func() ExpressionInstance
}

func (d *fakeExprDef) Patterns() []string         { return d.patterns }
func (d *fakeExprDef) New() ExpressionInstance     { return d.factory() }

type fakeInstance struct {
	name       string
	bindings   []ExprSlot
	patIdx     int
	rejectMsg  string // non-empty: Init logs this error and returns false
	silentFail bool   // Init returns false without logging
}

func (f *fakeInstance) Init(bindings []ExprSlot, patternIndex int, result *MatchResult, sink *Sink) bool {
	f.bindings = bindings
	f.patIdx = patternIndex
	if f.silentFail {
		return false
	}
	if f.rejectMsg != "" {
		sink.Error(f.rejectMsg)
		return false
	}
	return true
}

func (f *fakeInstance) IsSingle() bool              { return true }
func (f *fakeInstance) SetTime(time int) bool       { return time == 0 }
func (f *fakeInstance) GetConverted(TypeHandle) Expr { return f }
func (f *fakeInstance) String() string              { return f.name }

func testRuntime(types *fakeRegistry, vars []VariableDefinition) *Runtime {
	return NewRuntime(types, vars, func(name string) (string, bool) {
		return name, false
	})
}
