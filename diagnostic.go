package skriptparse

// Quality is the totally ordered error-quality tag of spec.md §3,
// low -> high: NONE < NOT_A_VARIABLE < VARIABLE_OF_WRONG_TYPE < SEMANTIC_ERROR.
type Quality int

const (
	QualityNone Quality = iota
	QualityNotAVariable
	QualityWrongType
	QualitySemantic
)

// bestError is the shared best-error slot passed by reference across
// nested parser contexts (spec.md §9, "Shared best-error slot"). A
// candidate-match error replaces it only if its quality is strictly
// greater than the current quality; ties keep the earliest winner.
type bestError struct {
	message string
	quality Quality
}

// record raises the slot's error if msg's quality strictly exceeds what
// is already recorded. Reports whether it replaced the slot.
func (b *bestError) record(quality Quality, msg string) bool {
	if quality > b.quality {
		b.quality = quality
		b.message = msg
		return true
	}
	return false
}

func (b *bestError) has() bool {
	return b.quality > QualityNone
}

// Sink collects scoped warnings/errors accumulated during one parse
// attempt (spec.md §6). Sub-scopes let a nested parse (placeholder
// resolution, variable parsing) buffer its own diagnostics and have the
// caller decide whether to keep or discard them.
type Sink struct {
	stack [][]logLine
}

type logLine struct {
	isError bool
	message string
}

// NewSink creates a diagnostic sink with one open top-level scope.
func NewSink() *Sink {
	return &Sink{stack: [][]logLine{nil}}
}

// StartSub opens a nested scope; its lines are independent of the parent's
// until the caller merges them (PrintLog) or discards them (StopSub).
func (s *Sink) StartSub() {
	s.stack = append(s.stack, nil)
}

// StopSub discards the most recently opened scope without merging it.
func (s *Sink) StopSub() {
	if len(s.stack) <= 1 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// PrintLog merges the most recently opened scope's lines into its parent
// and closes the scope.
func (s *Sink) PrintLog() {
	if len(s.stack) <= 1 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	parent := len(s.stack) - 1
	s.stack[parent] = append(s.stack[parent], top...)
}

// Warning appends a warning line to the current scope.
func (s *Sink) Warning(msg string) {
	s.append(logLine{isError: false, message: msg})
}

// Error appends an error line to the current scope.
func (s *Sink) Error(msg string) {
	s.append(logLine{isError: true, message: msg})
}

func (s *Sink) append(line logLine) {
	top := len(s.stack) - 1
	s.stack[top] = append(s.stack[top], line)
}

// HasErrors reports if the current scope holds at least one error line.
func (s *Sink) HasErrors() bool {
	for _, l := range s.stack[len(s.stack)-1] {
		if l.isError {
			return true
		}
	}
	return false
}

// GetLastError returns the most recent error line in the current scope,
// or "" if none was recorded.
func (s *Sink) GetLastError() string {
	lines := s.stack[len(s.stack)-1]
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].isError {
			return lines[i].message
		}
	}
	return ""
}

// PrintErrors returns every error line in the current scope, or defaultMsg
// if none was recorded (nothing is written anywhere).
func (s *Sink) PrintErrors(defaultMsg string) []string {
	var out []string
	for _, l := range s.stack[len(s.stack)-1] {
		if l.isError {
			out = append(out, l.message)
		}
	}
	if len(out) == 0 && defaultMsg != "" {
		out = append(out, defaultMsg)
	}
	return out
}

// Snapshot returns an immutable copy of the current scope's buffered
// lines, useful for host-side assertions and for mirroring into Logger
// without coupling the two types together.
func (s *Sink) Snapshot() []string {
	lines := s.stack[len(s.stack)-1]
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.message
	}
	return out
}
