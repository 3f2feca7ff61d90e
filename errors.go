package skriptparse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel, parameter-free errors in the teacher's errorf style: cheap to
// compare, reused across many call sites.
var (
	errEmptyInput       = errorf("patterns may not match the empty string")
	errDepthOverflow    = errorf("match recursion depth limit reached")
	errSpanScanOverflow = errorf("placeholder span scan limit reached")
)

// Reason strings for MalformedPatternError, shared across pattern.go,
// matcher.go and placeholder.go so every bracket/escape/slot mistake is
// reported with the same wording regardless of which walker found it.
const (
	errUnbalancedBracket = "unbalanced bracket"
	errDanglingEscape    = "dangling escape at end of pattern"
	errUnterminatedRegex = "unterminated '<' regex slot, missing '>'"
	errUnterminatedVar   = "unterminated '%' placeholder, missing closing '%'"
)

type skriptparseError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &skriptparseError{fmt.Sprintf(format, v...)}
}

func (err *skriptparseError) Error() string {
	return "skriptparse: " + err.value
}

// MalformedPatternError reports a syntax mistake in a registered pattern
// string: unbalanced brackets, a dangling escape, an odd count of '%', or
// a missing '>'. These are author errors in registered patterns, not user
// input errors, and are always surfaced distinct from the error-quality
// ranking (spec.md §7.1).
type MalformedPatternError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

func malformed(pattern string, offset int, reason string) error {
	return errors.WithStack(&MalformedPatternError{Pattern: pattern, Offset: offset, Reason: reason})
}

// APIMisuseError is fatal and propagated to the host: a pattern requests an
// optional placeholder whose registered default is missing or incompatible
// with the declared plurality/tense, or a placeholder names a type the
// TypeRegistry does not know. It is never part of the error-quality
// ranking; errors logged by a definition's init() are ranked as
// SEMANTIC_ERROR instead.
type APIMisuseError struct {
	Reason string
}

func (e *APIMisuseError) Error() string {
	return "api misuse: " + e.Reason
}

func apiMisuse(format string, v ...interface{}) error {
	return errors.WithStack(&APIMisuseError{Reason: fmt.Sprintf(format, v...)})
}

// withArticle prefixes name with "a" or "an" per its leading sound, for
// "'%s' is not %s"-style diagnostics (spec.md §8, "is not an entity type").
func withArticle(name string) string {
	if name == "" {
		return "a " + name
	}
	if strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}
