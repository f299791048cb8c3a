package distaff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/distaff/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeCoerceError   = "coerce_error"
	CodeRequired      = "required"
	CodeInvalidEnum   = "invalid_enum"
	CodeUnknownKey    = "unknown_key"
	CodeUnknownType   = "unknown_type"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeSchemaError   = "schema_error"
)

// Issue is the flattened view of one accumulated failure: a JSON Pointer
// path, the stable issue code, the rendered message, and the raw parameters
// the message was built from. Produced by ErrorTree.Flatten; consumers
// branch on Code and render their own text from Params when the catalog
// message does not fit.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string
	Message string
	Params  map[string]string
}

// CoercionError reports that a value's runtime shape cannot become the
// type's native representation. It halts processing of the node it occurred
// at, never the whole pass.
type CoercionError struct {
	Code    string
	Message string
	Params  map[string]string
}

func (e *CoercionError) Error() string { return e.Message }

// NewCoercionError builds a CoercionError with a message rendered through the
// i18n catalog. data is retained so accumulated issues stay machine-readable.
func NewCoercionError(code string, data map[string]string) *CoercionError {
	return &CoercionError{Code: code, Message: i18n.T(code, data), Params: data}
}

// ValidationError reports that a (possibly coerced) value fails a declared
// constraint: required, native-type match, choices, or a type-specific check.
type ValidationError struct {
	Code    string
	Message string
	Params  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a message rendered through
// the i18n catalog. data is retained so accumulated issues stay machine-readable.
func NewValidationError(code string, data map[string]string) *ValidationError {
	return &ValidationError{Code: code, Message: i18n.T(code, data), Params: data}
}

// UnknownTypeError reports a schema naming an unregistered type tag. This is
// a programmer/schema error: it is never accumulated into an ErrorTree and
// propagates immediately, including out of nested compilation.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return "distaff: " + i18n.T(CodeUnknownType, map[string]string{"type": e.Tag})
}

// SchemaError reports that a schema document failed meta-schema validation.
// It is raised at compile time, before any data processing begins.
type SchemaError struct {
	Tree *ErrorTree
}

func (e *SchemaError) Error() string {
	return "distaff: " + i18n.T(CodeSchemaError, nil) + ": " + summarize(e.Tree)
}

// Error carries the full error tree out of fail-on-error entry points. The
// partial converted value remains available to callers via Result.
type Error struct {
	Tree *ErrorTree
}

func (e *Error) Error() string { return summarize(e.Tree) }

// AsError extracts *Error from an error chain using errors.As internally.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// summarize renders the first few flattened issues, e.g.
// "a value is required at /name; ... (total 4)".
func summarize(t *ErrorTree) string {
	if t == nil || t.Empty() {
		return ""
	}
	const maxShown = 3
	iss := t.Flatten()
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Message, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}
