// Package errors defines the validation findings returned by the
// pattern/walker automaton. Errors are reported as data, never raised:
// a walker that reports an error remains usable for subsequent events.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of validation or schema-loading failure.
type ErrorCode string

const (
	// ErrSchemaNotLoaded indicates a walker was requested from a nil/unloaded schema.
	ErrSchemaNotLoaded ErrorCode = "rng-schema-not-loaded"
	// ErrSchemaFormat indicates an unsupported or malformed JSON schema envelope.
	ErrSchemaFormat ErrorCode = "rng-schema-format"
	// ErrRef indicates a dangling ref with no matching define, raised by the loader.
	ErrRef ErrorCode = "rng-dangling-ref"
	// ErrXMLParse indicates the instance document is not well-formed XML.
	ErrXMLParse ErrorCode = "rng-xml-parse"

	// ErrElementName indicates an element name is not in the expected name class.
	ErrElementName ErrorCode = "rng-element-name"
	// ErrAttributeName indicates an attribute name is not in the expected name class.
	ErrAttributeName ErrorCode = "rng-attribute-name"
	// ErrAttributeValue indicates an attribute value failed its datatype.
	ErrAttributeValue ErrorCode = "rng-attribute-value"
	// ErrChoice indicates no branch of a choice pattern accepted the event.
	ErrChoice ErrorCode = "rng-choice"
	// ErrValidation is the generic catch-all, e.g. an unexpected close tag.
	ErrValidation ErrorCode = "rng-validation"

	// ErrParameterParsing indicates a datatype facet combination is invalid (schema-time).
	ErrParameterParsing ErrorCode = "rng-parameter-parsing"
	// ErrValueValidation indicates an instance value failed a datatype (instance-time).
	ErrValueValidation ErrorCode = "rng-value-validation"
)

// Validation describes a single validation finding with a stable code,
// a human message, and optional instance-path/line-column context.
type Validation struct {
	Code     string
	Message  string
	Path     string
	Actual   string
	Expected []string
	Line     int
	Column   int
}

// ValidationList is an error wrapping zero or more Validation findings.
type ValidationList []Validation

// Error joins every finding on its own line, since a caller driving an
// editor's squiggles off this list wants all of them, not a truncated
// count of how many it didn't bother to show.
func (v ValidationList) Error() string {
	if len(v) == 0 {
		return "no validation errors"
	}
	lines := make([]string, len(v))
	for i := range v {
		lines[i] = v[i].Error()
	}
	return strings.Join(lines, "\n")
}

// OrNil returns the list as an error, or nil when it is empty. Walker
// methods that either "can end" or return findings use this to produce
// the `false | ValidationError[]` shape from spec in idiomatic Go.
func (v ValidationList) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// location renders path/line/column the way a compiler diagnostic would:
// "path:line:col", falling back to whichever of path/line/col is actually
// set.
func (v *Validation) location() string {
	switch {
	case v.Path != "" && v.Line > 0 && v.Column > 0:
		return fmt.Sprintf("%s:%d:%d", v.Path, v.Line, v.Column)
	case v.Path != "":
		return v.Path
	case v.Line > 0 && v.Column > 0:
		return fmt.Sprintf("%d:%d", v.Line, v.Column)
	default:
		return ""
	}
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	if loc := v.location(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}
	b.WriteString(fmt.Sprintf("%s: %s", v.Code, v.Message))
	if len(v.Expected) > 0 {
		b.WriteString(", expected ")
		b.WriteString(strings.Join(v.Expected, " or "))
	}
	if v.Actual != "" {
		b.WriteString(", got ")
		b.WriteString(v.Actual)
	}
	return b.String()
}

// New builds a Validation with a code, message, and optional path.
func New(code ErrorCode, msg, path string) Validation {
	return Validation{Code: string(code), Message: msg, Path: path}
}

// Newf formats a message and builds a Validation.
func Newf(code ErrorCode, path, format string, args ...any) Validation {
	return New(code, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation findings from an error returned by the
// walker or loader, if any.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
