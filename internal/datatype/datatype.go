// Package datatype implements the Relax NG datatype library contract: the
// built-in library (string, token) and the XSD library, each exposing
// ParseParams/ParseValue/Equal/Disallows per the <data>/<value> pattern's
// needs. Schema-time facet mistakes are reported as fatal
// ParameterParsingError values; instance-time mismatches are reported as
// data via Disallows, never raised, per the package's error policy.
package datatype

import (
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Param is one <param name="...">value</param> pair attached to a <data> element.
type Param struct {
	Name  string
	Value string
}

// ParamBag is the result of parsing a type's <param> list: an opaque,
// type-specific bundle of compiled facets ready to test values against.
type ParamBag interface{}

// Value is a successfully parsed instance value, opaque outside its type.
type Value interface{}

// Context supplies the ambient information some types need to interpret a
// lexical value correctly: QName needs the in-scope namespace bindings; ENTITY/ENTITIES would need a DTD's declared entity set, which
// this library does not track (see Non-goals).
type Context struct {
	ResolvePrefix func(prefix string) (uri string, ok bool)
}

// Type is one named datatype in a library.
type Type interface {
	// Name is the type's local name, e.g. "string", "decimal", "NCName".
	Name() string
	// IsBuiltin reports whether this type belongs to the built-in library
	// ("" datatypeLibrary) as opposed to the XSD library.
	IsBuiltin() bool
	// NeedsContext reports whether ParseValue/Disallows require a non-nil Context.
	NeedsContext() bool
	// ParseParams compiles a <data>'s <param> list into a ParamBag. It fails
	// closed on inconsistent facet combinations.
	ParseParams(params []Param) (ParamBag, error)
	// ParseValue parses raw into a Value. It reports lexical-space errors
	// (malformed input) independent of facets.
	ParseValue(raw string, ctx *Context) (Value, error)
	// Equal reports whether a and b denote the same value, per the type's
	// value-space equality (not lexical string equality).
	Equal(a, b Value) bool
	// Disallows reports whether raw violates params, as a non-fatal
	// Validation, or nil if raw is acceptable.
	Disallows(raw string, params ParamBag, ctx *Context) *rngerrors.Validation
}

// ParameterParsingError wraps a schema-time facet-combination mistake.
// It is always fatal: the loader cannot proceed.
type ParameterParsingError struct {
	Validation rngerrors.Validation
}

func (e *ParameterParsingError) Error() string { return e.Validation.Error() }

func newParameterError(format string, args ...any) error {
	return &ParameterParsingError{Validation: rngerrors.Newf(rngerrors.ErrParameterParsing, "", format, args...)}
}

// valueError builds the non-fatal Validation Disallows returns.
func valueError(typeName, raw, format string, args ...any) *rngerrors.Validation {
	v := rngerrors.Newf(rngerrors.ErrValueValidation, "", format, args...)
	v.Expected = []string{typeName}
	v.Actual = raw
	return &v
}
