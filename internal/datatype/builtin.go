package datatype

import rngerrors "github.com/jacoelho/salve-go/errors"

// builtinString is the Relax NG built-in "string" type: identity equality
// on the untouched lexical value, no parameters accepted.
type builtinString struct{}

func (builtinString) Name() string       { return "string" }
func (builtinString) IsBuiltin() bool    { return true }
func (builtinString) NeedsContext() bool { return false }

func (builtinString) ParseParams(params []Param) (ParamBag, error) {
	if len(params) > 0 {
		return nil, newParameterError("datatype %q: built-in string takes no parameters", "string")
	}
	return nil, nil
}

func (builtinString) ParseValue(raw string, _ *Context) (Value, error) {
	return raw, nil
}

func (builtinString) Equal(a, b Value) bool {
	return a.(string) == b.(string)
}

func (builtinString) Disallows(raw string, _ ParamBag, _ *Context) *rngerrors.Validation {
	return nil
}

// builtinToken is the Relax NG built-in "token" type: values are compared
// after whitespace collapse.
type builtinToken struct{}

func (builtinToken) Name() string       { return "token" }
func (builtinToken) IsBuiltin() bool    { return true }
func (builtinToken) NeedsContext() bool { return false }

func (builtinToken) ParseParams(params []Param) (ParamBag, error) {
	if len(params) > 0 {
		return nil, newParameterError("datatype %q: built-in token takes no parameters", "token")
	}
	return nil, nil
}

func (builtinToken) ParseValue(raw string, _ *Context) (Value, error) {
	return collapseWhitespace(raw), nil
}

func (builtinToken) Equal(a, b Value) bool {
	return a.(string) == b.(string)
}

func (builtinToken) Disallows(raw string, _ ParamBag, _ *Context) *rngerrors.Validation {
	return nil
}
