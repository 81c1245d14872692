package datatype

import (
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// xsdType is a single generic Type implementation, configured by a
// facetSpec. Nearly every XSD built-in type differs from another only in
// its lexical validator, length unit, and whether it is ordered — so one
// implementation serves the whole library instead of one struct per type.
type xsdType struct {
	spec facetSpec
}

func (t *xsdType) Name() string       { return t.spec.name }
func (t *xsdType) IsBuiltin() bool    { return false }
func (t *xsdType) NeedsContext() bool { return t.spec.needsContext }

func (t *xsdType) ParseParams(params []Param) (ParamBag, error) {
	return t.spec.parseParams(params)
}

func (t *xsdType) ParseValue(raw string, ctx *Context) (Value, error) {
	normalized := applyWhiteSpace(t.spec.whiteSpaceDefault, raw)
	if t.spec.validateLexical != nil {
		if err := t.spec.validateLexical(normalized); err != nil {
			return nil, err
		}
	}
	if t.spec.resolveContext != nil {
		if err := t.spec.resolveContext(normalized, ctx); err != nil {
			return nil, err
		}
	}
	return normalized, nil
}

func (t *xsdType) Equal(a, b Value) bool {
	as, bs := a.(string), b.(string)
	if t.spec.parseOrdered != nil {
		ao, aok, aerr := t.spec.parseOrdered(as)
		bo, bok, berr := t.spec.parseOrdered(bs)
		if aerr == nil && berr == nil && aok && bok {
			return ao.compare(bo) == 0
		}
	}
	return as == bs
}

func (t *xsdType) Disallows(raw string, params ParamBag, ctx *Context) *rngerrors.Validation {
	bag, _ := params.(*facetBag)
	if bag == nil {
		bag = &facetBag{whiteSpace: t.spec.whiteSpaceDefault}
	}
	normalized := applyWhiteSpace(bag.whiteSpace, raw)

	if t.spec.validateLexical != nil {
		if err := t.spec.validateLexical(normalized); err != nil {
			return valueError(t.spec.name, raw, "%v", err)
		}
	}
	if t.spec.resolveContext != nil {
		if err := t.spec.resolveContext(normalized, ctx); err != nil {
			return valueError(t.spec.name, raw, "%v", err)
		}
	}

	var ord orderable
	if t.spec.parseOrdered != nil {
		if o, ok, err := t.spec.parseOrdered(normalized); ok && err == nil {
			ord = o
		}
	}
	return t.spec.check(bag, raw, normalized, ord)
}

func newXSDType(spec facetSpec) Type { return &xsdType{spec: spec} }
