package datatype

import (
	"strings"

	rngerrors "github.com/jacoelho/salve-go/errors"
)

// listType implements the XSD list types (NMTOKENS, IDREFS, ENTITIES):
// the lexical value is whitespace-tokenized, and the member type's facets
// apply to each token; length facets on the list type itself apply to the
// token count, per XSD's variety="list" semantics.
type listType struct {
	name   string
	member Type
}

func newListType(name string, member Type) Type { return &listType{name: name, member: member} }

func (t *listType) Name() string       { return t.name }
func (t *listType) IsBuiltin() bool    { return false }
func (t *listType) NeedsContext() bool { return t.member.NeedsContext() }

type listParamBag struct {
	memberParams ParamBag
	length       *int
	minLength    *int
	maxLength    *int
}

func (t *listType) ParseParams(params []Param) (ParamBag, error) {
	var memberParams []Param
	bag := &listParamBag{}
	for _, p := range params {
		switch p.Name {
		case "length", "minLength", "maxLength":
			n, err := parseNonNegativeParam(t.name, p.Name, p.Value)
			if err != nil {
				return nil, err
			}
			switch p.Name {
			case "length":
				bag.length = &n
			case "minLength":
				bag.minLength = &n
			case "maxLength":
				bag.maxLength = &n
			}
		default:
			memberParams = append(memberParams, p)
		}
	}
	mp, err := t.member.ParseParams(memberParams)
	if err != nil {
		return nil, err
	}
	bag.memberParams = mp
	return bag, nil
}

func (t *listType) ParseValue(raw string, ctx *Context) (Value, error) {
	tokens := strings.Fields(raw)
	values := make([]Value, 0, len(tokens))
	for _, tok := range tokens {
		v, err := t.member.ParseValue(tok, ctx)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (t *listType) Equal(a, b Value) bool {
	av, bv := a.([]Value), b.([]Value)
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if !t.member.Equal(av[i], bv[i]) {
			return false
		}
	}
	return true
}

func (t *listType) Disallows(raw string, params ParamBag, ctx *Context) *rngerrors.Validation {
	bag, _ := params.(*listParamBag)
	tokens := strings.Fields(raw)

	if bag != nil {
		if bag.length != nil && len(tokens) != *bag.length {
			return valueError(t.name, raw, "value %q has %d items, want exactly %d", raw, len(tokens), *bag.length)
		}
		if bag.minLength != nil && len(tokens) < *bag.minLength {
			return valueError(t.name, raw, "value %q has %d items, want at least %d", raw, len(tokens), *bag.minLength)
		}
		if bag.maxLength != nil && len(tokens) > *bag.maxLength {
			return valueError(t.name, raw, "value %q has %d items, want at most %d", raw, len(tokens), *bag.maxLength)
		}
	}

	var memberParams ParamBag
	if bag != nil {
		memberParams = bag.memberParams
	}
	for _, tok := range tokens {
		if v := t.member.Disallows(tok, memberParams, ctx); v != nil {
			return v
		}
	}
	return nil
}
