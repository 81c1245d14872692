package datatype

import rngerrors "github.com/jacoelho/salve-go/errors"

// BuiltinLibraryURI is the datatypeLibrary value for Relax NG's own
// built-in library (string, token). An empty <data type> attribute or a
// bare <text>/<value> without datatypeLibrary also resolves here.
const BuiltinLibraryURI = ""

// XSDLibraryURI is the datatypeLibrary value for the XSD datatypes library.
const XSDLibraryURI = "http://www.w3.org/2001/XMLSchema-datatypes"

// Registry resolves (datatypeLibrary, type name) pairs to Type
// implementations, as referenced by <data>/<value> patterns.
type Registry struct {
	libraries       map[string]map[string]Type
	allowIncomplete bool
	incomplete      []string
}

// NewRegistry builds a Registry with the built-in and XSD libraries
// pre-populated. When allowIncomplete is true, Lookup never fails for an
// XSD-library name it doesn't recognize: it returns a placeholder type
// that disallows every value, and records the name for a caller-visible
// warning (see Incomplete).
func NewRegistry(allowIncomplete bool) *Registry {
	r := &Registry{
		libraries:       map[string]map[string]Type{},
		allowIncomplete: allowIncomplete,
	}

	builtin := map[string]Type{
		"string": builtinString{},
		"token":  builtinToken{},
	}
	r.libraries[BuiltinLibraryURI] = builtin

	xsd := map[string]Type{}
	for name, spec := range xsdSpecs {
		xsd[name] = newXSDType(spec)
	}
	xsd["NMTOKENS"] = newListType("NMTOKENS", xsd["NMTOKEN"])
	xsd["IDREFS"] = newListType("IDREFS", xsd["IDREF"])
	xsd["ENTITIES"] = newListType("ENTITIES", xsd["ENTITY"])
	r.libraries[XSDLibraryURI] = xsd

	return r
}

// Lookup resolves a type by library URI and local name.
func (r *Registry) Lookup(library, name string) (Type, error) {
	lib, ok := r.libraries[library]
	if !ok {
		return nil, newParameterError("datatype library %q is not registered", library)
	}
	t, ok := lib[name]
	if ok {
		return t, nil
	}
	if library == XSDLibraryURI && r.allowIncomplete {
		r.incomplete = append(r.incomplete, name)
		return &placeholderType{name: name}, nil
	}
	return nil, newParameterError("unknown datatype %q in library %q", name, library)
}

// Incomplete lists the XSD type names that Lookup substituted a
// placeholder for, because AllowIncompleteTypes was set and they were not
// recognized. Empty when no substitution occurred.
func (r *Registry) Incomplete() []string { return r.incomplete }

// placeholderType stands in for an unrecognized XSD type when
// AllowIncompleteTypes permits the schema to load anyway. It fails closed:
// every value is disallowed, since its actual constraints are unknown.
type placeholderType struct{ name string }

func (p *placeholderType) Name() string                              { return p.name }
func (p *placeholderType) IsBuiltin() bool                           { return false }
func (p *placeholderType) NeedsContext() bool                        { return false }
func (p *placeholderType) ParseParams(params []Param) (ParamBag, error) { return nil, nil }
func (p *placeholderType) ParseValue(raw string, _ *Context) (Value, error) {
	return raw, nil
}
func (p *placeholderType) Equal(a, b Value) bool { return a == b }
func (p *placeholderType) Disallows(raw string, _ ParamBag, _ *Context) *rngerrors.Validation {
	return valueError(p.name, raw, "datatype %q is not recognized (loaded with AllowIncompleteTypes)", p.name)
}
