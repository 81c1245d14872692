// Package loader reconstructs a pattern.Grammar from the version-3 JSON
// wire format a schema-conversion tool emits: a compact, already-simplified
// encoding of a Relax NG pattern tree as nested [ctor, path?, arg...]
// arrays. Dispatch on ctor is table-driven (compactCtors/verboseCtors),
// so a new node kind is a table entry, not new branch code.
package loader

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/jacoelho/salve-go/internal/datatype"
	"github.com/jacoelho/salve-go/internal/nameclass"
	"github.com/jacoelho/salve-go/internal/pattern"

	rngerrors "github.com/jacoelho/salve-go/errors"
)

// formatVersion is the only wire format version this loader understands.
const formatVersion = 3

// optionNoPaths is bit 0 of the envelope's "o" flags: when set, nodes carry
// no path string element.
const optionNoPaths = 1

// LoadOptions configures how a schema is reconstructed.
type LoadOptions struct {
	// AllowIncompleteTypes makes an unrecognized XSD datatype name a
	// placeholder that disallows every value, instead of a fatal error.
	AllowIncompleteTypes bool
}

// RefError wraps a dangling ref: a name with no matching define in its
// enclosing grammar. Always fatal to loading.
type RefError struct {
	Validation rngerrors.Validation
}

func (e *RefError) Error() string { return e.Validation.Error() }

func newRefError(name, path string) error {
	return &RefError{Validation: rngerrors.Newf(rngerrors.ErrRef, path, "no define named %q", name)}
}

// pendingRef records a Ref node built before its enclosing grammar's
// define table existed to resolve it against.
type pendingRef struct {
	ref  *pattern.Ref
	path string
}

type loader struct {
	hasPaths    bool
	registry    *datatype.Registry
	pendingRefs []pendingRef
}

// Load reconstructs a Grammar from data, a version-3 JSON envelope, using
// opts to configure datatype-completeness policy. incomplete lists the XSD
// type names that loaded as a disallow-everything placeholder because
// opts.AllowIncompleteTypes was set and the name was not recognized.
func Load(data []byte, opts LoadOptions) (grammar *pattern.Grammar, incomplete []string, err error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, errors.Errorf("loader: input is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	vNode := root.Get("v")
	if !vNode.Exists() {
		return nil, nil, errors.Errorf("loader: missing required field %q", "v")
	}
	if v := vNode.Int(); v != formatVersion {
		return nil, nil, errors.Errorf("loader: unsupported schema format version %d, want %d", v, formatVersion)
	}

	dNode := root.Get("d")
	if !dNode.Exists() {
		return nil, nil, errors.Errorf("loader: missing required field %q", "d")
	}

	l := &loader{
		hasPaths: root.Get("o").Int()&optionNoPaths == 0,
		registry: datatype.NewRegistry(opts.AllowIncompleteTypes),
	}

	top, err := l.buildAny(dNode)
	if err != nil {
		return nil, nil, err
	}
	g, ok := top.(*pattern.Grammar)
	if !ok {
		return nil, nil, errors.Errorf("loader: top-level node must be a Grammar, got %T", top)
	}

	for _, pr := range l.pendingRefs {
		define, ok := g.DefineByName(pr.ref.Name)
		if !ok {
			return nil, nil, newRefError(pr.ref.Name, pr.path)
		}
		pr.ref.Resolve(define)
	}

	return g, l.registry.Incomplete(), nil
}

// buildNode builds n and requires the result to be a Pattern.
func (l *loader) buildNode(n gjson.Result) (pattern.Pattern, error) {
	v, err := l.buildAny(n)
	if err != nil {
		return nil, err
	}
	p, ok := v.(pattern.Pattern)
	if !ok {
		return nil, errors.Errorf("loader: expected a pattern node, got %T", v)
	}
	return p, nil
}

// buildNameClass builds n and requires the result to be a NameClass.
func (l *loader) buildNameClass(n gjson.Result) (nameclass.NameClass, error) {
	v, err := l.buildAny(n)
	if err != nil {
		return nil, err
	}
	nc, ok := v.(nameclass.NameClass)
	if !ok {
		return nil, errors.Errorf("loader: expected a name-class node, got %T", v)
	}
	return nc, nil
}

// buildAny dispatches n's ctor element (compact integer or verbose name) to
// its builder and runs it over the remaining elements.
func (l *loader) buildAny(n gjson.Result) (any, error) {
	if !n.IsArray() {
		return nil, errors.Errorf("loader: node is not an array: %s", n.Raw)
	}
	elems := n.Array()
	if len(elems) == 0 {
		return nil, errors.Errorf("loader: empty node")
	}

	ctorElem := elems[0]
	var build nodeBuilder
	switch ctorElem.Type {
	case gjson.Number:
		b, ok := compactCtors[ctorElem.Int()]
		if !ok {
			return nil, errors.Errorf("loader: unknown ctor code %d", ctorElem.Int())
		}
		build = b
	case gjson.String:
		b, ok := verboseCtors[ctorElem.String()]
		if !ok {
			return nil, errors.Errorf("loader: unknown ctor name %q", ctorElem.String())
		}
		build = b
	default:
		return nil, errors.Errorf("loader: node's ctor element must be a number or a string")
	}

	idx := 1
	path := ""
	if l.hasPaths {
		if len(elems) < 2 {
			return nil, errors.Errorf("loader: node missing path element: %s", n.Raw)
		}
		path = elems[1].String()
		idx = 2
	}
	return build(l, elems[idx:], path)
}

// readName normalizes a Define/Ref name argument to a string key: numeric
// names (from --optimize-ids) and string names compare equal when equal as
// strings, e.g. a numeric 5 and the string "5" both key as "5".
func readName(n gjson.Result) string {
	if n.Type == gjson.Number {
		return strconv.FormatInt(n.Int(), 10)
	}
	return n.String()
}

// present reports whether the arg at index i exists and is not JSON null —
// args representing an optional child (Except, a namespace-context object)
// are omitted or null when absent.
func present(args []gjson.Result, i int) bool {
	return i < len(args) && args[i].Exists() && args[i].Type != gjson.Null
}
