package loader

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/jacoelho/salve-go/internal/nameclass"
	"github.com/jacoelho/salve-go/internal/pattern"
)

// nodeBuilder constructs one node's value from its argument array (the
// node's elements after its ctor code and optional path). Both pattern
// ctors and name-class ctors share this signature, since the wire format
// gives both the same [ctor, path?, arg...] shape.
type nodeBuilder func(l *loader, args []gjson.Result, path string) (any, error)

// compactCtors maps the numeric ctor codes a conversion tool emits to
// their builder. The numbering mirrors the verbose names' order in §6.
var compactCtors map[int64]nodeBuilder

// verboseCtors maps the debug-only string ctor names to the same builders.
var verboseCtors map[string]nodeBuilder

// The ctor tables are populated here, rather than in their var
// declarations, because a map literal referring to buildGrammar (which
// transitively calls back into these tables via buildAny) would form an
// initialization cycle; init() runs after all package-level vars exist.
func init() {
	compactCtors = map[int64]nodeBuilder{
		0:  buildGrammar,
		1:  buildDefine,
		2:  buildRef,
		3:  buildElement,
		4:  buildAttribute,
		5:  buildName,
		6:  buildNameChoice,
		7:  buildNsName,
		8:  buildAnyName,
		9:  buildChoice,
		10: buildGroup,
		11: buildInterleave,
		12: buildOneOrMore,
		13: buildValue,
		14: buildData,
		15: buildList,
		16: buildText,
		17: buildEmpty,
		18: buildNotAllowed,
	}

	verboseCtors = map[string]nodeBuilder{
		"Grammar":    buildGrammar,
		"Define":     buildDefine,
		"Ref":        buildRef,
		"Element":    buildElement,
		"Attribute":  buildAttribute,
		"Name":       buildName,
		"NameChoice": buildNameChoice,
		"NsName":     buildNsName,
		"AnyName":    buildAnyName,
		"Choice":     buildChoice,
		"Group":      buildGroup,
		"Interleave": buildInterleave,
		"OneOrMore":  buildOneOrMore,
		"Value":      buildValue,
		"Data":       buildData,
		"List":       buildList,
		"Text":       buildText,
		"Empty":      buildEmpty,
		"NotAllowed": buildNotAllowed,
	}
}

func arg(args []gjson.Result, i int) gjson.Result {
	if i < len(args) {
		return args[i]
	}
	return gjson.Result{}
}

// buildGrammar builds [defines, start]: the grammar's define table, then
// its start pattern. defines is an array of Define nodes.
func buildGrammar(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Grammar at %s needs [defines, start]", path)
	}
	definesNode := arg(args, 0)
	if !definesNode.IsArray() {
		return nil, errors.Errorf("loader: Grammar at %s: defines is not an array", path)
	}
	var defines []*pattern.Define
	for _, dn := range definesNode.Array() {
		d, err := l.buildNode(dn)
		if err != nil {
			return nil, err
		}
		define, ok := d.(*pattern.Define)
		if !ok {
			return nil, errors.Errorf("loader: Grammar at %s: defines entry is not a Define, got %T", path, d)
		}
		defines = append(defines, define)
	}
	start, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewGrammar(start, defines), nil
}

// buildDefine builds [name, child].
func buildDefine(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Define at %s needs [name, child]", path)
	}
	name := readName(arg(args, 0))
	child, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewDefine(name, child), nil
}

// buildRef builds [name]. The Ref cannot be resolved yet: its enclosing
// Grammar's define table may not exist until the Grammar node itself
// finishes building, since patterns are built bottom-up. Load resolves
// every pending Ref once the whole tree is in hand.
func buildRef(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 1 {
		return nil, errors.Errorf("loader: Ref at %s needs [name]", path)
	}
	name := readName(arg(args, 0))
	ref := pattern.NewRef(name)
	l.pendingRefs = append(l.pendingRefs, pendingRef{ref: ref, path: path})
	return ref, nil
}

// buildElement builds [nameClass, child].
func buildElement(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Element at %s needs [nameClass, child]", path)
	}
	nc, err := l.buildNameClass(arg(args, 0))
	if err != nil {
		return nil, err
	}
	child, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewElement(nc, child), nil
}

// buildAttribute builds [nameClass, child].
func buildAttribute(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Attribute at %s needs [nameClass, child]", path)
	}
	nc, err := l.buildNameClass(arg(args, 0))
	if err != nil {
		return nil, err
	}
	child, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewAttribute(nc, child), nil
}

// buildName builds [ns, local], a single expanded name.
func buildName(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Name at %s needs [ns, local]", path)
	}
	return nameclass.Name{NS: arg(args, 0).String(), Local: arg(args, 1).String()}, nil
}

// buildNameChoice builds [a, b], both name-class nodes.
func buildNameChoice(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: NameChoice at %s needs [a, b]", path)
	}
	a, err := l.buildNameClass(arg(args, 0))
	if err != nil {
		return nil, err
	}
	b, err := l.buildNameClass(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return nameclass.NameChoice{A: a, B: b}, nil
}

// buildNsName builds [ns, except?], except being an optional name-class node.
func buildNsName(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 1 {
		return nil, errors.Errorf("loader: NsName at %s needs [ns, except?]", path)
	}
	n := nameclass.NsName{NS: arg(args, 0).String()}
	if present(args, 1) {
		except, err := l.buildNameClass(arg(args, 1))
		if err != nil {
			return nil, err
		}
		n.Except = except
	}
	return n, nil
}

// buildAnyName builds [except?], except being an optional name-class node.
func buildAnyName(l *loader, args []gjson.Result, path string) (any, error) {
	var n nameclass.AnyName
	if present(args, 0) {
		except, err := l.buildNameClass(arg(args, 0))
		if err != nil {
			return nil, err
		}
		n.Except = except
	}
	return n, nil
}

// buildChoice builds [a, b].
func buildChoice(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Choice at %s needs [a, b]", path)
	}
	a, err := l.buildNode(arg(args, 0))
	if err != nil {
		return nil, err
	}
	b, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewChoice(a, b), nil
}

// buildGroup builds [a, b].
func buildGroup(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Group at %s needs [a, b]", path)
	}
	a, err := l.buildNode(arg(args, 0))
	if err != nil {
		return nil, err
	}
	b, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewGroup(a, b), nil
}

// buildInterleave builds [a, b].
func buildInterleave(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 2 {
		return nil, errors.Errorf("loader: Interleave at %s needs [a, b]", path)
	}
	a, err := l.buildNode(arg(args, 0))
	if err != nil {
		return nil, err
	}
	b, err := l.buildNode(arg(args, 1))
	if err != nil {
		return nil, err
	}
	return pattern.NewInterleave(a, b), nil
}

// buildOneOrMore builds [child].
func buildOneOrMore(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 1 {
		return nil, errors.Errorf("loader: OneOrMore at %s needs [child]", path)
	}
	child, err := l.buildNode(arg(args, 0))
	if err != nil {
		return nil, err
	}
	return pattern.NewOneOrMore(child), nil
}

// buildValue builds [library, type, raw, nsContext?]. nsContext, when
// present, is an object mapping prefix -> uri, needed to parse a
// QName literal embedded in the schema itself.
func buildValue(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 3 {
		return nil, errors.Errorf("loader: Value at %s needs [library, type, raw, nsContext?]", path)
	}
	dt, err := l.registry.Lookup(arg(args, 0).String(), arg(args, 1).String())
	if err != nil {
		return nil, errors.Wrapf(err, "loader: Value at %s", path)
	}
	ctx := buildContext(arg(args, 3))
	v, err := pattern.NewValue(dt, arg(args, 2).String(), ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: Value at %s", path)
	}
	return v, nil
}

// buildData builds [library, type, params, nsContext?, except?]. params is
// an array of {"n": name, "v": value} objects.
func buildData(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 3 {
		return nil, errors.Errorf("loader: Data at %s needs [library, type, params, nsContext?, except?]", path)
	}
	dt, err := l.registry.Lookup(arg(args, 0).String(), arg(args, 1).String())
	if err != nil {
		return nil, errors.Wrapf(err, "loader: Data at %s", path)
	}
	params, err := buildParams(arg(args, 2))
	if err != nil {
		return nil, errors.Wrapf(err, "loader: Data at %s", path)
	}
	paramBag, err := dt.ParseParams(params)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: Data at %s", path)
	}
	ctx := buildContext(arg(args, 3))
	var except pattern.Pattern
	if present(args, 4) {
		except, err = l.buildNode(arg(args, 4))
		if err != nil {
			return nil, err
		}
	}
	return pattern.NewData(dt, paramBag, ctx, except), nil
}

// buildList builds [child].
func buildList(l *loader, args []gjson.Result, path string) (any, error) {
	if len(args) < 1 {
		return nil, errors.Errorf("loader: List at %s needs [child]", path)
	}
	child, err := l.buildNode(arg(args, 0))
	if err != nil {
		return nil, err
	}
	return pattern.NewList(child), nil
}

func buildText(*loader, []gjson.Result, string) (any, error)       { return pattern.NewText(), nil }
func buildEmpty(*loader, []gjson.Result, string) (any, error)      { return pattern.NewEmpty(), nil }
func buildNotAllowed(*loader, []gjson.Result, string) (any, error) { return pattern.NewNotAllowed(), nil }
