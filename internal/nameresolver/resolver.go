// Package nameresolver maintains a stack of XML namespace-prefix bindings
// and resolves qualified names to expanded (namespace, local) pairs during
// validation, per the attribute/element resolution rules of the XML
// namespaces recommendation.
package nameresolver

// XMLNamespace is the namespace implicitly bound to the "xml" prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// ExpandedName is a namespace-URI/local-name pair, post prefix resolution.
type ExpandedName struct {
	NS    string
	Local string
}

type frame struct {
	prefixes   map[string]string
	defaultNS  string
	defaultSet bool
}

// Resolver is a mutable stack of namespace scopes. The zero value has no
// scopes at all, so DefinePrefix on it panics; New supplies the root scope.
type Resolver struct {
	frames []frame
}

// New returns a resolver with one empty root scope.
func New() *Resolver {
	return &Resolver{frames: []frame{{}}}
}

// EnterContext pushes a new, initially empty scope — call on entering an element.
func (r *Resolver) EnterContext() {
	r.frames = append(r.frames, frame{})
}

// LeaveContext pops the innermost scope — call on leaving an element.
// It is a no-op if only the root scope remains.
func (r *Resolver) LeaveContext() {
	if len(r.frames) <= 1 {
		return
	}
	r.frames = r.frames[:len(r.frames)-1]
}

// DefinePrefix binds prefix to uri in the current (innermost) scope. An
// empty prefix sets the default namespace for unprefixed element names.
func (r *Resolver) DefinePrefix(prefix, uri string) {
	top := len(r.frames) - 1
	if prefix == "" {
		r.frames[top].defaultNS = uri
		r.frames[top].defaultSet = true
		return
	}
	if r.frames[top].prefixes == nil {
		r.frames[top].prefixes = make(map[string]string)
	}
	r.frames[top].prefixes[prefix] = uri
}

// ResolveName resolves a (prefix, local) pair to an expanded name.
// attribute selects attribute-name resolution rules: an unprefixed
// attribute always has no namespace, regardless of any default namespace
// binding, whereas an unprefixed element inherits the default namespace.
// ok is false only when prefix is non-empty and unbound.
func (r *Resolver) ResolveName(prefix, local string, attribute bool) (ExpandedName, bool) {
	if prefix == "xml" {
		return ExpandedName{NS: XMLNamespace, Local: local}, true
	}
	if prefix == "" {
		if attribute {
			return ExpandedName{NS: "", Local: local}, true
		}
		for i := len(r.frames) - 1; i >= 0; i-- {
			if r.frames[i].defaultSet {
				return ExpandedName{NS: r.frames[i].defaultNS, Local: local}, true
			}
		}
		return ExpandedName{NS: "", Local: local}, true
	}
	for i := len(r.frames) - 1; i >= 0; i-- {
		if uri, ok := r.frames[i].prefixes[prefix]; ok {
			return ExpandedName{NS: uri, Local: local}, true
		}
	}
	return ExpandedName{}, false
}

// Clone returns an independent copy of the resolver's scope stack.
func (r *Resolver) Clone() *Resolver {
	clone := &Resolver{frames: make([]frame, len(r.frames))}
	for i, f := range r.frames {
		nf := frame{defaultNS: f.defaultNS, defaultSet: f.defaultSet}
		if f.prefixes != nil {
			nf.prefixes = make(map[string]string, len(f.prefixes))
			for k, v := range f.prefixes {
				nf.prefixes[k] = v
			}
		}
		clone.frames[i] = nf
	}
	return clone
}

// Depth reports the number of scopes currently on the stack.
func (r *Resolver) Depth() int {
	return len(r.frames)
}
