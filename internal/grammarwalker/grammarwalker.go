// Package grammarwalker is the top-level driver over a pattern.Walker tree:
// it owns namespace resolution and translates the raw (prefix, local,
// value) triples a caller supplies into the expanded-name events the
// pattern/walker automaton consumes, reporting unresolvable prefixes and
// wholly-unmatched events with the context the pattern layer itself does
// not keep (the ancestor path, the name that was tried).
package grammarwalker

import (
	"github.com/jacoelho/salve-go/internal/event"
	"github.com/jacoelho/salve-go/internal/nameresolver"
	"github.com/jacoelho/salve-go/internal/pattern"

	rngerrors "github.com/jacoelho/salve-go/errors"
)

// frame records one open element's local name, for path construction in
// diagnostics.
type frame struct {
	local string
}

// Walker drives one document instance against a Grammar's start pattern.
type Walker struct {
	root     pattern.Walker
	resolver *nameresolver.Resolver
	stack    []frame
	inAttrs  bool
}

// New returns a Walker over g's start pattern, with a fresh name resolver.
func New(g *pattern.Grammar) *Walker {
	return &Walker{root: g.NewWalker(), resolver: nameresolver.New()}
}

func (w *Walker) path() string {
	if len(w.stack) == 0 {
		return "/"
	}
	s := ""
	for _, f := range w.stack {
		s += "/" + f.local
	}
	return s
}

// EnterElement pushes a fresh namespace scope for the start tag about to be
// processed. Call once per start tag, before DefinePrefix or FireStartTag,
// so that an xmlns declaration carried by the tag is in scope in time to
// resolve the tag's own name and its attribute names — per the XML
// namespaces recommendation, a declaration on an element applies to that
// element's own name too, not just its descendants.
func (w *Walker) EnterElement() {
	w.resolver.EnterContext()
}

// DefinePrefix binds prefix to uri in the scope pushed by the most recent
// EnterElement. Call once per xmlns attribute found on the start tag,
// before FireStartTag.
func (w *Walker) DefinePrefix(prefix, uri string) {
	w.resolver.DefinePrefix(prefix, uri)
}

// FireStartTag resolves (prefix, local) as an element name in the scope
// pushed by EnterElement and fires an EnterStartTag event.
func (w *Walker) FireStartTag(prefix, local string) rngerrors.ValidationList {
	name, ok := w.resolver.ResolveName(prefix, local, false)
	if !ok {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrElementName, w.path(),
			"element %q uses unbound prefix %q", local, prefix)}
	}
	res := w.root.FireEvent(event.EnterStartTagEvent(name.NS, name.Local))
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrElementName, w.path(),
			"element %q (namespace %q) is not allowed here", local, name.NS)}
	}
	w.stack = append(w.stack, frame{local: local})
	w.inAttrs = true
	return res.Errors
}

// FireResolvedStartTag fires an EnterStartTag event for a name a caller has
// already expanded itself (e.g. a driver built on a namespace-aware XML
// decoder that resolves names before grammarwalker ever sees them). It does
// not touch the name resolver or require a prior EnterElement call.
func (w *Walker) FireResolvedStartTag(ns, local string) rngerrors.ValidationList {
	res := w.root.FireEvent(event.EnterStartTagEvent(ns, local))
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrElementName, w.path(),
			"element %q (namespace %q) is not allowed here", local, ns)}
	}
	w.stack = append(w.stack, frame{local: local})
	w.inAttrs = true
	return res.Errors
}

// FireResolvedAttributeName is FireAttributeName for an already-expanded name.
func (w *Walker) FireResolvedAttributeName(ns, local string) rngerrors.ValidationList {
	res := w.root.FireEvent(event.AttributeNameEvent(ns, local))
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrAttributeName, w.path(),
			"attribute %q (namespace %q) is not allowed here", local, ns)}
	}
	return res.Errors
}

// FireResolvedEndTag is FireEndTag for an already-expanded name.
func (w *Walker) FireResolvedEndTag(ns, local string) rngerrors.ValidationList {
	res := w.root.FireEvent(event.EndTagEvent(ns, local))
	if len(w.stack) > 0 {
		w.stack = w.stack[:len(w.stack)-1]
	}
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrElementName, w.path(),
			"closing tag %q does not match the open element", local)}
	}
	return res.Errors
}

// FireAttributeName resolves (prefix, local) as an attribute name and fires
// an AttributeName event. Must be called while inAttrs (before LeaveStartTag).
func (w *Walker) FireAttributeName(prefix, local string) rngerrors.ValidationList {
	name, ok := w.resolver.ResolveName(prefix, local, true)
	if !ok {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrAttributeName, w.path(),
			"attribute %q uses unbound prefix %q", local, prefix)}
	}
	res := w.root.FireEvent(event.AttributeNameEvent(name.NS, name.Local))
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrAttributeName, w.path(),
			"attribute %q (namespace %q) is not allowed here", local, name.NS)}
	}
	return res.Errors
}

// FireAttributeValue fires the AttributeValue event for the name most
// recently fired via FireAttributeName.
func (w *Walker) FireAttributeValue(value string) rngerrors.ValidationList {
	res := w.root.FireEvent(event.AttributeValueEvent(value))
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrAttributeValue, w.path(),
			"attribute value %q is not valid here", value)}
	}
	return res.Errors
}

// FireLeaveStartTag closes the attribute phase of the innermost open element.
func (w *Walker) FireLeaveStartTag() rngerrors.ValidationList {
	w.inAttrs = false
	res := w.root.FireEvent(event.LeaveStartTagEvent())
	return res.Errors
}

// FireText fires a Text event carrying a run of character data.
func (w *Walker) FireText(value string) rngerrors.ValidationList {
	res := w.root.FireEvent(event.TextEvent(value))
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.New(rngerrors.ErrValidation,
			"text content is not allowed here", w.path())}
	}
	return res.Errors
}

// FireEndTag resolves (prefix, local) as the closing element name, fires an
// EndTag event, and pops the innermost namespace scope and element frame.
func (w *Walker) FireEndTag(prefix, local string) rngerrors.ValidationList {
	name, ok := w.resolver.ResolveName(prefix, local, false)
	if !ok {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrElementName, w.path(),
			"closing tag %q uses unbound prefix %q", local, prefix)}
	}
	res := w.root.FireEvent(event.EndTagEvent(name.NS, name.Local))
	if len(w.stack) > 0 {
		w.stack = w.stack[:len(w.stack)-1]
	}
	w.resolver.LeaveContext()
	if !res.Matched {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrElementName, w.path(),
			"closing tag %q does not match the open element", local)}
	}
	return res.Errors
}

// End reports whether the document as a whole may legally end here.
func (w *Walker) End() rngerrors.ValidationList {
	return w.root.End()
}

// Possible returns the set of events currently acceptable in content
// position.
func (w *Walker) Possible() event.Set {
	return w.root.Possible()
}

// PossibleAttributes returns the set of attribute events currently
// acceptable, valid only while the walker is between a start tag and its
// matching LeaveStartTag.
func (w *Walker) PossibleAttributes() event.Set {
	return w.root.PossibleAttributes()
}

// UseNameResolver exposes the resolver backing this walker, for callers
// (e.g. an xml.Decoder driver) that need to mirror its scope stack.
func (w *Walker) UseNameResolver() *nameresolver.Resolver {
	return w.resolver
}

// Clone returns an independent copy of the walker, including its resolver
// and frame stack, sharing no mutable state with w.
func (w *Walker) Clone() *Walker {
	stack := make([]frame, len(w.stack))
	copy(stack, w.stack)
	return &Walker{
		root:     w.root.Clone(pattern.NewCloneMap()),
		resolver: w.resolver.Clone(),
		stack:    stack,
		inAttrs:  w.inAttrs,
	}
}
