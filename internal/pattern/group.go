package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Group matches A followed by B in sequence.
type Group struct {
	base
	A, B Pattern
}

// NewGroup returns the Group pattern A then B.
func NewGroup(a, b Pattern) *Group {
	return &Group{
		base: base{emptyMatch: a.hasEmptyMatch() && b.hasEmptyMatch(), attrs: a.hasAttrs() || b.hasAttrs()},
		A:    a,
		B:    b,
	}
}

func (p *Group) NewWalker() Walker {
	return &groupWalker{a: p.A.NewWalker(), b: p.B.NewWalker()}
}

type groupWalker struct {
	a, b Walker
}

func (w *groupWalker) FireEvent(ev event.Event) FireResult {
	if res := w.a.FireEvent(ev); res.Matched {
		return res
	}
	if w.a.CanEnd() {
		return w.b.FireEvent(ev)
	}
	return rejected()
}

func (w *groupWalker) End() rngerrors.ValidationList {
	var errs rngerrors.ValidationList
	errs = append(errs, w.a.End()...)
	errs = append(errs, w.b.End()...)
	return errs
}

func (w *groupWalker) EndAttributes() rngerrors.ValidationList {
	var errs rngerrors.ValidationList
	errs = append(errs, w.a.EndAttributes()...)
	errs = append(errs, w.b.EndAttributes()...)
	return errs
}

func (w *groupWalker) Possible() event.Set {
	var s event.Set
	s.Union(w.a.Possible())
	if w.a.CanEnd() {
		s.Union(w.b.Possible())
	}
	return s
}

func (w *groupWalker) PossibleAttributes() event.Set {
	var s event.Set
	s.Union(w.a.PossibleAttributes())
	if w.a.CanEndAttribute() {
		s.Union(w.b.PossibleAttributes())
	}
	return s
}

func (w *groupWalker) CanEnd() bool { return w.a.CanEnd() && w.b.CanEnd() }

func (w *groupWalker) CanEndAttribute() bool { return w.a.CanEndAttribute() && w.b.CanEndAttribute() }

func (w *groupWalker) Clone(memo *CloneMap) Walker {
	return &groupWalker{a: cloneChild(memo, w.a), b: cloneChild(memo, w.b)}
}
