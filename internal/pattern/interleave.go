package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Interleave matches any shuffle of A's and B's matches, subject to the
// tag-balance rule: once a branch starts consuming an element (an
// EnterStartTag it has not yet balanced with the matching EndTag), every
// subsequent event is routed to that branch alone until it balances again.
type Interleave struct {
	base
	A, B Pattern
}

// NewInterleave returns the Interleave pattern over A and B.
func NewInterleave(a, b Pattern) *Interleave {
	return &Interleave{
		base: base{emptyMatch: a.hasEmptyMatch() && b.hasEmptyMatch(), attrs: a.hasAttrs() || b.hasAttrs()},
		A:    a,
		B:    b,
	}
}

func (p *Interleave) NewWalker() Walker {
	return &interleaveWalker{a: p.A.NewWalker(), b: p.B.NewWalker(), hasAttrs: p.hasAttrs()}
}

// inFlight identifies which branch, if any, is mid-element and must receive
// every event until it balances.
type inFlight int

const (
	noneInFlight inFlight = iota
	aInFlight
	bInFlight
)

type interleaveWalker struct {
	a, b     Walker
	hasAttrs bool
	inFlight inFlight
	aDepth   int
	bDepth   int
}

func (w *interleaveWalker) FireEvent(ev event.Event) FireResult {
	switch w.inFlight {
	case aInFlight:
		return w.fireTo(aInFlight, ev)
	case bInFlight:
		return w.fireTo(bInFlight, ev)
	}

	if res := w.a.FireEvent(ev); res.Matched {
		w.afterMatch(aInFlight, ev)
		return res
	}
	if res := w.b.FireEvent(ev); res.Matched {
		w.afterMatch(bInFlight, ev)
		return res
	}
	return rejected()
}

func (w *interleaveWalker) fireTo(which inFlight, ev event.Event) FireResult {
	branch := w.a
	if which == bInFlight {
		branch = w.b
	}
	res := branch.FireEvent(ev)
	if !res.Matched {
		return res
	}
	w.afterMatch(which, ev)
	return res
}

func (w *interleaveWalker) afterMatch(which inFlight, ev event.Event) {
	delta := 0
	switch ev.Kind {
	case event.EnterStartTag:
		delta = 1
	case event.EndTag:
		delta = -1
	}
	if which == aInFlight {
		w.aDepth += delta
		if w.aDepth == 0 {
			w.inFlight = noneInFlight
		} else {
			w.inFlight = aInFlight
		}
		return
	}
	w.bDepth += delta
	if w.bDepth == 0 {
		w.inFlight = noneInFlight
	} else {
		w.inFlight = bInFlight
	}
}

func (w *interleaveWalker) End() rngerrors.ValidationList {
	var errs rngerrors.ValidationList
	errs = append(errs, w.a.End()...)
	errs = append(errs, w.b.End()...)
	return errs
}

func (w *interleaveWalker) EndAttributes() rngerrors.ValidationList {
	var errs rngerrors.ValidationList
	errs = append(errs, w.a.EndAttributes()...)
	errs = append(errs, w.b.EndAttributes()...)
	return errs
}

func (w *interleaveWalker) Possible() event.Set {
	switch w.inFlight {
	case aInFlight:
		return w.a.Possible()
	case bInFlight:
		return w.b.Possible()
	default:
		var s event.Set
		s.Union(w.a.Possible())
		s.Union(w.b.Possible())
		return s
	}
}

func (w *interleaveWalker) PossibleAttributes() event.Set {
	var s event.Set
	s.Union(w.a.PossibleAttributes())
	s.Union(w.b.PossibleAttributes())
	return s
}

func (w *interleaveWalker) CanEnd() bool { return w.a.CanEnd() && w.b.CanEnd() }

func (w *interleaveWalker) CanEndAttribute() bool {
	return !w.hasAttrs || (w.a.CanEndAttribute() && w.b.CanEndAttribute())
}

func (w *interleaveWalker) Clone(memo *CloneMap) Walker {
	return &interleaveWalker{
		a:        cloneChild(memo, w.a),
		b:        cloneChild(memo, w.b),
		hasAttrs: w.hasAttrs,
		inFlight: w.inFlight,
		aDepth:   w.aDepth,
		bDepth:   w.bDepth,
	}
}
