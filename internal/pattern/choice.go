package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Choice matches whatever A or B matches. Once simplification (an event
// rejected by exactly one branch) leaves only one branch viable, the walker
// folds to it and stops consulting the dead branch at all — the dead
// branch's own derivative never becomes a match again, so this is safe, and
// it is observable only through a narrower Possible/PossibleAttributes set.
type Choice struct {
	base
	A, B Pattern
}

// NewChoice returns the Choice pattern between A and B.
func NewChoice(a, b Pattern) *Choice {
	return &Choice{
		base: base{emptyMatch: a.hasEmptyMatch() || b.hasEmptyMatch(), attrs: a.hasAttrs() || b.hasAttrs()},
		A:    a,
		B:    b,
	}
}

func (p *Choice) NewWalker() Walker {
	return &choiceWalker{state: bothAlive, a: p.A.NewWalker(), b: p.B.NewWalker()}
}

type choiceState int

const (
	bothAlive choiceState = iota
	leftOnly
	rightOnly
)

type choiceWalker struct {
	state choiceState
	a, b  Walker
}

func (w *choiceWalker) FireEvent(ev event.Event) FireResult {
	switch w.state {
	case leftOnly:
		return w.a.FireEvent(ev)
	case rightOnly:
		return w.b.FireEvent(ev)
	}

	resA := w.a.FireEvent(ev)
	resB := w.b.FireEvent(ev)
	switch {
	case resA.Matched && resB.Matched:
		return matched()
	case resA.Matched:
		w.state = leftOnly
		return resA
	case resB.Matched:
		w.state = rightOnly
		return resB
	default:
		errs := append(rngerrors.ValidationList{}, resA.Errors...)
		errs = append(errs, resB.Errors...)
		if len(errs) == 0 {
			errs = rngerrors.ValidationList{rngerrors.New(rngerrors.ErrChoice, "no branch of choice accepted the event", "")}
		}
		return FireResult{Matched: false, Errors: errs}
	}
}

func (w *choiceWalker) End() rngerrors.ValidationList {
	switch w.state {
	case leftOnly:
		return w.a.End()
	case rightOnly:
		return w.b.End()
	default:
		errA := w.a.End()
		errB := w.b.End()
		if errA == nil || errB == nil {
			return nil
		}
		return append(append(rngerrors.ValidationList{}, errA...), errB...)
	}
}

func (w *choiceWalker) EndAttributes() rngerrors.ValidationList {
	switch w.state {
	case leftOnly:
		return w.a.EndAttributes()
	case rightOnly:
		return w.b.EndAttributes()
	default:
		errA := w.a.EndAttributes()
		errB := w.b.EndAttributes()
		if errA == nil || errB == nil {
			return nil
		}
		return append(append(rngerrors.ValidationList{}, errA...), errB...)
	}
}

func (w *choiceWalker) Possible() event.Set {
	switch w.state {
	case leftOnly:
		return w.a.Possible()
	case rightOnly:
		return w.b.Possible()
	default:
		var s event.Set
		s.Union(w.a.Possible())
		s.Union(w.b.Possible())
		return s
	}
}

func (w *choiceWalker) PossibleAttributes() event.Set {
	switch w.state {
	case leftOnly:
		return w.a.PossibleAttributes()
	case rightOnly:
		return w.b.PossibleAttributes()
	default:
		var s event.Set
		s.Union(w.a.PossibleAttributes())
		s.Union(w.b.PossibleAttributes())
		return s
	}
}

func (w *choiceWalker) CanEnd() bool {
	switch w.state {
	case leftOnly:
		return w.a.CanEnd()
	case rightOnly:
		return w.b.CanEnd()
	default:
		return w.a.CanEnd() || w.b.CanEnd()
	}
}

func (w *choiceWalker) CanEndAttribute() bool {
	switch w.state {
	case leftOnly:
		return w.a.CanEndAttribute()
	case rightOnly:
		return w.b.CanEndAttribute()
	default:
		return w.a.CanEndAttribute() || w.b.CanEndAttribute()
	}
}

func (w *choiceWalker) Clone(memo *CloneMap) Walker {
	nw := &choiceWalker{state: w.state}
	switch w.state {
	case leftOnly:
		nw.a = cloneChild(memo, w.a)
	case rightOnly:
		nw.b = cloneChild(memo, w.b)
	default:
		nw.a = cloneChild(memo, w.a)
		nw.b = cloneChild(memo, w.b)
	}
	return nw
}
