package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	"github.com/jacoelho/salve-go/internal/nameclass"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Element matches one element whose name is in Name, with Child governing
// its attributes (before LeaveStartTag) and content (after). Element never
// matches the empty sequence, and never contributes to an ancestor's
// attribute matching — its own attributes are entirely internal.
type Element struct {
	base
	Name  nameclass.NameClass
	Child Pattern
}

// NewElement returns the Element pattern.
func NewElement(name nameclass.NameClass, child Pattern) *Element {
	return &Element{base: base{emptyMatch: false, attrs: false}, Name: name, Child: child}
}

func (p *Element) NewWalker() Walker { return &elementWalker{pattern: p} }

type elementPhase int

const (
	elementExpectStart elementPhase = iota
	elementInAttributes
	elementInContent
	elementEnded
)

type elementWalker struct {
	pattern *Element
	phase   elementPhase
	child   Walker
}

func (w *elementWalker) FireEvent(ev event.Event) FireResult {
	switch w.phase {
	case elementExpectStart:
		if ev.Kind != event.EnterStartTag || !w.pattern.Name.Match(ev.NS, ev.Local) {
			return rejected()
		}
		w.child = w.pattern.Child.NewWalker()
		w.phase = elementInAttributes
		return matched()
	case elementInAttributes:
		if ev.Kind == event.LeaveStartTag {
			errs := w.child.EndAttributes()
			w.phase = elementInContent
			return FireResult{Matched: true, Errors: errs}
		}
		return w.child.FireEvent(ev)
	case elementInContent:
		if ev.Kind == event.EndTag {
			if res := w.child.FireEvent(ev); res.Matched {
				return res
			}
			if !w.pattern.Name.Match(ev.NS, ev.Local) {
				return rejected()
			}
			errs := w.child.End()
			w.phase = elementEnded
			return FireResult{Matched: true, Errors: errs}
		}
		return w.child.FireEvent(ev)
	default:
		return rejected()
	}
}

func (w *elementWalker) End() rngerrors.ValidationList {
	if w.phase == elementEnded {
		return nil
	}
	return rngerrors.ValidationList{rngerrors.New(rngerrors.ErrValidation, "element left open at end of scope", "")}
}

func (w *elementWalker) EndAttributes() rngerrors.ValidationList { return nil }

func (w *elementWalker) Possible() event.Set {
	var s event.Set
	switch w.phase {
	case elementExpectStart:
		s.AddNamed(event.EnterStartTag, w.pattern.Name)
	case elementInAttributes:
		if w.child.CanEndAttribute() {
			s.AddKind(event.LeaveStartTag)
		}
		s.Union(w.child.PossibleAttributes())
	case elementInContent:
		s.AddNamed(event.EndTag, w.pattern.Name)
		s.Union(w.child.Possible())
	}
	return s
}

func (w *elementWalker) PossibleAttributes() event.Set { return nil }

func (w *elementWalker) CanEnd() bool { return w.phase == elementEnded }

func (w *elementWalker) CanEndAttribute() bool { return true }

func (w *elementWalker) Clone(memo *CloneMap) Walker {
	nw := &elementWalker{pattern: w.pattern, phase: w.phase}
	if w.child != nil {
		nw.child = cloneChild(memo, w.child)
	}
	return nw
}
