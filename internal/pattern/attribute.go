package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	"github.com/jacoelho/salve-go/internal/nameclass"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Attribute matches one AttributeName event whose expanded name is in Name,
// followed by the AttributeValue event it carries, fed to Child. Attribute
// never matches the empty sequence and always contributes to an ancestor's
// attribute matching.
type Attribute struct {
	base
	Name  nameclass.NameClass
	Child Pattern
}

// NewAttribute returns the Attribute pattern.
func NewAttribute(name nameclass.NameClass, child Pattern) *Attribute {
	return &Attribute{base: base{emptyMatch: false, attrs: true}, Name: name, Child: child}
}

func (p *Attribute) NewWalker() Walker { return &attributeWalker{pattern: p} }

type attributePhase int

const (
	attributeExpectName attributePhase = iota
	attributeExpectValue
	attributeDone
)

type attributeWalker struct {
	pattern *Attribute
	phase   attributePhase
	child   Walker
}

func (w *attributeWalker) FireEvent(ev event.Event) FireResult {
	switch w.phase {
	case attributeExpectName:
		if ev.Kind != event.AttributeName || !w.pattern.Name.Match(ev.NS, ev.Local) {
			return rejected()
		}
		w.child = w.pattern.Child.NewWalker()
		w.phase = attributeExpectValue
		return matched()
	case attributeExpectValue:
		if ev.Kind != event.AttributeValue {
			return rejected()
		}
		res := w.child.FireEvent(event.TextEvent(ev.Value))
		if !res.Matched {
			return res
		}
		errs := w.child.End()
		w.phase = attributeDone
		return FireResult{Matched: true, Errors: errs}
	default:
		return rejected()
	}
}

func (w *attributeWalker) End() rngerrors.ValidationList {
	if w.phase == attributeDone {
		return nil
	}
	return rngerrors.ValidationList{rngerrors.New(rngerrors.ErrAttributeName, "required attribute missing", "")}
}

func (w *attributeWalker) EndAttributes() rngerrors.ValidationList { return w.End() }

func (w *attributeWalker) Possible() event.Set { return nil }

func (w *attributeWalker) PossibleAttributes() event.Set {
	var s event.Set
	switch w.phase {
	case attributeExpectName:
		s.AddNamed(event.AttributeName, w.pattern.Name)
	case attributeExpectValue:
		s.AddKind(event.AttributeValue)
	}
	return s
}

func (w *attributeWalker) CanEnd() bool { return w.phase == attributeDone }

func (w *attributeWalker) CanEndAttribute() bool { return w.phase == attributeDone }

func (w *attributeWalker) Clone(memo *CloneMap) Walker {
	nw := &attributeWalker{pattern: w.pattern, phase: w.phase}
	if w.child != nil {
		nw.child = cloneChild(memo, w.child)
	}
	return nw
}
