package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// OneOrMore matches one or more repetitions of Child: the current
// repetition is fed events until it can end, at which point an event that
// the current repetition rejects is retried against a freshly instantiated
// repetition before being treated as a rejection of the whole pattern.
type OneOrMore struct {
	base
	Child Pattern
}

// NewOneOrMore returns the OneOrMore pattern over child.
func NewOneOrMore(child Pattern) *OneOrMore {
	return &OneOrMore{base: base{emptyMatch: child.hasEmptyMatch(), attrs: child.hasAttrs()}, Child: child}
}

func (p *OneOrMore) NewWalker() Walker {
	return &oneOrMoreWalker{pattern: p, current: p.Child.NewWalker()}
}

type oneOrMoreWalker struct {
	pattern *OneOrMore
	current Walker
}

func (w *oneOrMoreWalker) FireEvent(ev event.Event) FireResult {
	if res := w.current.FireEvent(ev); res.Matched {
		return res
	}
	if w.current.CanEnd() {
		fresh := w.pattern.Child.NewWalker()
		if res := fresh.FireEvent(ev); res.Matched {
			w.current = fresh
			return res
		}
	}
	return rejected()
}

func (w *oneOrMoreWalker) End() rngerrors.ValidationList { return w.current.End() }

func (w *oneOrMoreWalker) EndAttributes() rngerrors.ValidationList { return w.current.EndAttributes() }

func (w *oneOrMoreWalker) Possible() event.Set {
	s := w.current.Possible()
	if w.current.CanEnd() {
		fresh := w.pattern.Child.NewWalker()
		var union event.Set
		union.Union(s)
		union.Union(fresh.Possible())
		return union
	}
	return s
}

func (w *oneOrMoreWalker) PossibleAttributes() event.Set {
	s := w.current.PossibleAttributes()
	if w.current.CanEndAttribute() {
		fresh := w.pattern.Child.NewWalker()
		var union event.Set
		union.Union(s)
		union.Union(fresh.PossibleAttributes())
		return union
	}
	return s
}

func (w *oneOrMoreWalker) CanEnd() bool { return w.current.CanEnd() }

func (w *oneOrMoreWalker) CanEndAttribute() bool { return w.current.CanEndAttribute() }

func (w *oneOrMoreWalker) Clone(memo *CloneMap) Walker {
	return &oneOrMoreWalker{pattern: w.pattern, current: cloneChild(memo, w.current)}
}
