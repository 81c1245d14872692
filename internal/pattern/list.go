package pattern

import (
	"strings"

	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// List matches a run of Text events whose concatenated string, split on
// whitespace, feeds each token as an independent Text event to a fresh
// Child walker in sequence — <list> tokenization, distinct from the
// whitespace tokenization a datatype library's own list types do internally
// for a single token's worth of content.
type List struct {
	base
	Child Pattern
}

// NewList returns the List pattern wrapping child.
func NewList(child Pattern) *List {
	return &List{base: base{emptyMatch: false, attrs: child.hasAttrs()}, Child: child}
}

func (p *List) NewWalker() Walker { return &listWalker{pattern: p} }

type listWalker struct {
	pattern *List
	text    string
}

func (w *listWalker) FireEvent(ev event.Event) FireResult {
	if ev.Kind != event.Text {
		return rejected()
	}
	w.text += ev.Value
	return matched()
}

func (w *listWalker) End() rngerrors.ValidationList {
	child := w.pattern.Child.NewWalker()
	for _, tok := range strings.Fields(w.text) {
		res := child.FireEvent(event.TextEvent(tok))
		if !res.Matched {
			return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrValueValidation, "",
				"list token %q rejected", tok)}
		}
	}
	return child.End()
}

func (w *listWalker) EndAttributes() rngerrors.ValidationList { return w.End() }

func (w *listWalker) Possible() event.Set { return event.Set{{Kind: event.Text}} }

func (w *listWalker) PossibleAttributes() event.Set { return nil }

func (w *listWalker) CanEnd() bool { return w.End() == nil }

func (w *listWalker) CanEndAttribute() bool { return w.CanEnd() }

func (w *listWalker) Clone(*CloneMap) Walker {
	return &listWalker{pattern: w.pattern, text: w.text}
}
