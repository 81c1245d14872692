package pattern

import (
	"github.com/jacoelho/salve-go/internal/datatype"
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Data matches a run of Text events whose concatenated string satisfies
// Datatype's Params and is not matched by Except, if present.
type Data struct {
	base
	Datatype datatype.Type
	Params   datatype.ParamBag
	Context  *datatype.Context
	Except   Pattern // nil if the <data> carries no <except>
}

// NewData returns the Data pattern.
func NewData(dt datatype.Type, params datatype.ParamBag, ctx *datatype.Context, except Pattern) *Data {
	return &Data{
		base:     base{emptyMatch: false},
		Datatype: dt,
		Params:   params,
		Context:  ctx,
		Except:   except,
	}
}

func (p *Data) NewWalker() Walker { return &dataWalker{pattern: p} }

type dataWalker struct {
	pattern *Data
	text    string
}

func (w *dataWalker) FireEvent(ev event.Event) FireResult {
	if ev.Kind != event.Text {
		return rejected()
	}
	w.text += ev.Value
	return matched()
}

func (w *dataWalker) End() rngerrors.ValidationList {
	if v := w.pattern.Datatype.Disallows(w.text, w.pattern.Params, w.pattern.Context); v != nil {
		return rngerrors.ValidationList{*v}
	}
	if w.pattern.Except != nil && w.exceptMatches() {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrValueValidation, "",
			"%q matches the excepted value for type %s", w.text, w.pattern.Datatype.Name())}
	}
	return nil
}

// exceptMatches feeds the accumulated text to a fresh Except walker and
// reports whether it accepts and can end on it — i.e. whether Except
// itself considers this text a match.
func (w *dataWalker) exceptMatches() bool {
	except := w.pattern.Except.NewWalker()
	res := except.FireEvent(event.TextEvent(w.text))
	if !res.Matched {
		return false
	}
	return except.End() == nil
}

func (w *dataWalker) EndAttributes() rngerrors.ValidationList { return w.End() }

func (w *dataWalker) Possible() event.Set { return event.Set{{Kind: event.Text}} }

func (w *dataWalker) PossibleAttributes() event.Set { return nil }

func (w *dataWalker) CanEnd() bool { return w.End() == nil }

func (w *dataWalker) CanEndAttribute() bool { return w.CanEnd() }

func (w *dataWalker) Clone(*CloneMap) Walker {
	return &dataWalker{pattern: w.pattern, text: w.text}
}
