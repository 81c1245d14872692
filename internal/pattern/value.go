package pattern

import (
	"fmt"

	"github.com/jacoelho/salve-go/internal/datatype"
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Value matches a run of Text events whose concatenated string, parsed
// through Datatype, equals (per Datatype.Equal) the literal Raw. The
// literal's own value is parsed once, at construction, against Context —
// fixed at schema-load time, since <value> carries no instance-time context
// of its own.
type Value struct {
	base
	Datatype datatype.Type
	Raw      string
	Context  *datatype.Context
	expected datatype.Value
}

// NewValue parses Raw against Datatype and returns the Value pattern, or an
// error if Raw is not itself a legal lexical value for Datatype — a
// schema-loading mistake, not an instance-time one.
func NewValue(dt datatype.Type, raw string, ctx *datatype.Context) (*Value, error) {
	expected, err := dt.ParseValue(raw, ctx)
	if err != nil {
		return nil, fmt.Errorf("pattern: value %q is not a legal %s literal: %w", raw, dt.Name(), err)
	}
	return &Value{
		base:     base{emptyMatch: false},
		Datatype: dt,
		Raw:      raw,
		Context:  ctx,
		expected: expected,
	}, nil
}

func (p *Value) NewWalker() Walker { return &valueWalker{pattern: p} }

type valueWalker struct {
	pattern *Value
	text    string
}

func (w *valueWalker) FireEvent(ev event.Event) FireResult {
	if ev.Kind != event.Text {
		return rejected()
	}
	w.text += ev.Value
	return matched()
}

func (w *valueWalker) End() rngerrors.ValidationList {
	actual, err := w.pattern.Datatype.ParseValue(w.text, w.pattern.Context)
	if err != nil {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrValueValidation, "",
			"%q is not a legal %s value: %v", w.text, w.pattern.Datatype.Name(), err)}
	}
	if !w.pattern.Datatype.Equal(actual, w.pattern.expected) {
		return rngerrors.ValidationList{rngerrors.Newf(rngerrors.ErrValueValidation, "",
			"%q does not equal the expected value %q", w.text, w.pattern.Raw)}
	}
	return nil
}

func (w *valueWalker) EndAttributes() rngerrors.ValidationList { return w.End() }

func (w *valueWalker) Possible() event.Set { return event.Set{{Kind: event.Text}} }

func (w *valueWalker) PossibleAttributes() event.Set { return nil }

func (w *valueWalker) CanEnd() bool { return w.End() == nil }

func (w *valueWalker) CanEndAttribute() bool { return w.CanEnd() }

func (w *valueWalker) Clone(*CloneMap) Walker {
	return &valueWalker{pattern: w.pattern, text: w.text}
}
