package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Text matches any sequence of zero or more Text events, with no
// constraint on their content — <text/>.
type Text struct{ base }

// NewText returns the Text pattern.
func NewText() *Text { return &Text{base: base{emptyMatch: true}} }

func (p *Text) NewWalker() Walker { return textWalker{} }

type textWalker struct{}

func (textWalker) FireEvent(ev event.Event) FireResult {
	if ev.Kind == event.Text {
		return matched()
	}
	return rejected()
}
func (textWalker) End() rngerrors.ValidationList             { return nil }
func (textWalker) EndAttributes() rngerrors.ValidationList   { return nil }
func (textWalker) Possible() event.Set                       { return event.Set{{Kind: event.Text}} }
func (textWalker) PossibleAttributes() event.Set             { return nil }
func (textWalker) CanEnd() bool                               { return true }
func (textWalker) CanEndAttribute() bool                      { return true }
func (w textWalker) Clone(*CloneMap) Walker                   { return w }
