package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// NotAllowed matches nothing at all — the empty set of sequences, not even
// the empty one. It arises from <notAllowed/> and from simplifying away
// impossible constructs, e.g. an Except that subtracts everything.
type NotAllowed struct{ base }

// NewNotAllowed returns the NotAllowed pattern.
func NewNotAllowed() *NotAllowed { return &NotAllowed{base: base{emptyMatch: false}} }

func (p *NotAllowed) NewWalker() Walker { return notAllowedWalker{} }

type notAllowedWalker struct{}

func (notAllowedWalker) FireEvent(event.Event) FireResult { return rejected() }
func (notAllowedWalker) End() rngerrors.ValidationList {
	return rngerrors.ValidationList{rngerrors.New(rngerrors.ErrValidation, "notAllowed pattern can never end", "")}
}
func (notAllowedWalker) EndAttributes() rngerrors.ValidationList { return notAllowedWalker{}.End() }
func (notAllowedWalker) Possible() event.Set                     { return nil }
func (notAllowedWalker) PossibleAttributes() event.Set           { return nil }
func (notAllowedWalker) CanEnd() bool                            { return false }
func (notAllowedWalker) CanEndAttribute() bool                   { return false }
func (w notAllowedWalker) Clone(*CloneMap) Walker                { return w }
