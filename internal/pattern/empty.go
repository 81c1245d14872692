package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Empty matches only the empty sequence of events.
type Empty struct{ base }

// NewEmpty returns the Empty pattern.
func NewEmpty() *Empty { return &Empty{base: base{emptyMatch: true}} }

func (p *Empty) NewWalker() Walker { return emptyWalker{} }

type emptyWalker struct{}

func (emptyWalker) FireEvent(event.Event) FireResult { return rejected() }
func (emptyWalker) End() rngerrors.ValidationList    { return nil }
func (emptyWalker) EndAttributes() rngerrors.ValidationList { return nil }
func (emptyWalker) Possible() event.Set              { return nil }
func (emptyWalker) PossibleAttributes() event.Set     { return nil }
func (emptyWalker) CanEnd() bool                      { return true }
func (emptyWalker) CanEndAttribute() bool             { return true }
func (w emptyWalker) Clone(*CloneMap) Walker          { return w }
