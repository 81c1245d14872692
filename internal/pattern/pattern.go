// Package pattern implements the Relax NG simple-form pattern tree and its
// matching walkers: an incremental, event-driven derivative-style automaton.
// Patterns are immutable once built by the loader; a Walker is a mutable
// cursor over one pattern that advances as events are fired against it.
package pattern

import (
	"github.com/jacoelho/salve-go/internal/event"
	rngerrors "github.com/jacoelho/salve-go/errors"
)

// Pattern is one node of the immutable pattern tree. The variant set is
// closed: Empty, NotAllowed, Text, Ref, Define, Value, Data, List, Group,
// Interleave, Choice, OneOrMore, Element, Attribute, Grammar.
type Pattern interface {
	// NewWalker returns a walker positioned at the start of this pattern.
	NewWalker() Walker
	// hasEmptyMatch reports whether the pattern matches the empty sequence
	// of events, memoized at construction time.
	hasEmptyMatch() bool
	// hasAttrs reports whether the pattern (or a descendant reachable
	// without crossing an Element boundary) can contain Attribute patterns.
	hasAttrs() bool
}

// FireResult is the outcome of firing one event against a Walker.
type FireResult struct {
	// Matched is true if the walker accepted the event and advanced.
	Matched bool
	// Errors carries findings when the event was rejected, or augments an
	// accepted event with deferred findings (e.g. a datatype mismatch that
	// doesn't itself block walking a choice branch further).
	Errors rngerrors.ValidationList
}

func matched() FireResult { return FireResult{Matched: true} }

func rejected(errs ...rngerrors.Validation) FireResult {
	return FireResult{Matched: false, Errors: rngerrors.ValidationList(errs)}
}

// Walker is a mutable cursor over a Pattern. It is owned by one goroutine;
// Clone is the only way to duplicate its state for backtracking branches
// (Choice, Interleave) or repeated content (OneOrMore).
type Walker interface {
	FireEvent(ev event.Event) FireResult
	End() rngerrors.ValidationList
	EndAttributes() rngerrors.ValidationList
	Possible() event.Set
	PossibleAttributes() event.Set
	CanEnd() bool
	CanEndAttribute() bool
	Clone(memo *CloneMap) Walker
}

// CloneMap preserves pointer identity while cloning a walker subtree, so
// that a DAG produced by Ref-sharing (several Choice branches pointing at
// the same Define) clones to a DAG rather than being duplicated into a tree.
type CloneMap struct {
	seen map[Walker]Walker
}

// NewCloneMap returns an empty clone map.
func NewCloneMap() *CloneMap {
	return &CloneMap{seen: make(map[Walker]Walker)}
}

// cloneOnce returns the existing clone of w if one was already produced
// during this Clone() call, or invokes make and remembers the result.
func (m *CloneMap) cloneOnce(w Walker, make func() Walker) Walker {
	if clone, ok := m.seen[w]; ok {
		return clone
	}
	clone := make()
	m.seen[w] = clone
	return clone
}

// base is embedded by every concrete Pattern to hold the two memoized
// booleans computed once at construction.
type base struct {
	emptyMatch bool
	attrs      bool
}

func (b base) hasEmptyMatch() bool { return b.emptyMatch }
func (b base) hasAttrs() bool      { return b.attrs }

// cloneChild clones a sub-walker through memo, so that a sub-walker shared
// by identity between two composite walkers (a DAG produced by Ref-sharing
// under a Choice) clones to a shared clone rather than two independent copies.
func cloneChild(memo *CloneMap, w Walker) Walker {
	return memo.cloneOnce(w, func() Walker { return w.Clone(memo) })
}
