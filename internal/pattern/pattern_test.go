package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/salve-go/internal/datatype"
	"github.com/jacoelho/salve-go/internal/event"
	"github.com/jacoelho/salve-go/internal/nameclass"
)

func stringType(t *testing.T) datatype.Type {
	t.Helper()
	dt, err := datatype.NewRegistry(false).Lookup(datatype.BuiltinLibraryURI, "string")
	require.NoError(t, err)
	return dt
}

func TestTextMatchesAnyRunOfTextEvents(t *testing.T) {
	w := NewText().NewWalker()
	require.True(t, w.FireEvent(event.TextEvent("a")).Matched)
	require.True(t, w.FireEvent(event.TextEvent("b")).Matched)
	require.Empty(t, w.End())
}

func TestEmptyRejectsAnyEvent(t *testing.T) {
	w := NewEmpty().NewWalker()
	require.Empty(t, w.End())
	require.False(t, w.FireEvent(event.TextEvent("x")).Matched)
}

func TestNotAllowedRejectsEverythingAndNeverEnds(t *testing.T) {
	w := NewNotAllowed().NewWalker()
	require.False(t, w.FireEvent(event.TextEvent("x")).Matched)
	require.NotEmpty(t, w.End())
}

func TestGroupOfNullableTextsCanEndAndAcceptsText(t *testing.T) {
	g := NewGroup(NewText(), NewText())
	w := g.NewWalker()
	require.Empty(t, w.End())
	require.True(t, w.FireEvent(event.TextEvent("a")).Matched)
}

func TestChoicePrefersWhicheverBranchAccepts(t *testing.T) {
	c := NewChoice(NewEmpty(), NewText())
	w := c.NewWalker()
	require.Empty(t, w.End())
	require.True(t, w.FireEvent(event.TextEvent("a")).Matched)
	require.Empty(t, w.End())
}

func TestChoiceRejectsWhenNoBranchAccepts(t *testing.T) {
	c := NewChoice(NewEmpty(), NewEmpty())
	w := c.NewWalker()
	require.False(t, w.FireEvent(event.TextEvent("a")).Matched)
}

func TestOneOrMoreRequiresAtLeastOneRepetition(t *testing.T) {
	o := NewOneOrMore(NewElement(nameclass.Name{Local: "item"}, NewEmpty()))
	w := o.NewWalker()
	require.NotEmpty(t, w.End())

	require.True(t, w.FireEvent(event.EnterStartTagEvent("", "item")).Matched)
	require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
	require.True(t, w.FireEvent(event.EndTagEvent("", "item")).Matched)
	require.Empty(t, w.End())
}

func TestOneOrMoreAcceptsSeveralRepetitions(t *testing.T) {
	o := NewOneOrMore(NewElement(nameclass.Name{Local: "item"}, NewEmpty()))
	w := o.NewWalker()
	for i := 0; i < 3; i++ {
		require.True(t, w.FireEvent(event.EnterStartTagEvent("", "item")).Matched)
		require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
		require.True(t, w.FireEvent(event.EndTagEvent("", "item")).Matched)
	}
	require.Empty(t, w.End())
}

func TestInterleaveAcceptsEitherOrder(t *testing.T) {
	itemA := NewElement(nameclass.Name{Local: "a"}, NewEmpty())
	itemB := NewElement(nameclass.Name{Local: "b"}, NewEmpty())

	fireElement := func(w Walker, local string) {
		require.True(t, w.FireEvent(event.EnterStartTagEvent("", local)).Matched)
		require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
		require.True(t, w.FireEvent(event.EndTagEvent("", local)).Matched)
	}

	il := NewInterleave(itemA, itemB)
	w1 := il.NewWalker()
	fireElement(w1, "a")
	fireElement(w1, "b")
	require.Empty(t, w1.End())

	w2 := il.NewWalker()
	fireElement(w2, "b")
	fireElement(w2, "a")
	require.Empty(t, w2.End())
}

func TestElementGatesAttributesBeforeLeaveStartTag(t *testing.T) {
	attr := NewAttribute(nameclass.Name{Local: "id"}, NewData(stringType(t), nil, nil, nil))
	el := NewElement(nameclass.Name{Local: "root"}, NewGroup(attr, NewText()))
	w := el.NewWalker()

	require.True(t, w.FireEvent(event.EnterStartTagEvent("", "root")).Matched)
	require.True(t, w.FireEvent(event.AttributeNameEvent("", "id")).Matched)
	require.True(t, w.FireEvent(event.AttributeValueEvent("x")).Matched)
	require.Empty(t, w.EndAttributes())
	require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
	require.True(t, w.FireEvent(event.TextEvent("hello")).Matched)
	require.True(t, w.FireEvent(event.EndTagEvent("", "root")).Matched)
	require.Empty(t, w.End())
}

func TestElementRejectsUnexpectedAttribute(t *testing.T) {
	el := NewElement(nameclass.Name{Local: "root"}, NewEmpty())
	w := el.NewWalker()

	require.True(t, w.FireEvent(event.EnterStartTagEvent("", "root")).Matched)
	require.False(t, w.FireEvent(event.AttributeNameEvent("", "unexpected")).Matched)
}

func TestValueRequiresExactDatatypeEqualText(t *testing.T) {
	v, err := NewValue(stringType(t), "hello", nil)
	require.NoError(t, err)
	w := v.NewWalker()
	require.True(t, w.FireEvent(event.TextEvent("hello")).Matched)
	require.Empty(t, w.End())
}

func TestValueRejectsMismatchedText(t *testing.T) {
	v, err := NewValue(stringType(t), "hello", nil)
	require.NoError(t, err)
	w := v.NewWalker()
	require.True(t, w.FireEvent(event.TextEvent("goodbye")).Matched)
	require.NotEmpty(t, w.End())
}

func TestRefResolvesThroughDefine(t *testing.T) {
	define := NewDefine("body", NewText())
	ref := NewRef("body")
	ref.Resolve(define)

	w := ref.NewWalker()
	require.True(t, w.FireEvent(event.TextEvent("hello")).Matched)
	require.Empty(t, w.End())
}

func TestGrammarDefineByNameFindsRegisteredDefines(t *testing.T) {
	define := NewDefine("body", NewText())
	g := NewGrammar(NewElement(nameclass.Name{Local: "root"}, NewEmpty()), []*Define{define})

	found, ok := g.DefineByName("body")
	require.True(t, ok)
	require.Same(t, define, found)

	_, ok = g.DefineByName("missing")
	require.False(t, ok)
}

func TestListMatchesWhitespaceSeparatedTextAsOneUnit(t *testing.T) {
	l := NewList(NewText())
	w := l.NewWalker()
	require.True(t, w.FireEvent(event.TextEvent("a b c")).Matched)
	require.Empty(t, w.End())
}
