package nameclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameMatch(t *testing.T) {
	n := Name{NS: "urn:a", Local: "foo"}
	assert.True(t, n.Match("urn:a", "foo"))
	assert.False(t, n.Match("urn:a", "bar"))
	assert.False(t, n.Match("urn:b", "foo"))
}

func TestNsNameMatch(t *testing.T) {
	n := NsName{NS: "urn:a"}
	assert.True(t, n.Match("urn:a", "foo"))
	assert.False(t, n.Match("urn:b", "foo"))

	withExcept := NsName{NS: "urn:a", Except: Name{NS: "urn:a", Local: "bar"}}
	assert.True(t, withExcept.Match("urn:a", "foo"))
	assert.False(t, withExcept.Match("urn:a", "bar"))
}

func TestAnyNameMatch(t *testing.T) {
	var any AnyName
	assert.True(t, any.Match("urn:a", "foo"))
	assert.True(t, any.Match("", "bar"))

	withExcept := AnyName{Except: Name{NS: "urn:a", Local: "bar"}}
	assert.True(t, withExcept.Match("urn:a", "foo"))
	assert.False(t, withExcept.Match("urn:a", "bar"))
}

func TestNameChoiceMatch(t *testing.T) {
	choice := NameChoice{A: Name{NS: "urn:a", Local: "foo"}, B: Name{NS: "urn:a", Local: "bar"}}
	assert.True(t, choice.Match("urn:a", "foo"))
	assert.True(t, choice.Match("urn:a", "bar"))
	assert.False(t, choice.Match("urn:a", "baz"))
}

func TestEnumerate(t *testing.T) {
	n := Name{NS: "urn:a", Local: "foo"}
	names, ok := n.Enumerate()
	assert.True(t, ok)
	assert.Equal(t, []ExpandedName{{NS: "urn:a", Local: "foo"}}, names)

	var any AnyName
	_, ok = any.Enumerate()
	assert.False(t, ok)

	ns := NsName{NS: "urn:a"}
	_, ok = ns.Enumerate()
	assert.False(t, ok)

	choice := NameChoice{A: Name{NS: "urn:a", Local: "foo"}, B: Name{NS: "urn:a", Local: "bar"}}
	names, ok = choice.Enumerate()
	assert.True(t, ok)
	assert.ElementsMatch(t, []ExpandedName{{NS: "urn:a", Local: "foo"}, {NS: "urn:a", Local: "bar"}}, names)

	mixed := NameChoice{A: Name{NS: "urn:a", Local: "foo"}, B: AnyName{}}
	_, ok = mixed.Enumerate()
	assert.False(t, ok)
}
