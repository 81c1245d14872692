package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinStringIdentity(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(BuiltinLibraryURI, "string")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("  padded  ", params, nil))

	a, _ := typ.ParseValue("foo", nil)
	b, _ := typ.ParseValue("foo", nil)
	assert.True(t, typ.Equal(a, b))
}

func TestBuiltinTokenCollapsesWhitespace(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(BuiltinLibraryURI, "token")
	require.NoError(t, err)

	a, err := typ.ParseValue("  foo   bar  ", nil)
	require.NoError(t, err)
	b, err := typ.ParseValue("foo bar", nil)
	require.NoError(t, err)
	assert.True(t, typ.Equal(a, b))
}

func TestXSDIntegerRangeFacets(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "integer")
	require.NoError(t, err)

	params, err := typ.ParseParams([]Param{{Name: "minInclusive", Value: "0"}, {Name: "maxInclusive", Value: "10"}})
	require.NoError(t, err)

	assert.Nil(t, typ.Disallows("5", params, nil))
	assert.NotNil(t, typ.Disallows("11", params, nil))
	assert.NotNil(t, typ.Disallows("-1", params, nil))
	assert.NotNil(t, typ.Disallows("abc", params, nil))
}

func TestXSDDecimalEquality(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "decimal")
	require.NoError(t, err)

	a, err := typ.ParseValue("1.0", nil)
	require.NoError(t, err)
	b, err := typ.ParseValue("1.00", nil)
	require.NoError(t, err)
	assert.True(t, typ.Equal(a, b))
}

func TestXSDBoundedByteRejectsOutOfRange(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "byte")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("127", params, nil))
	assert.NotNil(t, typ.Disallows("128", params, nil))
}

func TestXSDNCNamePattern(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "NCName")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("foo-bar", params, nil))
	assert.NotNil(t, typ.Disallows("1foo", params, nil))
	assert.NotNil(t, typ.Disallows("foo:bar", params, nil))
}

func TestXSDPatternFacetUsesRegexpx(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "string")
	require.NoError(t, err)

	params, err := typ.ParseParams([]Param{{Name: "pattern", Value: `[a-z]+`}})
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("hello", params, nil))
	assert.NotNil(t, typ.Disallows("HELLO", params, nil))
}

func TestXSDLengthFacetCombinationRejected(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "string")
	require.NoError(t, err)

	_, err = typ.ParseParams([]Param{{Name: "length", Value: "5"}, {Name: "minLength", Value: "1"}})
	assert.Error(t, err)
}

func TestNMTOKENSListType(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "NMTOKENS")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("foo bar baz", params, nil))
	assert.NotNil(t, typ.Disallows("foo bar!baz", params, nil))
}

func TestUnknownXSDTypeFailsClosedByDefault(t *testing.T) {
	r := NewRegistry(false)
	_, err := r.Lookup(XSDLibraryURI, "notAnXSDType")
	assert.Error(t, err)
}

func TestUnknownXSDTypeAllowedWhenIncomplete(t *testing.T) {
	r := NewRegistry(true)
	typ, err := r.Lookup(XSDLibraryURI, "notAnXSDType")
	require.NoError(t, err)
	assert.Contains(t, r.Incomplete(), "notAnXSDType")
	assert.NotNil(t, typ.Disallows("anything", nil, nil))
}

func TestXSDPatternFacetsCombineWithOR(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "string")
	require.NoError(t, err)

	params, err := typ.ParseParams([]Param{
		{Name: "pattern", Value: `[a-z]+`},
		{Name: "pattern", Value: `[0-9]+`},
	})
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("hello", params, nil))
	assert.Nil(t, typ.Disallows("12345", params, nil))
	assert.NotNil(t, typ.Disallows("HELLO!", params, nil))
}

func TestXSDQNameRequiresContextForPrefixedValue(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "QName")
	require.NoError(t, err)
	assert.True(t, typ.NeedsContext())

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	assert.NotNil(t, typ.Disallows("foo:bar", params, nil))
}

func TestXSDQNameResolvesBoundPrefix(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "QName")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	ctx := &Context{ResolvePrefix: func(prefix string) (string, bool) {
		if prefix == "foo" {
			return "urn:example:foo", true
		}
		return "", false
	}}
	assert.Nil(t, typ.Disallows("foo:bar", params, ctx))
	assert.NotNil(t, typ.Disallows("baz:bar", params, ctx))
}

func TestXSDQNameUnprefixedNeedsNoContext(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "QName")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("bar", params, nil))
}

func TestXSDQNameXMLPrefixIsImplicit(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "QName")
	require.NoError(t, err)

	params, err := typ.ParseParams(nil)
	require.NoError(t, err)
	ctx := &Context{ResolvePrefix: func(prefix string) (string, bool) { return "", false }}
	assert.Nil(t, typ.Disallows("xml:lang", params, ctx))

	wrongCtx := &Context{ResolvePrefix: func(prefix string) (string, bool) { return "urn:not-xml", true }}
	assert.NotNil(t, typ.Disallows("xml:lang", params, wrongCtx))
}

func TestXSDDateOrdering(t *testing.T) {
	r := NewRegistry(false)
	typ, err := r.Lookup(XSDLibraryURI, "date")
	require.NoError(t, err)

	params, err := typ.ParseParams([]Param{{Name: "minInclusive", Value: "2020-01-01"}})
	require.NoError(t, err)
	assert.Nil(t, typ.Disallows("2021-06-15", params, nil))
	assert.NotNil(t, typ.Disallows("2019-12-31", params, nil))
}
