package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/salve-go/internal/event"
)

// simpleSchemaJSON encodes, using compact ctor codes and OPTION_NO_PATHS,
// <element name="root"><attribute name="id"><data type="string"/></attribute><text/></element>
const simpleSchemaJSON = `{
	"v": 3,
	"o": 1,
	"d": [0, [], [3, [5, "", "root"],
		[10,
			[4, [5, "", "id"], [14, "", "string", []]],
			[16]
		]
	]]
}`

func TestLoadCompactBuildsWorkingGrammar(t *testing.T) {
	g, _, err := Load([]byte(simpleSchemaJSON), LoadOptions{})
	require.NoError(t, err)

	w := g.NewWalker()
	require.True(t, w.FireEvent(event.EnterStartTagEvent("", "root")).Matched)
	require.True(t, w.FireEvent(event.AttributeNameEvent("", "id")).Matched)
	require.True(t, w.FireEvent(event.AttributeValueEvent("abc")).Matched)
	require.Empty(t, w.EndAttributes())
	require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
	require.True(t, w.FireEvent(event.EndTagEvent("", "root")).Matched)
	require.Empty(t, w.End())
}

// verboseSchemaJSON is the same grammar, using verbose string ctor names
// and path strings (OPTION_NO_PATHS unset).
const verboseSchemaJSON = `{
	"v": 3,
	"o": 0,
	"d": ["Grammar", "/", [],
		["Element", "/root", ["Name", "/root", "", "root"],
			["Text", "/root/text"]
		]
	]
}`

func TestLoadVerboseWithPaths(t *testing.T) {
	g, _, err := Load([]byte(verboseSchemaJSON), LoadOptions{})
	require.NoError(t, err)

	w := g.NewWalker()
	require.True(t, w.FireEvent(event.EnterStartTagEvent("", "root")).Matched)
	require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
	require.True(t, w.FireEvent(event.EndTagEvent("", "root")).Matched)
	require.Empty(t, w.End())
}

func TestLoadResolvesRefAgainstDefine(t *testing.T) {
	// <define name="body"><text/></define>, <element name="root"><ref name="body"/></element>
	const doc = `{
		"v": 3,
		"o": 1,
		"d": [0,
			[[1, "body", [16]]],
			[3, [5, "", "root"], [2, "body"]]
		]
	}`
	g, _, err := Load([]byte(doc), LoadOptions{})
	require.NoError(t, err)

	w := g.NewWalker()
	require.True(t, w.FireEvent(event.EnterStartTagEvent("", "root")).Matched)
	require.True(t, w.FireEvent(event.LeaveStartTagEvent()).Matched)
	require.True(t, w.FireEvent(event.TextEvent("hello")).Matched)
	require.True(t, w.FireEvent(event.EndTagEvent("", "root")).Matched)
	require.Empty(t, w.End())
}

func TestLoadDanglingRefIsFatal(t *testing.T) {
	const doc = `{
		"v": 3,
		"o": 1,
		"d": [0, [], [2, "nowhere"]]
	}`
	_, _, err := Load([]byte(doc), LoadOptions{})
	require.Error(t, err)
	var refErr *RefError
	require.ErrorAs(t, err, &refErr)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	const doc = `{"v": 2, "o": 1, "d": [17]}`
	_, _, err := Load([]byte(doc), LoadOptions{})
	require.Error(t, err)
}

func TestLoadRejectsMalformedEnvelope(t *testing.T) {
	_, _, err := Load([]byte(`{not json`), LoadOptions{})
	require.Error(t, err)

	_, _, err = Load([]byte(`{"o": 1, "d": [17]}`), LoadOptions{})
	require.Error(t, err)
}

func TestLoadWiresDataToRegistry(t *testing.T) {
	// <data datatypeLibrary="xsd" type="decimal"/> directly as the top-level start
	const doc = `{
		"v": 3,
		"o": 1,
		"d": [0, [], [14, "http://www.w3.org/2001/XMLSchema-datatypes", "decimal", []]]
	}`
	g, _, err := Load([]byte(doc), LoadOptions{})
	require.NoError(t, err)

	w := g.NewWalker()
	require.True(t, w.FireEvent(event.TextEvent("3.14")).Matched)
	require.Empty(t, w.End())

	bad := g.NewWalker()
	require.True(t, bad.FireEvent(event.TextEvent("not-a-number")).Matched)
	require.NotEmpty(t, bad.End())
}

func TestLoadAllowIncompleteTypesAcceptsUnknownXSDType(t *testing.T) {
	const doc = `{
		"v": 3,
		"o": 1,
		"d": [0, [], [14, "http://www.w3.org/2001/XMLSchema-datatypes", "notARealType", []]]
	}`
	_, _, err := Load([]byte(doc), LoadOptions{AllowIncompleteTypes: false})
	require.Error(t, err)

	g, _, err := Load([]byte(doc), LoadOptions{AllowIncompleteTypes: true})
	require.NoError(t, err)
	require.NotNil(t, g)
}
