package salve_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	salve "github.com/jacoelho/salve-go"
)

func TestLoadWithOptionsSurfacesIncompleteTypes(t *testing.T) {
	const doc = `{
		"v": 3,
		"o": 1,
		"d": [0, [], [14, "http://www.w3.org/2001/XMLSchema-datatypes", "notARealType", []]]
	}`

	if _, err := salve.Load([]byte(doc)); err == nil {
		t.Fatal("Load() err = nil, want unrecognized datatype error")
	}

	opts := salve.NewLoadOptions().WithAllowIncompleteTypes(true)
	schema, err := salve.LoadWithOptions([]byte(doc), opts)
	require.NoError(t, err)
	require.Equal(t, []string{"notARealType"}, schema.Incomplete())
}

func TestSchemaValidateRejectsInvalidDocument(t *testing.T) {
	schema, err := salve.Load([]byte(personSchema))
	require.NoError(t, err)

	err = schema.Validate(strings.NewReader(`<person><name>John</name></person>`))
	require.Error(t, err)
}

func TestSchemaValidateRejectsMalformedXML(t *testing.T) {
	schema, err := salve.Load([]byte(personSchema))
	require.NoError(t, err)

	err = schema.Validate(strings.NewReader(`<person><name>John</name`))
	require.Error(t, err)
}

func TestNilSchemaValidateReturnsSchemaNotLoadedError(t *testing.T) {
	var schema *salve.Schema
	err := schema.Validate(strings.NewReader(`<root/>`))
	require.Error(t, err)
}

func TestSchemaValidateRejectsNilReader(t *testing.T) {
	schema, err := salve.Load([]byte(personSchema))
	require.NoError(t, err)

	err = schema.Validate(nil)
	require.Error(t, err)
}

func TestLoadFileReturnsErrorForMissingFile(t *testing.T) {
	_, err := salve.LoadFile("testdata/does-not-exist.json")
	require.Error(t, err)
}
