package datatype

import (
	"math/big"
	"regexp"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

func bigFromInt64(n int64) *big.Int { return big.NewInt(n) }

// boundedInteger builds the facetSpec for one of the bounded integer
// derivations of xsd:integer (nonNegativeInteger, int, unsignedByte, ...).
func boundedInteger(name string, min, max *big.Int) facetSpec {
	return facetSpec{
		name:              name,
		whiteSpaceDefault: wsCollapse,
		lengthOf:          nil,
		validateLexical:   validateIntegerRange(min, max),
		parseOrdered:      parseIntegerOrderedRange(min, max),
		digitsOf:          decimalDigits,
	}
}

// stringFacetSpec builds the facetSpec shared by token-derived string types.
func stringFacetSpec(name string, validate func(string) error) facetSpec {
	return facetSpec{
		name:              name,
		whiteSpaceDefault: wsCollapse,
		lengthOf:          runeLen,
		validateLexical:   validate,
	}
}

// qnameFacetSpec builds the facetSpec for QName: lexically a prefix:local
// pair, but a value is only fully known once its prefix is resolved against
// the in-scope namespace bindings captured at schema-load time.
func qnameFacetSpec() facetSpec {
	return facetSpec{
		name:              "QName",
		whiteSpaceDefault: wsCollapse,
		lengthOf:          runeLen,
		validateLexical:   lexicalMustMatch(reQName, "QName"),
		needsContext:      true,
		resolveContext:    resolveQNamePrefix,
	}
}

// xsdSpecs is the table of every XSD built-in datatype this library
// supports, keyed by local name.
var xsdSpecs = buildXSDSpecs()

func buildXSDSpecs() map[string]facetSpec {
	specs := map[string]facetSpec{
		"string": {
			name:              "string",
			whiteSpaceDefault: wsPreserve,
			lengthOf:          runeLen,
		},
		"normalizedString": {
			name:              "normalizedString",
			whiteSpaceDefault: wsReplace,
			lengthOf:          runeLen,
		},
		"token":        stringFacetSpec("token", nil),
		"language":     stringFacetSpec("language", lexicalMustMatch(reLanguage, "language")),
		"Name":         stringFacetSpec("Name", lexicalMustMatch(reName, "Name")),
		"NCName":       stringFacetSpec("NCName", lexicalMustMatch(reNCName, "NCName")),
		"NMTOKEN":      stringFacetSpec("NMTOKEN", lexicalMustMatch(reNMToken, "NMTOKEN")),
		"ID":           stringFacetSpec("ID", lexicalMustMatch(reNCName, "ID")),
		"IDREF":        stringFacetSpec("IDREF", lexicalMustMatch(reNCName, "IDREF")),
		"ENTITY":       stringFacetSpec("ENTITY", lexicalMustMatch(reNCName, "ENTITY")),
		"anyURI":       stringFacetSpec("anyURI", validateAnyURI),
		"QName":        qnameFacetSpec(),
		"base64Binary": {
			name:              "base64Binary",
			whiteSpaceDefault: wsCollapse,
			lengthOf:          base64DecodedLen,
			validateLexical:   validateBase64Binary,
		},
		"hexBinary": {
			name:              "hexBinary",
			whiteSpaceDefault: wsCollapse,
			lengthOf:          func(s string) int { return len(s) / 2 },
			validateLexical:   lexicalMustMatch(reHexBinary, "hexBinary"),
		},
		"boolean": {
			name:              "boolean",
			whiteSpaceDefault: wsCollapse,
			validateLexical:   validateBoolean,
		},
		"decimal": {
			name:              "decimal",
			whiteSpaceDefault: wsCollapse,
			validateLexical:   lexicalMustMatch(reDecimal, "decimal"),
			parseOrdered:      parseDecimalOrdered,
			digitsOf:          decimalDigits,
		},
		"integer":             boundedInteger("integer", nil, nil),
		"nonNegativeInteger":  boundedInteger("nonNegativeInteger", bigZero, nil),
		"positiveInteger":     boundedInteger("positiveInteger", bigOne, nil),
		"nonPositiveInteger":  boundedInteger("nonPositiveInteger", nil, bigZero),
		"negativeInteger":     boundedInteger("negativeInteger", nil, big.NewInt(-1)),
		"long":                boundedInteger("long", bigFromInt64(-9223372036854775808), bigFromInt64(9223372036854775807)),
		"int":                 boundedInteger("int", bigFromInt64(-2147483648), bigFromInt64(2147483647)),
		"short":               boundedInteger("short", bigFromInt64(-32768), bigFromInt64(32767)),
		"byte":                boundedInteger("byte", bigFromInt64(-128), bigFromInt64(127)),
		"unsignedLong":        boundedInteger("unsignedLong", bigZero, new(big.Int).SetUint64(18446744073709551615)),
		"unsignedInt":         boundedInteger("unsignedInt", bigZero, bigFromInt64(4294967295)),
		"unsignedShort":       boundedInteger("unsignedShort", bigZero, bigFromInt64(65535)),
		"unsignedByte":        boundedInteger("unsignedByte", bigZero, bigFromInt64(255)),
		"float": {
			name:              "float",
			whiteSpaceDefault: wsCollapse,
			validateLexical:   validateFloat(32),
			parseOrdered:      parseFloatOrdered(32),
		},
		"double": {
			name:              "double",
			whiteSpaceDefault: wsCollapse,
			validateLexical:   validateFloat(64),
			parseOrdered:      parseFloatOrdered(64),
		},
		"duration": {
			name:              "duration",
			whiteSpaceDefault: wsCollapse,
			validateLexical:   lexicalMustMatch(reDuration, "duration"),
		},
		"date":       temporalSpec("date", reDate),
		"time":       temporalSpec("time", reTime),
		"dateTime":   temporalSpec("dateTime", reDateTime),
		"gYear":      temporalSpec("gYear", reGYear),
		"gYearMonth": temporalSpec("gYearMonth", reGYearMonth),
		"gMonth":     temporalSpec("gMonth", reGMonth),
		"gMonthDay":  temporalSpec("gMonthDay", reGMonthDay),
		"gDay":       temporalSpec("gDay", reGDay),
	}
	return specs
}

func temporalSpec(name string, re *regexp.Regexp) facetSpec {
	layout := temporalLayouts[name]
	return facetSpec{
		name:              name,
		whiteSpaceDefault: wsCollapse,
		validateLexical:   validateTemporal(re, layout),
		parseOrdered:      parseTemporalOrdered(re, layout),
	}
}

func base64DecodedLen(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '=' {
			n++
		}
	}
	return (n * 3) / 4
}
