package datatype

import (
	"strconv"
	"unicode/utf8"

	rngerrors "github.com/jacoelho/salve-go/errors"
	"github.com/jacoelho/salve-go/internal/regexpx"
)

// facetBag holds one type instance's compiled <param> facets. Every field
// is optional; a nil/zero field means the facet was not supplied.
type facetBag struct {
	whiteSpace     whiteSpaceFacet
	minLength      *int
	maxLength      *int
	length         *int
	patterns       []regexpx.Matcher
	enumeration    []string // normalized lexical forms, compared post-whiteSpace
	totalDigits    *int
	fractionDigits *int
	minInclusive   orderable
	maxInclusive   orderable
	minExclusive   orderable
	maxExclusive   orderable
}

// facetSpec configures the generic xsdType for one concrete XSD datatype:
// how to measure length, how (if at all) to parse an ordered value out of a
// normalized lexical string, and how to check the lexical form is valid at all.
type facetSpec struct {
	name              string
	whiteSpaceDefault whiteSpaceFacet
	// lengthOf measures a value's length in the unit the spec's length
	// facets apply in (characters for strings, decoded bytes for binary).
	lengthOf func(normalized string) int
	// validateLexical reports a lexical-space error independent of facets
	// (e.g. "true" vs "banana" for boolean), or nil if raw is well-formed.
	validateLexical func(normalized string) error
	// parseOrdered parses normalized into an orderable, for types the
	// minInclusive/.../maxExclusive range facets apply to. ok=false means
	// the type has no total/partial order (range facets are then rejected
	// at ParseParams time).
	parseOrdered func(normalized string) (orderable, bool, error)
	// digitsOf reports the total/fraction digit counts, for totalDigits and
	// fractionDigits. ok=false rejects those facets for this type.
	digitsOf func(normalized string) (total, fraction int, ok bool)
	// needsContext reports whether this type's lexical value cannot be
	// fully interpreted without the schema-time namespace context (QName).
	needsContext bool
	// resolveContext performs the context-dependent half of lexical
	// validation, run after validateLexical. nil for types with no such
	// dependency.
	resolveContext func(normalized string, ctx *Context) error
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// parseParams compiles the <param> list per the given spec's capabilities.
func (spec facetSpec) parseParams(params []Param) (*facetBag, error) {
	bag := &facetBag{whiteSpace: spec.whiteSpaceDefault}
	var sawLength, sawMinLength, sawMaxLength bool

	for _, p := range params {
		switch p.Name {
		case "whiteSpace":
			switch p.Value {
			case "preserve":
				bag.whiteSpace = wsPreserve
			case "replace":
				bag.whiteSpace = wsReplace
			case "collapse":
				bag.whiteSpace = wsCollapse
			default:
				return nil, newParameterError("datatype %q: invalid whiteSpace value %q", spec.name, p.Value)
			}
		case "length":
			if spec.lengthOf == nil {
				return nil, newParameterError("datatype %q: length does not apply to this type", spec.name)
			}
			n, err := parseNonNegativeParam(spec.name, "length", p.Value)
			if err != nil {
				return nil, err
			}
			bag.length = &n
			sawLength = true
		case "minLength":
			if spec.lengthOf == nil {
				return nil, newParameterError("datatype %q: minLength does not apply to this type", spec.name)
			}
			n, err := parseNonNegativeParam(spec.name, "minLength", p.Value)
			if err != nil {
				return nil, err
			}
			bag.minLength = &n
			sawMinLength = true
		case "maxLength":
			if spec.lengthOf == nil {
				return nil, newParameterError("datatype %q: maxLength does not apply to this type", spec.name)
			}
			n, err := parseNonNegativeParam(spec.name, "maxLength", p.Value)
			if err != nil {
				return nil, err
			}
			bag.maxLength = &n
			sawMaxLength = true
		case "totalDigits":
			n, err := parsePositiveParam(spec.name, "totalDigits", p.Value)
			if err != nil {
				return nil, err
			}
			if spec.digitsOf == nil {
				return nil, newParameterError("datatype %q: totalDigits does not apply to this type", spec.name)
			}
			bag.totalDigits = &n
		case "fractionDigits":
			n, err := parseNonNegativeParam(spec.name, "fractionDigits", p.Value)
			if err != nil {
				return nil, err
			}
			if spec.digitsOf == nil {
				return nil, newParameterError("datatype %q: fractionDigits does not apply to this type", spec.name)
			}
			bag.fractionDigits = &n
		case "pattern":
			m, err := regexpx.Compile(p.Value)
			if err != nil {
				return nil, newParameterError("datatype %q: invalid pattern %q: %v", spec.name, p.Value, err)
			}
			bag.patterns = append(bag.patterns, m)
		case "enumeration":
			bag.enumeration = append(bag.enumeration, p.Value)
		case "minInclusive", "maxInclusive", "minExclusive", "maxExclusive":
			if spec.parseOrdered == nil {
				return nil, newParameterError("datatype %q: %s does not apply to this type", spec.name, p.Name)
			}
			ord, ok, err := spec.parseOrdered(applyWhiteSpace(wsCollapse, p.Value))
			if err != nil || !ok {
				return nil, newParameterError("datatype %q: invalid %s value %q", spec.name, p.Name, p.Value)
			}
			switch p.Name {
			case "minInclusive":
				bag.minInclusive = ord
			case "maxInclusive":
				bag.maxInclusive = ord
			case "minExclusive":
				bag.minExclusive = ord
			case "maxExclusive":
				bag.maxExclusive = ord
			}
		default:
			return nil, newParameterError("datatype %q: unknown facet %q", spec.name, p.Name)
		}
	}

	if sawLength && (sawMinLength || sawMaxLength) {
		return nil, newParameterError("datatype %q: length cannot be combined with minLength/maxLength", spec.name)
	}
	if bag.minLength != nil && bag.maxLength != nil && *bag.minLength > *bag.maxLength {
		return nil, newParameterError("datatype %q: minLength %d > maxLength %d", spec.name, *bag.minLength, *bag.maxLength)
	}
	return bag, nil
}

func parseNonNegativeParam(typeName, facet, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, newParameterError("datatype %q: %s must be a non-negative integer, got %q", typeName, facet, raw)
	}
	return n, nil
}

func parsePositiveParam(typeName, facet, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, newParameterError("datatype %q: %s must be a positive integer, got %q", typeName, facet, raw)
	}
	return n, nil
}

// check validates a normalized lexical value against a compiled facetBag,
// given its parsed ordered value (nil if the type has no order).
func (spec facetSpec) check(bag *facetBag, raw, normalized string, ord orderable) *rngerrors.Validation {
	if bag.length != nil && spec.lengthOf(normalized) != *bag.length {
		return valueError(spec.name, raw, "value %q has length %d, want exactly %d", raw, spec.lengthOf(normalized), *bag.length)
	}
	if bag.minLength != nil && spec.lengthOf(normalized) < *bag.minLength {
		return valueError(spec.name, raw, "value %q has length %d, want at least %d", raw, spec.lengthOf(normalized), *bag.minLength)
	}
	if bag.maxLength != nil && spec.lengthOf(normalized) > *bag.maxLength {
		return valueError(spec.name, raw, "value %q has length %d, want at most %d", raw, spec.lengthOf(normalized), *bag.maxLength)
	}
	if len(bag.patterns) > 0 {
		matched := false
		for _, m := range bag.patterns {
			if m.MatchString(normalized) {
				matched = true
				break
			}
		}
		if !matched {
			return valueError(spec.name, raw, "value %q matches none of the %d pattern facets", raw, len(bag.patterns))
		}
	}
	if len(bag.enumeration) > 0 {
		matched := false
		for _, e := range bag.enumeration {
			if applyWhiteSpace(bag.whiteSpace, e) == normalized {
				matched = true
				break
			}
		}
		if !matched {
			return valueError(spec.name, raw, "value %q is not one of the enumerated values", raw)
		}
	}
	if spec.digitsOf != nil && (bag.totalDigits != nil || bag.fractionDigits != nil) {
		total, fraction, ok := spec.digitsOf(normalized)
		if !ok {
			return valueError(spec.name, raw, "value %q is not a countable decimal literal", raw)
		}
		if bag.totalDigits != nil && total > *bag.totalDigits {
			return valueError(spec.name, raw, "value %q has %d total digits, want at most %d", raw, total, *bag.totalDigits)
		}
		if bag.fractionDigits != nil && fraction > *bag.fractionDigits {
			return valueError(spec.name, raw, "value %q has %d fraction digits, want at most %d", raw, fraction, *bag.fractionDigits)
		}
	}
	if ord != nil {
		if bag.minInclusive != nil && ord.compare(bag.minInclusive) < 0 {
			return valueError(spec.name, raw, "value %q is below minInclusive", raw)
		}
		if bag.maxInclusive != nil && ord.compare(bag.maxInclusive) > 0 {
			return valueError(spec.name, raw, "value %q is above maxInclusive", raw)
		}
		if bag.minExclusive != nil && ord.compare(bag.minExclusive) <= 0 {
			return valueError(spec.name, raw, "value %q is not above minExclusive", raw)
		}
		if bag.maxExclusive != nil && ord.compare(bag.maxExclusive) >= 0 {
			return valueError(spec.name, raw, "value %q is not below maxExclusive", raw)
		}
	}
	return nil
}
