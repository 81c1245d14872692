package datatype

import (
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reNCName      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)
	reName        = regexp.MustCompile(`^[A-Za-z_:][A-Za-z0-9_.\-:]*$`)
	reNMToken     = regexp.MustCompile(`^[A-Za-z0-9_.\-:]+$`)
	reLanguage    = regexp.MustCompile(`^[A-Za-z]{1,8}(-[A-Za-z0-9]{1,8})*$`)
	reQName       = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.\-]*:)?[A-Za-z_][A-Za-z0-9_.\-]*$`)
	reDecimal     = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	reInteger     = regexp.MustCompile(`^[+-]?\d+$`)
	reDuration    = regexp.MustCompile(`^-?P(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)
	reDate        = regexp.MustCompile(`^-?\d{4,}-\d{2}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	reTime        = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	reDateTime    = regexp.MustCompile(`^-?\d{4,}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	reGYear       = regexp.MustCompile(`^-?\d{4,}(Z|[+-]\d{2}:\d{2})?$`)
	reGYearMonth  = regexp.MustCompile(`^-?\d{4,}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	reGMonth      = regexp.MustCompile(`^--\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	reGMonthDay   = regexp.MustCompile(`^--\d{2}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	reGDay        = regexp.MustCompile(`^---\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	reHexBinary   = regexp.MustCompile(`^([0-9A-Fa-f]{2})*$`)
)

func lexicalMustMatch(re *regexp.Regexp, kind string) func(string) error {
	return func(s string) error {
		if !re.MatchString(s) {
			return fmt.Errorf("%q is not a valid %s", s, kind)
		}
		return nil
	}
}

func validateBoolean(s string) error {
	switch s {
	case "true", "false", "1", "0":
		return nil
	default:
		return fmt.Errorf("%q is not a valid boolean", s)
	}
}

func validateBase64Binary(s string) error {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	if _, err := base64.StdEncoding.DecodeString(stripped); err != nil {
		return fmt.Errorf("%q is not valid base64Binary: %v", s, err)
	}
	return nil
}

// xmlNamespaceURI is the implicit binding of the reserved "xml" prefix,
// per the XML namespaces recommendation.
const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// resolveQNamePrefix checks a QName's prefix (if any) against the in-scope
// namespace bindings captured at schema-load time, mirroring the teacher's
// ParseQNameValue: an explicit "xml" prefix must resolve to the reserved XML
// namespace (or be left unbound, since the binding is implicit), any other
// explicit prefix must resolve to something, and an unprefixed name needs no
// resolution at all — QName equality here is purely lexical, so an absent
// default namespace is not an error.
func resolveQNamePrefix(normalized string, ctx *Context) error {
	prefix, _, hasPrefix := strings.Cut(normalized, ":")
	if !hasPrefix {
		return nil
	}
	if prefix == "xml" {
		if ctx != nil && ctx.ResolvePrefix != nil {
			if uri, ok := ctx.ResolvePrefix(prefix); ok && uri != xmlNamespaceURI {
				return fmt.Errorf("QName %q: prefix %q must be bound to %s, got %q", normalized, prefix, xmlNamespaceURI, uri)
			}
		}
		return nil
	}
	if ctx == nil || ctx.ResolvePrefix == nil {
		return fmt.Errorf("QName %q has prefix %q but no namespace context was supplied", normalized, prefix)
	}
	if _, ok := ctx.ResolvePrefix(prefix); !ok {
		return fmt.Errorf("QName %q: prefix %q is not bound in the in-scope namespace context", normalized, prefix)
	}
	return nil
}

func validateAnyURI(s string) error {
	// XSD anyURI is deliberately permissive (it accepts relative
	// references); we only reject embedded whitespace.
	if strings.ContainsAny(s, " \t\n\r") {
		return fmt.Errorf("%q is not a valid anyURI: contains whitespace", s)
	}
	return nil
}

// parseDecimalOrdered parses a decimal lexical form into a big.Rat-backed orderable.
func parseDecimalOrdered(s string) (orderable, bool, error) {
	if !reDecimal.MatchString(s) {
		return nil, false, fmt.Errorf("%q is not a valid decimal", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false, fmt.Errorf("%q is not a valid decimal", s)
	}
	return decimalOrderable{v: r}, true, nil
}

func parseIntegerOrderedRange(min, max *big.Int) func(string) (orderable, bool, error) {
	return func(s string) (orderable, bool, error) {
		if !reInteger.MatchString(s) {
			return nil, false, fmt.Errorf("%q is not a valid integer", s)
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, false, fmt.Errorf("%q is not a valid integer", s)
		}
		if min != nil && n.Cmp(min) < 0 {
			return nil, false, fmt.Errorf("%q is out of range", s)
		}
		if max != nil && n.Cmp(max) > 0 {
			return nil, false, fmt.Errorf("%q is out of range", s)
		}
		return intOrderable{v: n}, true, nil
	}
}

func validateIntegerRange(min, max *big.Int) func(string) error {
	parse := parseIntegerOrderedRange(min, max)
	return func(s string) error {
		_, ok, err := parse(s)
		if !ok {
			return err
		}
		return nil
	}
}

func parseFloatOrdered(bitSize int) func(string) (orderable, bool, error) {
	return func(s string) (orderable, bool, error) {
		switch s {
		case "INF":
			return floatOrderable{v: math.Inf(1)}, true, nil
		case "-INF":
			return floatOrderable{v: math.Inf(-1)}, true, nil
		case "NaN":
			return floatOrderable{v: math.NaN()}, true, nil
		}
		f, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not a valid float", s)
		}
		return floatOrderable{v: f}, true, nil
	}
}

func validateFloat(bitSize int) func(string) error {
	parse := parseFloatOrdered(bitSize)
	return func(s string) error {
		_, _, err := parse(s)
		return err
	}
}

// decimalDigits reports the total and fraction digit counts of a decimal
// lexical value, per XSD's totalDigits/fractionDigits facets.
func decimalDigits(s string) (total, fraction int, ok bool) {
	if !reDecimal.MatchString(s) {
		return 0, 0, false
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	intDigits := strings.TrimLeft(intPart, "0")
	total = len(intDigits) + len(fracPart)
	if hasFrac {
		fraction = len(fracPart)
	}
	if total == 0 {
		total = 1
	}
	return total, fraction, true
}

var temporalLayouts = map[string]string{
	"date":       "2006-01-02",
	"time":       "15:04:05",
	"dateTime":   "2006-01-02T15:04:05",
	"gYear":      "2006",
	"gYearMonth": "2006-01",
	"gMonth":     "--01",
	"gMonthDay":  "--01-02",
	"gDay":       "---02",
}

func parseTemporalOrdered(re *regexp.Regexp, layout string) func(string) (orderable, bool, error) {
	return func(s string) (orderable, bool, error) {
		if !re.MatchString(s) {
			return nil, false, fmt.Errorf("%q does not match the expected lexical form", s)
		}
		trimmed, _ := stripTimezone(s)
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			return nil, false, fmt.Errorf("%q is not a valid value: %v", s, err)
		}
		return timeOrderable{v: t}, true, nil
	}
}

// stripTimezone removes a trailing Z or +HH:MM/-HH:MM timezone suffix
// (gYear/gMonth-family values have no calendar-accurate offset handling in
// this library — see DESIGN.md).
func stripTimezone(s string) (string, string) {
	if strings.HasSuffix(s, "Z") {
		return s[:len(s)-1], "Z"
	}
	if len(s) > 6 {
		tail := s[len(s)-6:]
		if (tail[0] == '+' || tail[0] == '-') && tail[3] == ':' {
			return s[:len(s)-6], tail
		}
	}
	return s, ""
}

func validateTemporal(re *regexp.Regexp, layout string) func(string) error {
	parse := parseTemporalOrdered(re, layout)
	return func(s string) error {
		_, _, err := parse(s)
		return err
	}
}
