package datatype

import "strings"

// whiteSpaceFacet is XSD's whiteSpace facet value, applied to a raw lexical
// string before any further facet checks or value-space parsing.
type whiteSpaceFacet int

const (
	wsPreserve whiteSpaceFacet = iota
	wsReplace
	wsCollapse
)

func applyWhiteSpace(mode whiteSpaceFacet, s string) string {
	switch mode {
	case wsPreserve:
		return s
	case wsReplace:
		return replaceWhitespace(s)
	default:
		return collapseWhitespace(s)
	}
}

func replaceWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\t', '\n', '\r':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	fields := strings.FieldsFunc(replaceWhitespace(s), func(r rune) bool { return r == ' ' })
	return strings.Join(fields, " ")
}
