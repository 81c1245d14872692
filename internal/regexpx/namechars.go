package regexpx

import "fmt"

// runeRange is an inclusive [lo, hi] code point range.
type runeRange struct {
	lo, hi rune
}

// nameStartRanges enumerates the XML 1.0 (fifth edition) NameStartChar
// production, used to expand the XSD \i/\I multi-char escapes.
var nameStartRanges = []runeRange{
	{':', ':'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'},
	{0xC0, 0xD6}, {0xD8, 0xF6}, {0xF8, 0x2FF}, {0x370, 0x37D},
	{0x37F, 0x1FFF}, {0x200C, 0x200D}, {0x2070, 0x218F}, {0x2C00, 0x2FEF},
	{0x3001, 0xD7FF}, {0xF900, 0xFDCF}, {0xFDF0, 0xFFFD}, {0x10000, 0xEFFFF},
}

// nameCharExtra is NameChar minus NameStartChar: "-", ".", digits, and a
// handful of combining-mark ranges.
var nameCharExtra = []runeRange{
	{'-', '-'}, {'.', '.'}, {'0', '9'}, {0xB7, 0xB7}, {0x0300, 0x036F}, {0x203F, 0x2040},
}

func rangesToClassContent(ranges []runeRange) string {
	var b []byte
	for _, r := range ranges {
		if r.lo == r.hi {
			b = append(b, []byte(fmt.Sprintf(`\x{%X}`, r.lo))...)
			continue
		}
		b = append(b, []byte(fmt.Sprintf(`\x{%X}-\x{%X}`, r.lo, r.hi))...)
	}
	return string(b)
}

// nameStartCharClassContent is the bracket-expression content (no [ ]) for
// the XML NameStartChar set.
var nameStartCharClassContent = rangesToClassContent(nameStartRanges)

// nameCharClassContent is the bracket-expression content for the full XML
// NameChar set (NameStartChar plus nameCharExtra).
var nameCharClassContent = nameStartCharClassContent + rangesToClassContent(nameCharExtra)

var (
	nameStartCharClass    = "[" + nameStartCharClassContent + "]"
	nameNotStartCharClass = "[^" + nameStartCharClassContent + "]"
	nameCharClass         = "[" + nameCharClassContent + "]"
	nameNotCharClass      = "[^" + nameCharClassContent + "]"

	xsdDigitClassContent = `\p{Nd}`
	xsdDigitClass        = `[\p{Nd}]`
	xsdNotDigitClass     = `[^\p{Nd}]`

	xsdWhitespaceClassContent = ` \t\n\r`
	xsdWhitespaceClass        = `[ \t\n\r]`
	xsdNotWhitespaceClass     = `[^ \t\n\r]`

	// xsdWordClass follows the XSD definition of \w: every character except
	// those in the punctuation, separator and other categories.
	xsdWordClass    = `[^\p{P}\p{Z}\p{C}]`
	xsdNotWordClass = `[\p{P}\p{Z}\p{C}]`
)
