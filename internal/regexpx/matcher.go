package regexpx

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Matcher tests whether a string fully matches a translated pattern.
type Matcher interface {
	MatchString(s string) bool
	Backend() Backend
	RequiresUnicode() bool
}

type re2Matcher struct {
	re *regexp.Regexp
	tr Translation
}

func (m *re2Matcher) MatchString(s string) bool { return m.re.MatchString(s) }
func (m *re2Matcher) Backend() Backend          { return m.tr.Backend }
func (m *re2Matcher) RequiresUnicode() bool     { return m.tr.RequiresUnicode }

type regexp2Matcher struct {
	re *regexp2.Regexp
	tr Translation
}

func (m *regexp2Matcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}
func (m *regexp2Matcher) Backend() Backend      { return m.tr.Backend }
func (m *regexp2Matcher) RequiresUnicode() bool { return m.tr.RequiresUnicode }

// Compile translates an XSD pattern and compiles it against whichever
// backend the translation requires.
func Compile(pattern string) (Matcher, error) {
	tr, err := Translate(pattern)
	if err != nil {
		return nil, err
	}
	switch tr.Backend {
	case BackendRegexp2:
		re, err := regexp2.Compile(tr.Pattern, regexp2.Unicode)
		if err != nil {
			return nil, fmt.Errorf("regexpx: regexp2 compile of %q (from %q): %w", tr.Pattern, pattern, err)
		}
		return &regexp2Matcher{re: re, tr: tr}, nil
	default:
		re, err := regexp.Compile(tr.Pattern)
		if err != nil {
			return nil, fmt.Errorf("regexpx: re2 compile of %q (from %q): %w", tr.Pattern, pattern, err)
		}
		return &re2Matcher{re: re, tr: tr}, nil
	}
}
