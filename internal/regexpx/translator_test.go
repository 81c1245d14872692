package regexpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateLiteral(t *testing.T) {
	tr, err := Translate("abc")
	require.NoError(t, err)
	assert.Equal(t, "^abc$", tr.Pattern)
	assert.Equal(t, BackendRE2, tr.Backend)
	assert.False(t, tr.RequiresUnicode)
}

func TestTranslateWhitespaceEscape(t *testing.T) {
	tr, err := Translate(`ab\scd`)
	require.NoError(t, err)
	assert.Equal(t, `^ab[ \t\n\r]cd$`, tr.Pattern)
	assert.Equal(t, BackendRE2, tr.Backend)
}

func TestTranslateCharClassSubtraction(t *testing.T) {
	tr, err := Translate(`ab[abcd-[bc]]cd`)
	require.NoError(t, err)
	assert.Equal(t, "^ab(?:(?![bc])[abcd])cd$", tr.Pattern)
	assert.Equal(t, BackendRegexp2, tr.Backend)
}

func TestTranslateDigitEscape(t *testing.T) {
	tr, err := Translate(`\d+`)
	require.NoError(t, err)
	assert.Equal(t, `^\p{Nd}+$`, tr.Pattern)
	assert.True(t, tr.RequiresUnicode)
	assert.Equal(t, BackendRE2, tr.Backend)
}

func TestTranslateUnicodeProperty(t *testing.T) {
	tr, err := Translate(`(\p{L}|\p{N}|\p{P}|\p{S})+`)
	require.NoError(t, err)
	assert.True(t, tr.RequiresUnicode)
	assert.Equal(t, BackendRE2, tr.Backend)
}

func TestTranslateMixedNegativeEscapeInPositiveClass(t *testing.T) {
	tr, err := Translate(`ab[a\Dq]cd`)
	require.NoError(t, err)
	// \D mixed with literal chars in a positive class becomes an alternation,
	// which RE2 can express without lookaround.
	assert.Equal(t, BackendRE2, tr.Backend)
	assert.True(t, tr.RequiresUnicode)
}

func TestCompileAndMatchMixedNegativeEscapesInPositiveClass(t *testing.T) {
	m, err := Compile(`ab[a\S\Dq]cd`)
	require.NoError(t, err)
	assert.True(t, m.MatchString("abwcd"))
	assert.True(t, m.MatchString("ab1cd"))
	assert.False(t, m.MatchString("ab cd"))
}

func TestTranslateNegatedClassWithNegativeEscape(t *testing.T) {
	tr, err := Translate(`[^a\S]`)
	require.NoError(t, err)
	assert.Equal(t, BackendRegexp2, tr.Backend)
}

func TestCompileAndMatchRE2(t *testing.T) {
	m, err := Compile("abc")
	require.NoError(t, err)
	assert.Equal(t, BackendRE2, m.Backend())
	assert.True(t, m.MatchString("abc"))
	assert.False(t, m.MatchString("abcd"))
}

func TestCompileAndMatchSubtraction(t *testing.T) {
	m, err := Compile(`ab[abcd-[bc]]cd`)
	require.NoError(t, err)
	assert.Equal(t, BackendRegexp2, m.Backend())
	assert.True(t, m.MatchString("abdcd"))
	assert.False(t, m.MatchString("abbcd"))
	assert.False(t, m.MatchString("ab1cd"))
}

func TestCompileEmptyPattern(t *testing.T) {
	m, err := Compile("")
	require.NoError(t, err)
	assert.True(t, m.MatchString(""))
	assert.False(t, m.MatchString("x"))
}

func TestTranslateUnterminatedClass(t *testing.T) {
	_, err := Translate("ab[cd")
	assert.Error(t, err)
}

func TestTranslateUnbalancedGroup(t *testing.T) {
	_, err := Translate("ab(cd")
	assert.Error(t, err)
}

func TestTranslateQuantifierWithinBounds(t *testing.T) {
	tr, err := Translate("a{2,5}")
	require.NoError(t, err)
	assert.Equal(t, "^a{2,5}$", tr.Pattern)
}

func TestTranslateQuantifierMinExceedsMax(t *testing.T) {
	_, err := Translate("a{5,2}")
	assert.Error(t, err)
}

func TestTranslateQuantifierExceedsRepeatLimit(t *testing.T) {
	_, err := Translate("a{1001}")
	assert.Error(t, err)
}

func TestTranslateRejectsLazyStarQuantifier(t *testing.T) {
	_, err := Translate("a*?")
	assert.Error(t, err)
}

func TestTranslateRejectsLazyPlusQuantifier(t *testing.T) {
	_, err := Translate("a+?")
	assert.Error(t, err)
}

func TestTranslateRejectsLazyOptionalQuantifier(t *testing.T) {
	_, err := Translate("a??")
	assert.Error(t, err)
}

func TestTranslateRejectsLazyRepeatQuantifier(t *testing.T) {
	_, err := Translate("a{2,5}?")
	assert.Error(t, err)
}

func TestTranslateAllowsPlainOptionalAfterGroup(t *testing.T) {
	tr, err := Translate("(ab)?")
	require.NoError(t, err)
	assert.Equal(t, "^(?:ab)?$", tr.Pattern)
}
