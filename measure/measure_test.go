package measure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWordsBreaksOnWhitespace(t *testing.T) {
	require.Equal(t, []string{"the", "quick", "fox"}, splitWords("the  quick\tfox"))
}

func TestSplitWordsEmptyInput(t *testing.T) {
	require.Nil(t, splitWords(""))
	require.Nil(t, splitWords("   "))
}

func TestSplitWordsNoLeadingOrTrailingWhitespace(t *testing.T) {
	require.Equal(t, []string{"hello"}, splitWords("hello"))
	require.Equal(t, []string{"hello"}, splitWords("  hello  "))
}

func TestGraphemesSplitsByClusterNotByte(t *testing.T) {
	g := graphemes("café")
	require.Len(t, g, 4)
	require.Equal(t, "é", g[3])
}

func TestJoinRangeReassemblesClusters(t *testing.T) {
	parts := []string{"a", "b", "c", "d"}
	require.Equal(t, "bc", joinRange(parts, 1, 3))
	require.Equal(t, "", joinRange(parts, 2, 2))
}

func TestWrapLinesNoWrapReturnsSingleLine(t *testing.T) {
	lines := wrapLines(TextStyle{Text: "a whole paragraph", Wrap: NoWrap}, 10)
	require.Equal(t, []string{"a whole paragraph"}, lines)
}
