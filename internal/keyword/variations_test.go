package keyword_test

import (
	"hunter/internal/keyword"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariations(t *testing.T) {
	got := keyword.Variations("openai", keyword.DefaultAffixes)

	want := []string{
		"aiopenai", "cloudopenai", "labsopenai", "openai",
		"openaiai", "openaicloud", "openailabs", "openaitech", "techopenai",
	}
	require.Equal(t, want, got)
}

func TestVariations_Bounds(t *testing.T) {
	affixes := keyword.DefaultAffixes
	for _, base := range []string{"abc", "grok", "berkshirehathaway", "abcdefghijklmnopqrstuvwxy"} {
		got := keyword.Variations(base, affixes)

		require.GreaterOrEqual(t, len(got), 1, "base %q", base)
		require.LessOrEqual(t, len(got), 1+2*len(affixes), "base %q", base)
		require.Contains(t, got, base)
		for _, v := range got {
			require.LessOrEqual(t, len(v), keyword.MaxLabelLen)
			require.True(t, strings.Contains(v, base), "variation %q must contain %q", v, base)
		}
	}
}

func TestVariations_DropsOverLengthCombinations(t *testing.T) {
	// 25-char base: every affix combination exceeds the cap, only the base
	// itself survives.
	base := strings.Repeat("a", keyword.MaxLabelLen)
	require.Equal(t, []string{base}, keyword.Variations(base, keyword.DefaultAffixes))
}

func TestVariations_InvalidBase(t *testing.T) {
	require.Nil(t, keyword.Variations("ab", keyword.DefaultAffixes))
	require.Nil(t, keyword.Variations("", keyword.DefaultAffixes))
}
