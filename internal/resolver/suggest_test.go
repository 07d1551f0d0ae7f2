package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/kmapd/internal/mapping"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"클릭", "클릭", 1.0},
		{"", "", 1.0},
		{"클릭", "", 0.0},
		{"클릭", "클림", 0.5},
		{"abcd", "abcx", 0.75},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, similarity(tt.a, tt.b), 0.001, "%q vs %q", tt.a, tt.b)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"클릭", "더블클릭"},
		{"업로드", "다운로드"},
		{"확인", "확장"},
		{"", "클릭"},
		{"abc", "한글"},
	}
	for _, p := range pairs {
		assert.Equal(t, similarity(p[0], p[1]), similarity(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance([]rune("클릭"), []rune("클릭")))
	assert.Equal(t, 2, levenshteinDistance([]rune("클릭"), []rune("더블클릭")))
	assert.Equal(t, 3, levenshteinDistance([]rune("abc"), []rune("")))
	assert.Equal(t, 1, levenshteinDistance([]rune("클릭"), []rune("클림")))
}

func TestSuggester_Similar(t *testing.T) {
	table := mapping.NewTable(mapping.PrimaryRecords(), mapping.SecondaryRecords(), mapping.DefaultCombinations())
	s := newSuggester(table, 0, 0)

	// A near-miss of "더블클릭" should surface it.
	got := s.similar("더블클림")
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 5)
	assert.Equal(t, "더블클릭", got[0].Keyword)

	// Sorted descending by similarity, all above the threshold.
	for i, sug := range got {
		assert.Greater(t, sug.Similarity, 0.5)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Similarity, sug.Similarity)
		}
	}
}

func TestSuggester_Similar_NoMatches(t *testing.T) {
	table := mapping.NewTable(mapping.PrimaryRecords(), nil, nil)
	s := newSuggester(table, 0, 0)

	assert.Empty(t, s.similar("qqqqqqqqqqqq"))
}

func TestSuggester_Advanced(t *testing.T) {
	table := mapping.NewTable(mapping.PrimaryRecords(), mapping.SecondaryRecords(), mapping.DefaultCombinations())
	s := newSuggester(table, 0, 0)

	// "클릭을" strips its object particle down to a known keyword.
	got := s.advanced("클릭을")
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 10)

	found := false
	for _, sug := range got {
		if sug.Keyword == "클릭" {
			found = true
		}
	}
	assert.True(t, found, "particle-stripped variant should be suggested")
}

func TestSuggester_Advanced_Empty(t *testing.T) {
	table := mapping.NewTable(mapping.PrimaryRecords(), nil, nil)
	s := newSuggester(table, 0, 0)

	assert.Nil(t, s.advanced(""))
}
