package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	tests := []struct {
		word string
		want Role
	}{
		{"버튼", RoleNoun},
		{"개수", RoleNoun},
		{"클릭", RoleVerb},
		{"확인", RoleVerb},
		{"업로드", RoleVerb},
		{"전체", RoleModifier},
		{"총", RoleModifier},
		{"노출", RoleState},
		{"완료", RoleState},
		{"에서", RoleParticle},
		{"qwerty", RoleUnknown},
		{"", RoleUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.word), "word %q", tt.word)
	}
}

func TestClassifier_Classify_FirstListWins(t *testing.T) {
	// "체크" appears in the verb list; the priority banks must not change
	// its grammatical role.
	c := NewClassifier(DefaultVocabulary())
	assert.Equal(t, RoleVerb, c.Classify("체크"))
}

func TestClassifier_PriorityOf(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	// Specific actions rank above general actions, which rank above
	// verification words.
	assert.Equal(t, 10, c.PriorityOf("드래그"))
	assert.Equal(t, 9, c.PriorityOf("클릭"))
	assert.Equal(t, 8, c.PriorityOf("입력"))
	assert.Equal(t, 5, c.PriorityOf("업로드"))
	assert.Equal(t, 2, c.PriorityOf("확인"))
	assert.Equal(t, 0, c.PriorityOf("시도"))

	// Unknown words have no priority.
	assert.Equal(t, 0, c.PriorityOf("없는단어"))
}

func TestClassifier_Known(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	assert.True(t, c.Known("버튼"))
	assert.True(t, c.Known("클릭"))
	assert.False(t, c.Known("zzz"))
}

func TestClassifier_AllWords_LongestFirst(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	words := c.AllWords()
	require.NotEmpty(t, words)

	// Sorted by descending length so greedy segmentation prefers the
	// longest match.
	for i := 1; i < len(words); i++ {
		assert.GreaterOrEqual(t, len(words[i-1]), len(words[i]),
			"words[%d]=%q should not be shorter than words[%d]=%q", i-1, words[i-1], i, words[i])
	}
}

func TestClassifier_NormalizesInput(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	assert.Equal(t, c.Classify("클릭"), c.Classify(" 클릭 "))
}
