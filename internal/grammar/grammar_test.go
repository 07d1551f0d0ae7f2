package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
)

func newTestAnalyzer() *Analyzer {
	classifier := lexicon.NewClassifier(lexicon.DefaultVocabulary())
	return NewAnalyzer(DefaultCatalog(), classifier)
}

func TestAnalyzer_AnalyzeParticles_Method(t *testing.T) {
	a := newTestAnalyzer()

	pa := a.AnalyzeParticles("드래그로 파일 이동")

	require.Len(t, pa.Method, 1)
	assert.Equal(t, "드래그", pa.Method[0].Word)
	assert.Equal(t, "로", pa.Method[0].Particle)
	assert.True(t, pa.Method[0].IsKeyAction)
}

func TestAnalyzer_AnalyzeParticles_MethodBonus(t *testing.T) {
	a := newTestAnalyzer()

	pa := a.AnalyzeParticles("드래그로 이동")
	require.Len(t, pa.Method, 1)

	// Method-marked words get the key-action bonus on top of their bank
	// priority (드래그 = 10).
	assert.Equal(t, 10+MethodPriorityBonus, pa.Method[0].Priority)
}

func TestAnalyzer_AnalyzeParticles_Categories(t *testing.T) {
	a := newTestAnalyzer()

	pa := a.AnalyzeParticles("버튼을 화면에서 마우스로 클릭")

	require.Len(t, pa.Object, 1)
	assert.Equal(t, "버튼", pa.Object[0].Word)

	require.Len(t, pa.Location, 1)
	assert.Equal(t, "화면", pa.Location[0].Word)

	require.Len(t, pa.Method, 1)
	assert.Equal(t, "마우스", pa.Method[0].Word)

	// Leftover tokens land in General.
	require.Len(t, pa.General, 1)
	assert.Equal(t, "클릭", pa.General[0].Word)
}

func TestAnalyzer_AnalyzeParticles_LongestParticleWins(t *testing.T) {
	a := newTestAnalyzer()

	// "에서" must be consumed as the location particle, not "서" dropped
	// after matching "에".
	pa := a.AnalyzeParticles("목록에서 선택")
	require.Len(t, pa.Location, 1)
	assert.Equal(t, "목록", pa.Location[0].Word)
	assert.Equal(t, "에서", pa.Location[0].Particle)
}

func TestAnalyzer_AnalyzeNegative(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		text       string
		isNegative bool
		base       string
		converted  string
	}{
		{"업로드되지 않아야 한다", true, "업로드", "Verify Upload Not Present"},
		{"버튼이 노출되지 않아야 한다", true, "노출", "Verify Element Not Visible"},
		{"팝업이 존재하지 않아야 한다", true, "존재", "Verify Element Not Present"},
		{"클릭한다", false, "", ""},
		{"", false, "", ""},
	}

	for _, tt := range tests {
		na := a.AnalyzeNegative(tt.text)
		assert.Equal(t, tt.isNegative, na.IsNegative, "text %q", tt.text)
		if tt.isNegative {
			assert.Equal(t, tt.converted, na.ConvertedAction, "text %q", tt.text)
		}
	}
}

func TestAnalyzer_AnalyzeNegative_UnknownBaseFallsBack(t *testing.T) {
	a := newTestAnalyzer()

	na := a.AnalyzeNegative("뾰로롱되지 않아야 한다")
	require.True(t, na.IsNegative)
	assert.Equal(t, "Verify Element Not Present", na.ConvertedAction)
}

func TestAnalyzer_AnalyzeState(t *testing.T) {
	a := newTestAnalyzer()

	sa := a.AnalyzeState("로딩 진행 중")
	require.True(t, sa.IsState)
	assert.NotEmpty(t, sa.StateType)

	assert.False(t, a.AnalyzeState("클릭").IsState)
}

func TestAnalyzer_PrioritizedWords(t *testing.T) {
	a := newTestAnalyzer()

	pa := a.AnalyzeParticles("드래그로 버튼을 클릭")
	words := a.PrioritizedWords(pa)
	require.NotEmpty(t, words)

	// The method word carries the bonus and must sort first.
	assert.Equal(t, "드래그", words[0].Word)
	for i := 1; i < len(words); i++ {
		assert.GreaterOrEqual(t, words[i-1].Priority, words[i].Priority)
	}
}

func TestCatalog_NegativeAction_SuffixTrim(t *testing.T) {
	c := DefaultCatalog()

	// Base actions captured with a residual ending still resolve.
	assert.Equal(t, "Verify Upload Not Present", c.NegativeAction("업로드되지"))
	assert.Equal(t, "Verify Element Not Present", c.NegativeAction(""))
}
