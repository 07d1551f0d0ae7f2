package resolver

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/kmapd/internal/combiner"
	"github.com/fyrsmithlabs/kmapd/internal/grammar"
	"github.com/fyrsmithlabs/kmapd/internal/groovy"
	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
	"github.com/fyrsmithlabs/kmapd/internal/mapping"
)

func newTestResolver(t *testing.T, opts ...func(*Options)) *Resolver {
	t.Helper()

	table := mapping.NewTable(mapping.PrimaryRecords(), mapping.SecondaryRecords(), mapping.DefaultCombinations())
	classifier := lexicon.NewClassifier(lexicon.DefaultVocabulary())

	o := Options{
		Table:    table,
		Analyzer: grammar.NewAnalyzer(grammar.DefaultCatalog(), classifier),
		Engine:   combiner.NewEngine(combiner.NewDecomposer(classifier, table)),
		Renderer: groovy.New(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	r, err := New(o)
	require.NoError(t, err)
	return r
}

func TestNew_MissingDependencies(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping table")
}

func TestResolver_NotInitialized(t *testing.T) {
	var r *Resolver

	res := r.Resolve(context.Background(), "클릭")
	assert.False(t, res.Found)
	assert.Equal(t, SourceNone, res.Source)
	assert.Equal(t, "resolver not initialized", res.Reason)
}

func TestResolver_ExactTableHit(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(context.Background(), "클릭")
	assert.True(t, res.Found)
	assert.Equal(t, "Click", res.Action)
	assert.Equal(t, SourceExact, res.Source)
	assert.Equal(t, 1.0, res.Confidence)
	assert.NotEmpty(t, res.Script, "a Click template exists")
}

func TestResolver_CombinationGenerated(t *testing.T) {
	r := newTestResolver(t)

	// Not a verbatim entry in either static table; the verb-derived
	// action must win over the noun default.
	res := r.Resolve(context.Background(), "총 개수 확인")
	require.True(t, res.Found)
	assert.Equal(t, SourceCombination, res.Source)
	assert.Equal(t, "Verify Element Present", res.Action)
	assert.Equal(t, []string{"총", "개수", "확인"}, res.Words)
	assert.Equal(t, "총 개수 확인", res.Matched)
}

func TestResolver_CombinationStateComment(t *testing.T) {
	r := newTestResolver(t)

	// 보임 is a state word, so the generated script must end with the
	// state-verification comment.
	res := r.Resolve(context.Background(), "개수 보임")
	require.True(t, res.Found)
	assert.Equal(t, SourceCombination, res.Source)
	assert.Equal(t, "Verify Element Visible", res.Action)
	assert.Contains(t, res.Script, "WebUI.verifyElementVisible")
	assert.Contains(t, res.Script, `WebUI.comment("보임 상태 확인 완료")`)
}

func TestResolver_NegationInvariant(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(context.Background(), "업로드되지 않아야 한다")
	require.True(t, res.Found)
	assert.Equal(t, "Verify Upload Not Present", res.Action)
	assert.NotEqual(t, "Upload File", res.Action,
		"negative phrasing must never resolve to the positive action")
}

func TestResolver_MethodParticlePriority(t *testing.T) {
	r := newTestResolver(t)

	// 드래그 is marked by the method particle 로; its action must win over
	// 이동, which would otherwise substring-match the navigation record.
	res := r.Resolve(context.Background(), "드래그로 이동")
	require.True(t, res.Found)
	assert.Equal(t, "Drag And Drop", res.Action)
	assert.Equal(t, "드래그", res.Matched)
}

func TestResolver_EmptyInput(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(context.Background(), "")
	assert.False(t, res.Found)
	assert.Equal(t, "empty or invalid input", res.Reason)
}

func TestResolver_NonsenseInput(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(context.Background(), "xkcdqwzj")
	assert.False(t, res.Found)
	assert.LessOrEqual(t, len(res.Suggestions), 10)
	for _, s := range res.Suggestions {
		assert.GreaterOrEqual(t, s.Similarity, 0.0)
		assert.LessOrEqual(t, s.Similarity, 1.0)
	}
}

func TestResolver_CacheHitIdempotence(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	first := r.Resolve(ctx, "클릭")
	second := r.Resolve(ctx, "클릭")

	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.Action, second.Action)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Script, second.Script)
}

func TestResolver_TablePrecedence(t *testing.T) {
	table := mapping.NewTable(
		[]mapping.Record{{Keywords: []string{"저장"}, Action: "Primary Save"}},
		[]mapping.Record{{Keywords: []string{"저장"}, Action: "Secondary Save"}},
		nil,
	)
	classifier := lexicon.NewClassifier(lexicon.DefaultVocabulary())
	r, err := New(Options{
		Table:    table,
		Analyzer: grammar.NewAnalyzer(grammar.DefaultCatalog(), classifier),
		Engine:   combiner.NewEngine(combiner.NewDecomposer(classifier, table)),
	})
	require.NoError(t, err)

	res := r.Resolve(context.Background(), "저장")
	require.True(t, res.Found)
	assert.Equal(t, "Primary Save", res.Action)
	assert.Equal(t, mapping.SourcePrimary, res.Table)
}

func TestResolver_CacheBound(t *testing.T) {
	r := newTestResolver(t, func(o *Options) { o.CacheSize = 16 })
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		r.Resolve(ctx, fmt.Sprintf("클릭 %d번째", i))
	}

	assert.LessOrEqual(t, r.Statistics().CacheSize, 16)
}

func TestResolver_Statistics(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	r.Resolve(ctx, "클릭")     // exact
	r.Resolve(ctx, "클릭")     // cache
	r.Resolve(ctx, "zzzznx") // failure

	stats := r.Statistics()
	assert.Equal(t, uint64(3), stats.TotalQueries)
	assert.Equal(t, uint64(1), stats.HitsBySource[SourceExact])
	assert.Equal(t, uint64(1), stats.HitsBySource[SourceCache])
	assert.Equal(t, uint64(1), stats.Failures)
	assert.InDelta(t, 1.0/3.0, stats.CacheHitRate, 0.001)
}

func TestResolver_ClearCache(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	r.Resolve(ctx, "클릭")
	require.Positive(t, r.Statistics().CacheSize)

	r.ClearCache()
	assert.Zero(t, r.Statistics().CacheSize)

	// Statistics are unaffected by cache clearing.
	assert.Equal(t, uint64(1), r.Statistics().TotalQueries)
}

func TestResolver_ResolveBatch(t *testing.T) {
	r := newTestResolver(t)

	results := r.ResolveBatch(context.Background(), []string{"클릭", "", "업로드"})
	require.Len(t, results, 3)
	assert.True(t, results[0].Found)
	assert.False(t, results[1].Found)
	assert.True(t, results[2].Found)
}
