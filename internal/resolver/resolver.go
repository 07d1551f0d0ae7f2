// Package resolver orchestrates keyword resolution: cache, static table
// lookup, grammar analysis, dynamic combination generation, and
// similarity-based suggestions on failure.
package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/kmapd/internal/combiner"
	"github.com/fyrsmithlabs/kmapd/internal/grammar"
	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
	"github.com/fyrsmithlabs/kmapd/internal/mapping"
)

// Source labels where a resolution came from.
type Source string

const (
	SourceCache       Source = "cache"
	SourceExact       Source = "exact-table"
	SourceSubstring   Source = "substring-table"
	SourceCombination Source = "combination"
	SourceNone        Source = "none"
)

// DefaultCacheCapacity bounds the result cache when no capacity is
// configured.
const DefaultCacheCapacity = 1000

// Resolution is the outcome of resolving a single phrase.
type Resolution struct {
	Found       bool           `json:"found"`
	Keyword     string         `json:"keyword"`
	Action      string         `json:"action,omitempty"`
	Confidence  float64        `json:"confidence,omitempty"`
	Source      Source         `json:"source"`
	Table       mapping.Source `json:"table,omitempty"`
	Matched     string         `json:"matched_keyword,omitempty"`
	Pattern     string         `json:"pattern,omitempty"`
	Words       []string       `json:"words,omitempty"`
	Script      string         `json:"script,omitempty"`
	Suggestions []Suggestion   `json:"suggestions,omitempty"`
	Reason      string         `json:"reason,omitempty"`
}

// Statistics is a point-in-time snapshot of resolver counters.
type Statistics struct {
	TotalQueries uint64            `json:"total_queries"`
	HitsBySource map[Source]uint64 `json:"hits_by_source"`
	Failures     uint64            `json:"failures"`
	CacheSize    int               `json:"cache_size"`
	CacheHitRate float64           `json:"cache_hit_rate"`
}

// ScriptRenderer turns a resolved action into script text. Implementations
// return false when no template exists for the action. RenderWithStates
// appends a state-verification line when the phrase carried state words.
type ScriptRenderer interface {
	Render(action, keyword string) (string, bool)
	RenderWithStates(action, keyword string, states []string) (string, bool)
}

// Options wires a Resolver's collaborators.
type Options struct {
	Table    *mapping.Table
	Analyzer *grammar.Analyzer
	Engine   *combiner.Engine
	Renderer ScriptRenderer // optional
	Logger   *zap.Logger    // optional, defaults to no-op
	Metrics  *Metrics       // optional

	CacheSize           int
	SimilarityThreshold float64 // zero means DefaultSimilarityThreshold
	MaxSuggestions      int     // zero means DefaultMaxSuggestions
}

// Resolver resolves Korean test-case phrases into automation actions.
// Safe for concurrent use.
type Resolver struct {
	table    *mapping.Table
	analyzer *grammar.Analyzer
	engine   *combiner.Engine
	renderer ScriptRenderer
	suggest  *suggester
	cache    *cache
	logger   *zap.Logger
	metrics  *Metrics

	mu           sync.Mutex
	totalQueries uint64
	hitsBySource map[Source]uint64
	failures     uint64

	initialized bool
}

// New builds a Resolver. All of Table, Analyzer, and Engine are required;
// a missing dependency is reported by name so startup failures identify
// which configuration never loaded.
func New(opts Options) (*Resolver, error) {
	switch {
	case opts.Table == nil:
		return nil, errors.New("resolver: mapping table not loaded")
	case opts.Analyzer == nil:
		return nil, errors.New("resolver: grammar analyzer not loaded")
	case opts.Engine == nil:
		return nil, errors.New("resolver: combination engine not loaded")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Resolver{
		table:        opts.Table,
		analyzer:     opts.Analyzer,
		engine:       opts.Engine,
		renderer:     opts.Renderer,
		suggest:      newSuggester(opts.Table, opts.SimilarityThreshold, opts.MaxSuggestions),
		logger:       logger,
		metrics:      opts.Metrics,
		hitsBySource: make(map[Source]uint64),
		initialized:  true,
	}
	r.cache = newCache(opts.CacheSize, opts.Metrics)
	return r, nil
}

// Resolve maps a single phrase to an action. Resolution is fully
// in-memory; the context is accepted for interface symmetry with the
// transport layer and is not consulted mid-flight.
//
// Lookup order: cache, exact table match, negative-ending analysis,
// method-particle analysis, substring table match (primary before
// secondary), combination generation, then failure with suggestions.
// Negation and method analysis run before substring matching so that a
// phrase like "업로드되지 않아야 한다" resolves to the negated action
// instead of substring-hitting the positive one.
func (r *Resolver) Resolve(ctx context.Context, phrase string) Resolution {
	if r == nil || !r.initialized {
		return Resolution{
			Found:   false,
			Keyword: phrase,
			Source:  SourceNone,
			Reason:  "resolver not initialized",
		}
	}

	start := time.Now()
	res := r.resolve(phrase)

	r.record(res)
	if r.metrics != nil {
		r.metrics.ResolutionsTotal.WithLabelValues(string(res.Source)).Inc()
		r.metrics.ResolveDuration.Observe(time.Since(start).Seconds())
	}

	r.logger.Debug("resolved phrase",
		zap.String("trace_id", uuid.NewString()),
		zap.String("phrase", phrase),
		zap.Bool("found", res.Found),
		zap.String("action", res.Action),
		zap.String("source", string(res.Source)),
		zap.Float64("confidence", res.Confidence),
	)
	return res
}

func (r *Resolver) resolve(phrase string) Resolution {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return Resolution{
			Found:   false,
			Keyword: phrase,
			Source:  SourceNone,
			Reason:  "empty or invalid input",
		}
	}

	if cached, ok := r.cache.get(phrase); ok {
		cached.Source = SourceCache
		return cached
	}

	if res, ok := r.searchExact(trimmed, phrase); ok {
		r.cache.set(phrase, res)
		return res
	}

	if res, ok := r.resolveNegative(trimmed, phrase); ok {
		r.cache.set(phrase, res)
		return res
	}

	if res, ok := r.resolveMethod(trimmed, phrase); ok {
		r.cache.set(phrase, res)
		return res
	}

	if res, ok := r.searchSubstring(trimmed, phrase); ok {
		r.cache.set(phrase, res)
		return res
	}

	if res, ok := r.resolveCombination(phrase); ok {
		r.cache.set(phrase, res)
		return res
	}

	return r.fail(phrase)
}

// searchExact scans the whole table (all data sets in precedence order)
// for an exact keyword match.
func (r *Resolver) searchExact(trimmed, original string) (Resolution, bool) {
	hit, ok := r.table.Search(trimmed)
	if !ok || hit.Kind != mapping.MatchExact {
		return Resolution{}, false
	}
	return r.fromHit(original, hit, SourceExact), true
}

// searchSubstring runs the containment phase against the primary data set,
// then the secondary. Combination records are excluded here; they are only
// reachable by exact match, since their component-word keywords would
// otherwise shadow the dynamic combination path.
func (r *Resolver) searchSubstring(trimmed, original string) (Resolution, bool) {
	for _, src := range []mapping.Source{mapping.SourcePrimary, mapping.SourceSecondary} {
		hit, ok := r.table.SearchSource(trimmed, src)
		if !ok {
			continue
		}
		source := SourceSubstring
		if hit.Kind == mapping.MatchExact {
			source = SourceExact
		}
		return r.fromHit(original, hit, source), true
	}
	return Resolution{}, false
}

// resolveNegative short-circuits phrases carrying a recognized negative
// ending: the converted action always wins over any positive table match
// for the same base verb.
func (r *Resolver) resolveNegative(trimmed, original string) (Resolution, bool) {
	neg := r.analyzer.AnalyzeNegative(trimmed)
	if !neg.IsNegative {
		return Resolution{}, false
	}
	res := Resolution{
		Found:      true,
		Keyword:    original,
		Action:     neg.ConvertedAction,
		Confidence: 0.9,
		Source:     SourceCombination,
		Matched:    neg.BaseAction,
		Reason:     "negative ending: " + neg.NegativeType,
	}
	r.attachScript(&res)
	return res, true
}

// resolveMethod short-circuits phrases where a method particle marks a key
// action word (e.g. "드래그로"). The marked word's own action is used when
// it resolves, regardless of lower-priority words in the phrase.
func (r *Resolver) resolveMethod(trimmed, original string) (Resolution, bool) {
	pa := r.analyzer.AnalyzeParticles(trimmed)
	if len(pa.Method) == 0 {
		return Resolution{}, false
	}

	// The method bonus guarantees a method word sorts first.
	best := r.analyzer.PrioritizedWords(pa)[0]

	if hit, ok := r.table.Search(best.Word); ok && hit.Kind == mapping.MatchExact {
		res := Resolution{
			Found:      true,
			Keyword:    original,
			Action:     hit.Record.Action,
			Confidence: hit.Confidence,
			Source:     SourceCombination,
			Table:      hit.Source,
			Matched:    best.Word,
			Reason:     "method particle: " + best.Particle,
		}
		r.attachScript(&res)
		return res, true
	}
	return Resolution{}, false
}

func (r *Resolver) resolveCombination(phrase string) (Resolution, bool) {
	combo, ok := r.engine.Generate(phrase)
	if !ok {
		return Resolution{}, false
	}
	res := Resolution{
		Found:      true,
		Keyword:    phrase,
		Action:     combo.Action,
		Confidence: combo.Confidence,
		Source:     SourceCombination,
		Pattern:    combo.PatternID,
		Matched:    combo.JoinedText(),
		Words:      combo.WordTexts(),
	}
	r.attachCombinationScript(&res, combo)
	return res, true
}

// attachCombinationScript renders the generated action, appending a
// state-verification line when the decomposed phrase carries state words
// or the raw phrase matches a state ending.
func (r *Resolver) attachCombinationScript(res *Resolution, combo combiner.Combination) {
	if r.renderer == nil {
		return
	}

	var states []string
	for _, w := range combo.Words {
		if w.Role == lexicon.RoleState {
			states = append(states, w.Word)
		}
	}
	if len(states) == 0 {
		if sa := r.analyzer.AnalyzeState(combo.OriginalText); sa.IsState {
			states = append(states, sa.StateType)
		}
	}

	if script, ok := r.renderer.RenderWithStates(res.Action, res.Keyword, states); ok {
		res.Script = script
	}
}

func (r *Resolver) fail(phrase string) Resolution {
	suggestions := r.suggest.similar(phrase)
	if len(suggestions) == 0 {
		suggestions = r.suggest.advanced(phrase)
	}
	if len(suggestions) > 0 && r.metrics != nil {
		r.metrics.SuggestionsTotal.Inc()
	}
	return Resolution{
		Found:       false,
		Keyword:     phrase,
		Source:      SourceNone,
		Suggestions: suggestions,
		Reason:      "no mapping found",
	}
}

func (r *Resolver) fromHit(original string, hit mapping.Hit, source Source) Resolution {
	res := Resolution{
		Found:      true,
		Keyword:    original,
		Action:     hit.Record.Action,
		Confidence: hit.Confidence,
		Source:     source,
		Table:      hit.Source,
	}
	r.attachScript(&res)
	return res
}

func (r *Resolver) attachScript(res *Resolution) {
	if r.renderer == nil || res.Script != "" {
		return
	}
	if script, ok := r.renderer.Render(res.Action, res.Keyword); ok {
		res.Script = script
	}
}

// ResolveBatch resolves phrases sequentially. No batching optimization.
func (r *Resolver) ResolveBatch(ctx context.Context, phrases []string) []Resolution {
	out := make([]Resolution, len(phrases))
	for i, p := range phrases {
		out[i] = r.Resolve(ctx, p)
	}
	return out
}

// record updates statistics counters exactly once per Resolve call.
func (r *Resolver) record(res Resolution) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalQueries++
	if res.Found {
		r.hitsBySource[res.Source]++
	} else {
		r.failures++
	}
}

// Statistics returns a snapshot of the resolver's counters.
func (r *Resolver) Statistics() Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	hits := make(map[Source]uint64, len(r.hitsBySource))
	for k, v := range r.hitsBySource {
		hits[k] = v
	}

	var hitRate float64
	if r.totalQueries > 0 {
		hitRate = float64(hits[SourceCache]) / float64(r.totalQueries)
	}

	return Statistics{
		TotalQueries: r.totalQueries,
		HitsBySource: hits,
		Failures:     r.failures,
		CacheSize:    r.cache.len(),
		CacheHitRate: hitRate,
	}
}

// ClearCache drops all cached resolutions. Statistics are unaffected.
func (r *Resolver) ClearCache() {
	r.cache.clear()
}
