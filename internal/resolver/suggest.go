package resolver

import (
	"sort"
	"strings"

	"github.com/fyrsmithlabs/kmapd/internal/mapping"
)

// Suggestion is a near-miss keyword offered when resolution fails.
type Suggestion struct {
	Keyword    string  `json:"keyword"`
	Action     string  `json:"action"`
	Similarity float64 `json:"similarity"`
	Reason     string  `json:"reason,omitempty"`
}

// Suggestion tuning defaults. The advanced phase allows twice the
// configured result cap.
const (
	DefaultSimilarityThreshold = 0.5
	DefaultMaxSuggestions      = 5

	variationConfidence  = 0.7
	synonymConfidence    = 0.6
	looseMatchConfidence = 0.5
)

// suggester produces similarity and variation based suggestions from the
// mapping table's keyword inventory.
type suggester struct {
	table      *mapping.Table
	threshold  float64
	maxResults int
}

func newSuggester(table *mapping.Table, threshold float64, maxResults int) *suggester {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxSuggestions
	}
	return &suggester{table: table, threshold: threshold, maxResults: maxResults}
}

// similar returns table keywords whose normalized edit-distance similarity
// to the query strictly exceeds the threshold, best first, capped at the
// configured result limit. Zero-length comparisons count as identical.
func (s *suggester) similar(query string) []Suggestion {
	normalized := strings.ToLower(strings.TrimSpace(query))

	var out []Suggestion
	seen := make(map[string]struct{})
	for _, ref := range s.table.Keywords() {
		key := strings.ToLower(strings.TrimSpace(ref.Keyword))
		if _, dup := seen[key]; dup {
			continue
		}
		sim := similarity(normalized, key)
		if sim <= s.threshold {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Suggestion{
			Keyword:    ref.Keyword,
			Action:     ref.Action,
			Similarity: sim,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	if len(out) > s.maxResults {
		out = out[:s.maxResults]
	}
	return out
}

// synonyms maps common keywords to interchangeable Korean alternatives.
var synonyms = map[string][]string{
	"확인":  {"검증", "체크", "검사"},
	"클릭":  {"선택", "누르기", "터치"},
	"입력":  {"타이핑", "기입"},
	"노출":  {"표시", "보임", "나타남"},
	"이동":  {"움직임", "가기"},
	"업로드": {"올리기", "첨부"},
	"삭제":  {"제거", "지우기"},
}

// grammarParticles and grammarEndings drive mechanical variation of a
// query when simple similarity finds nothing.
var (
	grammarParticles = []string{"이", "가", "을", "를", "에", "에서", "으로", "로"}
	grammarEndings   = []string{"되어야", "하고", "한다", "해야"}
)

// advanced widens the search when plain similarity suggestions come back
// empty: grammatical variations of the query (particles and verb endings
// stripped or appended) and synonym substitutions are checked against the
// table, then any surviving slots are filled with loose substring matches.
func (s *suggester) advanced(query string) []Suggestion {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}
	limit := 2 * s.maxResults

	var out []Suggestion
	seen := make(map[string]struct{})
	add := func(keyword, action string, conf float64, reason string) {
		key := strings.ToLower(keyword)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Suggestion{
			Keyword:    keyword,
			Action:     action,
			Similarity: conf,
			Reason:     reason,
		})
	}

	for _, variant := range grammarVariations(normalized) {
		if hit, ok := s.table.Search(variant); ok {
			add(variant, hit.Record.Action, variationConfidence, "grammar variation")
		}
	}

	for base, alts := range synonyms {
		if !strings.Contains(normalized, base) {
			continue
		}
		for _, alt := range alts {
			candidate := strings.Replace(normalized, base, alt, 1)
			if hit, ok := s.table.Search(candidate); ok {
				add(candidate, hit.Record.Action, synonymConfidence, "synonym")
			}
		}
	}

	if len(out) < limit {
		for _, ref := range s.table.Keywords() {
			key := strings.ToLower(strings.TrimSpace(ref.Keyword))
			if !strings.Contains(key, normalized) && !strings.Contains(normalized, key) {
				continue
			}
			add(ref.Keyword, ref.Action, looseMatchConfidence, "partial match")
			if len(out) >= limit {
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// grammarVariations produces mechanical rewrites of the query: each
// particle or ending stripped when present as a suffix, and each appended
// when absent.
func grammarVariations(normalized string) []string {
	var variants []string
	affixes := make([]string, 0, len(grammarParticles)+len(grammarEndings))
	affixes = append(affixes, grammarParticles...)
	affixes = append(affixes, grammarEndings...)

	for _, affix := range affixes {
		if strings.HasSuffix(normalized, affix) {
			if trimmed := strings.TrimSuffix(normalized, affix); trimmed != "" {
				variants = append(variants, trimmed)
			}
		} else {
			variants = append(variants, normalized+affix)
		}
	}
	return variants
}

// similarity is the normalized Levenshtein similarity between two
// strings, computed over runes: (maxLen - distance) / maxLen. Two empty
// strings are identical.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshteinDistance(ra, rb)
	return float64(maxLen-dist) / float64(maxLen)
}

// levenshteinDistance computes the edit distance between two rune slices.
func levenshteinDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = minOf(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}

func minOf(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
