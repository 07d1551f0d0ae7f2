package combiner

import "strings"

// Combination is a dynamically generated mapping for a phrase absent from
// the static tables.
type Combination struct {
	OriginalText string           `json:"original_text"`
	Words        []ClassifiedWord `json:"words"`
	PatternID    string           `json:"pattern_id"`
	Action       string           `json:"action"`
	ActionSource string           `json:"action_source,omitempty"`
	Confidence   float64          `json:"confidence"`
	Method       SeparationMethod `json:"method"`
}

// Confidence blend ratios: known-word coverage, pattern weight, and action
// inference confidence.
const (
	coverageRatio  = 0.4
	patternRatio   = 0.3
	inferenceRatio = 0.3
)

// Engine generates combinations end to end.
type Engine struct {
	decomposer *Decomposer
}

// NewEngine builds a combination engine over the given decomposer.
func NewEngine(decomposer *Decomposer) *Engine {
	return &Engine{decomposer: decomposer}
}

// Generate attempts to build a combination for the phrase. The second
// return is false when decomposition fails or no grammatical pattern fits.
func (e *Engine) Generate(phrase string) (Combination, bool) {
	decomposed := e.decomposer.Decompose(phrase)
	if !decomposed.Success {
		return Combination{}, false
	}

	match := MatchPattern(decomposed.Words)
	if !match.Matched {
		return Combination{}, false
	}

	inferred := InferAction(decomposed.Words)

	return Combination{
		OriginalText: phrase,
		Words:        decomposed.Words,
		PatternID:    match.Pattern.ID,
		Action:       inferred.Action,
		ActionSource: inferred.SourceWord,
		Confidence:   combineConfidence(decomposed.Words, match.Pattern.Weight, inferred.Confidence),
		Method:       decomposed.Method,
	}, true
}

// WordTexts returns the plain word strings of a combination.
func (c Combination) WordTexts() []string {
	out := make([]string, len(c.Words))
	for i, w := range c.Words {
		out[i] = w.Word
	}
	return out
}

// JoinedText returns the words joined by a single space.
func (c Combination) JoinedText() string {
	return strings.Join(c.WordTexts(), " ")
}

// combineConfidence blends known-word coverage, pattern weight, and action
// inference confidence into a single score in [0,1].
func combineConfidence(words []ClassifiedWord, patternWeight, actionConfidence float64) float64 {
	known := 0
	for _, w := range words {
		if w.ExistsInTable {
			known++
		}
	}
	coverage := 0.0
	if len(words) > 0 {
		coverage = float64(known) / float64(len(words))
	}
	return coverage*coverageRatio + patternWeight*patternRatio + actionConfidence*inferenceRatio
}
