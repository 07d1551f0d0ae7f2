// Package combiner generates mappings for phrases that miss the static
// tables, by decomposing the phrase into known words, matching the role
// sequence against a small grammar-pattern catalog, and inferring the best
// action from the matched words.
package combiner

import (
	"strings"

	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
	"github.com/fyrsmithlabs/kmapd/internal/mapping"
)

// SeparationMethod records how a phrase was split into words.
type SeparationMethod string

const (
	SeparationWhitespace SeparationMethod = "whitespace"
	SeparationGreedy     SeparationMethod = "greedy-segment"
)

// ClassifiedWord is a single word with its grammatical role and lookup
// metadata.
type ClassifiedWord struct {
	Word          string       `json:"word"`
	Role          lexicon.Role `json:"role"`
	ExistsInTable bool         `json:"exists_in_table"`
	Priority      int          `json:"priority"`
}

// DecomposedPhrase is the result of splitting a phrase into classified
// words. Success requires at least one word known to the mapping table.
type DecomposedPhrase struct {
	OriginalText string           `json:"original_text"`
	Words        []ClassifiedWord `json:"words"`
	Method       SeparationMethod `json:"method"`
	Success      bool             `json:"success"`
}

// Decomposer splits phrases into classified words.
type Decomposer struct {
	classifier *lexicon.Classifier
	table      *mapping.Table
}

// NewDecomposer builds a decomposer over the given classifier and table.
func NewDecomposer(classifier *lexicon.Classifier, table *mapping.Table) *Decomposer {
	return &Decomposer{classifier: classifier, table: table}
}

// Decompose splits a phrase on whitespace; a single token falls back to
// greedy longest-match segmentation over the classifier vocabulary. Empty
// input fails with no words.
func (d *Decomposer) Decompose(phrase string) DecomposedPhrase {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return DecomposedPhrase{OriginalText: phrase}
	}

	tokens := strings.Fields(trimmed)
	method := SeparationWhitespace
	if len(tokens) == 1 {
		if segments := d.segment(tokens[0]); len(segments) > 1 {
			tokens = segments
			method = SeparationGreedy
		}
	}

	words := make([]ClassifiedWord, 0, len(tokens))
	success := false
	for _, tok := range tokens {
		w := ClassifiedWord{
			Word:          tok,
			Role:          d.classifier.Classify(tok),
			ExistsInTable: d.table.ContainsWord(tok),
			Priority:      d.classifier.PriorityOf(tok),
		}
		if w.ExistsInTable {
			success = true
		}
		words = append(words, w)
	}

	return DecomposedPhrase{
		OriginalText: phrase,
		Words:        words,
		Method:       method,
		Success:      success,
	}
}

// segment performs greedy longest-match segmentation: at each position, the
// longest known vocabulary word that prefixes the remainder is emitted;
// otherwise the first rune is dropped and matching retries. Returns the
// original token unchanged when no useful split was achieved.
func (d *Decomposer) segment(token string) []string {
	known := d.classifier.AllWords()

	var result []string
	remaining := strings.ToLower(token)

	for len(remaining) > 0 {
		matched := false
		for _, w := range known {
			if strings.HasPrefix(remaining, w) {
				result = append(result, w)
				remaining = remaining[len(w):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Unknown leading rune; skip it and keep scanning.
		runes := []rune(remaining)
		remaining = string(runes[1:])
	}

	if len(result) <= 1 {
		return []string{token}
	}
	return result
}
