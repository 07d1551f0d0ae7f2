// Package grammar analyzes Korean particles and verb endings to locate the
// action-bearing word in a test-case phrase.
//
// Three independent analyses are provided: particle extraction, negation
// detection, and state detection. All three may fire on the same input; the
// resolver combines their results, with negation given absolute priority
// because it inverts the expected action polarity.
package grammar

import (
	"strings"

	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
)

// ParticleCategory identifies the syntactic role a particle marks.
type ParticleCategory string

const (
	// CategoryMethod marks "by means of" (로/으로). A word carrying a
	// method particle most reliably names the real test action, so method
	// words dominate every other signal.
	CategoryMethod   ParticleCategory = "method"
	CategoryObject   ParticleCategory = "object"
	CategoryLocation ParticleCategory = "location"
	CategorySubject  ParticleCategory = "subject"
	CategoryGeneral  ParticleCategory = "general"
)

// MethodPriorityBonus is added to the base lexical priority of every word
// captured under the method category. Negation is not weighted here at
// all: the resolver checks it before any particle signal, so a detected
// negation never loses to a positive-action match.
const MethodPriorityBonus = 100

// MarkedWord is a word extracted together with the particle that marked it.
type MarkedWord struct {
	Word        string
	Particle    string
	Priority    int
	IsKeyAction bool
}

// ParticleAnalysis groups extracted words by particle category.
type ParticleAnalysis struct {
	Method   []MarkedWord
	Object   []MarkedWord
	Location []MarkedWord
	Subject  []MarkedWord
	General  []MarkedWord
}

// NegativeAnalysis is the result of negation-ending detection.
type NegativeAnalysis struct {
	IsNegative      bool
	NegativeType    string // matched ending text
	BaseAction      string // last token before the ending
	ConvertedAction string // negative counterpart action identifier
}

// StateAnalysis is the result of state-ending detection.
type StateAnalysis struct {
	IsState   bool
	StateType string
	BaseWord  string
}

// Analyzer scans raw phrase text for grammatical markers. It holds the
// particle sets and ending catalogs plus a classifier for priority lookups.
type Analyzer struct {
	catalog    *Catalog
	classifier *lexicon.Classifier
}

// NewAnalyzer builds an analyzer. A nil catalog uses the built-in one.
func NewAnalyzer(catalog *Catalog, classifier *lexicon.Classifier) *Analyzer {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if classifier == nil {
		classifier = lexicon.NewClassifier(nil)
	}
	return &Analyzer{catalog: catalog, classifier: classifier}
}

// AnalyzeParticles extracts (word)(particle) pairs category by category.
//
// Categories are processed in fixed order: method first, then object, then
// location, then subject. Matched spans are removed from the working text
// before the next category runs, so a word is claimed by at most one
// category. Whatever remains is tokenized into general words (length > 1).
func (a *Analyzer) AnalyzeParticles(text string) ParticleAnalysis {
	var result ParticleAnalysis
	if strings.TrimSpace(text) == "" {
		return result
	}

	remaining := text
	remaining, result.Method = a.extractCategory(remaining, a.catalog.MethodParticles, true)
	remaining, result.Object = a.extractCategory(remaining, a.catalog.ObjectParticles, false)
	remaining, result.Location = a.extractCategory(remaining, a.catalog.LocationParticles, false)
	remaining, result.Subject = a.extractCategory(remaining, a.catalog.SubjectParticles, false)

	for _, tok := range tokenize(remaining) {
		if len([]rune(tok)) <= 1 {
			continue
		}
		result.General = append(result.General, MarkedWord{
			Word:     tok,
			Priority: a.classifier.PriorityOf(tok),
		})
	}

	return result
}

// extractCategory scans text left to right for tokens ending in one of the
// category's particles, longest particle first. Matched tokens are removed
// from the returned remainder.
func (a *Analyzer) extractCategory(text string, particles []string, keyAction bool) (string, []MarkedWord) {
	var matches []MarkedWord
	var kept []string

	for _, tok := range strings.Fields(text) {
		word, particle := splitParticle(tok, particles)
		if particle == "" || word == "" {
			kept = append(kept, tok)
			continue
		}

		priority := a.classifier.PriorityOf(word)
		if keyAction {
			priority += MethodPriorityBonus
		}
		matches = append(matches, MarkedWord{
			Word:        word,
			Particle:    particle,
			Priority:    priority,
			IsKeyAction: keyAction,
		})
	}

	return strings.Join(kept, " "), matches
}

// splitParticle strips the longest matching particle suffix from a token.
// Returns ("", "") when no particle matches.
func splitParticle(token string, particles []string) (word, particle string) {
	best := ""
	for _, p := range particles {
		if strings.HasSuffix(token, p) && len(p) > len(best) && len(token) > len(p) {
			best = p
		}
	}
	if best == "" {
		return "", ""
	}
	return strings.TrimSuffix(token, best), best
}

// AnalyzeNegative tests the text against the negative-ending catalog.
//
// On the first matching ending, the last whitespace-delimited token before
// the ending becomes the base action, converted to its negative counterpart
// via the negative-action table. Base actions without a specific counterpart
// fall back to the generic verify-not-present action.
func (a *Analyzer) AnalyzeNegative(text string) NegativeAnalysis {
	var result NegativeAnalysis
	if text == "" {
		return result
	}

	for _, ending := range a.catalog.NegativeEndings {
		idx := strings.Index(text, ending)
		if idx < 0 {
			continue
		}

		result.IsNegative = true
		result.NegativeType = ending
		result.BaseAction = lastToken(text[:idx])
		result.ConvertedAction = a.catalog.NegativeAction(result.BaseAction)
		break
	}

	return result
}

// AnalyzeState tests the text against the state-ending catalog
// (e.g. "노출 중", "진행 중") using the same first-match strategy.
func (a *Analyzer) AnalyzeState(text string) StateAnalysis {
	var result StateAnalysis
	if text == "" {
		return result
	}

	for _, ending := range a.catalog.StateEndings {
		idx := strings.Index(text, ending)
		if idx < 0 {
			continue
		}

		result.IsState = true
		result.StateType = ending
		result.BaseWord = lastToken(text[:idx])
		break
	}

	return result
}

// PrioritizedWords flattens a particle analysis into a single list sorted by
// descending priority. Method words come out on top because of their bonus.
func (a *Analyzer) PrioritizedWords(pa ParticleAnalysis) []MarkedWord {
	var all []MarkedWord
	all = append(all, pa.Method...)
	all = append(all, pa.Object...)
	all = append(all, pa.Location...)
	all = append(all, pa.Subject...)
	all = append(all, pa.General...)

	// Insertion sort keeps the category order stable among equal priorities.
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].Priority > all[j-1].Priority; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	return all
}

// lastToken returns the final whitespace-delimited token of s, or the first
// token when the split yields exactly one.
func lastToken(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// tokenize replaces non-word punctuation with spaces and splits.
func tokenize(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '가' && r <= '힣', r >= 'ㄱ' && r <= 'ㅎ':
			return r
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return ' '
		}
	}, s)
	return strings.Fields(cleaned)
}
