// Package lexicon classifies Korean words into grammatical roles and
// assigns action-priority scores used by the combination engine.
//
// Classification is a membership test against five static category tables
// (nouns, verbs, modifiers, states, particles). The tables are supplied at
// construction time and never mutated afterwards, so a Classifier is safe
// for concurrent use.
package lexicon

import (
	"sort"
	"strings"
)

// Role is the grammatical role of a single word.
type Role string

const (
	RoleNoun     Role = "noun"
	RoleVerb     Role = "verb"
	RoleModifier Role = "modifier"
	RoleState    Role = "state"
	RoleParticle Role = "particle"
	RoleUnknown  Role = "unknown"
)

// roleOrder is the fixed priority used when a word appears in more than one
// category table. Earlier roles win; noun beats everything. This is a
// defined tie-break, not an error condition.
var roleOrder = []Role{RoleNoun, RoleVerb, RoleModifier, RoleState, RoleParticle}

// Vocabulary holds the five classification tables plus the four
// action-priority banks. All fields are read-only after construction.
type Vocabulary struct {
	// Category tables: role -> list of known words.
	Nouns     []string
	Verbs     []string
	Modifiers []string
	States    []string
	Particles []string

	// Priority banks: word -> weight. Specific actions score highest,
	// intent-only expressions score zero.
	SpecificActions map[string]int
	GeneralActions  map[string]int
	Verifications   map[string]int
	IntentOnly      map[string]int
}

// Classifier answers role and priority queries against a Vocabulary.
type Classifier struct {
	roles map[string]Role
	vocab *Vocabulary

	// allWords is every vocabulary entry sorted by descending length,
	// used for greedy longest-match segmentation.
	allWords []string
}

// NewClassifier builds a classifier from the given vocabulary.
// Passing nil uses the built-in default vocabulary.
func NewClassifier(vocab *Vocabulary) *Classifier {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	roles := make(map[string]Role)
	byRole := map[Role][]string{
		RoleNoun:     vocab.Nouns,
		RoleVerb:     vocab.Verbs,
		RoleModifier: vocab.Modifiers,
		RoleState:    vocab.States,
		RoleParticle: vocab.Particles,
	}

	seen := make(map[string]struct{})
	var all []string

	// Insert in priority order so overlapping words keep the
	// highest-priority role.
	for _, role := range roleOrder {
		for _, w := range byRole[role] {
			key := normalize(w)
			if key == "" {
				continue
			}
			if _, ok := roles[key]; !ok {
				roles[key] = role
			}
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				all = append(all, key)
			}
		}
	}

	// Longest first; equal lengths keep lexicographic order so
	// segmentation is deterministic.
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})

	return &Classifier{
		roles:    roles,
		vocab:    vocab,
		allWords: all,
	}
}

// Classify returns the grammatical role of a word. Unknown words return
// RoleUnknown; Classify never fails.
func (c *Classifier) Classify(word string) Role {
	role, ok := c.roles[normalize(word)]
	if !ok {
		return RoleUnknown
	}
	return role
}

// PriorityOf returns the action-priority weight of a word. The four banks
// are consulted in order: specific, general, verification, intent-only.
// Words absent from every bank score zero.
func (c *Classifier) PriorityOf(word string) int {
	key := normalize(word)
	if key == "" {
		return 0
	}
	for _, bank := range []map[string]int{
		c.vocab.SpecificActions,
		c.vocab.GeneralActions,
		c.vocab.Verifications,
		c.vocab.IntentOnly,
	} {
		if p, ok := bank[key]; ok {
			return p
		}
	}
	return 0
}

// Known reports whether the word appears in any category table.
func (c *Classifier) Known(word string) bool {
	_, ok := c.roles[normalize(word)]
	return ok
}

// AllWords returns every vocabulary entry sorted by descending length.
// The returned slice is shared; callers must not modify it.
func (c *Classifier) AllWords() []string {
	return c.allWords
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
