package combiner

import "github.com/fyrsmithlabs/kmapd/internal/lexicon"

// Pattern is a grammatical word-role sequence with an empirical frequency
// weight. Patterns are tried in catalog order; the first whose roles match
// wins.
type Pattern struct {
	ID     string
	Roles  []lexicon.Role
	Weight float64
}

// PatternMatch is the outcome of matching a decomposed phrase against the
// pattern catalog.
type PatternMatch struct {
	Pattern  Pattern
	Matched  bool
	Flexible bool
}

// FlexiblePatternID marks the fallback used when no catalog pattern fits
// but the words still carry enough grammatical substance.
const FlexiblePatternID = "flexible"

var twoWordPatterns = []Pattern{
	{ID: "noun_verb", Roles: []lexicon.Role{lexicon.RoleNoun, lexicon.RoleVerb}, Weight: 0.9},
	{ID: "modifier_noun", Roles: []lexicon.Role{lexicon.RoleModifier, lexicon.RoleNoun}, Weight: 0.8},
	{ID: "noun_state", Roles: []lexicon.Role{lexicon.RoleNoun, lexicon.RoleState}, Weight: 0.85},
	{ID: "noun_noun", Roles: []lexicon.Role{lexicon.RoleNoun, lexicon.RoleNoun}, Weight: 0.7},
}

var threeWordPatterns = []Pattern{
	{ID: "modifier_noun_verb", Roles: []lexicon.Role{lexicon.RoleModifier, lexicon.RoleNoun, lexicon.RoleVerb}, Weight: 0.75},
	{ID: "noun_noun_verb", Roles: []lexicon.Role{lexicon.RoleNoun, lexicon.RoleNoun, lexicon.RoleVerb}, Weight: 0.8},
	{ID: "noun_verb_state", Roles: []lexicon.Role{lexicon.RoleNoun, lexicon.RoleVerb, lexicon.RoleState}, Weight: 0.7},
}

var longPhrasePattern = Pattern{ID: "full_sentence", Weight: 0.6}

// flexibleWeight is the weight assigned to the fallback pattern.
const flexibleWeight = 0.5

// MatchPattern finds the first catalog pattern whose role sequence matches
// the decomposed words, falling back to a flexible match when the words
// contain at least one noun plus a verb or state. Phrases of four or more
// words always match the long-phrase pattern.
func MatchPattern(words []ClassifiedWord) PatternMatch {
	switch {
	case len(words) < 2:
		return PatternMatch{}
	case len(words) >= 4:
		return PatternMatch{Pattern: longPhrasePattern, Matched: true}
	}

	catalog := twoWordPatterns
	if len(words) == 3 {
		catalog = threeWordPatterns
	}

	for _, p := range catalog {
		if rolesMatch(words, p.Roles) {
			return PatternMatch{Pattern: p, Matched: true}
		}
	}

	if hasFlexibleShape(words) {
		return PatternMatch{
			Pattern:  Pattern{ID: FlexiblePatternID, Weight: flexibleWeight},
			Matched:  true,
			Flexible: true,
		}
	}
	return PatternMatch{}
}

func rolesMatch(words []ClassifiedWord, roles []lexicon.Role) bool {
	if len(words) != len(roles) {
		return false
	}
	for i, w := range words {
		if w.Role != roles[i] {
			return false
		}
	}
	return true
}

// hasFlexibleShape reports whether the words carry at least one noun and at
// least one verb or state, in any order.
func hasFlexibleShape(words []ClassifiedWord) bool {
	var noun, action bool
	for _, w := range words {
		switch w.Role {
		case lexicon.RoleNoun:
			noun = true
		case lexicon.RoleVerb, lexicon.RoleState:
			action = true
		}
	}
	return noun && action
}
