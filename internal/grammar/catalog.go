package grammar

// Catalog holds the particle sets, ending catalogs, and negative-action
// conversion table. Immutable after construction.
type Catalog struct {
	MethodParticles   []string
	ObjectParticles   []string
	LocationParticles []string
	SubjectParticles  []string

	NegativeEndings []string
	StateEndings    []string

	// NegativeActions maps a base action word to its verify-not
	// counterpart. Missing entries use DefaultNegativeAction.
	NegativeActions map[string]string

	// DefaultNegativeAction is the generic verify-not-present action
	// emitted when the base action has no specific counterpart.
	DefaultNegativeAction string
}

// DefaultCatalog returns the built-in grammar catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		MethodParticles:   []string{"으로", "로"},
		ObjectParticles:   []string{"을", "를"},
		LocationParticles: []string{"에서", "에"},
		SubjectParticles:  []string{"이", "가"},

		NegativeEndings: []string{
			"되지 않아야", "하지 않아야", "안되어야",
			"되면 안된다", "하면 안된다", "없어야",
			"되지 않는다", "하지 않는다", "안된다",
		},
		StateEndings: []string{
			"노출 중", "진행 중", "실행 중", "동작 중",
			"활성화 중", "비활성화 중", "로딩 중",
		},

		NegativeActions: map[string]string{
			"업로드": "Verify Upload Not Present",
			"클릭":  "Verify Element Not Clickable",
			"표시":  "Verify Element Not Visible",
			"노출":  "Verify Element Not Visible",
			"존재":  "Verify Element Not Present",
			"활성화": "Verify Element Not Clickable",
			"선택":  "Verify Element Not Checked",
			"입력":  "Verify Element Read Only",
		},
		DefaultNegativeAction: "Verify Element Not Present",
	}
}

// NegativeAction resolves the negative counterpart of a base action word.
// The base word may carry a trailing verb suffix (e.g. "업로드되지" when the
// ending was split mid-word); the lookup tries the raw word first, then
// strips known verbal suffixes.
func (c *Catalog) NegativeAction(baseAction string) string {
	if baseAction == "" {
		return c.DefaultNegativeAction
	}
	if action, ok := c.NegativeActions[baseAction]; ok {
		return action
	}
	// Trailing 되/하 stems left by ending splits ("업로드되지 않아야"
	// splits as "업로드되지" + " 않아야" for some ending variants).
	for _, suffix := range []string{"되지", "하지", "되", "하"} {
		trimmed, ok := trimSuffix(baseAction, suffix)
		if !ok {
			continue
		}
		if action, ok := c.NegativeActions[trimmed]; ok {
			return action
		}
	}
	return c.DefaultNegativeAction
}

func trimSuffix(s, suffix string) (string, bool) {
	if len(s) > len(suffix) && s[len(s)-len(suffix):] == suffix {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
