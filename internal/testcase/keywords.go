package testcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractKeywords breaks a phrase into candidate mapping keywords:
// punctuation is stripped, the remainder is split on whitespace, and
// single-character or duplicate tokens are dropped. Tokens are lowercased
// so Latin-script keywords dedupe case-insensitively.
func ExtractKeywords(phrase string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, phrase)

	var out []string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		token = strings.ToLower(token)
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
