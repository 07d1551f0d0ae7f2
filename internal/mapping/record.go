// Package mapping provides the in-memory keyword→action mapping table.
//
// Records come from three sources merged at load time: the primary data
// set, the secondary data set, and records flattened from the combination
// catalog. Earlier sources take precedence on ties. The table is read-only
// for the process lifetime.
package mapping

import "strings"

// Source identifies which data set a record (or a search hit) came from.
type Source string

const (
	SourcePrimary     Source = "primary"
	SourceSecondary   Source = "secondary"
	SourceCombination Source = "combination"
)

// Record is a single keyword→action mapping entry.
type Record struct {
	// Keywords is an ordered set of recognized phrases, matched
	// case-insensitively. Must be non-empty.
	Keywords []string `koanf:"keywords" json:"keywords"`

	// Action is the canonical automation action identifier. Must be
	// non-empty.
	Action string `koanf:"action" json:"action"`

	// Type is an opaque category tag passed through to the renderer.
	Type string `koanf:"type" json:"type,omitempty"`

	// Status is opaque metadata passed through to the renderer.
	Status string `koanf:"status" json:"status,omitempty"`

	// Meaning is a human-readable gloss, populated for combination
	// records.
	Meaning string `koanf:"meaning" json:"meaning,omitempty"`

	// OriginalWords holds the component words of a combination record.
	OriginalWords []string `koanf:"original_words" json:"original_words,omitempty"`

	// source records which data set the record belongs to.
	source Source
}

// Valid reports whether the record carries the required fields. Invalid
// records are filtered out at load time rather than failing the load.
func (r Record) Valid() bool {
	if strings.TrimSpace(r.Action) == "" {
		return false
	}
	for _, k := range r.Keywords {
		if strings.TrimSpace(k) != "" {
			return true
		}
	}
	return false
}

// Source returns the data set this record was loaded from.
func (r Record) Source() Source {
	return r.source
}

// matchesExact reports whether any keyword equals the normalized query.
func (r Record) matchesExact(normalized string) bool {
	for _, k := range r.Keywords {
		if strings.ToLower(strings.TrimSpace(k)) == normalized {
			return true
		}
	}
	return false
}

// matchesSubstring reports whether any keyword contains the query or the
// query contains the keyword. This bidirectional containment is deliberate
// legacy behavior: it can match unrelated short strings, but several
// callers depend on it (see the table tests).
func (r Record) matchesSubstring(normalized string) bool {
	for _, k := range r.Keywords {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return true
		}
	}
	return false
}
