package mapping

import "strings"

// MatchKind distinguishes how a search hit matched.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
	MatchNone      MatchKind = "none"
)

// Hit is a successful table search result.
type Hit struct {
	Record     *Record
	Kind       MatchKind
	Source     Source
	Confidence float64
}

// Table is an ordered collection of mapping records. Extend appends during
// startup; after that the table is read-only and safe for concurrent reads.
type Table struct {
	records []Record
}

// NewTable merges the given record sets in precedence order: primary,
// secondary, then combination records flattened from the catalog. Invalid
// records are silently excluded.
func NewTable(primary, secondary []Record, catalog []Combination) *Table {
	t := &Table{}
	t.appendAll(primary, SourcePrimary)
	t.appendAll(secondary, SourceSecondary)
	t.appendAll(FlattenCombinations(catalog), SourceCombination)
	return t
}

func (t *Table) appendAll(records []Record, src Source) {
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		r.source = src
		t.records = append(t.records, r)
	}
}

// Extend appends externally loaded records, keeping the source tags they
// were parsed with. Must only be called during startup, before the table
// is shared across goroutines.
func (t *Table) Extend(records []Record) {
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		t.records = append(t.records, r)
	}
}

// Len returns the number of loaded records.
func (t *Table) Len() int {
	return len(t.records)
}

// CountBySource returns record counts per originating data set.
func (t *Table) CountBySource() map[Source]int {
	counts := make(map[Source]int, 3)
	for i := range t.records {
		counts[t.records[i].source]++
	}
	return counts
}

// Search looks up a keyword. Two phases: exact case-insensitive equality
// over the whole table in order, then bidirectional substring containment.
// The earliest matching record wins within each phase. Empty queries never
// match.
func (t *Table) Search(keyword string) (Hit, bool) {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return Hit{Kind: MatchNone}, false
	}

	for i := range t.records {
		if t.records[i].matchesExact(normalized) {
			return Hit{
				Record:     &t.records[i],
				Kind:       MatchExact,
				Source:     t.records[i].source,
				Confidence: 1.0,
			}, true
		}
	}

	for i := range t.records {
		if t.records[i].matchesSubstring(normalized) {
			return Hit{
				Record:     &t.records[i],
				Kind:       MatchSubstring,
				Source:     t.records[i].source,
				Confidence: 0.8,
			}, true
		}
	}

	return Hit{Kind: MatchNone}, false
}

// SearchSource behaves like Search but restricts matching to records from
// one data set. The resolver uses this to report which set satisfied a
// query and to honor primary-over-secondary precedence.
func (t *Table) SearchSource(keyword string, src Source) (Hit, bool) {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return Hit{Kind: MatchNone}, false
	}

	for i := range t.records {
		if t.records[i].source != src {
			continue
		}
		if t.records[i].matchesExact(normalized) {
			return Hit{
				Record:     &t.records[i],
				Kind:       MatchExact,
				Source:     src,
				Confidence: 1.0,
			}, true
		}
	}

	for i := range t.records {
		if t.records[i].source != src {
			continue
		}
		if t.records[i].matchesSubstring(normalized) {
			return Hit{
				Record:     &t.records[i],
				Kind:       MatchSubstring,
				Source:     src,
				Confidence: 0.8,
			}, true
		}
	}

	return Hit{Kind: MatchNone}, false
}

// ContainsWord reports whether any record keyword contains the word or the
// word contains the keyword. Used by the decomposer to decide whether a
// segmentation produced anything actionable.
func (t *Table) ContainsWord(word string) bool {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return false
	}
	for i := range t.records {
		if t.records[i].matchesSubstring(normalized) {
			return true
		}
	}
	return false
}

// Keywords returns every keyword string across all records, in table order.
// The suggestion engine scans this list for similarity candidates.
func (t *Table) Keywords() []KeywordRef {
	var refs []KeywordRef
	for i := range t.records {
		for _, k := range t.records[i].Keywords {
			if strings.TrimSpace(k) == "" {
				continue
			}
			refs = append(refs, KeywordRef{
				Keyword: k,
				Action:  t.records[i].Action,
				Source:  t.records[i].source,
			})
		}
	}
	return refs
}

// KeywordRef pairs a keyword string with its record's action.
type KeywordRef struct {
	Keyword string
	Action  string
	Source  Source
}
