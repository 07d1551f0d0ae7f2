package mapping

// Combination is a hand-authored "pattern + example combination" entry:
// two or more known words that combine into a named compound action.
// Combinations are flattened into ordinary records at load time; this is
// static expansion, not runtime inference.
type Combination struct {
	// Words are the component words of the combination.
	Words []string `koanf:"words"`

	// Result is the combined compound keyword (e.g. "전체선택").
	Result string `koanf:"result"`

	// Meaning is the human-readable gloss.
	Meaning string `koanf:"meaning"`

	// Action is the automation action the combination maps to.
	Action string `koanf:"action"`

	// Type tags the combination's pattern family.
	Type string `koanf:"type"`
}

// FlattenCombinations expands each catalog entry into a Record whose
// keyword list is [result, meaning, words...]. Entries missing a result or
// action are skipped.
func FlattenCombinations(catalog []Combination) []Record {
	records := make([]Record, 0, len(catalog))
	for _, c := range catalog {
		if c.Result == "" || c.Action == "" {
			continue
		}
		records = append(records, flattenCombination(c))
	}
	return records
}

func flattenCombination(c Combination) Record {
	keywords := make([]string, 0, len(c.Words)+2)
	keywords = append(keywords, c.Result)
	if c.Meaning != "" {
		keywords = append(keywords, c.Meaning)
	}
	keywords = append(keywords, c.Words...)

	typ := c.Type
	if typ == "" {
		typ = "combination"
	}

	return Record{
		Keywords:      keywords,
		Action:        c.Action,
		Type:          typ,
		Status:        "combination_mapped",
		Meaning:       c.Meaning,
		OriginalWords: c.Words,
	}
}
