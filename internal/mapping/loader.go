package mapping

import (
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxTableFileSize = 4 * 1024 * 1024 // 4MB

// tableFile is the YAML shape of an external mapping table file.
type tableFile struct {
	Mappings     []Record      `koanf:"mappings"`
	Combinations []Combination `koanf:"combinations"`
}

// LoadResult reports what an external table file contributed.
type LoadResult struct {
	Records   []Record
	Skipped   int
	FilePath  string
	Malformed []string
}

// LoadFile reads an external mapping table from a YAML file. Malformed
// records (missing keywords or action) are skipped rather than failing the
// whole file; the result lists the first keyword of each skipped entry.
// Combination entries are flattened into records the same way the built-in
// combination catalog is.
func LoadFile(path string, source Source) (LoadResult, error) {
	result := LoadResult{FilePath: path}

	f, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return result, fmt.Errorf("failed to stat mapping file: %w", err)
	}
	if info.Size() > maxTableFileSize {
		return result, fmt.Errorf("mapping file %s exceeds %d bytes", path, maxTableFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return result, fmt.Errorf("failed to read mapping file: %w", err)
	}

	records, skipped, malformed, err := ParseTable(content, source)
	if err != nil {
		return result, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}

	result.Records = records
	result.Skipped = skipped
	result.Malformed = malformed
	return result, nil
}

// ParseTable parses YAML table content into records, filtering malformed
// entries instead of rejecting the document.
func ParseTable(content []byte, source Source) (records []Record, skipped int, malformed []string, err error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, 0, nil, fmt.Errorf("failed to parse table yaml: %w", err)
	}

	var file tableFile
	if err := k.Unmarshal("", &file); err != nil {
		return nil, 0, nil, fmt.Errorf("failed to unmarshal table: %w", err)
	}

	for _, rec := range file.Mappings {
		if !rec.Valid() {
			skipped++
			malformed = append(malformed, firstKeyword(rec))
			continue
		}
		rec.source = source
		records = append(records, rec)
	}

	for _, combo := range file.Combinations {
		if combo.Result == "" || combo.Action == "" || len(combo.Words) == 0 {
			skipped++
			malformed = append(malformed, combo.Result)
			continue
		}
		rec := flattenCombination(combo)
		rec.source = source
		records = append(records, rec)
	}

	return records, skipped, malformed, nil
}

func firstKeyword(rec Record) string {
	if len(rec.Keywords) > 0 {
		return rec.Keywords[0]
	}
	return "(no keywords)"
}
