package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
mappings:
  - keywords: ["결제", "payment"]
    action: "Click"
    type: "action"
  - keywords: ["환불"]
    action: ""
  - keywords: []
    action: "Click"
  - keywords: ["취소"]
    action: "Click"
combinations:
  - words: ["일괄", "결제"]
    result: "일괄결제"
    meaning: "일괄 결제 처리"
    action: "Submit"
    type: "batch"
  - words: []
    result: "고장"
    action: "Click"
`

func TestParseTable(t *testing.T) {
	records, skipped, malformed, err := ParseTable([]byte(sampleTable), SourceSecondary)
	require.NoError(t, err)

	// Two valid mappings plus one flattened combination; two mappings and
	// one combination are malformed and skipped.
	assert.Len(t, records, 3)
	assert.Equal(t, 3, skipped)
	assert.Len(t, malformed, 3)

	for _, rec := range records {
		assert.Equal(t, SourceSecondary, rec.Source())
	}

	// Combination entries are flattened with the standard keyword order.
	last := records[2]
	assert.Equal(t, []string{"일괄결제", "일괄 결제 처리", "일괄", "결제"}, last.Keywords)
	assert.Equal(t, "Submit", last.Action)
}

func TestParseTable_InvalidYAML(t *testing.T) {
	_, _, _, err := ParseTable([]byte("mappings: [unclosed"), SourceSecondary)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0600))

	result, err := LoadFile(path, SourceSecondary)
	require.NoError(t, err)
	assert.Len(t, result.Records, 3)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, path, result.FilePath)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), SourceSecondary)
	assert.Error(t, err)
}
