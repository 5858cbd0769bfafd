package trx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTRX(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "group.trx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSummary(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Summary
	}{
		{
			name: "well-formed counters",
			content: `<?xml version="1.0" encoding="utf-8"?>
<TestRun xmlns="http://microsoft.com/schemas/VisualStudio/TeamTest/2010">
  <ResultSummary outcome="Completed">
    <Counters total="15" executed="15" passed="12" failed="2" notExecuted="1" />
  </ResultSummary>
</TestRun>`,
			expected: Summary{Passed: 12, Failed: 2, Skipped: 1},
		},
		{
			name: "missing attributes default to zero",
			content: `<?xml version="1.0" encoding="utf-8"?>
<TestRun xmlns="http://microsoft.com/schemas/VisualStudio/TeamTest/2010">
  <ResultSummary>
    <Counters passed="10" />
  </ResultSummary>
</TestRun>`,
			expected: Summary{Passed: 10},
		},
		{
			name: "no summary node",
			content: `<?xml version="1.0" encoding="utf-8"?>
<TestRun xmlns="http://microsoft.com/schemas/VisualStudio/TeamTest/2010">
  <Results />
</TestRun>`,
			expected: Summary{},
		},
		{
			name:     "malformed xml",
			content:  `<TestRun xmlns="http://microsoft.com/schemas/VisualStudio/TeamTest/2010"><ResultSummary>`,
			expected: Summary{},
		},
		{
			name: "wrong namespace",
			content: `<?xml version="1.0" encoding="utf-8"?>
<TestRun xmlns="http://example.com/not-trx">
  <ResultSummary>
    <Counters passed="10" failed="5" />
  </ResultSummary>
</TestRun>`,
			expected: Summary{},
		},
		{
			name:     "not xml at all",
			content:  "passed: 10\nfailed: 2\n",
			expected: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTRX(t, tt.content)
			assert.Equal(t, tt.expected, ReadSummary(path))
		})
	}
}

func TestReadSummaryMissingFile(t *testing.T) {
	sum := ReadSummary(filepath.Join(t.TempDir(), "does-not-exist.trx"))
	assert.Equal(t, Summary{}, sum)
	assert.Equal(t, 0, sum.Total())
}

func TestSummaryTotal(t *testing.T) {
	sum := Summary{Passed: 7, Failed: 2, Skipped: 3}
	assert.Equal(t, 12, sum.Total())
}
