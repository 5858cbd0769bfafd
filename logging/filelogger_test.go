package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLoggerCreatesRunDirectory(t *testing.T) {
	base := t.TempDir()
	logger, err := NewFileLogger(base, "abc123")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "testrun-abc123"), logger.RunDir())
	assert.Equal(t, "abc123", logger.RunID())
	assert.DirExists(t, logger.RunDir())
}

func TestLogGroupOutputStripsANSI(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "run1")
	require.NoError(t, err)

	raw := "\x1b[32mPassed!\x1b[0m  - Failed: 0, Passed: 10\n"
	require.NoError(t, logger.LogGroupOutput("Array.prototype.map", []byte(raw)))

	data, err := os.ReadFile(filepath.Join(logger.RunDir(), "Array.prototype.map.log"))
	require.NoError(t, err)
	assert.Equal(t, "Passed!  - Failed: 0, Passed: 10\n", string(data))
}

func TestCompleteWritesSummary(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "run2")
	require.NoError(t, err)

	logger.LogSummary("✅ Array.prototype.map")
	logger.LogSummary("8/10 RegExp")
	require.NoError(t, logger.Complete())

	data, err := os.ReadFile(filepath.Join(logger.RunDir(), SummaryFilename))
	require.NoError(t, err)
	assert.Equal(t, "✅ Array.prototype.map\n8/10 RegExp\n", string(data))
}

func TestCompleteWithNoLines(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "run3")
	require.NoError(t, err)
	require.NoError(t, logger.Complete())

	data, err := os.ReadFile(filepath.Join(logger.RunDir(), SummaryFilename))
	require.NoError(t, err)
	assert.Empty(t, data)
}
