package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogWritesLinesAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(Options{Path: path, Level: "debug"})
	l.Log("generated ribbed_drum")
	l.Zap().Debug("merge", zap.Int("parts", 3))
	require.NoError(t, l.Close())

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] generated ribbed_drum"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"generated ribbed_drum"`)
	assert.Contains(t, string(data), `"parts":3`)
}

func TestLevelFiltersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	l := New(Options{Path: path, Level: "warn"})
	l.Log("info line")
	l.Zap().Warn("warn line")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "info line")
	assert.Contains(t, string(data), "warn line")
	assert.Len(t, l.Lines(), 1)
}

func TestNopKeepsLines(t *testing.T) {
	l := NewNop()
	l.Log("a")
	l.Log("b")
	lines := l.Lines()
	require.Len(t, lines, 2)
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
	assert.NoError(t, l.Close())
}
