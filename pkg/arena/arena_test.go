package arena

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendWritesSeparators(t *testing.T) {
	a := New(Options{Separator: "--"})
	require.Equal(t, 0, a.Append("Red"))
	require.Equal(t, 1, a.Append("Green"))
	require.Equal(t, 2, a.Append("Blue"))

	assert.Equal(t, "Red--Green--Blue", string(a.Bytes()))
	assert.Equal(t, 3, a.Count())
	assert.Equal(t, []int{0, 5, 12}, []int{a.Offset(0), a.Offset(1), a.Offset(2)})
	assert.Equal(t, "Green", a.Value(1))
}

func TestAppendGap(t *testing.T) {
	a := New(DefaultOptions())
	a.AppendGap([]byte("ignored"), "Red")
	a.AppendGap([]byte("xx"), "Green")
	a.AppendGap(nil, "Blue")
	a.AppendGap([]byte("yyy"), "")

	assert.Equal(t, "RedxxGreenBlueyyy", string(a.Bytes()))
	assert.Equal(t, 10, a.Offset(2))
	assert.Equal(t, "Blue", a.Value(2))
	assert.Equal(t, "", a.Value(3))
	assert.Equal(t, 17, a.Offset(3))
}

func TestCollectAndReset(t *testing.T) {
	type color struct{ Name string }
	a := New(Options{Separator: "|", Capacity: 64})
	Collect(a, []color{{"a"}, {"bb"}, {"ccc"}}, func(c color) string { return c.Name })
	assert.Equal(t, "a|bb|ccc", string(a.Bytes()))
	assert.GreaterOrEqual(t, cap(a.Bytes()), 64)

	a.Reset()
	assert.Equal(t, 0, a.Count())
	assert.Empty(t, a.Bytes())
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte("separator: \"::\"\ncapacity: 128\n"))
	require.NoError(t, err)
	assert.Equal(t, Options{Separator: "::", Capacity: 128}, opts)

	opts, err = ParseOptions([]byte("capacity: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSeparator, opts.Separator)

	_, err = ParseOptions([]byte("capacity: -1\n"))
	require.Error(t, err)
	_, err = ParseOptions([]byte("capacity: [\n"))
	require.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"  \"\n"), 0o600))
	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "  ", opts.Separator)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
