package nameseq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
scratch_threshold: 512
scratch_limit: 65536
workers: 4
parallel_threshold: 1024
verify_restore: false
`))
	require.NoError(t, err)
	assert.Equal(t, Options{
		ScratchThreshold:  512,
		ScratchLimit:      65536,
		Workers:           4,
		ParallelThreshold: 1024,
		VerifyRestore:     false,
	}, opts)
}

func TestParseOptionsKeepsDefaults(t *testing.T) {
	opts, err := ParseOptions([]byte("workers: 2\n"))
	require.NoError(t, err)
	want := DefaultOptions()
	want.Workers = 2
	assert.Equal(t, want, opts)

	opts, err = ParseOptions([]byte("workers: 0\nscratch_threshold: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestParseOptionsErrors(t *testing.T) {
	_, err := ParseOptions([]byte("workers: -3\n"))
	require.Error(t, err)
	_, err = ParseOptions([]byte("workers: many\n"))
	require.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel_threshold: 64\n"), 0o600))
	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 64, opts.ParallelThreshold)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSlotString(t *testing.T) {
	s := Slot{Id: 3, Kind: KindValue, Origin: 10, Position: 4, Length: 5}
	assert.Equal(t, "id=3 kind=value len=5 origin=10 pos=4", s.String())
	assert.Equal(t, 9, s.End())
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "padding", KindPadding.String())
}
