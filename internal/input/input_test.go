package input

import (
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestExample(t *testing.T) {
	data, err := ReadAll("")
	require.NoError(t, err)
	assert.Equal(t, Example, string(data))
}

func TestPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droplet.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,1,1\n2,1,1\n"), 0o644))
	data, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "1,1,1\n2,1,1\n", string(data))
}

func TestZstdFile(t *testing.T) {
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll([]byte(Example), nil)
	require.NoError(t, encoder.Close())

	path := filepath.Join(t.TempDir(), "droplet.txt"+ZstdSuffix)
	require.NoError(t, os.WriteFile(path, compressed, 0o644))
	data, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, Example, string(data))
}

func TestMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCorruptedZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad"+ZstdSuffix)
	require.NoError(t, os.WriteFile(path, []byte("not zstd at all"), 0o644))
	_, err := ReadAll(path)
	assert.Error(t, err)
}
