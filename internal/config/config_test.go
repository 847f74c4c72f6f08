package config

import (
	"github.com/janpfeifer/lavaGo/internal/sets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.Input)
	assert.Equal(t, []string{"hash", "packed", "btree", "sorted"}, cfg.Backends)
	assert.Equal(t, DefaultIterations, cfg.Iterations)
	assert.Nil(t, cfg.Expect)
	configs, err := cfg.SetConfigs()
	require.NoError(t, err)
	assert.Len(t, configs, 4)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := `
input: droplet.txt.zst
backends:
  - hash:capacity=8192
  - btree:degree=8
iterations: 20
expect: 2000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "droplet.txt.zst", cfg.Input)
	assert.Equal(t, 20, cfg.Iterations)
	require.NotNil(t, cfg.Expect)
	assert.Equal(t, 2000, *cfg.Expect)

	configs, err := cfg.SetConfigs()
	require.NoError(t, err)
	assert.Equal(t, []sets.Config{
		{Kind: sets.Hash, Capacity: 8192, Degree: sets.DefaultDegree},
		{Kind: sets.BTree, Degree: 8},
	}, configs)
}

func TestInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("iterations: [1, 2"))
	assert.Error(t, err)

	cfg, err := Parse([]byte("backends: [rbtree]"))
	require.NoError(t, err)
	_, err = cfg.SetConfigs()
	assert.Error(t, err)

	cfg, err = Parse([]byte("iterations: -3"))
	require.NoError(t, err)
	_, err = cfg.SetConfigs()
	assert.Error(t, err)
}
