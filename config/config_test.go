package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsantos/stonemachine/config"
)

func TestDefaultHasSaneValues(t *testing.T) {
	c := config.Default()
	assert.Greater(t, c.Heap.InitialCapacity, 0)
	assert.Greater(t, c.Assembler.MaxErrors, 0)
	assert.False(t, c.IO.RawStdin)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoadOverlaysFileOnTopOfDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stonemachine.toml")
	require.NoError(t, os.WriteFile(path, []byte("[heap]\ninitial_capacity = 256\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 256, c.Heap.InitialCapacity)
	assert.Equal(t, config.Default().Assembler.MaxErrors, c.Assembler.MaxErrors)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load("/nonexistent/stonemachine.toml")
	assert.Error(t, err)
}
