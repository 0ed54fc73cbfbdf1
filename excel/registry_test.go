package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFlushesOnLastPosition(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tableManager")
	registry := NewRegistry(dir, 3)
	assert.Equal(t, filepath.Join(dir, "TableSetting.ts"), registry.Path())
	assert.Equal(t, 3, registry.Total())

	for i, name := range []string{"items", "heroes"} {
		flushed, err := registry.Record(name, i+1)
		require.NoError(t, err)
		assert.False(t, flushed)
		_, err = os.Stat(dir)
		assert.True(t, os.IsNotExist(err), "registry touched the disk early")
	}

	flushed, err := registry.Record("Achievement", 3)
	require.NoError(t, err)
	assert.True(t, flushed)

	data, err := os.ReadFile(registry.Path())
	require.NoError(t, err)
	assert.Equal(t, "export enum Tables {\n    items = 'items',\n    heroes = 'heroes',\n    Achievement = 'Achievement',\n}", string(data))
	assert.Equal(t, []string{"items", "heroes", "Achievement"}, registry.Names())
}

func TestRegistryOverwritesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TableSettingFile)
	require.NoError(t, os.WriteFile(path, []byte("export enum Tables {\n    gone = 'gone',\n}"), 0644))

	registry := NewRegistry(dir, 1)
	_, err := registry.Record("only", 1)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "gone")
	assert.Equal(t, 1, strings.Count(string(data), " = "))
}

func TestRegistryRejectsBadInput(t *testing.T) {
	registry := NewRegistry(t.TempDir(), 2)

	_, err := registry.Record("a", 0)
	assert.ErrorIs(t, err, ErrRegistryPosition)
	_, err = registry.Record("a", 3)
	assert.ErrorIs(t, err, ErrRegistryPosition)

	_, err = registry.Record("a", 1)
	require.NoError(t, err)
	flushed, err := registry.Record("a", 2)
	assert.ErrorIs(t, err, ErrRegistryDuplicate)
	assert.True(t, flushed)
	assert.Equal(t, []string{"a"}, registry.Names())

	data, err := os.ReadFile(registry.Path())
	require.NoError(t, err)
	assert.Equal(t, "export enum Tables {\n    a = 'a',\n}", string(data))
}

func TestRegistryDuplicateBeforeLastPosition(t *testing.T) {
	registry := NewRegistry(t.TempDir(), 3)
	_, err := registry.Record("a", 1)
	require.NoError(t, err)
	flushed, err := registry.Record("a", 2)
	assert.ErrorIs(t, err, ErrRegistryDuplicate)
	assert.False(t, flushed)

	flushed, err = registry.Record("b", 3)
	require.NoError(t, err)
	assert.True(t, flushed)
	assert.Equal(t, []string{"a", "b"}, registry.Names())
}

func TestRegistryKeepsEmptyName(t *testing.T) {
	registry := NewRegistry(t.TempDir(), 2)
	flushed, err := registry.Record("", 1)
	require.NoError(t, err)
	assert.False(t, flushed)

	flushed, err = registry.Record("items", 2)
	require.NoError(t, err)
	assert.True(t, flushed)
	assert.Equal(t, []string{"", "items"}, registry.Names())
}

func TestRegistryWithoutSources(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tableManager")
	registry := NewRegistry(dir, 0)
	_, err := registry.Record("a", 1)
	assert.ErrorIs(t, err, ErrRegistryPosition)
	assert.Empty(t, registry.Names())
	_, err = os.Stat(registry.Path())
	assert.True(t, os.IsNotExist(err))
}
