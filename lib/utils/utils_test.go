package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIIf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", IIf(true, "a", "b"))
	assert.Equal(t, "b", IIf(false, "a", "b"))
}

func TestPathAbsExpandsHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := PathAbs("~/.cities/cities.sqlite")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".cities", "cities.sqlite"), path)
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ok, err := FileExists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
