package venv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/dotx/internal/testutil"
	"github.com/hbjs97/dotx/internal/venv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Present(t *testing.T) {
	t.Parallel()
	dir := testutil.TempVenvDir(t, "3.12.1")

	v, ok := venv.Detect(dir, ".venv")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".venv"), v.Dir)
	assert.Equal(t, filepath.Join(dir, ".venv", "bin"), v.BinDir)
	assert.True(t, filepath.IsAbs(v.Dir))
}

func TestDetect_Absent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	v, ok := venv.Detect(dir, ".venv")

	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestDetect_RegularFileIsNotVenv(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".venv"), []byte("not a dir"), 0644))

	_, ok := venv.Detect(dir, ".venv")

	assert.False(t, ok)
}

func TestDetect_DefaultDirName(t *testing.T) {
	t.Parallel()
	dir := testutil.TempVenvDir(t, "3.11.4")

	v, ok := venv.Detect(dir, "")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".venv"), v.Dir)
}

func TestDetect_CustomDirName(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "env", "bin"), 0755))

	v, ok := venv.Detect(dir, "env")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "env"), v.Dir)
}

func TestDetect_PyvenvCfg(t *testing.T) {
	t.Parallel()
	dir := testutil.TempVenvDir(t, "3.12.1")

	v, ok := venv.Detect(dir, ".venv")

	require.True(t, ok)
	assert.Equal(t, "3.12.1", v.PythonVersion)
	assert.Equal(t, "test-project", v.Prompt)
}

func TestDetect_MissingPyvenvCfg(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".venv", "bin"), 0755))

	v, ok := venv.Detect(dir, ".venv")

	require.True(t, ok)
	assert.Empty(t, v.PythonVersion)
	assert.Empty(t, v.Prompt)
}

func TestDetect_WindowsLayout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".venv", "Scripts"), 0755))

	v, ok := venv.Detect(dir, ".venv")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".venv", "Scripts"), v.BinDir)
}
