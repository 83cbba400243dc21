package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1

[venv]
dir = "env"
sync_command = "poetry install"

[dotfiles]
git_dir = "/home/test/.cfg"
work_tree = "/home/test"
remote = "git@github.com:test/dotfiles.git"

[guard]
enabled = false
patterns = ["*.secret"]

[cache]
ttl_minutes = 10`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "env", cfg.Venv.Dir)
	assert.Equal(t, "poetry install", cfg.Venv.SyncCommand)
	assert.Equal(t, "/home/test/.cfg", cfg.Dotfiles.GitDir)
	assert.Equal(t, "/home/test", cfg.Dotfiles.WorkTree)
	assert.Equal(t, "git@github.com:test/dotfiles.git", cfg.Dotfiles.Remote)
	assert.False(t, cfg.IsGuardEnabled())
	assert.Equal(t, []string{"*.secret"}, cfg.Guard.Patterns)
	assert.Equal(t, 10, cfg.Cache.TTLMinutes)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	// activate는 설정 없이도 동작해야 하므로 파일 없음은 에러가 아니다.
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, ".venv", cfg.Venv.Dir)
	assert.Equal(t, "uv sync", cfg.Venv.SyncCommand)
	assert.Equal(t, "~/.cfg", cfg.Dotfiles.GitDir)
	assert.Equal(t, "~", cfg.Dotfiles.WorkTree)
	assert.True(t, cfg.IsGuardEnabled())
	assert.Equal(t, 5, cfg.Cache.TTLMinutes)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_AbsoluteVenvDirRejected(t *testing.T) {
	path := testutil.TempConfigFile(t, `[venv]
dir = "/abs/.venv"`)
	_, err := config.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_ParentTraversalVenvDirRejected(t *testing.T) {
	path := testutil.TempConfigFile(t, `[venv]
dir = "../.venv"`)
	_, err := config.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, config.ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, ".cfg"), config.ExpandTilde("~/.cfg"))
	assert.Equal(t, "/abs/path", config.ExpandTilde("/abs/path"))
	assert.Equal(t, "relative", config.ExpandTilde("relative"))
}

func TestConfigHash_StableAndSensitive(t *testing.T) {
	cfg1, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	cfg2, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, cfg1.ConfigHash(), cfg2.ConfigHash())

	cfg2.Dotfiles.GitDir = "/elsewhere/.cfg"
	assert.NotEqual(t, cfg1.ConfigHash(), cfg2.ConfigHash())
}

func TestValidateFilePermissions(t *testing.T) {
	path := testutil.TempConfigFile(t, "version = 1")

	require.NoError(t, os.Chmod(path, 0600))
	assert.NoError(t, config.ValidateFilePermissions(path))

	require.NoError(t, os.Chmod(path, 0644))
	assert.Error(t, config.ValidateFilePermissions(path))
}
