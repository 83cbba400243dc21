package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 dotx 설정 파일의 최상위 구조체다.
type Config struct {
	Version  int            `toml:"version"`
	Venv     VenvConfig     `toml:"venv"`
	Dotfiles DotfilesConfig `toml:"dotfiles"`
	Guard    GuardConfig    `toml:"guard"`
	Cache    CacheConfig    `toml:"cache"`
}

// VenvConfig는 가상환경 활성화 설정이다.
type VenvConfig struct {
	Dir         string `toml:"dir"`
	SyncCommand string `toml:"sync_command"`
}

// DotfilesConfig는 dotfiles bare 리포 설정이다.
type DotfilesConfig struct {
	GitDir   string `toml:"git_dir"`
	WorkTree string `toml:"work_tree"`
	Remote   string `toml:"remote"`
}

// GuardConfig는 secret guard 설정이다.
type GuardConfig struct {
	Enabled  *bool    `toml:"enabled"`
	Patterns []string `toml:"patterns"`
}

// CacheConfig는 dotfiles 목록 캐시 설정이다.
type CacheConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값 Config를 반환한다 — activate는 설정 없이도 동작해야 한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsGuardEnabled는 guard.enabled 설정값을 반환한다.
func (c *Config) IsGuardEnabled() bool {
	if c.Guard.Enabled == nil {
		return true
	}
	return *c.Guard.Enabled
}

// GitDirPath는 tilde를 확장한 dotfiles git dir 절대 경로를 반환한다.
func (c *Config) GitDirPath() string {
	return ExpandTilde(c.Dotfiles.GitDir)
}

// WorkTreePath는 tilde를 확장한 work tree 절대 경로를 반환한다.
func (c *Config) WorkTreePath() string {
	return ExpandTilde(c.Dotfiles.WorkTree)
}

// ConfigHash는 캐시 무효화에 쓰이는 설정 지문을 반환한다.
func (c *Config) ConfigHash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%s|%s|%s", c.Version, c.Venv.Dir, c.Dotfiles.GitDir, c.Dotfiles.WorkTree, c.Dotfiles.Remote)
	return hex.EncodeToString(h.Sum(nil))[:12]
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

// ExpandTilde는 "~" 접두 경로를 홈 디렉토리 기준 절대 경로로 확장한다.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Venv.Dir == "" {
		c.Venv.Dir = ".venv"
	}
	if c.Venv.SyncCommand == "" {
		c.Venv.SyncCommand = "uv sync"
	}
	if c.Dotfiles.GitDir == "" {
		c.Dotfiles.GitDir = "~/.cfg"
	}
	if c.Dotfiles.WorkTree == "" {
		c.Dotfiles.WorkTree = "~"
	}
	if c.Guard.Enabled == nil {
		t := true
		c.Guard.Enabled = &t
	}
	if c.Cache.TTLMinutes == 0 {
		c.Cache.TTLMinutes = 5
	}
}

func (c *Config) validate() error {
	if filepath.IsAbs(c.Venv.Dir) {
		return fmt.Errorf("config.Load: %w: venv.dir은 상대 경로여야 합니다: %s", ErrConfig, c.Venv.Dir)
	}
	if strings.Contains(c.Venv.Dir, "..") {
		return fmt.Errorf("config.Load: %w: venv.dir에 '..' 사용 불가: %s", ErrConfig, c.Venv.Dir)
	}
	return nil
}
