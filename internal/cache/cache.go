package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache는 dotfiles 추적 파일 목록의 TTL 캐시다. MCP 서버와 ls가 공유한다.
type Cache struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Entry는 git dir 하나에 대한 캐시 항목이다.
type Entry struct {
	Files      []string `json:"files"`
	ResolvedAt string   `json:"resolved_at"`
	ConfigHash string   `json:"config_hash"`
}

// New는 빈 캐시를 생성한다.
func New() *Cache {
	return &Cache{Version: 1, Entries: make(map[string]Entry)}
}

// Load는 캐시 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 캐시 반환 (graceful).
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache.Load: %w", err)
	}
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return New(), nil
	}
	if c.Entries == nil {
		c.Entries = make(map[string]Entry)
	}
	return &c, nil
}

// Lookup은 git dir 키로 캐시를 조회한다. TTL과 config_hash가 유효해야 hit.
func (c *Cache) Lookup(gitDir, configHash string, ttl time.Duration) ([]string, bool) {
	e, ok := c.Entries[gitDir]
	if !ok {
		return nil, false
	}
	if e.ConfigHash != configHash {
		return nil, false
	}
	resolved, err := time.Parse(time.RFC3339, e.ResolvedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(resolved) > ttl {
		return nil, false
	}
	return e.Files, true
}

// Set은 캐시 항목을 추가하거나 갱신한다.
func (c *Cache) Set(gitDir, configHash string, files []string) {
	c.Entries[gitDir] = Entry{
		Files:      files,
		ResolvedAt: time.Now().Format(time.RFC3339),
		ConfigHash: configHash,
	}
}

// Invalidate는 git dir의 캐시 항목을 제거한다.
func (c *Cache) Invalidate(gitDir string) {
	delete(c.Entries, gitDir)
}

// Save는 캐시를 JSON 파일로 저장한다 (0600 권한).
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
