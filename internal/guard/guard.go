// Package guard blocks commits that would track secret material in the
// dotfiles repository. It scans staged paths against filename patterns and
// installs itself as a pre-commit hook.
package guard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrGuardBlock는 guard 검사 실패로 commit이 차단될 때 반환된다.
var ErrGuardBlock = errors.New("guard 검사 실패 — commit 차단")

const (
	hookStartMarker = "# dotx-guard-start"
	hookEndMarker   = "# dotx-guard-end"
	hookScript      = `# dotx-guard-start
# Installed by dotx — do not edit this block manually.
if ! command -v dotx >/dev/null 2>&1; then
  echo "dotx: command not found — skipping guard check" >&2
  exit 0
fi
dotx guard check || exit 1
# dotx-guard-end`
)

// DefaultPatterns는 기본 secret 파일 패턴이다. 경로의 base name과 매칭한다.
var DefaultPatterns = []string{
	"id_rsa",
	"id_dsa",
	"id_ecdsa",
	"id_ed25519",
	"*.pem",
	"*.p12",
	"*.pfx",
	".netrc",
	"credentials",
	"*.keytab",
	"*_history",
}

// CheckResult는 guard 검사 결과다.
type CheckResult struct {
	Pass       bool
	Skipped    bool
	Violations []Violation
}

// Violation은 검사 위반 항목이다.
type Violation struct {
	Path    string
	Pattern string
}

// StagedLister는 인덱스의 파일 목록을 제공한다. dotfiles.Adapter가 구현한다.
type StagedLister interface {
	StagedFiles(ctx context.Context) ([]string, error)
}

// Check는 staged 파일이 secret 패턴에 걸리는지 검사한다.
// extraPatterns는 DefaultPatterns에 추가로 적용된다.
func Check(ctx context.Context, repo StagedLister, extraPatterns []string) (*CheckResult, error) {
	// DOTX_SKIP_GUARD 환경변수로 우회
	if os.Getenv("DOTX_SKIP_GUARD") == "1" {
		fmt.Fprintln(os.Stderr, "경고: DOTX_SKIP_GUARD=1 — guard 검사를 건너뜁니다")
		return &CheckResult{Pass: true, Skipped: true}, nil
	}

	files, err := repo.StagedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("guard.Check: %w", err)
	}

	patterns := append(append([]string{}, DefaultPatterns...), extraPatterns...)
	result := &CheckResult{Pass: true}
	for _, file := range files {
		if pattern, matched := matchAny(file, patterns); matched {
			result.Pass = false
			result.Violations = append(result.Violations, Violation{Path: file, Pattern: pattern})
		}
	}
	return result, nil
}

// matchAny는 파일의 base name을 패턴 목록과 매칭한다.
func matchAny(file string, patterns []string) (string, bool) {
	base := filepath.Base(file)
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}

// InstallHook은 bare 리포의 pre-commit hook에 guard 스크립트를 설치한다.
func InstallHook(gitDir string) error {
	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	existing, err := os.ReadFile(hookPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("guard.InstallHook: %w", err)
	}

	var content string
	if len(existing) > 0 {
		existingStr := string(existing)
		if strings.Contains(existingStr, hookStartMarker) {
			return nil // already installed
		}
		content = existingStr + "\n" + hookScript + "\n"
	} else {
		content = "#!/bin/sh\n" + hookScript + "\n"
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0700); err != nil {
		return fmt.Errorf("guard.InstallHook: %w", err)
	}
	return os.WriteFile(hookPath, []byte(content), 0755)
}

// UninstallHook은 pre-commit hook에서 guard 스크립트를 제거한다.
func UninstallHook(gitDir string) error {
	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	data, err := os.ReadFile(hookPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("guard.UninstallHook: %w", err)
	}

	content := string(data)
	startIdx := strings.Index(content, hookStartMarker)
	endIdx := strings.Index(content, hookEndMarker)
	if startIdx == -1 || endIdx == -1 {
		return nil
	}

	before := content[:startIdx]
	after := content[endIdx+len(hookEndMarker):]
	cleaned := strings.TrimSpace(before + after)

	if cleaned == "" || cleaned == "#!/bin/sh" {
		return os.Remove(hookPath)
	}
	return os.WriteFile(hookPath, []byte(cleaned+"\n"), 0755)
}
