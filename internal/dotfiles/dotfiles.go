// Package dotfiles manages a bare git repository whose work tree is the
// user's home directory. All git operations run through cmdexec.Commander
// with --git-dir/--work-tree injected.
package dotfiles

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/dotx/internal/cmdexec"
)

// Adapter는 bare dotfiles 리포에 대해 git CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd      cmdexec.Commander
	gitDir   string
	workTree string
}

// NewAdapter는 새 dotfiles Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander, gitDir, workTree string) *Adapter {
	return &Adapter{cmd: cmd, gitDir: gitDir, workTree: workTree}
}

// GitDir는 bare 리포 디렉토리를 반환한다.
func (a *Adapter) GitDir() string { return a.gitDir }

// WorkTree는 work tree 디렉토리를 반환한다.
func (a *Adapter) WorkTree() string { return a.workTree }

// gitArgs는 bare 리포 기준 git 인자를 조립한다.
func (a *Adapter) gitArgs(args ...string) []string {
	base := []string{
		fmt.Sprintf("--git-dir=%s", a.gitDir),
		fmt.Sprintf("--work-tree=%s", a.workTree),
	}
	return append(base, args...)
}

// IsRepo는 git dir가 접근 가능한 리포인지 확인한다.
func (a *Adapter) IsRepo(ctx context.Context) bool {
	out, err := a.cmd.Run(ctx, "git", a.gitArgs("rev-parse", "--is-bare-repository")...)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// ListFiles는 리포가 추적하는 파일 목록을 반환한다.
func (a *Adapter) ListFiles(ctx context.Context) ([]string, error) {
	out, err := a.cmd.Run(ctx, "git", a.gitArgs("ls-files")...)
	if err != nil {
		return nil, fmt.Errorf("dotfiles.ListFiles: %w", err)
	}
	var files []string
	for line := range strings.Lines(string(out)) {
		if f := strings.TrimSpace(line); f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}

// DirtyCount는 work tree의 변경된 추적 파일 개수를 반환한다.
func (a *Adapter) DirtyCount(ctx context.Context) (int, error) {
	out, err := a.cmd.Run(ctx, "git", a.gitArgs("status", "--porcelain", "--untracked-files=no")...)
	if err != nil {
		return 0, fmt.Errorf("dotfiles.DirtyCount: %w", err)
	}
	count := 0
	for line := range strings.Lines(string(out)) {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}

// StagedFiles는 인덱스에 올라간 파일 목록을 반환한다. guard 검사에 쓰인다.
func (a *Adapter) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := a.cmd.Run(ctx, "git", a.gitArgs("diff", "--cached", "--name-only")...)
	if err != nil {
		return nil, fmt.Errorf("dotfiles.StagedFiles: %w", err)
	}
	var files []string
	for line := range strings.Lines(string(out)) {
		if f := strings.TrimSpace(line); f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}

// FileContent는 work tree 기준 상대 경로 파일의 내용을 읽는다.
// work tree 밖을 가리키는 경로는 거부한다.
func (a *Adapter) FileContent(relPath string) (string, error) {
	full, err := a.resolve(relPath)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("dotfiles.FileContent: %w", err)
	}
	return string(data), nil
}

// FileExists는 work tree 기준 상대 경로 파일의 존재 여부를 반환한다.
func (a *Adapter) FileExists(relPath string) bool {
	full, err := a.resolve(relPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// resolve는 상대 경로를 work tree 아래 절대 경로로 변환한다.
func (a *Adapter) resolve(relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("dotfiles.resolve: 빈 경로")
	}
	if filepath.IsAbs(relPath) {
		return "", fmt.Errorf("dotfiles.resolve: 절대 경로 불가: %s", relPath)
	}
	full := filepath.Join(a.workTree, relPath)
	rel, err := filepath.Rel(a.workTree, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("dotfiles.resolve: work tree 밖 경로: %s", relPath)
	}
	return full, nil
}

// Raw는 bare 리포 기준으로 임의의 git 명령을 실행하고 출력을 반환한다.
func (a *Adapter) Raw(ctx context.Context, args ...string) ([]byte, error) {
	out, err := a.cmd.Run(ctx, "git", a.gitArgs(args...)...)
	if err != nil {
		return out, fmt.Errorf("dotfiles.Raw: %w", err)
	}
	return out, nil
}

// RawInteractive는 stdio를 상속한 채 git 명령을 실행한다. CLI passthrough용.
func (a *Adapter) RawInteractive(ctx context.Context, args ...string) error {
	if err := a.cmd.RunInteractive(ctx, nil, "git", a.gitArgs(args...)...); err != nil {
		return fmt.Errorf("dotfiles.RawInteractive: %w", err)
	}
	return nil
}

// CloneBare는 원격 dotfiles 리포를 git dir로 bare clone하고
// 상태 출력에서 미추적 파일이 쏟아지지 않도록 showUntrackedFiles를 끈다.
func (a *Adapter) CloneBare(ctx context.Context, remoteURL string) error {
	if _, err := a.cmd.Run(ctx, "git", "clone", "--bare", remoteURL, a.gitDir); err != nil {
		return fmt.Errorf("dotfiles.CloneBare: %w", err)
	}
	_, err := a.cmd.Run(ctx, "git", a.gitArgs("config", "--local", "status.showUntrackedFiles", "no")...)
	if err != nil {
		return fmt.Errorf("dotfiles.CloneBare: %w", err)
	}
	return nil
}

// ResolveRemoteURL은 SSH/HTTPS/shorthand 형식의 리포 참조를 clone 가능한
// URL로 정규화한다. shorthand(owner/repo)는 github.com SSH URL이 된다.
func ResolveRemoteURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("dotfiles.ResolveRemoteURL: 빈 입력")
	}
	if strings.HasPrefix(raw, "git@") {
		parts := strings.SplitN(strings.TrimPrefix(raw, "git@"), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", fmt.Errorf("dotfiles.ResolveRemoteURL: 잘못된 SSH URL: %s", raw)
		}
		return raw, nil
	}
	if strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "http://") {
		if _, err := url.Parse(raw); err != nil {
			return "", fmt.Errorf("dotfiles.ResolveRemoteURL: %w", err)
		}
		return raw, nil
	}
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("dotfiles.ResolveRemoteURL: owner/repo 형식 아님: %s", raw)
	}
	return fmt.Sprintf("git@github.com:%s/%s.git", parts[0], strings.TrimSuffix(parts[1], ".git")), nil
}
