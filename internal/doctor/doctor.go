package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/dotx/internal/cmdexec"
	"github.com/hbjs97/dotx/internal/venv"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckBinaries는 필수 바이너리(git, python3)와 권장 바이너리(uv) 존재 여부를 확인한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander) []DiagResult {
	binaries := []struct {
		name     string
		args     []string
		install  string
		required bool
	}{
		{"git", []string{"--version"}, "https://git-scm.com/downloads", true},
		{"python3", []string{"--version"}, "https://www.python.org/downloads/", true},
		{"uv", []string{"--version"}, "https://docs.astral.sh/uv/getting-started/installation/", false},
	}

	var results []DiagResult
	for _, b := range binaries {
		out, err := cmd.Run(ctx, b.name, b.args...)
		if err != nil {
			status := StatusFail
			if !b.required {
				status = StatusWarn
			}
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  status,
				Message: fmt.Sprintf("%s 없음", b.name),
				Fix:     fmt.Sprintf("설치: %s", b.install),
			})
		} else {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  StatusOK,
				Message: strings.TrimSpace(string(out)),
			})
		}
	}
	return results
}

// RepoChecker는 dotfiles 리포 접근성을 확인한다. dotfiles.Adapter가 구현한다.
type RepoChecker interface {
	IsRepo(ctx context.Context) bool
	GitDir() string
}

// CheckDotfilesRepo는 bare 리포가 접근 가능한지 확인한다.
func CheckDotfilesRepo(ctx context.Context, repo RepoChecker) DiagResult {
	if !repo.IsRepo(ctx) {
		return DiagResult{
			Name:    "dotfiles_repo",
			Status:  StatusFail,
			Message: fmt.Sprintf("bare 리포 접근 불가: %s", repo.GitDir()),
			Fix:     "dotx clone <repo> 또는 git init --bare 로 초기화",
		}
	}
	return DiagResult{
		Name:    "dotfiles_repo",
		Status:  StatusOK,
		Message: fmt.Sprintf("bare 리포 정상: %s", repo.GitDir()),
	}
}

// CheckVenvLayout은 cwd의 가상환경 레이아웃을 확인한다.
// 디렉토리 없음은 실패가 아니라 안내다 — activate와 동일하게 비실패로 취급한다.
func CheckVenvLayout(cwd, dirName, syncCommand string) DiagResult {
	v, ok := venv.Detect(cwd, dirName)
	if !ok {
		return DiagResult{
			Name:    "venv",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 디렉토리 없음", dirName),
			Fix:     fmt.Sprintf("%s 실행으로 가상환경 생성", syncCommand),
		}
	}

	if _, err := os.Stat(filepath.Join(v.BinDir, "python")); err != nil {
		if _, err := os.Stat(filepath.Join(v.BinDir, "python3")); err != nil {
			return DiagResult{
				Name:    "venv",
				Status:  StatusWarn,
				Message: fmt.Sprintf("python 실행 파일 없음: %s", v.BinDir),
				Fix:     fmt.Sprintf("%s 재실행으로 가상환경 복구", syncCommand),
			}
		}
	}

	msg := fmt.Sprintf("가상환경 정상: %s", v.Dir)
	if v.PythonVersion != "" {
		msg += fmt.Sprintf(" (python %s)", v.PythonVersion)
	}
	return DiagResult{Name: "venv", Status: StatusOK, Message: msg}
}

// CheckEnvState는 VIRTUAL_ENV 환경변수가 사라진 디렉토리를 가리키는지 확인한다.
func CheckEnvState(env venv.Environ) DiagResult {
	current := env.Get("VIRTUAL_ENV")
	if current == "" {
		return DiagResult{
			Name:    "env_state",
			Status:  StatusOK,
			Message: "VIRTUAL_ENV 미설정",
		}
	}
	if info, err := os.Stat(current); err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "env_state",
			Status:  StatusWarn,
			Message: fmt.Sprintf("VIRTUAL_ENV가 없는 디렉토리를 가리킴: %s", current),
			Fix:     "unset VIRTUAL_ENV 또는 새 셸 시작",
		}
	}
	return DiagResult{
		Name:    "env_state",
		Status:  StatusOK,
		Message: fmt.Sprintf("VIRTUAL_ENV 활성: %s", current),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, repo RepoChecker, cwd, venvDir, syncCommand string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, cmd)...)
	results = append(results, CheckDotfilesRepo(ctx, repo))
	results = append(results, CheckVenvLayout(cwd, venvDir, syncCommand))
	results = append(results, CheckEnvState(venv.OSEnviron{}))
	return results
}
