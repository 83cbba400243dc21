package setup

import (
	"context"
	"fmt"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/hbjs97/dotx/internal/guard"
)

// Cloner는 bare clone을 수행한다. dotfiles.Adapter가 구현한다.
type Cloner interface {
	CloneBare(ctx context.Context, remoteURL string) error
	IsRepo(ctx context.Context) bool
	GitDir() string
}

// Runner는 setup 전체 흐름을 조율한다.
type Runner struct {
	Form       FormRunner
	CfgPath    string
	NewAdapter func(gitDir, workTree string) Cloner
}

// Run은 폼 → config 저장 → hook 설치 → (선택) bare clone 순서로 진행한다.
func (r *Runner) Run(ctx context.Context, noHook bool) error {
	defaults := &Input{
		VenvDir:     ".venv",
		SyncCommand: "uv sync",
		GitDir:      "~/.cfg",
		WorkTree:    "~",
		Shell:       DetectShell(),
		InstallHook: true,
	}
	if defaults.Shell != "zsh" && defaults.Shell != "bash" && defaults.Shell != "fish" {
		defaults.Shell = "zsh"
	}

	input, err := r.Form.RunSetupForm(defaults)
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Version: 1,
		Venv: config.VenvConfig{
			Dir:         input.VenvDir,
			SyncCommand: input.SyncCommand,
		},
		Dotfiles: config.DotfilesConfig{
			GitDir:   input.GitDir,
			WorkTree: input.WorkTree,
			Remote:   input.Remote,
		},
	}
	if err := config.Save(cfg, r.CfgPath); err != nil {
		return err
	}
	fmt.Printf("설정 파일이 생성되었습니다: %s\n", r.CfgPath)

	if input.InstallHook && !noHook {
		rcPath := ShellRCPath(input.Shell)
		if rcPath == "" {
			fmt.Printf("경고: %s 셸의 RC 경로를 알 수 없어 hook 설치를 건너뜁니다\n", input.Shell)
		} else if err := InstallShellHook(input.Shell, rcPath); err != nil {
			fmt.Printf("경고: hook 설치 실패: %v\n", err)
		} else {
			fmt.Printf("셸 hook 설치 완료: %s\n", rcPath)
		}
	}

	if input.Remote != "" {
		remoteURL, err := dotfiles.ResolveRemoteURL(input.Remote)
		if err != nil {
			return err
		}
		adapter := r.NewAdapter(config.ExpandTilde(input.GitDir), config.ExpandTilde(input.WorkTree))
		if adapter.IsRepo(ctx) {
			fmt.Printf("dotfiles 리포가 이미 존재합니다: %s — clone 생략\n", adapter.GitDir())
		} else {
			ok, err := r.Form.RunConfirm(fmt.Sprintf("%s 를 %s 로 clone 할까요?", remoteURL, adapter.GitDir()))
			if err != nil {
				return err
			}
			if ok {
				if err := adapter.CloneBare(ctx, remoteURL); err != nil {
					return err
				}
				_ = guard.InstallHook(adapter.GitDir()) // guard 설치 실패는 치명적이지 않음
				fmt.Printf("dotfiles clone 완료: %s\n", adapter.GitDir())
			}
		}
	}

	fmt.Println("설정을 마쳤습니다. dotx doctor로 환경을 확인하세요.")
	return nil
}
