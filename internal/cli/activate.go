package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/shell"
	"github.com/hbjs97/dotx/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string
	var hookOnly bool
	var quiet bool
	var venvDir string

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "현재 디렉토리의 Python 가상환경을 활성화한다",
		Long: `현재 디렉토리의 가상환경 디렉토리(.venv)를 감지해 VIRTUAL_ENV와 PATH를 설정한다.

기본 모드는 dotx 자신의 프로세스 환경을 변경한다 — 이후 dotx가 실행하는
자식 프로세스에 상속된다. 부모 셸에 반영하려면 --shell로 eval 가능한
export 출력을 생성해 eval "$(dotx activate --shell zsh)" 형태로 사용한다.
가상환경이 없어도 실패하지 않는다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hookOnly {
				fmt.Print(shell.HookSnippet(shellType))
				return nil
			}
			return a.runActivate(shellType, venvDir, quiet)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "eval 가능한 출력 생성 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "hook 스니펫만 출력")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "가상환경이 없을 때 경고 생략")
	cmd.Flags().StringVar(&venvDir, "venv-dir", "", "가상환경 디렉토리 이름 (기본값은 설정 파일)")
	return cmd
}

// runActivate는 가상환경을 감지해 활성화한다. 두 분기 모두 성공으로 종료한다.
func (a *App) runActivate(shellType, venvDir string, quiet bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}

	dirName, syncCommand := a.venvSettings(venvDir)

	v, ok := venv.Detect(cwd, dirName)
	if !ok {
		if quiet {
			return nil
		}
		// 경고와 안내 — 실패가 아니다.
		out := os.Stdout
		if shellType != "" {
			out = os.Stderr // eval 대상 stdout을 오염시키지 않는다
		}
		fmt.Fprintf(out, "경고: %s 디렉토리가 없습니다\n", dirName)
		fmt.Fprintf(out, "힌트: %s 실행으로 가상환경을 생성하세요\n", syncCommand)
		return nil
	}

	if shellType != "" {
		fmt.Print(shell.Activate(v, shellType))
		return nil
	}

	venv.Apply(venv.OSEnviron{}, v)
	fmt.Printf("가상환경 활성화: VIRTUAL_ENV=%s\n", v.Dir)
	return nil
}

// venvSettings는 플래그 → 설정 파일 → 기본값 순서로 venv 설정을 결정한다.
func (a *App) venvSettings(venvDirFlag string) (dirName, syncCommand string) {
	dirName = venvDirFlag
	syncCommand = ""

	cfg, err := config.Load(a.CfgPath)
	if err == nil {
		if dirName == "" {
			dirName = cfg.Venv.Dir
		}
		syncCommand = cfg.Venv.SyncCommand
	}
	if dirName == "" {
		dirName = venv.DefaultDir
	}
	if syncCommand == "" {
		syncCommand = "uv sync"
	}
	return dirName, syncCommand
}
