package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/dotx/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newRunCmd() *cobra.Command {
	var venvDir string

	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "가상환경이 활성화된 환경에서 명령을 실행한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRun(cmd.Context(), venvDir, args)
		},
	}
	cmd.Flags().StringVar(&venvDir, "venv-dir", "", "가상환경 디렉토리 이름 (기본값은 설정 파일)")
	return cmd
}

// runRun은 venv를 자식 환경에 반영해 명령을 실행한다.
// 가상환경이 없으면 경고 후 그대로 실행한다.
func (a *App) runRun(ctx context.Context, venvDir string, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.run: %w", err)
	}

	dirName, syncCommand := a.venvSettings(venvDir)

	var env map[string]string
	if v, ok := venv.Detect(cwd, dirName); ok {
		env = venv.ChildEnv(v, nil)
	} else {
		fmt.Fprintf(os.Stderr, "경고: %s 디렉토리가 없습니다 — 가상환경 없이 실행합니다\n", dirName)
		fmt.Fprintf(os.Stderr, "힌트: %s 실행으로 가상환경을 생성하세요\n", syncCommand)
	}

	if err := a.Commander.RunInteractive(ctx, env, args[0], args[1:]...); err != nil {
		return fmt.Errorf("cli.run: %w", err)
	}
	return nil
}
