package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/hbjs97/dotx/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var force bool
	var noHook bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "dotx 초기 설정을 시작한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force, noHook)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 제거하고 다시 설정")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "셸 hook 설치 생략")
	return cmd
}

func (a *App) runSetup(cmd *cobra.Command, force, noHook bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil {
		if !force {
			return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s (--force로 재설정)", a.CfgPath)
		}
		if err := os.Remove(a.CfgPath); err != nil {
			return fmt.Errorf("cli.setup: 기존 설정 파일 제거 실패: %w", err)
		}
	}

	runner := &setup.Runner{
		Form:    &setup.HuhFormRunner{},
		CfgPath: a.CfgPath,
		NewAdapter: func(gitDir, workTree string) setup.Cloner {
			return dotfiles.NewAdapter(a.Commander, gitDir, workTree)
		},
	}
	return runner.Run(cmd.Context(), noHook)
}
