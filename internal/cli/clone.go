package cli

import (
	"context"
	"fmt"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/hbjs97/dotx/internal/guard"
	"github.com/spf13/cobra"
)

func (a *App) newCloneCmd() *cobra.Command {
	var noGuard bool

	cmd := &cobra.Command{
		Use:   "clone <repo>",
		Short: "원격 dotfiles 리포를 bare clone 한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClone(cmd.Context(), args[0], noGuard)
		},
	}
	cmd.Flags().BoolVar(&noGuard, "no-guard", false, "pre-commit guard 설치 생략")
	return cmd
}

func (a *App) runClone(ctx context.Context, target string, noGuard bool) error {
	remoteURL, err := dotfiles.ResolveRemoteURL(target)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	if dots.IsRepo(ctx) {
		return fmt.Errorf("cli.clone: 리포가 이미 존재합니다: %s", dots.GitDir())
	}

	if err := dots.CloneBare(ctx, remoteURL); err != nil {
		return err
	}

	if !noGuard && cfg.IsGuardEnabled() {
		_ = guard.InstallHook(dots.GitDir()) // guard 설치 실패는 치명적이지 않음
	}

	fmt.Printf("clone 완료: %s → %s\n", remoteURL, dots.GitDir())
	fmt.Println("dotx ls 로 추적 파일을 확인하세요.")
	return nil
}
