package cli

import (
	"context"
	"fmt"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/hbjs97/dotx/internal/guard"
	"github.com/spf13/cobra"
)

func (a *App) newGuardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guard",
		Short: "secret guard 관리",
	}
	cmd.AddCommand(a.newGuardCheckCmd(), a.newGuardInstallCmd(), a.newGuardUninstallCmd())
	return cmd
}

func (a *App) newGuardCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "staged 파일에 secret 패턴이 있는지 검사한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGuardCheck(cmd.Context())
		},
	}
}

func (a *App) newGuardInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "bare 리포에 pre-commit guard hook을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}
			if err := guard.InstallHook(cfg.GitDirPath()); err != nil {
				return err
			}
			fmt.Println("guard hook 설치 완료")
			return nil
		},
	}
}

func (a *App) newGuardUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "pre-commit guard hook을 제거한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}
			if err := guard.UninstallHook(cfg.GitDirPath()); err != nil {
				return err
			}
			fmt.Println("guard hook 제거 완료")
			return nil
		},
	}
}

func (a *App) runGuardCheck(ctx context.Context) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	result, err := guard.Check(ctx, dots, cfg.Guard.Patterns)
	if err != nil {
		return err
	}

	if result.Skipped {
		return nil
	}
	if result.Pass {
		fmt.Println("guard 검사 통과")
		return nil
	}

	for _, v := range result.Violations {
		fmt.Printf("  [차단] %s (패턴: %s)\n", v.Path, v.Pattern)
	}
	fmt.Println("우회하려면 DOTX_SKIP_GUARD=1 을 설정하세요.")
	return fmt.Errorf("cli.guard: %w", guard.ErrGuardBlock)
}
