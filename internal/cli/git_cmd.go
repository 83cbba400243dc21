package cli

import (
	"context"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/spf13/cobra"
)

func (a *App) newGitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "git -- <args...>",
		Short: "bare 리포 기준으로 git 명령을 실행한다",
		Long: `dotfiles bare 리포에 --git-dir/--work-tree를 주입해 임의의 git 명령을
실행한다. 예: dotx git -- add ~/.zshrc && dotx git -- commit -m "update"`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGit(cmd.Context(), args)
		},
	}
}

func (a *App) runGit(ctx context.Context, args []string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	return dots.RawInteractive(ctx, args...)
}
