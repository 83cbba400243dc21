package cli

import (
	"fmt"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/spf13/cobra"
)

func (a *App) newCatCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "dotfile 내용을 출력한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCat(args[0], raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "secret 마스킹 없이 원본 출력")
	return cmd
}

func (a *App) runCat(relPath string, raw bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	content, err := dots.FileContent(relPath)
	if err != nil {
		return fmt.Errorf("cli.cat: %w", err)
	}

	if !raw {
		content = MaskSecrets(content)
	}
	fmt.Print(content)
	return nil
}
