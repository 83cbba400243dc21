package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/hbjs97/dotx/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "가상환경과 dotfiles 리포 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd.Context())
		},
	}
}

func (a *App) runStatus(ctx context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	// venv 상태
	if v, ok := venv.Detect(cwd, cfg.Venv.Dir); ok {
		fmt.Printf("가상환경: %s\n", v.Dir)
		if v.PythonVersion != "" {
			fmt.Printf("  python:  %s\n", v.PythonVersion)
		}
		if current := os.Getenv("VIRTUAL_ENV"); current == v.Dir {
			fmt.Println("  상태:    활성 (VIRTUAL_ENV 일치)")
		} else {
			fmt.Println("  상태:    비활성 — eval \"$(dotx activate --shell zsh)\" 로 활성화")
		}
	} else {
		fmt.Printf("가상환경: 없음 (%s)\n", cfg.Venv.Dir)
		fmt.Printf("  힌트:    %s\n", cfg.Venv.SyncCommand)
	}

	// dotfiles 상태
	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	if !dots.IsRepo(ctx) {
		fmt.Printf("dotfiles: 리포 없음 (%s) — dotx clone <repo> 로 초기화\n", cfg.Dotfiles.GitDir)
		return nil
	}

	fmt.Printf("dotfiles: %s\n", cfg.Dotfiles.GitDir)
	if files, err := dots.ListFiles(ctx); err == nil {
		fmt.Printf("  추적 파일: %d개\n", len(files))
	}
	if dirty, err := dots.DirtyCount(ctx); err == nil && dirty > 0 {
		fmt.Printf("  변경됨:    %d개\n", dirty)
	}
	return nil
}
