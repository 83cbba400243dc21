package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hbjs97/dotx/internal/cache"
	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/spf13/cobra"
)

func (a *App) newLsCmd() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "dotfiles 리포가 추적하는 파일을 나열한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLs(cmd.Context(), noCache)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "목록 캐시 무시")
	return cmd
}

func (a *App) runLs(ctx context.Context, noCache bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	c, cerr := cache.Load(a.CachePath)
	if cerr != nil {
		c = cache.New() // 캐시 로드 실패 시 빈 캐시 사용
	}

	hash := cfg.ConfigHash()
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute

	files, hit := c.Lookup(dots.GitDir(), hash, ttl)
	if noCache || !hit {
		files, err = dots.ListFiles(ctx)
		if err != nil {
			return fmt.Errorf("cli.ls: %w", err)
		}
		c.Set(dots.GitDir(), hash, files)
		_ = c.Save(a.CachePath) // 캐시 저장 실패는 치명적이지 않음
	}

	if len(files) == 0 {
		fmt.Println("추적 중인 dotfile이 없습니다.")
		return nil
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
