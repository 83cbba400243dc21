package cli

import (
	"context"
	"log"

	"github.com/hbjs97/dotx/internal/cache"
	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/hbjs97/dotx/internal/mcpserver"
	"github.com/spf13/cobra"
)

func (a *App) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "stdio로 MCP 서버를 실행한다",
		Long: `dotfiles 목록/내용과 가상환경 상태를 Model Context Protocol 도구로
노출한다. stdin/stdout으로 통신하므로 진단 로그는 stderr로 나간다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMCP(cmd.Context())
		},
	}
}

func (a *App) runMCP(ctx context.Context) error {
	log.SetPrefix("[MCP] ")

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	c, err := cache.Load(a.CachePath)
	if err != nil {
		c = cache.New() // 캐시 로드 실패 시 빈 캐시 사용
	}
	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())

	server := mcpserver.New(dots, cfg, c, a.CachePath)
	log.Printf("serving on stdio (git-dir=%s)", dots.GitDir())
	return server.Run(ctx)
}
