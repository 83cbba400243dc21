// Package mcpserver exposes dotfiles and virtualenv state over the Model
// Context Protocol. The server speaks stdio only; tool results carry both
// human-readable text and structured output.
package mcpserver

import (
	"context"

	"github.com/hbjs97/dotx/internal/cache"
	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion은 MCP 서버 버전이다.
const serverVersion = "1.0.0"

// Server는 dotx MCP 서버다.
type Server struct {
	dots      *dotfiles.Adapter
	cfg       *config.Config
	cache     *cache.Cache
	cachePath string
}

// New는 새 MCP Server를 생성한다.
func New(dots *dotfiles.Adapter, cfg *config.Config, c *cache.Cache, cachePath string) *Server {
	return &Server{dots: dots, cfg: cfg, cache: c, cachePath: cachePath}
}

// Run은 stdio transport로 MCP 서버를 실행한다. ctx 취소 시 종료한다.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dotx",
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dotfiles",
		Description: "List all dotfiles managed by the repository",
	}, s.listDotfilesHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dotfile_content",
		Description: "Get the content of a specific dotfile",
	}, s.getDotfileContentHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "venv_status",
		Description: "Report whether a local Python virtual environment exists and how to activate it",
	}, s.venvStatusHandler())

	return server.Run(ctx, &mcp.StdioTransport{})
}
