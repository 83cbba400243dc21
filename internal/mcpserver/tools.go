package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hbjs97/dotx/internal/venv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListDotfilesInput은 list_dotfiles 도구 입력이다. 인자가 없다.
type ListDotfilesInput struct{}

// ListDotfilesResult는 list_dotfiles 도구 출력이다.
type ListDotfilesResult struct {
	Count int      `json:"count" jsonschema:"number of tracked dotfiles"`
	Files []string `json:"files" jsonschema:"tracked dotfile paths relative to the work tree"`
}

// GetDotfileContentInput은 get_dotfile_content 도구 입력이다.
type GetDotfileContentInput struct {
	Filepath string `json:"filepath" jsonschema:"path to the dotfile relative to the work tree"`
}

// GetDotfileContentResult는 get_dotfile_content 도구 출력이다.
type GetDotfileContentResult struct {
	Filepath string `json:"filepath" jsonschema:"requested path"`
	Content  string `json:"content" jsonschema:"file content, or an explanatory message if unreadable"`
}

// VenvStatusInput은 venv_status 도구 입력이다.
type VenvStatusInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory to probe; defaults to the server working directory"`
}

// VenvStatusResult는 venv_status 도구 출력이다.
type VenvStatusResult struct {
	Present       bool   `json:"present" jsonschema:"whether the virtual environment directory exists"`
	VirtualEnv    string `json:"virtual_env,omitempty" jsonschema:"absolute VIRTUAL_ENV path when present"`
	BinDir        string `json:"bin_dir,omitempty" jsonschema:"executables directory prepended to PATH"`
	PythonVersion string `json:"python_version,omitempty" jsonschema:"python version from pyvenv.cfg"`
	SyncHint      string `json:"sync_hint,omitempty" jsonschema:"remediation command when the environment is missing"`
}

// listDotfilesHandler는 추적 파일 목록을 반환한다. TTL 캐시를 거친다.
func (s *Server) listDotfilesHandler() mcp.ToolHandlerFor[ListDotfilesInput, ListDotfilesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListDotfilesInput) (*mcp.CallToolResult, ListDotfilesResult, error) {
		files, err := s.listFiles(ctx)
		if err != nil || len(files) == 0 {
			// 접근 실패도 프로토콜 에러가 아니라 안내 문구로 응답한다.
			text := "No dotfiles found or git repository not accessible."
			return textResult(text), ListDotfilesResult{}, nil
		}

		text := fmt.Sprintf("Found %d dotfiles:\n\n%s", len(files), strings.Join(files, "\n"))
		return textResult(text), ListDotfilesResult{Count: len(files), Files: files}, nil
	}
}

// getDotfileContentHandler는 dotfile 내용을 반환한다.
// 파일 없음/읽기 실패는 프로토콜 에러가 아니라 내용으로 보고한다.
func (s *Server) getDotfileContentHandler() mcp.ToolHandlerFor[GetDotfileContentInput, GetDotfileContentResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GetDotfileContentInput) (*mcp.CallToolResult, GetDotfileContentResult, error) {
		if input.Filepath == "" {
			return textResult("Error: filepath is required"), GetDotfileContentResult{}, nil
		}

		var content string
		if !s.dots.FileExists(input.Filepath) {
			content = fmt.Sprintf("File not found: %s", input.Filepath)
		} else if c, err := s.dots.FileContent(input.Filepath); err != nil {
			content = fmt.Sprintf("Error reading file: %v", err)
		} else {
			content = c
		}

		result := GetDotfileContentResult{Filepath: input.Filepath, Content: content}
		text := fmt.Sprintf("Content of %s:\n\n%s", input.Filepath, content)
		return textResult(text), result, nil
	}
}

// venvStatusHandler는 가상환경 존재 여부를 보고한다. 환경은 변경하지 않는다.
func (s *Server) venvStatusHandler() mcp.ToolHandlerFor[VenvStatusInput, VenvStatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input VenvStatusInput) (*mcp.CallToolResult, VenvStatusResult, error) {
		root := input.Dir
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return textResult(fmt.Sprintf("Error: %v", err)), VenvStatusResult{}, nil
			}
			root = cwd
		}

		v, ok := venv.Detect(root, s.cfg.Venv.Dir)
		if !ok {
			result := VenvStatusResult{Present: false, SyncHint: s.cfg.Venv.SyncCommand}
			text := fmt.Sprintf("%s not found in %s. Run `%s` to create it.", s.cfg.Venv.Dir, root, s.cfg.Venv.SyncCommand)
			return textResult(text), result, nil
		}

		result := VenvStatusResult{
			Present:       true,
			VirtualEnv:    v.Dir,
			BinDir:        v.BinDir,
			PythonVersion: v.PythonVersion,
		}
		return textResult(fmt.Sprintf("VIRTUAL_ENV=%s", v.Dir)), result, nil
	}
}

// listFiles는 캐시를 먼저 조회하고 miss면 리포에서 읽어 캐시를 갱신한다.
func (s *Server) listFiles(ctx context.Context) ([]string, error) {
	ttl := time.Duration(s.cfg.Cache.TTLMinutes) * time.Minute
	hash := s.cfg.ConfigHash()
	if files, ok := s.cache.Lookup(s.dots.GitDir(), hash, ttl); ok {
		return files, nil
	}

	files, err := s.dots.ListFiles(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(s.dots.GitDir(), hash, files)
	_ = s.cache.Save(s.cachePath) // 캐시 저장 실패는 치명적이지 않음
	return files, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
