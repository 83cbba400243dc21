package shell_test

import (
	"testing"

	"github.com/hbjs97/dotx/internal/shell"
	"github.com/hbjs97/dotx/internal/venv"
	"github.com/stretchr/testify/assert"
)

func testVenv() *venv.VirtualEnv {
	return &venv.VirtualEnv{
		Dir:    "/proj/.venv",
		BinDir: "/proj/.venv/bin",
	}
}

func TestActivate_PosixShell(t *testing.T) {
	output := shell.Activate(testVenv(), "zsh")
	assert.Contains(t, output, `export VIRTUAL_ENV="/proj/.venv"`)
	assert.Contains(t, output, `export PATH="/proj/.venv/bin:$PATH"`)
}

func TestActivate_Bash(t *testing.T) {
	output := shell.Activate(testVenv(), "bash")
	assert.Contains(t, output, `export VIRTUAL_ENV="/proj/.venv"`)
	assert.Contains(t, output, `export PATH="/proj/.venv/bin:$PATH"`)
}

func TestActivate_Fish(t *testing.T) {
	output := shell.Activate(testVenv(), "fish")
	assert.Contains(t, output, `set -gx VIRTUAL_ENV "/proj/.venv"`)
	assert.Contains(t, output, `set -gx PATH "/proj/.venv/bin" $PATH`)
}

func TestDeactivate_PosixShell(t *testing.T) {
	output := shell.Deactivate("zsh")
	assert.Contains(t, output, "unset VIRTUAL_ENV")
}

func TestDeactivate_Fish(t *testing.T) {
	output := shell.Deactivate("fish")
	assert.Contains(t, output, "set -e VIRTUAL_ENV")
}

func TestHookSnippet_Zsh(t *testing.T) {
	snippet := shell.HookSnippet("zsh")
	assert.Contains(t, snippet, "chpwd_functions")
	assert.Contains(t, snippet, "dotx activate")
}

func TestHookSnippet_Bash(t *testing.T) {
	snippet := shell.HookSnippet("bash")
	assert.Contains(t, snippet, "PROMPT_COMMAND")
	assert.Contains(t, snippet, "dotx activate")
}

func TestHookSnippet_Fish(t *testing.T) {
	snippet := shell.HookSnippet("fish")
	assert.Contains(t, snippet, "--on-variable PWD")
	assert.Contains(t, snippet, "dotx activate")
}

func TestHookSnippet_Unknown(t *testing.T) {
	snippet := shell.HookSnippet("unknown")
	assert.Empty(t, snippet)
}
