package shell

import (
	"fmt"

	"github.com/hbjs97/dotx/internal/venv"
)

// Activate는 가상환경 활성화를 위한 shell export 명령을 생성한다.
// POSIX 셸은 PATH 참조를 통해, fish는 리스트 prepend로 prefix를 추가한다.
func Activate(v *venv.VirtualEnv, shellType string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf(
			"set -gx VIRTUAL_ENV %q\nset -gx PATH %q $PATH\n",
			v.Dir, v.BinDir,
		)
	default: // bash, zsh, sh
		return fmt.Sprintf(
			"export VIRTUAL_ENV=%q\nexport PATH=%q\n",
			v.Dir, v.BinDir+":$PATH",
		)
	}
}

// Deactivate는 가상환경 비활성화를 위한 shell unset 명령을 생성한다.
// PATH에 쌓인 prefix는 셸 세션에 남는다 — activate의 누적 특성과 동일하게
// 여기서도 PATH 수술은 하지 않는다.
func Deactivate(shellType string) string {
	switch shellType {
	case "fish":
		return "set -e VIRTUAL_ENV\n"
	default:
		return "unset VIRTUAL_ENV\n"
	}
}

// HookSnippet는 셸 디렉토리 변경 hook 스니펫을 반환한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# dotx shell integration (zsh)
_dotx_chpwd() {
  eval "$(dotx activate --shell zsh --quiet 2>/dev/null)"
}
chpwd_functions+=(_dotx_chpwd)
`
	case "bash":
		return `# dotx shell integration (bash)
_dotx_prompt_command() {
  eval "$(dotx activate --shell bash --quiet 2>/dev/null)"
}
PROMPT_COMMAND="_dotx_prompt_command;${PROMPT_COMMAND}"
`
	case "fish":
		return `# dotx shell integration (fish)
function _dotx_chpwd --on-variable PWD
  eval (dotx activate --shell fish --quiet 2>/dev/null)
end
`
	default:
		return ""
	}
}
