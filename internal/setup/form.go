package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunSetupForm은 설정 입력 폼을 실행한다.
func (h *HuhFormRunner) RunSetupForm(defaults *Input) (*Input, error) {
	input := &Input{}
	if defaults != nil {
		*input = *defaults
	}

	venvDirValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("디렉토리 이름을 입력하세요")
		}
		if strings.HasPrefix(s, "/") || strings.Contains(s, "..") {
			return fmt.Errorf("상대 디렉토리 이름만 사용 가능합니다")
		}
		return nil
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("가상환경 디렉토리 이름").
			Description("현재 디렉토리 기준 상대 경로 (기본 .venv)").
			Value(&input.VenvDir).
			Validate(venvDirValidate),
		huh.NewInput().
			Title("의존성 동기화 명령").
			Description("가상환경이 없을 때 안내할 명령 (예: uv sync)").
			Value(&input.SyncCommand).
			Validate(huh.ValidateNotEmpty()),
		huh.NewInput().
			Title("dotfiles bare 리포 경로").
			Value(&input.GitDir).
			Validate(huh.ValidateNotEmpty()),
		huh.NewInput().
			Title("dotfiles work tree").
			Value(&input.WorkTree).
			Validate(huh.ValidateNotEmpty()),
		huh.NewInput().
			Title("dotfiles 원격 리포 (선택)").
			Description("git@.../https://... URL 또는 owner/repo — 비워두면 clone 생략").
			Value(&input.Remote),
		huh.NewSelect[string]().
			Title("셸 유형").
			Options(
				huh.NewOption("zsh", "zsh"),
				huh.NewOption("bash", "bash"),
				huh.NewOption("fish", "fish"),
			).
			Value(&input.Shell),
		huh.NewConfirm().
			Title("셸 hook을 설치할까요?").
			Description("디렉토리 이동 시 dotx activate를 자동 실행합니다").
			Value(&input.InstallHook),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunSetupForm: %w", err)
	}

	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
