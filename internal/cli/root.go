package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/dotx/internal/cmdexec"
	"github.com/spf13/cobra"
)

// App은 CLI 전역 의존성을 담는다. 테스트에서 FakeCommander를 주입한다.
type App struct {
	Commander cmdexec.Commander
	CfgPath   string
	CachePath string
}

// NewApp은 기본 경로로 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		CfgPath:   filepath.Join(configDir(), "config.toml"),
		CachePath: filepath.Join(configDir(), "cache.json"),
	}
}

// NewRootCmd는 dotx CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dotx",
		Short:        "dotfiles와 Python 가상환경 컨텍스트 매니저",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newRunCmd(),
		a.newStatusCmd(),
		a.newLsCmd(),
		a.newCatCmd(),
		a.newGitCmd(),
		a.newCloneCmd(),
		a.newGuardCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
		a.newMCPCmd(),
	)
	return cmd
}

func configDir() string {
	return filepath.Join(homeDir(), ".config", "dotx")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
