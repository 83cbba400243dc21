package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/doctor"
	"github.com/hbjs97/dotx/internal/dotfiles"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context())
		},
	}
}

func (a *App) runDoctor(ctx context.Context) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Printf("[FAIL] config: %v\n", err)
		fmt.Println("      Fix: dotx setup 실행 또는 설정 파일 확인")
		// config 없이도 바이너리 검사는 가능하다
		printDiagResults(doctor.CheckBinaries(ctx, a.Commander))
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.doctor: %w", err)
	}

	dots := dotfiles.NewAdapter(a.Commander, cfg.GitDirPath(), cfg.WorkTreePath())
	results := doctor.RunAll(ctx, a.Commander, dots, cwd, cfg.Venv.Dir, cfg.Venv.SyncCommand)
	printDiagResults(results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Printf("  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Printf("      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
