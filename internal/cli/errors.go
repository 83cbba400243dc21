package cli

import (
	"github.com/hbjs97/dotx/internal/config"
	"github.com/hbjs97/dotx/internal/guard"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrGuardBlock는 guard 검사 실패로 commit이 차단될 때의 sentinel error다.
	ErrGuardBlock = guard.ErrGuardBlock
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
