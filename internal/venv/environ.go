package venv

import (
	"os"
	"strings"
)

// Environ은 환경변수 읽기/쓰기 추상화다.
// 실제 프로세스 환경(OSEnviron)과 테스트/자식 프로세스용 맵(MapEnviron)이 구현한다.
type Environ interface {
	Get(key string) string
	Set(key, value string)
}

// MapEnviron은 맵 기반 Environ 구현이다. 자식 프로세스에 넘길 env 조립과
// 테스트에서 test runner의 실제 환경을 건드리지 않기 위해 사용한다.
type MapEnviron map[string]string

// Get은 키의 값을 반환한다. 없으면 빈 문자열.
func (m MapEnviron) Get(key string) string { return m[key] }

// Set은 키에 값을 설정한다.
func (m MapEnviron) Set(key, value string) { m[key] = value }

// OSEnviron은 현재 프로세스 환경을 직접 변경하는 Environ 구현이다.
// 변경 사항은 이후 생성되는 자식 프로세스에 상속된다.
type OSEnviron struct{}

// Get은 os.Getenv를 호출한다.
func (OSEnviron) Get(key string) string { return os.Getenv(key) }

// Set은 os.Setenv를 호출한다. 실패는 무시한다 — activate는 실패하지 않는다.
func (OSEnviron) Set(key, value string) { _ = os.Setenv(key, value) }

// Apply는 감지된 가상환경을 env에 반영한다.
// VIRTUAL_ENV를 절대 경로로 설정하고 PATH 앞에 BinDir를 붙인다.
// 기존 PATH 값은 구분자 뒤에 그대로 보존된다. 중복 제거는 하지 않으므로
// 반복 호출하면 prefix가 호출 횟수만큼 쌓인다 (알려진 누적 특성).
func Apply(env Environ, v *VirtualEnv) {
	env.Set("VIRTUAL_ENV", v.Dir)

	path := env.Get("PATH")
	if path == "" {
		env.Set("PATH", v.BinDir)
		return
	}
	env.Set("PATH", v.BinDir+string(os.PathListSeparator)+path)
}

// ChildEnv는 v를 반영한 자식 프로세스용 환경변수 맵을 반환한다.
// base가 nil이면 현재 프로세스의 PATH를 기준으로 한다.
func ChildEnv(v *VirtualEnv, base MapEnviron) MapEnviron {
	env := MapEnviron{}
	for k, val := range base {
		env[k] = val
	}
	if _, ok := env["PATH"]; !ok {
		env["PATH"] = os.Getenv("PATH")
	}
	Apply(env, v)
	return env
}

// SplitPathList는 PATH 형식 문자열을 항목 목록으로 나눈다. 빈 항목은 건너뛴다.
func SplitPathList(value string) []string {
	parts := strings.Split(value, string(os.PathListSeparator))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
