package venv

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir는 감지 대상 가상환경 디렉토리 이름의 기본값이다.
const DefaultDir = ".venv"

// VirtualEnv는 감지된 가상환경이다.
type VirtualEnv struct {
	Dir    string // 절대 경로
	BinDir string // 실행 파일 디렉토리 절대 경로 (bin, Windows 레이아웃이면 Scripts)
	// pyvenv.cfg에서 읽은 메타데이터. 파일이 없으면 빈 값.
	PythonVersion string
	Prompt        string
}

// Detect는 root 아래 dirName 디렉토리를 확인한다.
// dirName이 빈 문자열이면 DefaultDir를 사용한다.
func Detect(root, dirName string) (*VirtualEnv, bool) {
	if dirName == "" {
		dirName = DefaultDir
	}

	dir := filepath.Join(root, dirName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	v := &VirtualEnv{Dir: abs, BinDir: filepath.Join(abs, "bin")}

	// venv 레이아웃이 Windows 스타일이면 Scripts가 실행 파일 디렉토리다.
	if _, err := os.Stat(v.BinDir); err != nil {
		scripts := filepath.Join(abs, "Scripts")
		if _, err := os.Stat(scripts); err == nil {
			v.BinDir = scripts
		}
	}

	v.PythonVersion, v.Prompt = readPyvenvCfg(filepath.Join(abs, "pyvenv.cfg"))
	return v, true
}

// readPyvenvCfg는 pyvenv.cfg에서 version과 prompt를 읽는다. 실패 시 빈 값.
func readPyvenvCfg(path string) (version, prompt string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "version", "version_info":
			if version == "" {
				version = value
			}
		case "prompt":
			prompt = strings.Trim(value, `'"`)
		}
	}
	return version, prompt
}
