// Package setup drives the interactive first-run configuration: shell
// detection, rc-file hook installation, and the config form.
package setup

// Input은 setup 폼에서 수집하는 값이다.
type Input struct {
	VenvDir     string
	SyncCommand string
	GitDir      string
	WorkTree    string
	Remote      string
	Shell       string
	InstallHook bool
}

// FormRunner는 setup의 대화형 UI 추상화다.
// 프로덕션은 HuhFormRunner, 테스트는 testutil.FakeFormRunner를 사용한다.
type FormRunner interface {
	// RunSetupForm은 설정 입력 폼을 실행한다. defaults는 초기값이다.
	RunSetupForm(defaults *Input) (*Input, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
