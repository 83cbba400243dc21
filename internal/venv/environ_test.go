package venv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/dotx/internal/testutil"
	"github.com/hbjs97/dotx/internal/venv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detectTestVenv(t *testing.T) *venv.VirtualEnv {
	t.Helper()
	dir := testutil.TempVenvDir(t, "3.12.1")
	v, ok := venv.Detect(dir, ".venv")
	require.True(t, ok)
	return v
}

func TestApply_SetsVirtualEnvAndPath(t *testing.T) {
	t.Parallel()
	v := detectTestVenv(t)
	sep := string(os.PathListSeparator)
	env := venv.MapEnviron{"PATH": "/usr/bin" + sep + "/bin"}

	venv.Apply(env, v)

	assert.Equal(t, v.Dir, env.Get("VIRTUAL_ENV"))
	assert.Equal(t, v.BinDir+sep+"/usr/bin"+sep+"/bin", env.Get("PATH"))
}

func TestApply_PreservesExistingPathTail(t *testing.T) {
	t.Parallel()
	v := detectTestVenv(t)
	sep := string(os.PathListSeparator)
	prior := "/usr/local/bin" + sep + "/usr/bin" + sep + "/bin"
	env := venv.MapEnviron{"PATH": prior}

	venv.Apply(env, v)

	assert.True(t, strings.HasPrefix(env.Get("PATH"), v.BinDir+sep))
	assert.Equal(t, prior, strings.TrimPrefix(env.Get("PATH"), v.BinDir+sep))
}

func TestApply_EmptyPath(t *testing.T) {
	t.Parallel()
	v := detectTestVenv(t)
	env := venv.MapEnviron{}

	venv.Apply(env, v)

	assert.Equal(t, v.BinDir, env.Get("PATH"))
}

func TestApply_StacksPrefixPerInvocation(t *testing.T) {
	t.Parallel()
	v := detectTestVenv(t)
	sep := string(os.PathListSeparator)
	env := venv.MapEnviron{"PATH": "/usr/bin"}

	// 중복 제거는 하지 않는다 — 호출 횟수만큼 prefix가 쌓인다.
	venv.Apply(env, v)
	venv.Apply(env, v)

	assert.Equal(t, v.BinDir+sep+v.BinDir+sep+"/usr/bin", env.Get("PATH"))
}

func TestApply_VenvBinIsFirstLookupEntry(t *testing.T) {
	t.Parallel()
	v := detectTestVenv(t)
	env := venv.MapEnviron{"PATH": "/usr/bin"}

	venv.Apply(env, v)

	entries := venv.SplitPathList(env.Get("PATH"))
	require.NotEmpty(t, entries)
	assert.Equal(t, v.BinDir, entries[0])
}

func TestOSEnviron_RoundTrip(t *testing.T) {
	t.Setenv("DOTX_TEST_KEY", "before")

	env := venv.OSEnviron{}
	assert.Equal(t, "before", env.Get("DOTX_TEST_KEY"))

	env.Set("DOTX_TEST_KEY", "after")
	assert.Equal(t, "after", os.Getenv("DOTX_TEST_KEY"))
}

func TestChildEnv_BasedOnProcessPath(t *testing.T) {
	v := detectTestVenv(t)
	t.Setenv("PATH", "/usr/bin")
	sep := string(os.PathListSeparator)

	env := venv.ChildEnv(v, nil)

	assert.Equal(t, v.Dir, env["VIRTUAL_ENV"])
	assert.Equal(t, v.BinDir+sep+"/usr/bin", env["PATH"])
}

func TestChildEnv_BaseOverridesProcessPath(t *testing.T) {
	t.Parallel()
	v := detectTestVenv(t)
	sep := string(os.PathListSeparator)

	env := venv.ChildEnv(v, venv.MapEnviron{"PATH": "/opt/bin", "LANG": "C"})

	assert.Equal(t, v.BinDir+sep+"/opt/bin", env["PATH"])
	assert.Equal(t, "C", env["LANG"])
}

func TestSplitPathList(t *testing.T) {
	t.Parallel()
	sep := string(os.PathListSeparator)

	entries := venv.SplitPathList("/a" + sep + sep + " /b " + sep + "/c")

	assert.Equal(t, []string{"/a", "/b", "/c"}, entries)
}

func TestSplitPathList_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, venv.SplitPathList(""))
}

func TestActivateFlow_VenvPresent(t *testing.T) {
	t.Parallel()
	// cwd에 .venv가 있으면 VIRTUAL_ENV는 <cwd>/.venv, PATH는 bin prefix로 시작한다.
	dir := testutil.TempVenvDir(t, "3.12.1")
	sep := string(os.PathListSeparator)

	v, ok := venv.Detect(dir, ".venv")
	require.True(t, ok)

	env := venv.MapEnviron{"PATH": "/usr/bin"}
	venv.Apply(env, v)

	assert.Equal(t, filepath.Join(dir, ".venv"), env.Get("VIRTUAL_ENV"))
	assert.True(t, strings.HasPrefix(env.Get("PATH"), filepath.Join(dir, ".venv", "bin")+sep))
}

func TestActivateFlow_VenvAbsentLeavesEnvUntouched(t *testing.T) {
	t.Parallel()
	// .venv가 없으면 환경은 전혀 변경되지 않는다.
	dir := t.TempDir()
	env := venv.MapEnviron{"PATH": "/usr/bin"}

	_, ok := venv.Detect(dir, ".venv")

	assert.False(t, ok)
	assert.Equal(t, "/usr/bin", env.Get("PATH"))
	assert.Empty(t, env.Get("VIRTUAL_ENV"))
}
