package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wererrors "github.com/wer-build/wer/pkg/errors"
	"github.com/wer-build/wer/pkg/runner"
)

// project creates a project directory holding wer.toml and the given files.
func project(t *testing.T, config string, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wer.toml"), []byte(config), 0o644))
	}
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("int main() {}\n"), 0o644))
	}
	return dir
}

// run executes wer in dir as if on a Linux host and returns its stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCommand("test", "now")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"-C", dir, "--platform", "linux"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

const ninjaConfig = `[build]
dir = "out"

[linux]
generator = "Ninja"
cc = "clang"
`

func TestConfigure_DryRun(t *testing.T) {
	dir := project(t, ninjaConfig)

	out, err := run(t, dir, "configure", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "CC=clang CMAKE_EXPORT_COMPILE_COMMANDS=1 cmake -S . -B out -G Ninja\n", out)

	out, err = run(t, dir, "configure", "--dry-run", "--create-ccs=false")
	require.NoError(t, err)
	assert.Equal(t, "CC=clang CMAKE_EXPORT_COMPILE_COMMANDS=0 cmake -S . -B out -G Ninja\n", out)
}

func TestConfigure_Vcpkg(t *testing.T) {
	dir := project(t, "[build]\ndir = \"out\"\n[vcpkg]\nenable = true\n")

	_, err := run(t, dir, "configure", "--dry-run")
	require.ErrorIs(t, err, wererrors.ErrVcpkgNotBootstrapped)
	var hinted *hintedError
	require.True(t, errors.As(err, &hinted))
	assert.Contains(t, hinted.hint, "wer vcpkg setup")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vcpkg"), 0o755))
	out, err := run(t, dir, "configure", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t,
		"CMAKE_EXPORT_COMPILE_COMMANDS=1 cmake -S . -B out -DCMAKE_TOOLCHAIN_FILE=vcpkg/scripts/buildsystems/vcpkg.cmake\n",
		out)
}

func TestBuild_NotConfigured(t *testing.T) {
	dir := project(t, ninjaConfig)

	_, err := run(t, dir, "build")
	assert.ErrorIs(t, err, wererrors.ErrNotConfigured)
}

func TestClean(t *testing.T) {
	dir := project(t, ninjaConfig, "out/CMakeCache.txt")

	out, err := run(t, dir, "clean")
	require.NoError(t, err)
	assert.Equal(t, "Cleaning everything...\n", out)
	assert.NoDirExists(t, filepath.Join(dir, "out"))

	out, err = run(t, dir, "clean")
	require.NoError(t, err)
	assert.Equal(t, "Cleaning everything...\nAlready cleaned up!\n", out)
}

func TestVcpkg_Uninstall(t *testing.T) {
	dir := project(t, ninjaConfig, "vcpkg/vcpkg")

	out, err := run(t, dir, "vcpkg", "uninstall")
	require.NoError(t, err)
	assert.Equal(t, "vcpkg_installed already removed!\n", out)
	assert.NoDirExists(t, filepath.Join(dir, "vcpkg"))
}

func TestVcpkg_InstallRequiresSetup(t *testing.T) {
	dir := project(t, ninjaConfig)

	_, err := run(t, dir, "vcpkg", "install")
	assert.ErrorIs(t, err, wererrors.ErrVcpkgNotBootstrapped)
}

const formatConfig = `[build]
dir = "out"

[format]
glob = ["src/**/*.cpp", "include/*.hpp"]
style = "Google"
exclude = ["src/generated.cpp"]
`

func TestFormat_List(t *testing.T) {
	dir := project(t, formatConfig, "src/a.cpp", "src/generated.cpp", "src/util/b.cpp", "include/c.hpp")

	out, err := run(t, dir, "format", "--list")
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join("include", "c.hpp")+"\n"+
			filepath.Join("src", "a.cpp")+"\n"+
			filepath.Join("src", "util", "b.cpp")+"\n",
		out)
}

func TestFormat_NotConfigured(t *testing.T) {
	dir := project(t, ninjaConfig, "src/a.cpp")

	_, err := run(t, dir, "format", "--list")
	assert.ErrorIs(t, err, wererrors.ErrNoFormatTargetsConfigured)
}

func TestFormat_NoMatchesIsSilent(t *testing.T) {
	dir := project(t, formatConfig)

	out, err := run(t, dir, "format", "--list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormat_ToolMissing(t *testing.T) {
	dir := project(t, formatConfig, "src/a.cpp")
	t.Setenv("PATH", t.TempDir())

	_, err := run(t, dir, "format", "--dry-run")
	assert.ErrorIs(t, err, wererrors.ErrFormatToolMissing)
}

func TestFormat_DryRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake clang-format is a shell script")
	}
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "clang-format"), []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", bin)

	dir := project(t, formatConfig, "src/b.cpp", "src/a.cpp", "src/generated.cpp")

	out, err := run(t, dir, "format", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "clang-format src/a.cpp src/b.cpp -style=Google -i\n", out)
}

func TestInfo(t *testing.T) {
	dir := project(t, ninjaConfig+"[vcpkg]\nenable = true\n")

	out, err := run(t, dir, "info", "--output", "json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "linux", report["host"])
	assert.Equal(t, "linux", report["overlay"])
	assert.Equal(t, "Ninja", report["generator"])
	assert.Equal(t, "clang", report["cc"])
	assert.Equal(t, true, report["vcpkg"])
	assert.Equal(t, false, report["vcpkg_fetched"])
	assert.Equal(t, "./vcpkg/bootstrap-vcpkg.sh", report["vcpkg_bootstrap"])
	assert.NotContains(t, report, "cxx")

	out, err = run(t, dir, "info", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "host: linux\n")
	assert.Contains(t, out, "generator: Ninja\n")

	out, err = run(t, dir, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Ninja")
	assert.Contains(t, out, "(none)")

	_, err = run(t, dir, "info", "--output", "xml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := project(t, formatConfig)
	out, err := run(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	dir = project(t, "[build]\ndir = \"\"\n[format]\nstyle = \"Fancy\"\n")
	_, err = run(t, dir, "validate")
	require.ErrorIs(t, err, wererrors.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "build.dir")
	assert.Contains(t, err.Error(), `"Fancy"`)
}

func TestConfigNotFound(t *testing.T) {
	dir := project(t, "")

	_, err := run(t, dir, "build")
	require.ErrorIs(t, err, wererrors.ErrConfigNotFound)

	var stderr bytes.Buffer
	report(&stderr, err)
	assert.Contains(t, stderr.String(), "Error: ")
	assert.Contains(t, stderr.String(), "💡 create wer.toml")
}

func TestConfigMalformed(t *testing.T) {
	dir := project(t, "[build\ndir = ")

	_, err := run(t, dir, "clean")
	assert.ErrorIs(t, err, wererrors.ErrConfigMalformed)
}

func TestUnknownPlatform(t *testing.T) {
	dir := project(t, ninjaConfig)

	_, err := run(t, dir, "info", "--platform", "beos")
	assert.ErrorIs(t, err, wererrors.ErrUnknownPlatform)
}

func TestReport_SubprocessFailureIsQuiet(t *testing.T) {
	var stderr bytes.Buffer
	report(&stderr, &runner.ExitError{Name: "cmake", Code: 1})
	assert.Empty(t, stderr.String())

	report(&stderr, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", stderr.String())
}

// writeScript writes an executable-looking shell script with the given mode.
func writeScript(t *testing.T, path, body string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode))
	require.NoError(t, os.Chmod(path, mode))
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
}

func TestVcpkg_SetupAlreadyFetched(t *testing.T) {
	skipOnWindows(t)
	base := t.TempDir()
	dir := filepath.Join(base, "proj")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wer.toml"), []byte(ninjaConfig), 0o644))
	bootstrap := filepath.Join(dir, "vcpkg", "bootstrap-vcpkg.sh")
	writeScript(t, bootstrap, "echo bootstrap \"$@\"\n", 0o644)

	// A relative project directory must work for project-local executables.
	chdirForTest(t, base)
	out, err := run(t, "proj", "vcpkg", "setup")
	require.NoError(t, err)
	assert.Equal(t, "vcpkg already fetched!\nInstalling vcpkg...\nbootstrap -disableMetrics\n", out)

	info, err := os.Stat(bootstrap)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestVcpkg_SetupClones(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	writeScript(t, filepath.Join(bin, "git"), `[ "$1" = clone ] || exit 1
mkdir -p "$3"
printf '#!/bin/sh\necho bootstrap "$@"\n' > "$3/bootstrap-vcpkg.sh"
echo "cloned $2"
`, 0o755)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := project(t, ninjaConfig)

	out, err := run(t, dir, "vcpkg", "setup")
	require.NoError(t, err)
	assert.Equal(t,
		"Fetching vcpkg...\ncloned https://github.com/Microsoft/vcpkg.git\nInstalling vcpkg...\nbootstrap -disableMetrics\n",
		out)
	assert.DirExists(t, filepath.Join(dir, "vcpkg"))
}

func TestVcpkg_SetupCloneFailure(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	writeScript(t, filepath.Join(bin, "git"), "exit 128\n", 0o755)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := project(t, ninjaConfig)

	out, err := run(t, dir, "vcpkg", "setup")
	var exitErr *runner.ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 128, exitErr.Code)
	assert.NotContains(t, out, "Installing vcpkg...")
}

func TestVcpkg_Install(t *testing.T) {
	skipOnWindows(t)
	base := t.TempDir()
	dir := filepath.Join(base, "proj")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wer.toml"), []byte(ninjaConfig), 0o644))
	writeScript(t, filepath.Join(dir, "vcpkg", "vcpkg"), "echo vcpkg \"$@\"\n", 0o755)

	chdirForTest(t, base)
	out, err := run(t, "proj", "vcpkg", "install")
	require.NoError(t, err)
	assert.Equal(t, "Installing packages...\nvcpkg install\n", out)
}

func TestHelpAndCompletionOutsideProject(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	out, err = run(t, dir, "help", "configure")
	require.NoError(t, err)
	assert.Contains(t, out, "--create-ccs")

	_, err = run(t, dir, "configure")
	assert.ErrorIs(t, err, wererrors.ErrConfigNotFound)
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
