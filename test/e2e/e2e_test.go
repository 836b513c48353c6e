package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	yshBin   string
	projRoot string
)

func TestMain(m *testing.M) {
	// Build ysh binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "ysh-bin")
	if err != nil {
		panic(err)
	}

	yshBin = filepath.Join(tmpBinDir, "ysh")

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")
	src := filepath.Join(projRoot, "cmd", "main.go")

	cmd := exec.Command("go", "build", "-o", yshBin, src)
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	// Run tests
	code := m.Run()
	if err := os.RemoveAll(tmpBinDir); err != nil {
		panic(err)
	}
	os.Exit(code)
}

// runResult is what one ysh process produced
type runResult struct {
	Stdout string
	Stderr string
	Status int
}

// runYsh feeds script to a fresh ysh process on stdin
func runYsh(t *testing.T, script string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(yshBin, args...)
	cmd.Stdin = strings.NewReader(script)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	status := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}

	return runResult{Stdout: stdout.String(), Stderr: stderr.String(), Status: status}
}

func TestE2EScriptTranscript(t *testing.T) {
	t.Parallel()

	res := runYsh(t, "mkdir a\ncd a\nmake f hello world\ncat f\npwd\n")

	assert.Equal(t, 0, res.Status)
	assert.Equal(t, ""+
		"% mkdir a\n"+
		"% cd a\n"+
		"% make f hello world\n"+
		"% cat f\n"+
		"hello world\n"+
		"% pwd\n"+
		"/a\n"+
		"% ^D\n"+
		"ysh: exit(0)\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestE2EExitStatus(t *testing.T) {
	t.Parallel()

	res := runYsh(t, "exit 7\n")
	assert.Equal(t, 7, res.Status)
	assert.Equal(t, "% exit 7\nysh: exit(7)\n", res.Stdout)

	res = runYsh(t, "mkdir a\nmkdir a\n")
	assert.Equal(t, 1, res.Status, "an error must set the status reported at end of input")
	assert.Equal(t, "mkdir: a: Directory already exists\n", res.Stderr)
}

func TestE2ERecursiveRemove(t *testing.T) {
	t.Parallel()

	res := runYsh(t, "mkdir a\nmkdir a/b\nrm a\nrmr a\nls\n", "-echo", "never")

	assert.Equal(t, 0, res.Status)
	assert.Equal(t, ""+
		"/:\n"+
		"     1       2  .\n"+
		"     1       2  ..\n"+
		"ysh: exit(0)\n", res.Stdout)
}

func TestE2ESeedNodes(t *testing.T) {
	t.Parallel()

	nodes := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, os.WriteFile(nodes, []byte(`[
		{"type": "dir", "path": "etc"},
		{"type": "file", "path": "etc/motd", "words": ["welcome", "back"]}
	]`), 0o644))

	res := runYsh(t, "cat etc/motd\nlsr\n", "-n", nodes, "-echo", "never")

	assert.Equal(t, 0, res.Status)
	assert.Equal(t, ""+
		"welcome back\n"+
		"/:\n"+
		"     1       3  .\n"+
		"     1       3  ..\n"+
		"     2       3  etc/\n"+
		"/etc:\n"+
		"     2       3  .\n"+
		"     1       3  ..\n"+
		"     3      12  motd\n"+
		"ysh: exit(0)\n", res.Stdout)
}

func TestE2EConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envFile := filepath.Join(dir, "ysh.env")
	require.NoError(t, os.WriteFile(envFile, []byte("YSH_PROMPT='$ '\nYSH_PROGRAM_NAME=tsh\n"), 0o644))

	res := runYsh(t, "pwd\n", "-c", envFile)

	assert.Equal(t, "$ pwd\n/\n$ ^D\ntsh: exit(0)\n", res.Stdout)

	// Flags win over the file
	res = runYsh(t, "pwd\n", "-c", envFile, "-prompt", "> ")
	assert.Equal(t, "> pwd\n/\n> ^D\ntsh: exit(0)\n", res.Stdout)
}

func TestE2EInvalidEchoMode(t *testing.T) {
	t.Parallel()

	res := runYsh(t, "", "-echo", "sometimes")

	assert.NotEqual(t, 0, res.Status)
	assert.Contains(t, res.Stderr, "invalid echo mode")
}
