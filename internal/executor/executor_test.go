package executor_test

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/juparave/lastoff/internal/executor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
}

func TestRunCapturesOutput(t *testing.T) {
	requireBash(t)

	result, err := executor.Shell("echo hello world").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello world", strings.TrimSpace(result.Stdout))
	assert.Equal(t, 0, result.ExitCode)
}

func TestRunExitCode(t *testing.T) {
	requireBash(t)

	result, err := executor.Shell("exit 3").Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunMissingProgram(t *testing.T) {
	result, err := executor.New("lastoff-no-such-program").Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
}

func TestRunInteractiveDoesNotCapture(t *testing.T) {
	requireBash(t)

	result, err := executor.Shell("echo to-console").Run(context.Background(), executor.Interactive())
	require.NoError(t, err)
	assert.Empty(t, result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestRunSignalIsExitError(t *testing.T) {
	requireBash(t)

	result, err := executor.Shell("kill -9 $$").Run(context.Background())
	require.Error(t, err)
	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, -1, result.ExitCode)
}

func TestStartDoesNotWait(t *testing.T) {
	requireBash(t)

	err := executor.Shell("sleep 5").Start(context.Background())
	assert.NoError(t, err)
}

func TestStartMissingProgram(t *testing.T) {
	err := executor.New("lastoff-no-such-program").Start(context.Background())
	assert.Error(t, err)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "bash -c echo hi", executor.Shell("echo hi").String())
	assert.Equal(t, "sudo apt install -y vim", executor.New("sudo", "apt", "install", "-y", "vim").String())
}
