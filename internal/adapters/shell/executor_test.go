package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/internal/adapters/shell"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", `printf '{"licenses":[]}'`},
		Dir:  t.TempDir(),
	}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.JSONEq(t, `{"licenses":[]}`, stdout.String())
}

func TestExecutor_Execute_MultiLineOutputToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Debug("line1"),
		mockLogger.EXPECT().Debug("line2"),
	)

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}, nil, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedStderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	// The writer buffers until a newline arrives.
	mockLogger.EXPECT().Warn("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "printf part1 >&2; sleep 0.1; echo part2 >&2"},
		Dir:  t.TempDir(),
	}, io.Discard, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_FlushesPartialLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "printf 'no newline' >&2"},
		Dir:  t.TempDir(),
	}, io.Discard, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo $SCOUT_TEST_VAR"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"SCOUT_TEST_VAR": "test-value-123"},
	}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "test-value-123\n", stdout.String())
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("here"), 0o600))

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"cat", "marker"},
		Dir:  dir,
	}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "here", stdout.String())
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"nonexistent-command-xyz123"},
		Dir:  t.TempDir(),
	}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	var stderr bytes.Buffer
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo broken >&2; exit 42"},
		Dir:  t.TempDir(),
	}, io.Discard, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Equal(t, "broken\n", stderr.String())
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty command")
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{"/bin/sh", "-c", "echo test"},
	}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "test", strings.TrimSpace(stdout.String()))
}

func TestExecutor_Execute_ContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := executor.Execute(ctx, domain.Command{
		Args: []string{"sleep", "5"},
	}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}
