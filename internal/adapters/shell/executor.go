// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command with the process environment overlaid by cmd.Env.
//
// A nil stdout or stderr is routed to the logger line by line, stdout at debug
// level and stderr at warn level.
func (e *Executor) Execute(ctx context.Context, command domain.Command, stdout, stderr io.Writer) error {
	if len(command.Args) == 0 {
		return zerr.New("empty command")
	}

	name := command.Args[0]
	args := command.Args[1:]

	cmdEnv := resolveEnvironment(os.Environ(), command.Env)

	// Resolve the executable against the PATH the command will actually see.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command

	// exec.CommandContext sets Args[0] to the executable path; keep the name as invoked.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	cmd.Dir = command.Dir
	cmd.Env = cmdEnv

	var flushers []*logWriter
	if stdout == nil {
		w := &logWriter{logger: e.logger, level: domain.LogLevelDebug}
		flushers = append(flushers, w)
		stdout = w
	}
	if stderr == nil {
		w := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
		flushers = append(flushers, w)
		stderr = w
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	for _, w := range flushers {
		w.Flush()
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(wrapped, "command", name)
	}

	return nil
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel

	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line; keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}

	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.level >= domain.LogLevelWarn {
		w.logger.Warn(line)
		return
	}
	w.logger.Debug(line)
}

// resolveEnvironment overlays the command environment on the system environment.
// The result is sorted so the child process sees a deterministic order.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	maps.Copy(envMap, cmdEnv)

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
