// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor attached to the standard streams of the process.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetStreams replaces the streams handed to executed commands.
func (e *Executor) SetStreams(stdin io.Reader, stdout, stderr io.Writer) {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
}

// Execute runs command in dir with binPaths prepended to PATH.
// The rest of the environment is inherited from the current process.
func (e *Executor) Execute(ctx context.Context, dir string, command, binPaths []string) error {
	if len(command) == 0 {
		return nil
	}

	name := command[0]
	cmdEnv := resolveEnvironment(os.Environ(), binPaths)

	// Resolve against the new PATH so dependency binaries win over system ones.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command[1:]...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = dir
	cmd.Env = cmdEnv
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if len(binPaths) > 0 {
		e.logger.Info(fmt.Sprintf("Starting %s with %d dependency path(s) on PATH", name, len(binPaths)))
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		shellErr := zerr.Wrap(domain.ErrShellFailed, err.Error())
		shellErr = zerr.With(shellErr, "command", name)
		return zerr.With(shellErr, "exit_code", exitCode)
	}

	return nil
}

// resolveEnvironment returns sysEnv with binPaths prepended to PATH.
func resolveEnvironment(sysEnv, binPaths []string) []string {
	result := make([]string, 0, len(sysEnv)+1)
	sysPath := ""
	for _, entry := range sysEnv {
		if v, ok := strings.CutPrefix(entry, "PATH="); ok {
			sysPath = v
			continue
		}
		result = append(result, entry)
	}

	parts := append([]string(nil), binPaths...)
	if sysPath != "" {
		parts = append(parts, sysPath)
	}
	return append(result, "PATH="+strings.Join(parts, string(os.PathListSeparator)))
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
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
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
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
