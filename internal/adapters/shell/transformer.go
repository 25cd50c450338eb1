// Package shell provides the external command transformation engine.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileEnvVar names the environment variable that carries the path of the file being transformed.
const FileEnvVar = "DECO_FILE"

// CompilerOptionsEnvVar carries the merged tsconfig compilerOptions as JSON.
const CompilerOptionsEnvVar = "DECO_COMPILER_OPTIONS"

// Runner creates command transformers that share a logger.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Transformer returns a ports.Transformer that pipes file content through argv.
func (r *Runner) Transformer(argv []string) (*Transformer, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, domain.ErrMissingEngineCommand
	}
	return &Transformer{logger: r.logger, argv: append([]string(nil), argv...)}, nil
}

// Transformer implements ports.Transformer by running an external command with the
// file content on stdin and reading the transformed text from stdout.
type Transformer struct {
	logger ports.Logger
	argv   []string
}

// Transform runs the command for one file. Stderr lines are logged as warnings.
// A non-zero exit is reported with its exit code.
func (t *Transformer) Transform(
	ctx context.Context,
	id domain.FileID,
	content string,
	opts domain.TransformOptions,
) (string, error) {
	name := t.argv[0]
	args := t.argv[1:]

	cmdEnv := resolveEnvironment(os.Environ(), map[string]string{
		FileEnvVar:            id.String(),
		CompilerOptionsEnvVar: opts.CompilerOptions,
	})

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command

	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	var stdout bytes.Buffer
	stderr := &logWriter{logger: t.logger, path: id.String()}

	cmd.Env = cmdEnv
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stderr.Flush()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return stdout.String(), nil
}

// logWriter forwards complete lines to the logger, buffering partial writes.
type logWriter struct {
	logger ports.Logger
	path   string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing line without a newline.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	w.logger.Warn(w.path + ": " + line)
}

// resolveEnvironment merges overrides into the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
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
