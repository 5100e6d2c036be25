/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
)

var logger = log.New("zkp-toolchain")

// Result holds the captured output of a finished toolchain command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ExitError is returned when the command ran but exited with a non-zero code.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)

	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

// Runner executes one toolchain subcommand synchronously with dir as the working directory.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (*Result, error)
}

// ExecRunner runs the toolchain binary as a child process.
type ExecRunner struct {
	binary string
}

// NewExecRunner returns a runner for the toolchain binary at the given path (or looked up in PATH).
func NewExecRunner(binary string) *ExecRunner {
	return &ExecRunner{binary: binary}
}

// Run starts the binary with args and waits for it. A non-zero exit yields the captured
// Result together with an *ExitError. The process is killed when ctx is done.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.binary, args...) //nolint:gosec
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	command := r.binary
	if len(args) > 0 {
		command = args[0]
	}

	st := time.Now()

	err := cmd.Run()

	res := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	logger.Debugc(ctx, "Toolchain command finished",
		logfields.WithCommand(command),
		logfields.WithWorkDir(dir),
		logfields.WithExitCode(res.ExitCode),
		log.WithDuration(time.Since(st)),
	)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, &ExitError{
				Command:  command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}

		return nil, fmt.Errorf("run %s: %w", command, err)
	}

	return res, nil
}
