/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package toolchain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/zkage/pkg/zkp/toolchain"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zokrates")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700)) //nolint:gosec

	return path
}

func TestExecRunner_Run(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bin := writeScript(t, `echo "$@"; pwd`)
		dir := t.TempDir()

		res, err := toolchain.NewExecRunner(bin).Run(context.Background(), dir, "compute-witness", "-a", "25", "18", "1")
		require.NoError(t, err)

		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)

		assert.Equal(t, 0, res.ExitCode)
		assert.Contains(t, string(res.Stdout), "compute-witness -a 25 18 1")
		assert.Contains(t, string(res.Stdout), resolved)
		assert.Empty(t, res.Stderr)
	})

	t.Run("writes into working directory", func(t *testing.T) {
		bin := writeScript(t, `echo '{}' > proof.json`)
		dir := t.TempDir()

		_, err := toolchain.NewExecRunner(bin).Run(context.Background(), dir, "generate-proof")
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "proof.json"))
	})

	t.Run("non-zero exit", func(t *testing.T) {
		bin := writeScript(t, `echo "witness out of range" >&2; exit 3`)

		res, err := toolchain.NewExecRunner(bin).Run(context.Background(), t.TempDir(), "compute-witness")
		require.Error(t, err)

		var exitErr *toolchain.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode)
		assert.Equal(t, "compute-witness", exitErr.Command)
		assert.Equal(t, "compute-witness exited with code 3: witness out of range", exitErr.Error())

		require.NotNil(t, res)
		assert.Equal(t, 3, res.ExitCode)
	})

	t.Run("binary not found", func(t *testing.T) {
		res, err := toolchain.NewExecRunner(filepath.Join(t.TempDir(), "missing")).
			Run(context.Background(), t.TempDir(), "compute-witness")

		assert.Nil(t, res)
		assert.ErrorContains(t, err, "run compute-witness")

		var exitErr *toolchain.ExitError
		assert.NotErrorAs(t, err, &exitErr)
	})

	t.Run("context canceled", func(t *testing.T) {
		bin := writeScript(t, `sleep 5`)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := toolchain.NewExecRunner(bin).Run(ctx, t.TempDir(), "generate-proof")
		assert.Error(t, err)
	})
}
