/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package workdir

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultPrefix = "age-verification"

// Manager creates per-request working directories under a root directory.
type Manager struct {
	root   string
	prefix string
	now    func() time.Time
}

// Opt configures Manager.
type Opt func(m *Manager)

// WithPrefix sets the directory name prefix.
func WithPrefix(prefix string) Opt {
	return func(m *Manager) {
		m.prefix = prefix
	}
}

// WithClock sets the clock used for the time-based directory suffix.
func WithClock(now func() time.Time) Opt {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager returns a Manager rooted at root. An empty root means os.TempDir().
func NewManager(root string, opts ...Opt) *Manager {
	m := &Manager{
		root:   root,
		prefix: defaultPrefix,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.root == "" {
		m.root = os.TempDir()
	}

	return m
}

// Acquire creates a new uniquely named directory. The caller owns it and must call Remove.
func (m *Manager) Acquire() (*Dir, error) {
	pattern := m.prefix + "-" + strconv.FormatInt(m.now().UnixMilli(), 10) + "-*"

	path, err := os.MkdirTemp(m.root, pattern)
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}

	return &Dir{path: path}, nil
}

// Dir is a request-scoped working directory.
type Dir struct {
	path string
}

// Path returns the absolute directory path.
func (d *Dir) Path() string {
	return d.path
}

// Remove deletes the directory and everything in it. Removing an already removed
// directory is not an error.
func (d *Dir) Remove() error {
	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("remove work dir %s: %w", d.path, err)
	}

	return nil
}
