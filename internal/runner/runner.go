// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package runner executes snippet files inside language-specific
// containers via docker compose. It is a thin dispatch layer: the file
// extension picks the compose service, an optional database token
// brings up a companion service first. The actual command execution is
// injectable so tests never touch Docker.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// services maps snippet file extensions to their compose service.
var services = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "node",
	".ts":   "ts-node",
	".java": "java",
	".c":    "c",
	".cpp":  "cpp",
	".rs":   "rust",
	".rb":   "ruby",
	".php":  "php",
	".sh":   "bash",
}

// databases is the closed set of database tokens. SQLite is embedded,
// so it is the one entry that needs no companion container.
var databases = map[string]bool{
	"mysql":    true,
	"postgres": true,
	"mongodb":  true,
	"redis":    true,
	"sqlite":   true,
}

// CommandFunc executes one external command, wired to the caller's
// terminal. The default implementation wraps os/exec.
type CommandFunc func(ctx context.Context, name string, args ...string) error

// Runner dispatches snippet files to docker compose.
type Runner struct {
	run CommandFunc
}

// New creates a Runner. Pass nil to execute commands for real.
func New(run CommandFunc) *Runner {
	if run == nil {
		run = execCommand
	}
	return &Runner{run: run}
}

// Run executes the snippet file in its language container. A non-empty
// db token starts the matching database service first; "sqlite" is
// accepted but starts nothing. Unsupported extensions and tokens are
// errors before any command runs.
func (r *Runner) Run(ctx context.Context, file, db string) error {
	ext := strings.ToLower(filepath.Ext(file))
	service, ok := services[ext]
	if !ok {
		return fmt.Errorf("unsupported snippet extension %q (supported: %s)", ext, strings.Join(Languages(), ", "))
	}
	if db != "" && !databases[db] {
		return fmt.Errorf("unsupported database %q (supported: %s)", db, strings.Join(Databases(), ", "))
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("snippet file: %w", err)
	}

	if db != "" && db != "sqlite" {
		slog.Info("starting database service", "db", db)
		if err := r.run(ctx, "docker", "compose", "up", "-d", db); err != nil {
			return fmt.Errorf("start %s: %w", db, err)
		}
	}

	slog.Info("running snippet", "file", file, "service", service, "db", db)
	if err := r.run(ctx, "docker", "compose", "run", "--rm", service, file); err != nil {
		return fmt.Errorf("run snippet: %w", err)
	}
	return nil
}

// Languages returns the supported snippet extensions, sorted.
func Languages() []string {
	exts := make([]string, 0, len(services))
	for ext := range services {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Databases returns the supported database tokens, sorted.
func Databases() []string {
	dbs := make([]string, 0, len(databases))
	for db := range databases {
		dbs = append(dbs, db)
	}
	sort.Strings(dbs)
	return dbs
}

func execCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
