// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging with a level that
// depends on the build tags: debug builds log at debug level,
// release builds only log warnings and errors.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity level that the user has selected.
// It starts at a value determined by the build tags and can be
// changed before calling [SetDefaultLogger].
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default [slog] logger to a text logger
// on stderr that logs at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a text logger writing to w at [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// SetLevel sets [UserLevel] from the given level name
// (debug, info, warn, or error, in any case). An empty name
// leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return fmt.Errorf("logx: invalid level %q: %w", name, err)
	}
	UserLevel = lvl
	return nil
}
