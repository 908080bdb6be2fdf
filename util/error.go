// util/error.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmp/kinematics/log"
)

// ErrorLogger accumulates validation errors while keeping track of what
// is being validated, so that a single pass can report every problem in
// a scenario file rather than stopping at the first one.
type ErrorLogger struct {
	// Tracked via Push()/Pop() calls to remember what we're looking at if
	// an error is found.
	hierarchy []string
	errors    []string
}

func (e *ErrorLogger) Push(s string) {
	e.hierarchy = append(e.hierarchy, s)
}

func (e *ErrorLogger) Pop() {
	e.hierarchy = e.hierarchy[:len(e.hierarchy)-1]
}

func (e *ErrorLogger) ErrorString(s string, args ...any) {
	e.errors = append(e.errors, e.prefix()+fmt.Sprintf(s, args...))
}

func (e *ErrorLogger) Error(err error) {
	e.errors = append(e.errors, e.prefix()+err.Error())
}

func (e *ErrorLogger) prefix() string {
	if len(e.hierarchy) == 0 {
		return ""
	}
	return strings.Join(e.hierarchy, " / ") + ": "
}

func (e *ErrorLogger) HaveErrors() bool {
	return e != nil && len(e.errors) > 0
}

// Errors returns the accumulated messages in the order they were
// reported.
func (e *ErrorLogger) Errors() []string {
	if e == nil {
		return nil
	}
	return e.errors
}

// Err returns nil if no errors have been reported and otherwise an error
// listing all of them, one per line.
func (e *ErrorLogger) Err() error {
	if !e.HaveErrors() {
		return nil
	}
	return errors.New(e.String())
}

func (e *ErrorLogger) String() string {
	return strings.Join(e.errors, "\n")
}

// CheckDepth panics if the Push/Pop hierarchy does not have depth d; it
// is meant to be deferred with the depth at entry to a validation
// routine.
func (e *ErrorLogger) CheckDepth(d int) {
	if e == nil || e.CurrentDepth() == d {
		return
	}

	if r := recover(); r != nil {
		// Don't mask the original panic.
		panic(r)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "initial ErrorLogger depth %d, final %d\n", d, e.CurrentDepth())
	for _, f := range log.Callstack(nil) {
		fmt.Fprintf(&sb, "%15s:%d %s\n", f.File, f.Line, f.Function)
	}
	panic(sb.String())
}

func (e *ErrorLogger) CurrentDepth() int {
	if e == nil {
		return 0
	}
	return len(e.hierarchy)
}
