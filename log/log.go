// log/log.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
	LogFile string
	LogDir  string
	Start   time.Time
}

// ParseLevel maps the level names accepted on the command line to slog
// levels.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: invalid log level", level)
	}
}

// New returns a Logger that writes JSON records to a rotated log file in
// dir; if dir is empty, a directory under the user's config directory is
// used.
func New(level string, dir string) *Logger {
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to find user config dir: %v", err)
			dir = "."
		}
		dir = filepath.Join(dir, "kinsim")
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "kinsim.slog"),
		MaxSize:    32, // MB
		MaxBackups: 1,
	}
	if level == "debug" {
		w.MaxSize = 512
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	l := NewWithWriter(w, lvl)
	l.LogFile = w.Filename
	l.LogDir = dir

	// Start out the logs with some basic information about the system
	// we're running on and the build that's being used.
	l.Info("Hello logging", slog.Time("start", time.Now()))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()),
		slog.Bool("Race", RaceEnabled))

	var deps, settings []any
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			deps = append(deps, slog.String(dep.Path, dep.Version))
			if dep.Replace != nil {
				deps = append(deps, slog.String("Replacement "+dep.Replace.Path, dep.Replace.Version))
			}
		}
		for _, setting := range bi.Settings {
			settings = append(settings, slog.String(setting.Key, setting.Value))
		}

		l.Info("Build",
			slog.String("Go version", bi.GoVersion),
			slog.String("Path", bi.Path),
			slog.Group("Dependencies", deps...),
			slog.Group("Settings", settings...))
	}

	return l
}

// NewWithWriter returns a Logger that writes JSON records at or above lvl
// to w. It is mostly useful for tests.
func NewWithWriter(w io.Writer, lvl slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{
		Logger: slog.New(h),
		Start:  time.Now(),
	}
}

// Debug wraps slog.Debug to add call stack information (and similarly for
// the following Logger methods...)  Note that we do not wrap the entire
// slog logging interface, so, for example, WarnContext and Log do not have
// callstacks included.
//
// We also wrap the logging methods to allow a nil *Logger, in which case
// debug and info messages are discarded (though warnings and errors still
// go through to slog.)
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelDebug) {
		args = append([]any{slog.Any("callstack", Callstack(nil))}, args...)
		l.Logger.Debug(msg, args...)
	}
}

// Debugf is a convenience wrapper that logs just a message and allows
// printf-style formatting of the provided args.
func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...), slog.Any("callstack", Callstack(nil)))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelInfo) {
		args = append([]any{slog.Any("callstack", Callstack(nil))}, args...)
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...), slog.Any("callstack", Callstack(nil)))
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	args = append([]any{slog.Any("callstack", Callstack(nil))}, args...)
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l == nil {
		slog.Warn(fmt.Sprintf(msg, args...), slog.Any("callstack", Callstack(nil)))
	} else {
		l.Logger.Warn(fmt.Sprintf(msg, args...), slog.Any("callstack", Callstack(nil)))
	}
}

func (l *Logger) Error(msg string, args ...any) {
	args = append([]any{slog.Any("callstack", Callstack(nil))}, args...)
	slog.Error(msg, args...)
	if l != nil {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...), slog.Any("callstack", Callstack(nil)))
	if l != nil {
		l.Logger.Error(fmt.Sprintf(msg, args...), slog.Any("callstack", Callstack(nil)))
	}
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		LogDir:  l.LogDir,
		Start:   l.Start,
	}
}

// CatchAndReportCrash should be deferred at the top of main(); if a
// panic is unwinding, it logs it along with the stack and writes a crash
// report next to the log file. The recovered value is returned.
func (l *Logger) CatchAndReportCrash() any {
	// Janky way to check if we're running under the debugger.
	if dlv, ok := os.LookupEnv("_"); ok && strings.HasSuffix(dlv, "/dlv") {
		return nil
	}

	err := recover()
	if err != nil {
		l.Errorf("Crashed: %v", err)

		// Format the report information
		report := fmt.Sprintf("Crashed: %v\n", err)
		report += "Sys: " + runtime.GOARCH + "/" + runtime.GOOS + "\n"

		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range bi.Settings {
				report += setting.Key + ": " + setting.Value + "\n"
			}
		}
		report += string(debug.Stack())

		fmt.Fprintln(os.Stderr, report)

		if l != nil && l.LogDir != "" {
			fn := filepath.Join(l.LogDir, "crash-"+time.Now().Format(time.RFC3339)+".txt")
			_ = os.WriteFile(fn, []byte(report), 0o600)
		}
	}

	return err
}
