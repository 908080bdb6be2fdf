// log/log_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	} {
		lvl, err := ParseLevel(tc.s)
		if lvl != tc.want || (err == nil) != tc.ok {
			t.Errorf("ParseLevel(%q) = %v, %v", tc.s, lvl, err)
		}
	}
}

func TestLoggerRecords(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, slog.LevelInfo)

	lg.Debug("hidden")
	lg.Info("visible", slog.Int("n", 3))
	lg.With(slog.String("scenario", "east")).Infof("sampled %d", 11)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d: %s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("%s: %v", lines[0], err)
	}
	if rec["msg"] != "visible" || rec["n"] != float64(3) {
		t.Errorf("unexpected record %v", rec)
	}
	if cs, ok := rec["callstack"].([]any); !ok || len(cs) == 0 {
		t.Errorf("missing callstack in %v", rec)
	}

	rec = nil
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("%s: %v", lines[1], err)
	}
	if rec["msg"] != "sampled 11" || rec["scenario"] != "east" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger
	lg.Debug("a")
	lg.Infof("b %d", 1)
	if lg.With("k", "v") != nil {
		t.Errorf("With on nil logger should return nil")
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	lg := New("debug", dir)
	if lg.LogDir != dir || lg.LogFile != filepath.Join(dir, "kinsim.slog") {
		t.Errorf("log dir %q file %q", lg.LogDir, lg.LogFile)
	}
	b, err := os.ReadFile(lg.LogFile)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Contains(b, []byte("System information")) {
		t.Errorf("log file doesn't have startup records: %s", b)
	}
}

func TestCatchAndReportCrash(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, slog.LevelInfo)
	lg.LogDir = t.TempDir()

	func() {
		defer lg.CatchAndReportCrash()
		panic("level out profile")
	}()

	if !strings.Contains(buf.String(), "Crashed: level out profile") {
		t.Errorf("crash not logged: %s", buf.String())
	}
	reports, err := filepath.Glob(filepath.Join(lg.LogDir, "crash-*.txt"))
	if err != nil || len(reports) != 1 {
		t.Fatalf("crash reports %v, %v", reports, err)
	}
	if b, err := os.ReadFile(reports[0]); err != nil || !bytes.Contains(b, []byte("level out profile")) {
		t.Errorf("crash report %q, %v", b, err)
	}
}
