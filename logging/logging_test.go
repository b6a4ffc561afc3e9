package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return &buf
}

func TestConsoleFormat(t *testing.T) {
	buf := captureConsole(t)
	Init(Options{Level: "info"})

	WithComponent("shader").Error("compile failed", "stage", "fragment", "log", "0:1: syntax error")

	line := buf.String()
	for _, want := range []string{"ERR", "compile failed", "component=shader", "stage=fragment", `log="0:1: syntax error"`} {
		if !strings.Contains(line, want) {
			t.Errorf("console line %q missing %q", line, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureConsole(t)
	Init(Options{Level: "warn"})

	L().Info("hidden")
	L().Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestJSONFileSink(t *testing.T) {
	captureConsole(t)
	path := filepath.Join(t.TempDir(), "glcircle.log")
	Init(Options{Level: "debug", Format: "json", File: path})

	WithComponent("renderer").Debug("drew", "vertices", 52)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", lines[len(lines)-1], err)
	}
	if m["msg"] != "drew" || m["component"] != "renderer" || m["app"] != "glcircle" {
		t.Fatalf("unexpected record: %v", m)
	}
	if v, ok := m["vertices"].(float64); !ok || v != 52 {
		t.Fatalf("vertices = %v, want 52", m["vertices"])
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/x.log")
	opts := Options{Level: "info", Format: "console"}
	ApplyEnv(&opts)
	if opts.Level != "debug" || opts.File != "/tmp/x.log" || opts.Format != "console" {
		t.Fatalf("ApplyEnv = %+v", opts)
	}
}

func TestGroupPrefixAppliesOnlyToLaterAttrs(t *testing.T) {
	buf := captureConsole(t)
	Init(Options{Level: "info"})

	L().With("component", "shader").WithGroup("draw").With("pass", 1).Info("frame", "vertices", 52)

	line := buf.String()
	for _, want := range []string{" component=shader", " draw.pass=1", " draw.vertices=52"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	for _, bad := range []string{"draw.component", "draw.app"} {
		if strings.Contains(line, bad) {
			t.Errorf("line %q prefixes an attr added before the group: %q", line, bad)
		}
	}
}
