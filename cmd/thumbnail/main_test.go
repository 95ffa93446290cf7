package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScene = `
width: 40
height: 20
background: "#FF0000FF"
paths:
  dot:
    d: "M10 5 L30 5 L30 15 L10 15 Z"
draw:
  - op: fill
    path: dot
    color: "#FFFFFF"
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestRunDefaultOutput(t *testing.T) {
	in := writeScene(t)
	work := t.TempDir()
	t.Chdir(work)
	var stderr bytes.Buffer
	if code := run([]string{"-width", "64", "-height", "32", in}, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	base := strings.TrimSuffix(filepath.Base(in), ".yaml")
	if _, err := os.Stat(strings.TrimSuffix(in, ".yaml") + ".png"); err == nil {
		t.Error("default output was written next to the scene, want the working directory")
	}
	w, h := decodeSize(t, filepath.Join(work, base+".png"))
	if w != 64 || h != 32 {
		t.Errorf("output size = %dx%d, want 64x32", w, h)
	}
}

func TestRunConfigFile(t *testing.T) {
	in := writeScene(t)
	dir := filepath.Dir(in)
	conf := filepath.Join(dir, "thumb.toml")
	logFile := filepath.Join(dir, "thumb.log")
	body := "width = 48\nheight = 48\nfit = \"contain\"\nlog_level = \"debug\"\nlog_file = \"" +
		filepath.ToSlash(logFile) + "\"\n"
	if err := os.WriteFile(conf, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	if code := run([]string{"-config", conf, "-height", "24", in, out}, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	// -height overrides the file, width comes from it.
	if w, h := decodeSize(t, out); w != 48 || h != 24 {
		t.Errorf("output size = %dx%d, want 48x24", w, h)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !bytes.Contains(data, []byte(`"msg":"thumbnail written"`)) {
		t.Errorf("log file missing completion record:\n%s", data)
	}
}

func TestRunFailures(t *testing.T) {
	in := writeScene(t)
	dir := filepath.Dir(in)
	badScene := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badScene, []byte("width: 0\nheight: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{in, "a.png", "b.png"}},
		{"unknown flag", []string{"-bogus", in}},
		{"missing scene", []string{filepath.Join(dir, "nope.yaml")}},
		{"invalid scene", []string{badScene}},
		{"bad fit", []string{"-fit", "stretch", in}},
		{"bad align", []string{"-align", "middle", in}},
		{"bad size", []string{"-width", "0", in}},
		{"bad background", []string{"-background", "blue", in}},
		{"bad log level", []string{"-log-level", "loud", in}},
		{"missing config", []string{"-config", filepath.Join(dir, "nope.toml"), in}},
		{"unsupported output", []string{in, filepath.Join(dir, "out.gif")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(tt.args, &stderr); code != 1 {
				t.Errorf("run(%q) = %d, want 1", tt.args, code)
			}
			if stderr.Len() == 0 {
				t.Error("expected a message on stderr")
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"scene.yaml", "scene.png"},
		{"dir/card.yml", "card.png"},
		{"/abs/path/x.scene.yaml", "x.scene.png"},
		{"noext", "noext.png"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.in); got != tt.want {
			t.Errorf("outputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
