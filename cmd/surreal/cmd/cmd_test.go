package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/surreal-ui/surreal/cmd/surreal/internal/config"
	"github.com/surreal-ui/surreal/pkg/app"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := stdout
	stdout = buf
	t.Cleanup(func() { stdout = prev })
	return buf
}

func TestExecuteVersion(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"--version"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("output = %q, want version %s", out.String(), Version)
	}
}

func TestExecuteUnknown(t *testing.T) {
	captureStdout(t)
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Error("unknown command succeeded")
	}
}

func TestExecuteHelpListsCommands(t *testing.T) {
	out := captureStdout(t)
	if err := Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, name := range []string{"render", "theme"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %s", name)
		}
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr bool
	}{
		{
			name: "defaults",
			want: renderOptions{out: "surreal.png"},
		},
		{
			name: "all flags",
			args: []string{"-o", "x.png", "--width", "640", "--height", "480", "--theme", "t.yaml", "--tap", "a", "--tap", "b", "--trace", "t.json"},
			want: renderOptions{out: "x.png", width: 640, height: 480, themePath: "t.yaml", taps: []string{"a", "b"}, tracePath: "t.json"},
		},
		{name: "missing value", args: []string{"--tap"}, wantErr: true},
		{name: "bad width", args: []string{"--width", "wide"}, wantErr: true},
		{name: "zero height", args: []string{"--height", "0"}, wantErr: true},
		{name: "unknown flag", args: []string{"--fast"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(renderOptions{})); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderDemo(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()
	cfg := &config.Resolved{Root: dir, Width: 320, Height: 240}
	opts := renderOptions{
		out:       filepath.Join(dir, "out.png"),
		taps:      []string{"test", "append"},
		tracePath: filepath.Join(dir, "trace.json"),
	}
	if err := renderDemo(context.Background(), cfg, opts); err != nil {
		t.Fatalf("renderDemo: %v", err)
	}

	f, err := os.Open(opts.out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	data, err := os.ReadFile(opts.tracePath)
	if err != nil {
		t.Fatal(err)
	}
	var tl app.FrameTimeline
	if err := json.Unmarshal(data, &tl); err != nil {
		t.Fatalf("trace JSON: %v", err)
	}
	if len(tl.Samples) != 2 {
		t.Errorf("traced frames = %d, want 2", len(tl.Samples))
	}
	for i, s := range tl.Samples {
		if !s.Flags.Redraw {
			t.Errorf("frame %d did not redraw", i)
		}
	}
}

func TestRenderDemoUnknownTap(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()
	cfg := &config.Resolved{Root: dir, Width: 100, Height: 100}
	opts := renderOptions{out: filepath.Join(dir, "out.png"), taps: []string{"missing"}}
	err := renderDemo(context.Background(), cfg, opts)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("renderDemo = %v, want unknown tap error", err)
	}
}

func TestThemeCommand(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"theme", "print"}); err != nil {
		t.Fatalf("theme print: %v", err)
	}
	if !strings.Contains(out.String(), "view_padding:") {
		t.Errorf("theme print output lacks view_padding:\n%s", out.String())
	}

	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("text: {scale: 20}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("text: {scale: -1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := Execute([]string{"theme", "validate", good}); err != nil {
		t.Errorf("validate good: %v", err)
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("validate output = %q, want ok", out.String())
	}
	if err := Execute([]string{"theme", "validate", bad}); err == nil {
		t.Error("validate bad succeeded")
	}
	if err := Execute([]string{"theme", "lint"}); err == nil {
		t.Error("unknown subcommand succeeded")
	}
}
