package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/view"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "SURREAL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the laid out tree and the commands of the last frame.
type Snapshot struct {
	Tree       *Node       `json:"tree"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// Node is a view or widget in the serialized tree.
type Node struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Bounds     [4]int64       `json:"bounds"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*Node        `json:"children,omitempty"`
}

// DisplayOp is a serialized draw command.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// CaptureSnapshot captures the mounted tree and the draw commands of the
// last rendered frame.
func (t *ViewTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if root := t.Root(); root != nil {
		snap.Tree = captureView(root, &typeCounter{})
	}
	for _, cmd := range t.recorder.Commands() {
		snap.DisplayOps = append(snap.DisplayOps, serializeCommand(cmd))
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// SURREAL_UPDATE_SNAPSHOTS=1 is set, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got):\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff from other to s, or "" if they serialize
// identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return cmp.Diff(strings.Split(string(b), "\n"), strings.Split(string(a), "\n"))
}

// typeCounter assigns ids like "Stack#0" to views, which have none.
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func rectArray(r graphics.BoundingRect) [4]int64 {
	return [4]int64{int64(r.X), int64(r.Y), int64(r.Width), int64(r.Height)}
}

func captureView(v view.View, counter *typeCounter) *Node {
	name := typeName(v)
	node := &Node{ID: counter.next(name), Type: name, Bounds: rectArray(v.Bounds())}
	if s, ok := v.(*view.Stack); ok {
		node.Properties = map[string]any{"orientation": s.Orientation().String()}
	}
	for _, e := range v.Children() {
		if w, ok := e.Widget(); ok {
			node.Children = append(node.Children, captureWidget(w))
		} else if child, ok := e.View(); ok {
			node.Children = append(node.Children, captureView(child, counter))
		}
	}
	return node
}

func captureWidget(w widget.Widget) *Node {
	node := &Node{ID: w.ID(), Type: typeName(w), Bounds: rectArray(w.Bounds())}
	switch w := w.(type) {
	case *widget.Text:
		node.Properties = map[string]any{"text": w.Text()}
	case *widget.Button:
		if l := w.LabelText(); l != nil {
			node.Properties = map[string]any{"label": l.Text()}
		}
	case *widget.CircleButton:
		node.Properties = map[string]any{"radius": w.RadiusValue()}
	case *widget.Image:
		node.Properties = map[string]any{"resource": w.ResourceAlias()}
	case *widget.ScrollBar:
		node.Properties = map[string]any{"percentage": round2(float64(w.Percentage()))}
	}
	return node
}

func serializeCommand(cmd render.Command) DisplayOp {
	switch c := cmd.(type) {
	case render.Rect:
		return DisplayOp{Op: "rect", Params: map[string]any{
			"bounds": rectArray(c.Bounds), "color": c.Color.String(),
		}}
	case render.RoundedRect:
		return DisplayOp{Op: "roundedRect", Params: map[string]any{
			"bounds": rectArray(c.Bounds), "color": c.Color.String(),
			"roundness": round2(float64(c.Roundness)),
		}}
	case render.Circle:
		return DisplayOp{Op: "circle", Params: map[string]any{
			"center": [2]int64{int64(c.Center.X), int64(c.Center.Y)},
			"radius": c.Radius, "color": c.Color.String(),
		}}
	case render.Text:
		s := c.Section
		return DisplayOp{Op: "text", Params: map[string]any{
			"text": s.Text, "font": s.Font, "scale": round2(float64(s.Scale)),
			"color": s.Color.String(), "position": [2]int64{int64(s.Position.X), int64(s.Position.Y)},
		}}
	case render.Image:
		return DisplayOp{Op: "image", Params: map[string]any{
			"alias":   c.Alias,
			"topLeft": [2]int64{int64(c.TopLeft.X), int64(c.TopLeft.Y)},
			"size":    [2]int64{int64(c.Width), int64(c.Height)},
		}}
	}
	return DisplayOp{Op: fmt.Sprintf("%T", cmd)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
