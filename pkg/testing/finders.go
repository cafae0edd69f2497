package testing

import (
	"fmt"
	"reflect"

	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/view"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// Finder locates widgets in a view tree.
type Finder interface {
	// Evaluate returns all matching widgets under root in depth-first order.
	Evaluate(root view.View) []widget.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widget.Widget
	finder  Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widget.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.describe()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widget.Widget { return r.widgets }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.widgets) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.widgets) > 0 }

// Bounds returns the bounds of the first match. Panics if no matches.
func (r FinderResult) Bounds() graphics.BoundingRect { return r.First().Bounds() }

type predicateFinder struct {
	match func(widget.Widget) bool
	desc  string
}

func (f *predicateFinder) Evaluate(root view.View) []widget.Widget {
	var out []widget.Widget
	view.Walk(root, func(w widget.Widget) bool {
		if f.match(w) {
			out = append(out, w)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string { return f.desc }

// ByID matches the widget with the given id.
func ByID(id string) Finder {
	return &predicateFinder{
		match: func(w widget.Widget) bool { return w.ID() == id },
		desc:  fmt.Sprintf("ByID(%q)", id),
	}
}

// ByType matches widgets of type T.
func ByType[T widget.Widget]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &predicateFinder{
		match: func(w widget.Widget) bool { return reflect.TypeOf(w) == t },
		desc:  fmt.Sprintf("ByType(%s)", t),
	}
}

// ByText matches Text widgets whose content equals s. Button labels are
// reached through the button itself, so search for the button by id.
func ByText(s string) Finder {
	return &predicateFinder{
		match: func(w widget.Widget) bool {
			t, ok := w.(*widget.Text)
			return ok && t.Text() == s
		},
		desc: fmt.Sprintf("ByText(%q)", s),
	}
}

// ByPredicate matches widgets for which fn returns true.
func ByPredicate(desc string, fn func(widget.Widget) bool) Finder {
	return &predicateFinder{match: fn, desc: fmt.Sprintf("ByPredicate(%s)", desc)}
}
