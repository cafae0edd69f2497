package view

import (
	"fmt"
	"reflect"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// Walk calls fn for every widget of v, depth first in child order, until fn
// returns false. It reports whether the walk completed.
func Walk(v View, fn func(w widget.Widget) bool) bool {
	for _, e := range v.Children() {
		if e.view != nil {
			if !Walk(e.view, fn) {
				return false
			}
			continue
		}
		if !fn(e.widget) {
			return false
		}
	}
	return true
}

// FindWidget returns the first widget of v with the given id.
func FindWidget(v View, id string) (widget.Widget, bool) {
	var found widget.Widget
	Walk(v, func(w widget.Widget) bool {
		if w.ID() == id {
			found = w
			return false
		}
		return true
	})
	return found, found != nil
}

// GetWidget returns the widget with the given id as a T. It fails with
// ErrNotFound when no widget has the id and ErrTypeMismatch when the widget
// is not a T.
//
//	txt, err := view.GetWidget[*widget.Text](root, "counter_text")
func GetWidget[T widget.Widget](v View, id string) (T, error) {
	var zero T
	w, ok := FindWidget(v, id)
	if !ok {
		return zero, errors.New("view.GetWidget", errors.KindLookup, id,
			fmt.Errorf("widget %w", errors.ErrNotFound))
	}
	t, ok := w.(T)
	if !ok {
		return zero, errors.New("view.GetWidget", errors.KindLookup, id, &errors.TypeError{
			ID:   id,
			Want: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:  reflect.TypeOf(w).String(),
		})
	}
	return t, nil
}

// MustGetWidget is GetWidget for callers that treat a failed lookup as a
// programming error.
func MustGetWidget[T widget.Widget](v View, id string) T {
	t, err := GetWidget[T](v, id)
	if err != nil {
		errors.Fatal(err.(*errors.SurrealError))
	}
	return t
}
