package view

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/theme"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// InitAll initializes v and every descendant. It is run by the application
// before the first layout (first = true) and again whenever the tree must be
// re-measured.
//
// On the first init, a root without state gets an empty store, every nested
// view is given the root's state handle, and widget ids are checked for
// uniqueness; a duplicate id is fatal.
func InitAll(v View, m render.Measurer, th *theme.Theme, first bool) {
	if first {
		if err := checkUnique(v); err != nil {
			errors.Fatal(err)
		}
		h := v.State()
		if h == nil {
			h = state.NewShared(nil)
		}
		v.AssignState(h)
	}
	initTree(v, m, th)
}

func initTree(v View, m render.Measurer, th *theme.Theme) {
	v.Init(m, th)
	children := v.Children()
	for i := range children {
		initElement(v, &children[i], m, th)
	}
}

func initElement(parent View, e *Element, m render.Measurer, th *theme.Theme) {
	if e.view != nil {
		if h := parent.State(); h != nil && e.view.State() != h {
			e.view.AssignState(h)
		}
		initTree(e.view, m, th)
	} else {
		e.widget.Init(m, th)
	}
	e.needsInit = false
}

// checkUnique reports the first widget id that occurs twice in v.
func checkUnique(v View) *errors.SurrealError {
	seen := make(map[string]bool)
	var dup string
	Walk(v, func(w widget.Widget) bool {
		if seen[w.ID()] {
			dup = w.ID()
			return false
		}
		seen[w.ID()] = true
		return true
	})
	if dup == "" {
		return nil
	}
	return errors.New("view.InitAll", errors.KindTree, dup,
		fmt.Errorf("%w in view tree", errors.ErrDuplicateID))
}
