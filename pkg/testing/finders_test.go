package testing_test

import (
	"strings"
	"testing"

	surrealtest "github.com/surreal-ui/surreal/pkg/testing"
	"github.com/surreal-ui/surreal/pkg/view"
	"github.com/surreal-ui/surreal/pkg/widget"
)

func TestFinders(t *testing.T) {
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(view.VStack(
		view.FromWidget(widget.NewText("a").Content("hello")),
		view.FromView(view.HStack(
			view.FromWidget(widget.NewText("b").Content("world")),
			view.FromWidget(widget.NewButton("c")),
		)),
	))

	tests := []struct {
		name   string
		finder surrealtest.Finder
		ids    []string
	}{
		{"by id", surrealtest.ByID("b"), []string{"b"}},
		{"by type", surrealtest.ByType[*widget.Text](), []string{"a", "b"}},
		{"by text", surrealtest.ByText("world"), []string{"b"}},
		{"none", surrealtest.ByText("nope"), nil},
		{"predicate", surrealtest.ByPredicate("id > a", func(w widget.Widget) bool { return w.ID() > "a" }), []string{"b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tester.Find(tt.finder)
			var ids []string
			for _, w := range res.All() {
				ids = append(ids, w.ID())
			}
			if strings.Join(ids, ",") != strings.Join(tt.ids, ",") {
				t.Errorf("ids = %v, want %v", ids, tt.ids)
			}
			if res.Count() != len(tt.ids) {
				t.Errorf("Count = %d, want %d", res.Count(), len(tt.ids))
			}
		})
	}
}

func TestFinderResultFirstPanics(t *testing.T) {
	tester := surrealtest.NewViewTesterWithT(t)
	tester.Mount(view.VStack())

	res := tester.Find(surrealtest.ByID("x"))
	if res.FirstOrNil() != nil {
		t.Error("FirstOrNil returned a widget")
	}
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, `ByID("x")`) {
			t.Errorf("panic = %v, want finder description", r)
		}
	}()
	res.First()
}
