// Package testing drives view trees without a window for tests.
//
// # Quick Start
//
// Mount a tree, interact with it and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := surrealtest.NewViewTesterWithT(t)
//	    tester.Mount(root)
//
//	    tester.Tap(surrealtest.ByID("increment"))
//
//	    if !tester.Find(surrealtest.ByText("1")).Exists() {
//	        t.Error("expected counter to read 1")
//	    }
//	}
//
// Tap, TapAt and DragFrom queue events and run one frame. Send queues raw
// events for the next Pump.
//
// # Snapshot Testing
//
// Capture the widget tree and the draw commands of the last frame:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	SURREAL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// The tester installs a fake clock. Advance moves it and runs a frame with
// the same delta:
//
//	tester.Advance(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import surrealtest "github.com/surreal-ui/surreal/pkg/testing"
package testing
