package state

import (
	"fmt"

	"github.com/surreal-ui/surreal/pkg/errors"
)

// Shared is the handle a view tree passes around. Every view in a tree holds
// the same *Shared; at most one borrower may hold the store at a time.
//
// Shared is not safe for concurrent use. The guard catches re-entrant access
// on the event-loop goroutine, which would otherwise alias a *T handed out by
// Get.
type Shared struct {
	store    *Store
	borrowed bool
	holder   string
}

// NewShared wraps s. A nil s creates an empty store.
func NewShared(s *Store) *Shared {
	if s == nil {
		s = New()
	}
	return &Shared{store: s}
}

// Borrow grants exclusive access to the store for op. The returned release
// function must be called before anyone else borrows. Borrowing while a borrow
// is outstanding is fatal.
func (h *Shared) Borrow(op string) (*Store, func()) {
	s, release, err := h.TryBorrow(op)
	if err != nil {
		errors.Fatal(err.(*errors.SurrealError))
	}
	return s, release
}

// TryBorrow is Borrow returning ErrBorrowed instead of panicking.
func (h *Shared) TryBorrow(op string) (*Store, func(), error) {
	if h.borrowed {
		return nil, nil, errors.New(op, errors.KindState, "",
			fmt.Errorf("%w by %s", errors.ErrBorrowed, h.holder))
	}
	h.borrowed = true
	h.holder = op
	released := false
	return h.store, func() {
		if released {
			return
		}
		released = true
		h.borrowed = false
		h.holder = ""
	}, nil
}

// With borrows the store for the duration of fn.
func (h *Shared) With(op string, fn func(*Store)) {
	s, release := h.Borrow(op)
	defer release()
	fn(s)
}

// Borrowed reports whether a borrow is outstanding.
func (h *Shared) Borrowed() bool {
	return h.borrowed
}
