// Package state implements the string-keyed value store shared by every
// widget and view of a tree.
//
// A Store is an arena of typed slots. Each slot holds a pointer to its value,
// so Get hands out a stable *T that mutates the stored value in place. The
// store is single-threaded; Shared adds the runtime borrow discipline the
// event loop relies on.
package state

import (
	"fmt"
	"reflect"

	"github.com/surreal-ui/surreal/pkg/errors"
)

type slot struct {
	key   string
	value reflect.Value // pointer to the stored value
}

// Store maps string keys to values of arbitrary type.
type Store struct {
	slots []slot
	index map[string]int
}

// New returns an empty store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// AddVar inserts value under key. The key must be new.
func (s *Store) AddVar(key string, value any) error {
	if value == nil {
		return errors.New("state.AddVar", errors.KindState, key, fmt.Errorf("nil value"))
	}
	v := reflect.ValueOf(value)
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return s.insert("state.AddVar", key, ptr)
}

// Add inserts a typed value under key. The key must be new.
func Add[T any](s *Store, key string, value T) error {
	ptr := new(T)
	*ptr = value
	return s.insert("state.Add", key, reflect.ValueOf(ptr))
}

// MustAdd is Add for callers that treat a duplicate key as a programming
// error.
func MustAdd[T any](s *Store, key string, value T) {
	if err := Add(s, key, value); err != nil {
		errors.Fatal(err.(*errors.SurrealError))
	}
}

// insert stores ptr, a pointer to the value, under a new key.
func (s *Store) insert(op, key string, ptr reflect.Value) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[key]; ok {
		return errors.New(op, errors.KindState, key, errors.ErrDuplicateKey)
	}
	s.index[key] = len(s.slots)
	s.slots = append(s.slots, slot{key: key, value: ptr})
	return nil
}

// Get returns a mutable pointer to the value stored under key.
func Get[T any](s *Store, key string) (*T, error) {
	i, ok := s.index[key]
	if !ok {
		return nil, errors.New("state.Get", errors.KindState, key, errors.ErrMissingKey)
	}
	ptr, ok := s.slots[i].value.Interface().(*T)
	if !ok {
		return nil, errors.New("state.Get", errors.KindState, key, &errors.TypeError{
			ID:   key,
			Want: typeName[T](),
			Got:  s.slots[i].value.Type().Elem().String(),
		})
	}
	return ptr, nil
}

// Peek returns a copy of the value stored under key.
func Peek[T any](s *Store, key string) (T, error) {
	ptr, err := Get[T](s, key)
	if err != nil {
		var zero T
		if se, ok := err.(*errors.SurrealError); ok {
			se.Op = "state.Peek"
		}
		return zero, err
	}
	return *ptr, nil
}

// MustGet is Get for callers that treat a missing key or a wrong type as a
// programming error.
func MustGet[T any](s *Store, key string) *T {
	ptr, err := Get[T](s, key)
	if err != nil {
		errors.Fatal(err.(*errors.SurrealError))
	}
	return ptr
}

// MustPeek is the fatal variant of Peek.
func MustPeek[T any](s *Store, key string) T {
	return *MustGet[T](s, key)
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return len(s.slots)
}

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.slots))
	for i, sl := range s.slots {
		keys[i] = sl.key
	}
	return keys
}

// TypeOf returns the type of the value stored under key, or nil.
func (s *Store) TypeOf(key string) reflect.Type {
	i, ok := s.index[key]
	if !ok {
		return nil
	}
	return s.slots[i].value.Type().Elem()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
