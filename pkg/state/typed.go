package state

// Typed accessors. Each returns a pointer into the store and is fatal when the
// key is missing or holds another type.

// Int returns the int stored under key.
func (s *Store) Int(key string) *int { return MustGet[int](s, key) }

// Int32 returns the int32 stored under key.
func (s *Store) Int32(key string) *int32 { return MustGet[int32](s, key) }

// Uint32 returns the uint32 stored under key.
func (s *Store) Uint32(key string) *uint32 { return MustGet[uint32](s, key) }

// Float32 returns the float32 stored under key.
func (s *Store) Float32(key string) *float32 { return MustGet[float32](s, key) }

// Float64 returns the float64 stored under key.
func (s *Store) Float64(key string) *float64 { return MustGet[float64](s, key) }

// Bool returns the bool stored under key.
func (s *Store) Bool(key string) *bool { return MustGet[bool](s, key) }

// String returns the string stored under key.
func (s *Store) String(key string) *string { return MustGet[string](s, key) }
