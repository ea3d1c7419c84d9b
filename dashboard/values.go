package dashboard

// Number is a handle to a named float64 in a store. Constructing the handle
// force-writes the default so the value always exists for operators to see
// and edit; reads fall back to the default if the stored value disappears or
// changes kind.
type Number struct {
	store Store
	key   string
	def   float64
}

// NewNumber declares a number under key with the given default, writing the
// default into the store.
func NewNumber(store Store, key string, def float64) *Number {
	store.SetNumber(key, def)
	return &Number{store: store, key: key, def: def}
}

// Get returns the current value, or the default if no number is stored.
func (n *Number) Get() float64 {
	if v, ok := n.store.GetNumber(n.key); ok {
		return v
	}
	return n.def
}

// Set overwrites the stored value.
func (n *Number) Set(value float64) {
	n.store.SetNumber(n.key, value)
}

// Reset restores the stored value to the default.
func (n *Number) Reset() {
	n.Set(n.def)
}

// Default returns the default the handle was declared with.
func (n *Number) Default() float64 {
	return n.def
}

// Key returns the handle's key.
func (n *Number) Key() string {
	return n.key
}

// String is a handle to a named string in a store, with the same semantics
// as Number.
type String struct {
	store Store
	key   string
	def   string
}

// NewString declares a string under key with the given default, writing the
// default into the store.
func NewString(store Store, key, def string) *String {
	store.SetString(key, def)
	return &String{store: store, key: key, def: def}
}

// Get returns the current value, or the default if no string is stored.
func (s *String) Get() string {
	if v, ok := s.store.GetString(s.key); ok {
		return v
	}
	return s.def
}

// Set overwrites the stored value.
func (s *String) Set(value string) {
	s.store.SetString(s.key, value)
}

// Reset restores the stored value to the default.
func (s *String) Reset() {
	s.Set(s.def)
}

// Default returns the default the handle was declared with.
func (s *String) Default() string {
	return s.def
}

// Key returns the handle's key.
func (s *String) Key() string {
	return s.key
}

// Boolean is a handle to a named bool in a store, with the same semantics as
// Number.
type Boolean struct {
	store Store
	key   string
	def   bool
}

// NewBoolean declares a boolean under key with the given default, writing
// the default into the store.
func NewBoolean(store Store, key string, def bool) *Boolean {
	store.SetBool(key, def)
	return &Boolean{store: store, key: key, def: def}
}

// Get returns the current value, or the default if no boolean is stored.
func (b *Boolean) Get() bool {
	if v, ok := b.store.GetBool(b.key); ok {
		return v
	}
	return b.def
}

// Set overwrites the stored value.
func (b *Boolean) Set(value bool) {
	b.store.SetBool(b.key, value)
}

// Reset restores the stored value to the default.
func (b *Boolean) Reset() {
	b.Set(b.def)
}

// Default returns the default the handle was declared with.
func (b *Boolean) Default() bool {
	return b.def
}

// Key returns the handle's key.
func (b *Boolean) Key() string {
	return b.key
}
