// SPDX-License-Identifier: MIT

package params

import "sort"

// Bag is a heterogeneous string-keyed parameter container.
//
// Values are stored type-erased and retrieved with Get[T], which checks the
// dynamic type at lookup. A nil *Bag behaves as an empty bag for every read.
// Bags have no delete; build a new one instead.
type Bag struct {
	values map[string]any
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{values: make(map[string]any)}
}

// Of builds a Bag from a map. The map is copied.
func Of(m map[string]any) *Bag {
	b := &Bag{values: make(map[string]any, len(m))}
	for k, v := range m {
		b.values[k] = v
	}

	return b
}

// Add stores value under key, overwriting any previous value regardless of its type.
// It returns b for chaining.
func (b *Bag) Add(key string, value any) *Bag {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	b.values[key] = value

	return b
}

// Has reports whether key is present, whatever its type.
func (b *Bag) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.values[key]

	return ok
}

// Raw returns the untyped value stored under key.
func (b *Bag) Raw(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.values[key]

	return v, ok
}

// Len returns the number of keys.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}

	return len(b.values)
}

// Keys returns the keys sorted ascending.
func (b *Bag) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.values))
	for k := range b.values {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Clone returns a Bag with the same entries. Values themselves are not copied.
func (b *Bag) Clone() *Bag {
	if b == nil {
		return New()
	}

	return Of(b.values)
}

// Get returns the value under key when it exists and its dynamic type is exactly T.
// A missing key and a type mismatch both yield the zero value and false.
// When T is an interface type, any stored value implementing it matches.
func Get[T any](b *Bag, key string) (T, bool) {
	var zero T
	v, ok := b.Raw(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}

	return t, true
}

// GetOr is Get with a fallback for the absent case.
func GetOr[T any](b *Bag, key string, def T) T {
	if v, ok := Get[T](b, key); ok {
		return v
	}

	return def
}

// Float reads a numeric value under key as float64. Unlike Get[float64] it
// also accepts the integer types, since config files and flags decode whole
// numbers such as "q: 1" as int. Non-numeric values yield false.
func Float(b *Bag, key string) (float64, bool) {
	v, ok := b.Raw(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	}

	return 0, false
}

// FloatOr is Float with a fallback for the absent case.
func FloatOr(b *Bag, key string, def float64) float64 {
	if v, ok := Float(b, key); ok {
		return v
	}

	return def
}
