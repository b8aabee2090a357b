package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// NodeNumIDFn renders idx as a mesh node number in the "!%08x" form radios
// print, offset by base so fixtures look like real node IDs.
func NodeNumIDFn(base uint32) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("NodeNumIDFn: idx must be ≥ 0, got %d", idx))
		}
		return fmt.Sprintf("!%08x", base+uint32(idx))
	}
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "n0", "n1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithNodeNumIDs sets the ID scheme to NodeNumIDFn(base).
func WithNodeNumIDs(base uint32) BuilderOption {
	return WithIDScheme(NodeNumIDFn(base))
}
