// Package params provides Bag, the type-erased parameter container handed to
// every meshlens algorithm.
//
// Producers store arbitrary values:
//
//	b := params.New().Add("T", 3).Add("q", 0.4)
//
// Consumers read them back with a type check instead of a type assertion:
//
//	steps, ok := params.Get[int](b, "T") // 3, true
//	_, ok = params.Get[float64](b, "T")  // 0, false: stored as int
//
// Absence and type mismatch are indistinguishable to Get; use Has to tell them
// apart when an error message needs to.
package params
