package testutil

import "gonum.org/v1/gonum/stat/combin"

// Combinations returns every k-element subset of {0, ..., n-1}, as
// index lists, used by property tests that need to exercise every way
// of choosing k cells out of n without writing the loops by hand.
func Combinations(n, k int) [][]int {
	return combin.Combinations(n, k)
}
