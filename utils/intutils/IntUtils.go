// Package intutils provides utilities for working with ints
package intutils

// Min calculates and returns the minimum integer in a list
func Min(ints ...int) int {
	min := ints[0]
	for _, val := range ints[1:] {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum integer in a list
func Max(ints ...int) int {
	max := ints[0]
	for _, val := range ints[1:] {
		if val > max {
			max = val
		}
	}
	return max
}

// Clip clips value to the closed interval [min, max]
func Clip(value, min, max int) int {
	return Max(min, Min(value, max))
}
