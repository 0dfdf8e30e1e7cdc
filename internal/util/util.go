package util

import (
	"math"
)

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Round Method to round to 2 decimals
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// PageCount is the number of pages needed for total items, at least 1.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (total + pageSize - 1) / pageSize
	if n == 0 {
		return 1
	}
	return n
}
