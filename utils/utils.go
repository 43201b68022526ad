// Package utils implements small generic helpers over maps and slices.
package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) []K {
	return maps.Keys(m)
}

// GetSortedKeys returns the keys of the input map in ascending order.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	slices.Sort(keys)
	return
}
