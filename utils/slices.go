// Package utils implements various helper functions shared by the polynomial packages.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// MaxKey returns the largest key of the input map, or fallback if the map is empty.
func MaxKey[K constraints.Ordered, V any](m map[K]V, fallback K) (k K) {
	k = fallback
	first := true
	for key := range m {
		if first || key > k {
			k = key
			first = false
		}
	}
	return
}
