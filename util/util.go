package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Mod is always non-negative, unlike %.
func Mod[A constraints.Integer](num A, n A) A {
	return ((num % n) + n) % n
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func Uniq[A constraints.Ordered](nums []A) []A {
	res := make([]A, 0, len(nums))
	for _, v := range nums {
		if !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return res
}
