package solver

import "github.com/zyedidia/generic/mapset"

// Complement returns the elements of a that are not in b, keeping a's order.
func Complement[T comparable](a []T, b mapset.Set[T]) (result []T) {
	for _, v := range a {
		if !b.Has(v) {
			result = append(result, v)
		}
	}
	return
}
