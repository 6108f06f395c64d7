package utils

import "golang.org/x/exp/constraints"

// InRange reports whether lo <= v < hi.
func InRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v < hi
}
