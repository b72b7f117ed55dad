package common

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FloorDiv divides rounding toward negative infinity so cells left of or
// above the origin map to negative indices instead of collapsing into 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func CeilDiv(a, b int) int {
	return -FloorDiv(-a, b)
}
