package util

// Int64Ptr returns a pointer to the given int64
func Int64Ptr(i int64) *int64 {
	return &i
}

// Int64Value dereferences p, returning 0 for nil
func Int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// EqualInt64Ptr reports whether both pointers are nil or point to the same value
func EqualInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IndexOf returns the position of val in slice or -1
func IndexOf[T comparable](slice []T, val T) int {
	for i, item := range slice {
		if item == val {
			return i
		}
	}
	return -1
}

// Remove returns a new slice without the first occurrence of val
func Remove[T comparable](slice []T, val T) []T {
	out := make([]T, 0, len(slice))
	removed := false
	for _, item := range slice {
		if !removed && item == val {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out
}

// InsertAt returns a new slice with val inserted at index (clamped to the slice bounds)
func InsertAt[T any](slice []T, index int, val T) []T {
	index = Clamp(index, 0, len(slice))
	out := make([]T, 0, len(slice)+1)
	out = append(out, slice[:index]...)
	out = append(out, val)
	return append(out, slice[index:]...)
}

// Move returns a new slice with the element at from relocated to to
func Move[T any](slice []T, from, to int) []T {
	out := make([]T, len(slice))
	copy(out, slice)
	if from < 0 || from >= len(out) {
		return out
	}
	val := out[from]
	out = append(out[:from], out[from+1:]...)
	return InsertAt(out, to, val)
}
