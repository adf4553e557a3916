package utils

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsInRange checks if value lies in [lo, hi], both bounds inclusive.
// Callers with a half-open [start, end) pass end-1 as hi.
func IsInRange[T integer](lo T, value T, hi T) bool {
	return lo <= value && value <= hi
}
