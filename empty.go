package markpipe

// IsEmpty reports whether every slice in xss is empty. It returns true when
// xss itself is empty.
func IsEmpty[T any](xss [][]T) bool {
	for _, xs := range xss {
		if len(xs) > 0 {
			return false
		}
	}
	return true
}
