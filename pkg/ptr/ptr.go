package ptr

// Ptr returns a pointer to the given value.
// Useful for optional fields and filter parameters.
func Ptr[T any](v T) *T {
	return &v
}
