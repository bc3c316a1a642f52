package sizeof

import "unsafe"

// Data is the number of bytes addressed by the elements of v, excluding the
// slice header.
func Data[T any](v []T) uint64 {
	return uint64(unsafe.Sizeof(*new(T))) * uint64(len(v))
}
