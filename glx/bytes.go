package glx

import "unsafe"

// AsByteSlice reinterprets a slice of fixed-size records as the tightly
// packed bytes the driver expects for an upload.
func AsByteSlice[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	n := uintptr(len(values)) * unsafe.Sizeof(values[0])
	ptr := (*byte)(unsafe.Pointer(&values[0]))

	return unsafe.Slice(ptr, n)
}
