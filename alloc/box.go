package alloc

import (
	"unsafe"
)

// Box carves one zeroed T out of a. The value is backed by an allocator
// buffer rather than a plain Go allocation, so its whole lifecycle is
// visible to the allocator: exactly one Allocate per Box, exactly one Free
// per Release. The 64-byte buffer alignment covers any Go type's alignment
// requirement.
func Box[T any](a Allocator) *T {
	var zero T
	buf := a.Allocate(int(unsafe.Sizeof(zero)))
	p := (*T)(unsafe.Pointer(&buf[0]))
	*p = zero // allocators may recycle buffers
	return p
}

// Release hands the buffer backing a boxed value back to its allocator.
// The pointer must have come from Box against the same allocator, and must
// not be used afterwards.
func Release[T any](a Allocator, p *T) {
	size := int(unsafe.Sizeof(*p))
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(p)), size))
}

// Sizeof reports the in-memory footprint of a boxed T.
func Sizeof[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
