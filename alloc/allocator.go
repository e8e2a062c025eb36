// Package alloc is the instrumented allocation path of the simulation.
// Every particle is carved out of an Allocator, so each spawn and despawn is
// observable as one discrete allocation or free. The ReportingAllocator
// wrapper times each allocation and emits a telemetry record per event; the
// Monitor watches whole-process heap traffic through runtime/metrics.
package alloc

import (
	"unsafe"
)

// alignment pads every buffer so the usable region starts on a 64-byte
// boundary, which satisfies the alignment of any Go type boxed into it
const alignment = 64

// Allocator hands out raw byte buffers and takes them back. Implementations
// must not add failure modes of their own: if the runtime cannot satisfy a
// request, the resulting panic propagates unmodified.
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly size bytes, aligned to a
	// 64-byte boundary.
	Allocate(size int) []byte

	// Free returns a buffer previously obtained from Allocate. Buffers must
	// not be used after Free.
	Free(b []byte)
}

// SystemAllocator delegates to the Go runtime allocator.
type SystemAllocator struct{}

func NewSystemAllocator() *SystemAllocator { return &SystemAllocator{} }

func (a *SystemAllocator) Allocate(size int) []byte {
	buf := make([]byte, size+alignment) // padding for 64-byte alignment
	addr := int(addressOf(buf))
	next := roundUpToMultipleOf64(addr)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

// Free is a no-op: the runtime reclaims the buffer once unreferenced.
func (a *SystemAllocator) Free(b []byte) {}

func addressOf(b []byte) uintptr { return uintptr(unsafe.Pointer(&b[0])) }

func roundUpToMultipleOf64(v int) int {
	return (v + alignment - 1) &^ (alignment - 1)
}
