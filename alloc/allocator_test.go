package alloc

import (
	"testing"
	"unsafe"
)

func TestSystemAllocatorAlignment(t *testing.T) {
	a := NewSystemAllocator()

	for _, size := range []int{1, 7, 64, 100, 4096} {
		buf := a.Allocate(size)
		if len(buf) != size {
			t.Errorf("Allocate(%d) len = %d", size, len(buf))
		}
		if cap(buf) != size {
			t.Errorf("Allocate(%d) cap = %d, want exact", size, cap(buf))
		}
		if addr := uintptr(unsafe.Pointer(&buf[0])); addr%alignment != 0 {
			t.Errorf("Allocate(%d) start address %x not %d-byte aligned", size, addr, alignment)
		}
	}
}

func TestSystemAllocatorZeroed(t *testing.T) {
	a := NewSystemAllocator()

	buf := a.Allocate(128)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want zeroed buffer", i, b)
		}
	}
}
