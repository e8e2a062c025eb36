package alloc

import (
	"io"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

// ReportingAllocator wraps an Allocator and emits one telemetry record per
// allocation: the requested size and the wall-clock time the delegate took.
// The record is written on the allocation path itself, so the emit code must
// not allocate and must not take locks; it builds the line in a stack buffer
// and issues a single Write. File sinks (the stderr default) keep the buffer
// on the stack; handing the line through the io.Writer interface would force
// it to escape, so that path is reserved for test sinks. Frees are counted
// but not reported.
type ReportingAllocator struct {
	inner Allocator
	sink  io.Writer
	file  *os.File // non-escaping write path when the sink is a real file

	allocs atomic.Uint64
	frees  atomic.Uint64
	bytes  atomic.Uint64
}

// NewReportingAllocator wraps inner and reports to stderr.
func NewReportingAllocator(inner Allocator) *ReportingAllocator {
	return NewReportingAllocatorWithSink(inner, os.Stderr)
}

// NewReportingAllocatorWithSink wraps inner and reports to sink. The sink's
// Write must be usable from the allocation path: it is handed a buffer that
// lives on the caller's stack and must not retain it.
func NewReportingAllocatorWithSink(inner Allocator, sink io.Writer) *ReportingAllocator {
	a := &ReportingAllocator{inner: inner, sink: sink}
	if f, ok := sink.(*os.File); ok {
		a.file = f
	}
	return a
}

func (a *ReportingAllocator) Allocate(size int) []byte {
	start := time.Now()
	buf := a.inner.Allocate(size)
	elapsed := time.Since(start)

	a.allocs.Add(1)
	a.bytes.Add(uint64(size))
	a.emit(int64(size), elapsed.Nanoseconds())
	return buf
}

func (a *ReportingAllocator) Free(b []byte) {
	a.frees.Add(1)
	a.inner.Free(b)
}

// Allocations returns the number of Allocate calls observed.
func (a *ReportingAllocator) Allocations() uint64 { return a.allocs.Load() }

// Frees returns the number of Free calls observed.
func (a *ReportingAllocator) Frees() uint64 { return a.frees.Load() }

// BytesAllocated returns the total bytes requested across all allocations.
func (a *ReportingAllocator) BytesAllocated() uint64 { return a.bytes.Load() }

// emit writes "bytes_requested=<n> time_ns=<n>\n". File sinks go through the
// concrete write so the record buffer stays on the stack.
func (a *ReportingAllocator) emit(size, ns int64) {
	if a.file != nil {
		emitFile(a.file, size, ns)
		return
	}
	var buf [64]byte
	a.sink.Write(appendRecord(buf[:0], size, ns))
}

func emitFile(f *os.File, size, ns int64) {
	var buf [64]byte
	f.Write(appendRecord(buf[:0], size, ns))
}

// appendRecord formats a record into line. The longest record is 64 bytes
// (two maximal int64 values), so a [64]byte scratch buffer never grows.
func appendRecord(line []byte, size, ns int64) []byte {
	line = append(line, "bytes_requested="...)
	line = strconv.AppendInt(line, size, 10)
	line = append(line, " time_ns="...)
	line = strconv.AppendInt(line, ns, 10)
	return append(line, '\n')
}
