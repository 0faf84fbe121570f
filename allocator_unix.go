// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package lfcq

import (
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator allocates slots in an anonymous private memory mapping
// outside the Go heap.
//
// The garbage collector does not scan mapped memory. T must not contain Go
// pointers (no pointers, slices, strings, maps, channels, funcs or
// interfaces); storing them would let the collector free objects that are
// still referenced from the queue.
//
// The mapping is zero-filled by the kernel. Allocate panics if T contains
// pointers or if the mapping cannot be created.
type MmapAllocator[T any] struct{}

// Allocate maps n slots of T.
func (MmapAllocator[T]) Allocate(n int) []T {
	if hasPointers(reflect.TypeFor[T]()) {
		panic("lfcq: MmapAllocator requires a pointer-free element type")
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || n == 0 {
		return make([]T, n)
	}
	mem, err := unix.Mmap(-1, 0, n*size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic("lfcq: mmap: " + err.Error())
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), n)
}

// Deallocate unmaps slots returned by Allocate.
func (MmapAllocator[T]) Deallocate(buf []T) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(buf) == 0 {
		return
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)*size)
	if err := unix.Munmap(mem); err != nil {
		panic("lfcq: munmap: " + err.Error())
	}
}

// hasPointers reports whether values of t hold references the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
