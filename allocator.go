// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

// Allocator provides the backing store of a queue.
//
// A queue calls Allocate exactly once when it is constructed and Deallocate
// exactly once when it is closed. A queue whose storage was moved away with
// Move never calls Deallocate; the destination queue does.
//
// Allocate returns n slots. The slots are not initialized by the queue:
// whatever Allocate returns is what the first Pop on a slot would observe
// had it not been written. Allocation failure is signaled however the
// allocator chooses (typically a panic); queues assume Allocate succeeds.
type Allocator[T any] interface {
	// Allocate returns a slice of exactly n slots.
	Allocate(n int) []T

	// Deallocate releases a slice previously returned by Allocate.
	// The slice must not be used after Deallocate returns.
	Deallocate(buf []T)
}

// HeapAllocator allocates slots on the Go heap.
//
// HeapAllocator is the default allocator. Deallocate drops nothing
// explicitly; the garbage collector reclaims the slice once the queue
// releases its reference.
type HeapAllocator[T any] struct{}

// Allocate returns n zeroed slots.
func (HeapAllocator[T]) Allocate(n int) []T {
	return make([]T, n)
}

// Deallocate is a no-op; the slice is reclaimed by the garbage collector.
func (HeapAllocator[T]) Deallocate([]T) {}
