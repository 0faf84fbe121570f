// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import "code.hybscloud.com/atomix"

// SPSC is a single-producer single-consumer bounded queue.
//
// Based on Lamport's ring buffer with cached index optimization.
// Each counter has exactly one writer, so neither side needs CAS and
// both ends are wait-free. The producer caches the consumer's head, and
// vice versa, reducing cross-core cache line traffic.
//
// Memory: capacity slots, no per-slot overhead
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint32 // Consumer reads from here
	_          pad
	cachedTail uint32 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint32 // Producer writes here
	_          pad
	cachedHead uint32 // Producer's cached view of head
	_          pad
	storage[T]
}

// NewSPSC creates a new SPSC queue backed by the Go heap.
// Capacity rounds up to the next power of 2, at most [MaxCapacity].
func NewSPSC[T any](capacity uint32) *SPSC[T] {
	return NewSPSCAlloc[T](capacity, nil)
}

// NewSPSCAlloc creates a new SPSC queue whose slots come from alloc.
// A nil alloc selects [HeapAllocator].
func NewSPSCAlloc[T any](capacity uint32, alloc Allocator[T]) *SPSC[T] {
	return &SPSC[T]{storage: newStorage(capacity, alloc)}
}

// reserve returns the tail index if a slot is free (producer only).
func (q *SPSC[T]) reserve() (uint32, bool) {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead == q.size {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead == q.size {
			return 0, false
		}
	}
	return tail, true
}

// front returns the head index if an element is available (consumer only).
func (q *SPSC[T]) front() (uint32, bool) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return 0, false
		}
	}
	return head, true
}

// Push stores a copy of elem (producer only).
// Returns false if the queue is full.
func (q *SPSC[T]) Push(elem T) bool {
	tail, ok := q.reserve()
	if !ok {
		return false
	}
	*q.slot(tail) = elem
	q.tail.StoreRelease(tail + 1)
	return true
}

// PushFunc lets fn initialize the next slot in place (producer only).
// Returns false without calling fn if the queue is full.
func (q *SPSC[T]) PushFunc(fn PushHandle[T]) bool {
	tail, ok := q.reserve()
	if !ok {
		return false
	}
	fn(q.slot(tail))
	q.tail.StoreRelease(tail + 1)
	return true
}

// Emplace stores the value built by ctor (producer only).
// Returns false without calling ctor if the queue is full.
func (q *SPSC[T]) Emplace(ctor func() T) bool {
	tail, ok := q.reserve()
	if !ok {
		return false
	}
	*q.slot(tail) = ctor()
	q.tail.StoreRelease(tail + 1)
	return true
}

// Pop hands the front element to fn and removes it (consumer only).
// Returns false without calling fn if the queue is empty.
func (q *SPSC[T]) Pop(fn PopHandle[T]) bool {
	head, ok := q.front()
	if !ok {
		return false
	}
	fn(q.slot(head))
	q.head.StoreRelease(head + 1)
	return true
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue removes and returns an element (consumer only).
// The slot is cleared so that referenced objects can be collected.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	var zero T
	head, ok := q.front()
	if !ok {
		return zero, ErrWouldBlock
	}
	slot := q.slot(head)
	elem := *slot
	*slot = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.size)
}

// Move transfers the backing store and pending elements to a new queue.
//
// The source is left empty: its capacity is 0 and every operation on it
// fails without side effects. Move must not run concurrently with any other
// operation on q.
func (q *SPSC[T]) Move() *SPSC[T] {
	dst := &SPSC[T]{storage: q.take()}
	dst.head.StoreRelaxed(q.head.LoadRelaxed())
	dst.tail.StoreRelaxed(q.tail.LoadRelaxed())
	dst.cachedHead = q.cachedHead
	dst.cachedTail = q.cachedTail
	q.reset()
	return dst
}

// Close returns the backing store to the allocator.
// Close must not run concurrently with any other operation on q.
func (q *SPSC[T]) Close() {
	q.release()
	q.reset()
}

func (q *SPSC[T]) reset() {
	q.head.StoreRelaxed(0)
	q.tail.StoreRelaxed(0)
	q.cachedHead = 0
	q.cachedTail = 0
}
