// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import "code.hybscloud.com/atomix"

// MPMC is a CAS-based multi-producer multi-consumer bounded queue.
//
// Producers and consumers each use a pair of counters: a reservation
// counter advanced by CAS and a completion counter advanced in strict
// reservation order. Every element is written by exactly one producer and
// handed to exactly one consumer, in FIFO order of completion.
//
// Invariant: doneR ≤ nextR ≤ doneW ≤ nextW and nextW - doneR ≤ capacity.
//
// Lock-free, not wait-free: a goroutine that reserved an index and was
// descheduled delays the completions of everyone behind it on its side.
//
// Memory: capacity slots, no per-slot overhead
type MPMC[T any] struct {
	_     pad
	nextW atomix.Uint32 // Write reservation
	_     pad
	doneW atomix.Uint32 // Write completion
	_     pad
	nextR atomix.Uint32 // Read reservation
	_     pad
	doneR atomix.Uint32 // Read completion
	_     pad
	storage[T]
}

// NewMPMC creates a new MPMC queue backed by the Go heap.
// Capacity rounds up to the next power of 2, at most [MaxCapacity].
func NewMPMC[T any](capacity uint32) *MPMC[T] {
	return &MPMC[T]{storage: newStorage[T](capacity, HeapAllocator[T]{})}
}

// Push stores a copy of elem.
// Returns false if the queue is full.
func (q *MPMC[T]) Push(elem T) bool {
	idx, ok := reserveWrite(&q.nextW, &q.doneR, q.size)
	if !ok {
		return false
	}
	*q.slot(idx) = elem
	complete(&q.doneW, idx)
	return true
}

// PushFunc reserves a slot and lets fn initialize it in place.
// Returns false without calling fn if the queue is full.
func (q *MPMC[T]) PushFunc(fn PushHandle[T]) bool {
	idx, ok := reserveWrite(&q.nextW, &q.doneR, q.size)
	if !ok {
		return false
	}
	fn(q.slot(idx))
	complete(&q.doneW, idx)
	return true
}

// Emplace reserves a slot and stores the value built by ctor.
// Returns false without calling ctor if the queue is full.
func (q *MPMC[T]) Emplace(ctor func() T) bool {
	idx, ok := reserveWrite(&q.nextW, &q.doneR, q.size)
	if !ok {
		return false
	}
	*q.slot(idx) = ctor()
	complete(&q.doneW, idx)
	return true
}

// Pop claims the front element, hands it to fn, then retires it.
// fn is called exactly once per element.
// Returns false without calling fn if the queue is empty.
func (q *MPMC[T]) Pop(fn PopHandle[T]) bool {
	idx, ok := reserveRead(&q.nextR, &q.doneW)
	if !ok {
		return false
	}
	fn(q.slot(idx))
	complete(&q.doneR, idx)
	return true
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *MPMC[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue removes and returns an element from the queue.
// The slot is cleared so that referenced objects can be collected.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, error) {
	var zero T
	idx, ok := reserveRead(&q.nextR, &q.doneW)
	if !ok {
		return zero, ErrWouldBlock
	}
	slot := q.slot(idx)
	elem := *slot
	*slot = zero
	complete(&q.doneR, idx)
	return elem, nil
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.size)
}

// Move transfers the backing store and pending elements to a new queue.
//
// The source is left empty: its capacity is 0 and every operation on it
// fails without side effects. Move must not run concurrently with any other
// operation on q.
func (q *MPMC[T]) Move() *MPMC[T] {
	dst := &MPMC[T]{storage: q.take()}
	q.moveCounters(dst)
	return dst
}

// Close returns the backing store to the allocator.
// Close must not run concurrently with any other operation on q.
func (q *MPMC[T]) Close() {
	q.release()
	q.moveCounters(nil)
}

// moveCounters copies the counters to dst, if any, and zeroes them in q.
func (q *MPMC[T]) moveCounters(dst *MPMC[T]) {
	if dst != nil {
		dst.nextW.StoreRelaxed(q.nextW.LoadRelaxed())
		dst.doneW.StoreRelaxed(q.doneW.LoadRelaxed())
		dst.nextR.StoreRelaxed(q.nextR.LoadRelaxed())
		dst.doneR.StoreRelaxed(q.doneR.LoadRelaxed())
	}
	q.nextW.StoreRelaxed(0)
	q.doneW.StoreRelaxed(0)
	q.nextR.StoreRelaxed(0)
	q.doneR.StoreRelaxed(0)
}

// MPMCUnique is an [MPMC] queue whose backing store comes from a
// caller-supplied [Allocator].
//
// Semantics are identical to MPMC: every element is consumed by exactly one
// Pop. Call Close to hand the slots back to the allocator.
type MPMCUnique[T any] struct {
	MPMC[T]
}

// NewMPMCUnique creates a new MPMC queue whose slots come from alloc.
// A nil alloc selects [HeapAllocator].
// Capacity rounds up to the next power of 2, at most [MaxCapacity].
func NewMPMCUnique[T any](capacity uint32, alloc Allocator[T]) *MPMCUnique[T] {
	q := &MPMCUnique[T]{}
	q.storage = newStorage(capacity, alloc)
	return q
}

// Move transfers the backing store and pending elements to a new queue.
// See [MPMC.Move].
func (q *MPMCUnique[T]) Move() *MPMCUnique[T] {
	dst := &MPMCUnique[T]{}
	dst.storage = q.take()
	q.moveCounters(&dst.MPMC)
	return dst
}
