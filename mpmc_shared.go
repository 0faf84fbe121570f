// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCShared is a multi-producer multi-consumer bounded queue whose
// consumers race on the front element instead of reserving it.
//
// Producers reserve and complete exactly as in [MPMC]. Consumers have no
// reservation counter: each one runs its pop handle against the front slot
// and then tries to retire it with a single CAS on the read completion
// counter. Several consumers may observe the same element concurrently;
// exactly one of them commits it.
//
// Invariant: doneR ≤ doneW ≤ nextW and nextW - doneR ≤ capacity.
//
// Pop delivers at-least-once invocation and exactly-once commit. The pop
// handle must tolerate being called any number of times for one element
// (pure reads or idempotent copies), and whatever a losing invocation
// observed must be discarded: it may have read a slot that a producer was
// overwriting. Handles with external side effects are the caller's
// responsibility. This trades strict exclusive consumption for cheap
// read-mostly fan-out.
//
// Memory: capacity slots, no per-slot overhead
type MPMCShared[T any] struct {
	_     pad
	nextW atomix.Uint32 // Write reservation
	_     pad
	doneW atomix.Uint32 // Write completion
	_     pad
	doneR atomix.Uint32 // Read completion
	_     pad
	storage[T]
}

// NewMPMCShared creates a new shared-consumer queue backed by the Go heap.
// Capacity rounds up to the next power of 2, at most [MaxCapacity].
func NewMPMCShared[T any](capacity uint32) *MPMCShared[T] {
	return NewMPMCSharedAlloc[T](capacity, nil)
}

// NewMPMCSharedAlloc creates a new shared-consumer queue whose slots come
// from alloc. A nil alloc selects [HeapAllocator].
func NewMPMCSharedAlloc[T any](capacity uint32, alloc Allocator[T]) *MPMCShared[T] {
	return &MPMCShared[T]{storage: newStorage(capacity, alloc)}
}

// Push stores a copy of elem.
// Returns false if the queue is full.
func (q *MPMCShared[T]) Push(elem T) bool {
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
func (q *MPMCShared[T]) PushFunc(fn PushHandle[T]) bool {
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
func (q *MPMCShared[T]) Emplace(ctor func() T) bool {
	idx, ok := reserveWrite(&q.nextW, &q.doneR, q.size)
	if !ok {
		return false
	}
	*q.slot(idx) = ctor()
	complete(&q.doneW, idx)
	return true
}

// Pop runs fn on the front element and tries to retire it.
//
// If another consumer retires the element first, Pop retries on the new
// front, calling fn again. Only the invocation preceding a true result is
// the commit; fn must treat earlier invocations in the same call as void.
// Returns false without calling fn again once the queue is empty.
func (q *MPMCShared[T]) Pop(fn PopHandle[T]) bool {
	sw := spin.Wait{}
	idx := q.doneR.LoadAcquire()
	for {
		if idx == q.doneW.LoadAcquire() {
			return false
		}
		fn(q.slot(idx))
		if q.doneR.CompareAndSwapAcqRel(idx, idx+1) {
			return true
		}
		idx = q.doneR.LoadAcquire()
		sw.Once()
	}
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *MPMCShared[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue copies out and retires the front element.
// The slot is not cleared: other consumers may still be reading it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPMCShared[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	idx := q.doneR.LoadAcquire()
	for {
		if idx == q.doneW.LoadAcquire() {
			var zero T
			return zero, ErrWouldBlock
		}
		elem := *q.slot(idx)
		if q.doneR.CompareAndSwapAcqRel(idx, idx+1) {
			return elem, nil
		}
		idx = q.doneR.LoadAcquire()
		sw.Once()
	}
}

// Cap returns the queue capacity.
func (q *MPMCShared[T]) Cap() int {
	return int(q.size)
}

// Move transfers the backing store and pending elements to a new queue.
//
// The source is left empty: its capacity is 0 and every operation on it
// fails without side effects. Move must not run concurrently with any other
// operation on q.
func (q *MPMCShared[T]) Move() *MPMCShared[T] {
	dst := &MPMCShared[T]{storage: q.take()}
	dst.nextW.StoreRelaxed(q.nextW.LoadRelaxed())
	dst.doneW.StoreRelaxed(q.doneW.LoadRelaxed())
	dst.doneR.StoreRelaxed(q.doneR.LoadRelaxed())
	q.reset()
	return dst
}

// Close returns the backing store to the allocator.
// Close must not run concurrently with any other operation on q.
func (q *MPMCShared[T]) Close() {
	q.release()
	q.reset()
}

func (q *MPMCShared[T]) reset() {
	q.nextW.StoreRelaxed(0)
	q.doneW.StoreRelaxed(0)
	q.doneR.StoreRelaxed(0)
}
