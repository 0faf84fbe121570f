// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

// PushHandle initializes a reserved slot in place.
//
// The pointer is only valid for the duration of the call. The slot holds
// whatever was last stored there (or the allocator's initial contents);
// the handle is expected to overwrite every field it cares about.
type PushHandle[T any] func(slot *T)

// PopHandle handles an element at the front of the queue.
//
// The pointer is only valid for the duration of the call and must not be
// retained. The queue does not clear the slot after the handle returns;
// clear it in the handle when the element references objects that should
// become collectable.
//
// A handle runs inside a reservation window. It must not panic or block
// indefinitely: an abnormal exit leaves the completion counter behind its
// reservation and stalls every other goroutine on that side of the queue.
type PopHandle[T any] func(elem *T)

// Queue is the combined interface implemented by every queue variant.
//
// Queue offers two equivalent surfaces. The callback surface (Push,
// PushFunc, Emplace, Pop) reports full and empty as false and never copies
// more than needed. The [Producer] and [Consumer] surface reports the same
// conditions as [ErrWouldBlock].
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
//
// Example:
//
//	q := lfcq.NewMPMC[int](1024)
//
//	if !q.Push(42) {
//	    // Handle full queue
//	}
//
//	q.Pop(func(v *int) {
//	    fmt.Println(*v)
//	})
type Queue[T any] interface {
	Pusher[T]
	Popper[T]
	Producer[T]
	Consumer[T]

	// Cap returns the queue capacity, or 0 once the queue was closed or
	// its storage moved away.
	Cap() int

	// Close returns the backing store to the allocator.
	// Close must not run concurrently with any other operation.
	Close()
}

// Pusher is the callback-style producer interface.
//
// Every method returns false without side effects when the queue is full,
// and true once the element is visible to consumers.
type Pusher[T any] interface {
	// Push stores a copy of elem.
	Push(elem T) bool

	// PushFunc reserves a slot and lets fn initialize it in place.
	PushFunc(fn PushHandle[T]) bool

	// Emplace reserves a slot and stores the result of ctor in it.
	// ctor is not called when the queue is full.
	Emplace(ctor func() T) bool
}

// Popper is the callback-style consumer interface.
type Popper[T any] interface {
	// Pop hands the front element to fn and removes it from the queue.
	// Returns false without calling fn if the queue is empty.
	Pop(fn PopHandle[T]) bool
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied from the queue's buffer).
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}
