// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfcq provides fixed-capacity lock-free circular queues.
//
// The package offers queue variants for different producer/consumer
// patterns, all sharing one storage base with a pluggable allocator:
//
//   - SPSC: Single-Producer Single-Consumer, wait-free on both ends
//   - MPMC: Multi-Producer Multi-Consumer, each element popped exactly once
//   - MPMCUnique: MPMC on a caller-supplied allocator
//   - MPMCShared: Multi-Producer Multi-Consumer, consumers may observe the
//     same element concurrently, exactly one retires it
//
// # Quick Start
//
// Direct constructors:
//
//	q := lfcq.NewSPSC[Event](1024)
//	q := lfcq.NewMPMC[*Request](4096)
//	q := lfcq.NewMPMCUnique[Frame](4096, lfcq.MmapAllocator[Frame]{})
//	q := lfcq.NewMPMCShared[Snapshot](256)
//
// Builder API selects the variant from constraints:
//
//	q := lfcq.Build[Event](lfcq.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	q := lfcq.Build[Event](lfcq.New(1024).Shared())                          // → MPMCShared
//	q := lfcq.Build[Event](lfcq.New(1024))                                   // → MPMCUnique
//
// # Callback API
//
// Push and pop hand out the slot itself instead of copying through return
// values. Every operation is non-blocking and reports full or empty as
// false:
//
//	q := lfcq.NewMPMC[Message](1024)
//
//	// Copy a value in
//	ok := q.Push(msg)
//
//	// Initialize the slot in place
//	ok = q.PushFunc(func(m *Message) {
//	    m.ID = id
//	    m.Body = append(m.Body[:0], payload...)
//	})
//
//	// Build the value only once a slot is reserved
//	ok = q.Emplace(func() Message { return newMessage(id) })
//
//	// Handle the front element in place
//	ok = q.Pop(func(m *Message) {
//	    handle(m)
//	})
//
// The pointer passed to a handle is valid only for the duration of the call.
// Slots are not cleared by the queue; a pop handle that wants referenced
// objects to become collectable must clear the slot itself.
//
// Handles run inside a reservation window. A handle that panics or blocks
// forever leaves the completion counter behind its reservation and stalls
// every goroutine on that side of the queue. Handles must not panic.
//
// # Error API
//
// Every queue also implements [Producer] and [Consumer], returning
// [ErrWouldBlock] for full and empty:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//
//	elem, err := q.Dequeue()
//	if lfcq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Algorithms
//
// Each queue keeps 32-bit counters that increase monotonically and wrap
// modulo 2^32. The slot for counter value v is v & (capacity-1). Capacity is
// capped at 2^31 so unsigned subtraction of two live counters is always
// their exact distance, even across a wrap.
//
// SPSC keeps head and tail. Each has one writer, so no CAS is needed.
//
// MPMC keeps a reservation and a completion counter per side. Goroutines
// win an index by CAS on the reservation counter, do their work, then spin
// until the completion counter reaches their index and advance it. Indices
// may be won out of order, but completions are announced strictly in order,
// so consumers observe writes in FIFO order and producers only reuse slots
// after every earlier read finished.
//
// MPMCShared reserves writes the same way but has no read reservation.
// Consumers run the pop handle on the front slot and then race a CAS on the
// read completion counter. The handle may run several times for one element;
// exactly one invocation commits. Handles must be idempotent.
//
// # Capacity
//
// Capacity rounds up to the next power of 2:
//
//	q := lfcq.NewMPMC[int](0)     // Actual capacity: 1
//	q := lfcq.NewMPMC[int](1000)  // Actual capacity: 1024
//	q := lfcq.NewMPMC[int](1024)  // Actual capacity: 1024
//
// Length is intentionally not provided because accurate counts in lock-free
// algorithms require expensive cross-core synchronization.
//
// # Ownership
//
// Queues must not be copied. Move transfers the backing store and pending
// elements to a new queue and leaves the source with capacity 0, on which
// every operation fails without side effects. Close returns the backing
// store to its [Allocator] exactly once.
//
// # Thread Safety
//
//   - SPSC: One producer goroutine, one consumer goroutine
//   - MPMC, MPMCUnique, MPMCShared: Multiple producer and consumer goroutines
//
// Move and Close must not run concurrently with any other operation.
//
// # Race Detection
//
// Slot contents are published through acquire-release orderings on the
// counters, which Go's race detector cannot observe. MPMCShared consumers
// also read slots that producers may be rewriting, discarding what they saw
// when their CAS loses. Concurrent tests are skipped when [RaceEnabled].
//
// # Debugging
//
// Building with -tags lfcqdebug adds a Dump(path) method that writes the
// pending slots to a file. A dump that cannot write its file terminates the
// process.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic counters with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause in
// completion spins, [code.hybscloud.com/iox] for semantic errors, and
// golang.org/x/sys for cache line padding and memory mapping.
package lfcq
