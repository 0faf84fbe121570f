// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

// Options configures queue creation and algorithm selection.
type Options struct {
	// Producer/Consumer constraints (determines queue type)
	singleProducer bool
	singleConsumer bool

	// Consumers may observe the same element concurrently
	shared bool

	// Requested capacity (rounds up to next power of 2)
	capacity uint32
}

// Builder creates queues with fluent configuration.
//
// The builder selects the variant from the declared producer/consumer
// constraints.
//
// Example:
//
//	// SPSC queue (wait-free on both ends)
//	q := lfcq.BuildSPSC[Event](lfcq.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC queue (default, general purpose)
//	q := lfcq.BuildMPMC[Request](lfcq.New(4096))
//
//	// Fan-out queue where consumers may observe the same element
//	q := lfcq.BuildShared[Snapshot](lfcq.New(256).Shared())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2 and is capped at
// [MaxCapacity]. For example, capacity=0 results in actual capacity=1,
// capacity=1000 results in actual capacity=1024.
func New(capacity uint32) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will push.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will pop.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Shared declares that consumers may observe the same element while they
// race to retire it. See [MPMCShared] for the pop handle contract.
func (b *Builder) Shared() *Builder {
	b.opts.shared = true
	return b
}

// Build creates a Queue[T] backed by the Go heap.
//
// Variant selection:
//
//	SingleProducer + SingleConsumer → SPSC
//	Shared                          → MPMCShared
//	Otherwise                       → MPMCUnique
func Build[T any](b *Builder) Queue[T] {
	return BuildWith[T](b, nil)
}

// BuildWith creates a Queue[T] whose slots come from alloc.
// A nil alloc selects [HeapAllocator]. Selection follows [Build].
func BuildWith[T any](b *Builder, alloc Allocator[T]) Queue[T] {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		return NewSPSCAlloc(b.opts.capacity, alloc)
	case b.opts.shared:
		return NewMPMCSharedAlloc(b.opts.capacity, alloc)
	default:
		return NewMPMCUnique(b.opts.capacity, alloc)
	}
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("lfcq: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if builder is configured with Shared().
//
// SingleProducer or SingleConsumer alone are accepted: MPMC is correct for
// any number of producers and consumers.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.shared {
		panic("lfcq: BuildMPMC does not accept Shared()")
	}
	return NewMPMC[T](b.opts.capacity)
}

// BuildShared creates a shared-consumer queue with compile-time type safety.
// Panics if builder is not configured with Shared().
func BuildShared[T any](b *Builder) *MPMCShared[T] {
	if !b.opts.shared {
		panic("lfcq: BuildShared requires Shared()")
	}
	return NewMPMCShared[T](b.opts.capacity)
}
