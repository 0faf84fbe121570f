// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq_test

import (
	"testing"

	"code.hybscloud.com/lfcq"
)

// countingAllocator records allocation sizes for lifecycle tests.
type countingAllocator[T any] struct {
	allocCalls   int
	deallocCalls int
	allocated    int
	deallocated  int
}

func (a *countingAllocator[T]) Allocate(n int) []T {
	a.allocCalls++
	a.allocated += n
	return make([]T, n)
}

func (a *countingAllocator[T]) Deallocate(buf []T) {
	a.deallocCalls++
	a.deallocated += len(buf)
}

// allocQueues returns one allocator-aware constructor per variant.
func allocQueues[T any]() []struct {
	name string
	new  func(capacity uint32, alloc lfcq.Allocator[T]) lfcq.Queue[T]
} {
	return []struct {
		name string
		new  func(capacity uint32, alloc lfcq.Allocator[T]) lfcq.Queue[T]
	}{
		{"SPSC", func(c uint32, a lfcq.Allocator[T]) lfcq.Queue[T] { return lfcq.NewSPSCAlloc(c, a) }},
		{"MPMCUnique", func(c uint32, a lfcq.Allocator[T]) lfcq.Queue[T] { return lfcq.NewMPMCUnique(c, a) }},
		{"MPMCShared", func(c uint32, a lfcq.Allocator[T]) lfcq.Queue[T] { return lfcq.NewMPMCSharedAlloc(c, a) }},
	}
}

// TestAllocatorLifecycle verifies Allocate is called once at construction
// with the rounded capacity and Deallocate once at Close.
func TestAllocatorLifecycle(t *testing.T) {
	for _, tc := range allocQueues[int]() {
		t.Run(tc.name, func(t *testing.T) {
			alloc := &countingAllocator[int]{}
			q := tc.new(1000, alloc)

			if alloc.allocCalls != 1 || alloc.allocated != 1024 {
				t.Fatalf("after construction: %d calls, %d slots; want 1 call, 1024 slots",
					alloc.allocCalls, alloc.allocated)
			}
			if alloc.deallocCalls != 0 {
				t.Fatalf("Deallocate called %d times before Close", alloc.deallocCalls)
			}

			q.Push(1)
			q.Pop(func(*int) {})

			q.Close()
			if alloc.deallocCalls != 1 || alloc.deallocated != 1024 {
				t.Fatalf("after Close: %d calls, %d slots; want 1 call, 1024 slots",
					alloc.deallocCalls, alloc.deallocated)
			}

			// Second Close is a no-op.
			q.Close()
			if alloc.deallocCalls != 1 {
				t.Fatalf("after second Close: %d Deallocate calls, want 1", alloc.deallocCalls)
			}
			if alloc.allocCalls != 1 {
				t.Fatalf("Allocate called %d times, want 1", alloc.allocCalls)
			}
		})
	}
}

// TestClosedQueue verifies every operation fails without side effects after Close.
func TestClosedQueue(t *testing.T) {
	for _, tc := range allQueues[int]() {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(8)
			q.Push(1)
			q.Close()

			if q.Cap() != 0 {
				t.Fatalf("Cap after Close: got %d, want 0", q.Cap())
			}
			if q.Push(2) {
				t.Fatal("Push after Close succeeded")
			}
			if q.PushFunc(func(*int) { t.Error("PushFunc handle called after Close") }) {
				t.Fatal("PushFunc after Close succeeded")
			}
			if q.Emplace(func() int { t.Error("Emplace ctor called after Close"); return 0 }) {
				t.Fatal("Emplace after Close succeeded")
			}
			if q.Pop(func(*int) { t.Error("Pop handle called after Close") }) {
				t.Fatal("Pop after Close succeeded")
			}
			if _, err := q.Dequeue(); !lfcq.IsWouldBlock(err) {
				t.Fatalf("Dequeue after Close: got %v, want ErrWouldBlock", err)
			}
		})
	}
}

// TestNilAllocator verifies a nil allocator falls back to the heap.
func TestNilAllocator(t *testing.T) {
	for _, tc := range allocQueues[int]() {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(4, nil)
			defer q.Close()
			if q.Cap() != 4 {
				t.Fatalf("Cap: got %d, want 4", q.Cap())
			}
			if !q.Push(5) {
				t.Fatal("Push failed")
			}
			if v, ok := popValue(q); !ok || v != 5 {
				t.Fatalf("Pop: got (%d, %v), want (5, true)", v, ok)
			}
		})
	}
}
