// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import "math"

// maxSlots is the largest slot count addressable by an int slice index.
// It equals MaxCapacity on 64-bit platforms and 2^30 on 32-bit platforms.
const maxSlots = min(MaxCapacity, math.MaxInt>>1+1)

// storage is the backing store shared by every queue variant.
//
// It owns the allocator-provided slots and the index mask. Storage has no
// concurrency of its own; the embedding queue's counters decide which
// goroutine may touch which slot.
//
// Slots are never cleared by the queue when they are overwritten or popped.
// A pop callback that needs the old value released must do it itself.
type storage[T any] struct {
	_     noCopy
	alloc Allocator[T]
	buf   []T
	size  uint32
	mask  uint32
}

func newStorage[T any](capacity uint32, alloc Allocator[T]) storage[T] {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	n := RoundUpPow2(min(capacity, maxSlots))
	return storage[T]{
		alloc: alloc,
		buf:   alloc.Allocate(int(n)),
		size:  n,
		mask:  n - 1,
	}
}

// slot returns the slot addressed by counter value i.
func (s *storage[T]) slot(i uint32) *T {
	return &s.buf[i&s.mask]
}

// release returns the slots to the allocator.
// The storage is empty afterwards; a second release is a no-op.
func (s *storage[T]) release() {
	if s.buf == nil {
		return
	}
	s.alloc.Deallocate(s.buf)
	s.buf = nil
	s.size = 0
	s.mask = 0
}

// take transfers ownership of the slots to the returned storage and leaves
// s empty, so that releasing s does not deallocate.
func (s *storage[T]) take() storage[T] {
	alloc, buf, size, mask := s.alloc, s.buf, s.size, s.mask
	s.buf, s.size, s.mask = nil, 0, 0
	return storage[T]{alloc: alloc, buf: buf, size: size, mask: mask}
}

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet -copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
