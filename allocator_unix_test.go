// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package lfcq_test

import (
	"testing"

	"code.hybscloud.com/lfcq"
)

type frame struct {
	seq  uint64
	data [48]byte
}

func TestMmapAllocator(t *testing.T) {
	var alloc lfcq.MmapAllocator[frame]
	buf := alloc.Allocate(64)
	if len(buf) != 64 {
		t.Fatalf("len: got %d, want 64", len(buf))
	}
	for i := range buf {
		if buf[i].seq != 0 {
			t.Fatalf("slot %d not zero-filled", i)
		}
		buf[i].seq = uint64(i)
	}
	alloc.Deallocate(buf)
}

func TestMmapAllocatorZeroSize(t *testing.T) {
	var alloc lfcq.MmapAllocator[struct{}]
	buf := alloc.Allocate(8)
	if len(buf) != 8 {
		t.Fatalf("len: got %d, want 8", len(buf))
	}
	alloc.Deallocate(buf)
}

func TestMmapBackedQueue(t *testing.T) {
	q := lfcq.NewMPMCUnique[frame](100, lfcq.MmapAllocator[frame]{})
	defer q.Close()

	if q.Cap() != 128 {
		t.Fatalf("Cap: got %d, want 128", q.Cap())
	}
	for round := range 3 {
		for i := range 128 {
			ok := q.PushFunc(func(f *frame) {
				f.seq = uint64(round*1000 + i)
				f.data[0] = byte(i)
			})
			if !ok {
				t.Fatalf("round %d: PushFunc(%d) failed", round, i)
			}
		}
		for i := range 128 {
			var got frame
			if !q.Pop(func(f *frame) { got = *f }) {
				t.Fatalf("round %d: Pop(%d) failed", round, i)
			}
			if got.seq != uint64(round*1000+i) || got.data[0] != byte(i) {
				t.Fatalf("round %d: Pop(%d) got seq=%d data=%d", round, i, got.seq, got.data[0])
			}
		}
	}
}

type tagged struct {
	seq  uint64
	name string
}

func TestMmapAllocatorRejectsPointers(t *testing.T) {
	mustPanic := func(name string, allocate func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("%s: Allocate did not panic", name)
			}
			if msg, _ := r.(string); msg != "lfcq: MmapAllocator requires a pointer-free element type" {
				t.Fatalf("%s: panic %v", name, r)
			}
		}()
		allocate()
	}

	mustPanic("struct with string", func() { lfcq.MmapAllocator[tagged]{}.Allocate(4) })
	mustPanic("pointer", func() { lfcq.MmapAllocator[*frame]{}.Allocate(4) })
	mustPanic("array of slices", func() { lfcq.MmapAllocator[[2][]byte]{}.Allocate(4) })
	mustPanic("interface", func() { lfcq.MmapAllocator[any]{}.Allocate(4) })

	// Zero-length arrays of pointers hold nothing to trace.
	var empty lfcq.MmapAllocator[[0]*frame]
	empty.Deallocate(empty.Allocate(4))

	var plain lfcq.MmapAllocator[[4]frame]
	plain.Deallocate(plain.Allocate(4))
}
