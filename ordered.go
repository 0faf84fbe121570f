// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Multi-producer and multi-consumer queues separate reserving an index from
// announcing that the work on it is done. Reservations are won by CAS and
// may finish out of order; announcements advance the completion counter
// strictly in reservation order, so readers observe writes in FIFO order.
//
// All counters are 32-bit and wrap. Capacity is at most 2^31, so the
// unsigned difference of two live counters is their exact distance.

// reserveWrite claims the next write index.
// Returns false if size elements are pending counted from doneR.
func reserveWrite(nextW, doneR *atomix.Uint32, size uint32) (uint32, bool) {
	sw := spin.Wait{}
	idx := nextW.LoadAcquire()
	for {
		if idx-doneR.LoadAcquire() == size {
			return 0, false
		}
		if nextW.CompareAndSwapAcqRel(idx, idx+1) {
			return idx, true
		}
		idx = nextW.LoadAcquire()
		sw.Once()
	}
}

// reserveRead claims the next read index.
// Returns false if every completed write has been claimed.
func reserveRead(nextR, doneW *atomix.Uint32) (uint32, bool) {
	sw := spin.Wait{}
	idx := nextR.LoadAcquire()
	for {
		if idx == doneW.LoadAcquire() {
			return 0, false
		}
		if nextR.CompareAndSwapAcqRel(idx, idx+1) {
			return idx, true
		}
		idx = nextR.LoadAcquire()
		sw.Once()
	}
}

// complete announces that reservation idx has finished.
//
// It spins until every earlier reservation on the same side has been
// announced. A reserved but descheduled goroutine therefore stalls all
// goroutines behind it; there is no fairness or priority guarantee.
func complete(done *atomix.Uint32, idx uint32) {
	sw := spin.Wait{}
	for done.LoadAcquire() != idx {
		sw.Once()
	}
	done.AddAcqRel(1)
}
