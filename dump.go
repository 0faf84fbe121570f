// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build lfcqdebug

// Debug builds (-tags lfcqdebug) can dump the raw contents of a queue.
// Release builds do not contain the Dump methods.

package lfcq

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

// dump writes the slots addressed by counter values [beg, end) to path,
// one line per slot. Any I/O failure terminates the process.
func (s *storage[T]) dump(beg, end uint32, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("lfcq: dump: %v", err)
	}
	w := bufio.NewWriter(f)
	for i := beg; i != end; i++ {
		fmt.Fprintf(w, "%d: {%v}\n", i&s.mask, s.buf[i&s.mask])
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("lfcq: dump %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("lfcq: dump %s: %v", path, err)
	}
}

// Dump writes the pending elements to path.
// Call only while the queue is quiescent.
func (q *SPSC[T]) Dump(path string) {
	q.dump(q.head.LoadAcquire(), q.tail.LoadAcquire(), path)
}

// Dump writes the completed but not yet retired elements to path.
// Call only while the queue is quiescent.
func (q *MPMC[T]) Dump(path string) {
	q.dump(q.doneR.LoadAcquire(), q.doneW.LoadAcquire(), path)
}

// Dump writes the completed but not yet retired elements to path.
// Call only while the queue is quiescent.
func (q *MPMCShared[T]) Dump(path string) {
	q.dump(q.doneR.LoadAcquire(), q.doneW.LoadAcquire(), path)
}
