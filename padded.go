// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import "golang.org/x/sys/cpu"

// pad is cache line padding to prevent false sharing.
type pad = cpu.CacheLinePad

// Padded wraps a value so that it occupies cache lines of its own.
//
// Padded is a layout utility with no behavior. Use it for values that are
// written independently by different goroutines and would otherwise share a
// cache line, such as per-worker counters or adjacent queue elements:
//
//	counters := make([]lfcq.Padded[atomix.Int64], workers)
//	counters[id].Value.Add(1)
//
// The padding size is the platform cache line size reported by
// [cpu.CacheLinePad].
type Padded[T any] struct {
	_     pad
	Value T
	_     pad
}
