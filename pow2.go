// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

// MaxCapacity is the largest capacity a queue can have.
//
// Counters are 32-bit and wrap modulo 2^32. Capping capacity at 2^31 keeps
// the unsigned distance between any two live counters exact across a wrap.
//
// On 32-bit platforms queues are further limited to 2^30 slots so that
// every slot index and [Queue.Cap] fit in an int. RoundUpPow2 itself is
// platform independent.
const MaxCapacity = 1 << 31

// RoundUpPow2 rounds v up to the next power of 2.
//
// Zero rounds up to 1. Values above [MaxCapacity] are clamped to
// MaxCapacity before rounding so the result never overflows.
//
//	RoundUpPow2(0)    // 1
//	RoundUpPow2(1000) // 1024
//	RoundUpPow2(1024) // 1024
func RoundUpPow2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v = min(v, MaxCapacity) - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}
