// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq_test

import (
	"math"
	"math/bits"
	"testing"

	"code.hybscloud.com/lfcq"
)

func TestRoundUpPow2(t *testing.T) {
	tests := []struct {
		in   uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
		{1<<31 - 1, 1 << 31},
		{1 << 31, 1 << 31},
		{1<<31 + 1, 1 << 31},
		{math.MaxUint32, 1 << 31},
	}

	for _, tt := range tests {
		if got := lfcq.RoundUpPow2(tt.in); got != tt.want {
			t.Errorf("RoundUpPow2(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestRoundUpPow2Smallest checks that the result is the smallest power of 2
// not below the input, across a sweep of inputs.
func TestRoundUpPow2Smallest(t *testing.T) {
	for v := uint32(1); v < 1<<20; v = v*3/2 + 1 {
		got := lfcq.RoundUpPow2(v)
		if bits.OnesCount32(got) != 1 {
			t.Fatalf("RoundUpPow2(%d) = %d: not a power of 2", v, got)
		}
		if got < v || (got > 1 && got/2 >= v) {
			t.Fatalf("RoundUpPow2(%d) = %d: not the smallest power of 2 >= input", v, got)
		}
	}
}
