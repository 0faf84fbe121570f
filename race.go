// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package lfcq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests: slot contents are published
// through acquire-release orderings on separate counters, which the
// detector cannot observe, and shared-consumer pops read slots
// concurrently with producers by design.
const RaceEnabled = true
