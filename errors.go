// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfcq

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned by the error surface of a queue when the
// operation cannot proceed without waiting.
//
// Queues report full and empty in two ways. Push, PushFunc, Emplace and Pop
// return false and leave the queue unchanged. Enqueue returns ErrWouldBlock
// when the queue is full, and Dequeue returns the zero value together with
// ErrWouldBlock when the queue is empty. Neither result is a failure; a
// caller waits, for example with [iox.Backoff], and tries again.
//
// It is the same value as [iox.ErrWouldBlock], so code written against iox
// producers and consumers handles lfcq queues unchanged.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err, or an error it wraps, is [ErrWouldBlock].
// Use it on results of Enqueue and Dequeue.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Every error a queue returns is semantic.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err is nil or a control flow signal, that is,
// whether an Enqueue or Dequeue result leaves the caller free to continue.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
