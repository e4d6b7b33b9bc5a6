// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package scratch implements a growable byte stack used to assemble decoded
// string content while parsing.
package scratch

import (
	"fmt"
	"math"
)

// MinCap is the capacity allocated by the first push to an empty Buffer.
const MinCap = 256

// A Buffer is a stack of bytes. Push reserves space at the top of the stack,
// Pop releases space from the top. The zero value is ready for use.
//
// Storage doubles in size whenever a push would exceed its capacity; bytes
// already pushed are preserved across growth.
type Buffer struct {
	buf []byte // len(buf) is the allocated capacity
	top int    // offset of the first unused byte
}

// Push reserves n bytes at the top of b and returns a writable slice of them.
// The slice is only valid until the next call to Push.
func (b *Buffer) Push(n int) []byte {
	if n < 0 || n > math.MaxInt-b.top {
		panic(fmt.Sprintf("scratch: invalid push (%d) at top %d", n, b.top))
	}
	if need := b.top + n; need > len(b.buf) {
		size := max(len(b.buf), MinCap)
		for size < need {
			if size > math.MaxInt/2 {
				size = need
				break
			}
			size *= 2
		}
		grown := make([]byte, size)
		copy(grown, b.buf[:b.top])
		b.buf = grown
	}
	out := b.buf[b.top : b.top+n : b.top+n]
	b.top += n
	return out
}

// PushByte pushes a single byte onto b.
func (b *Buffer) PushByte(c byte) { b.Push(1)[0] = c }

// PushBytes pushes a copy of data onto b.
func (b *Buffer) PushBytes(data []byte) { copy(b.Push(len(data)), data) }

// Pop removes the last n bytes from b and returns a view of them. The view is
// only valid until the next call to Push. Pop panics if n > b.Top().
func (b *Buffer) Pop(n int) []byte {
	if n < 0 || n > b.top {
		panic(fmt.Sprintf("scratch: pop %d exceeds top %d", n, b.top))
	}
	b.top -= n
	return b.buf[b.top : b.top+n : b.top+n]
}

// Truncate pops bytes from b until its top is at offset pos.
// It panics if pos > b.Top().
func (b *Buffer) Truncate(pos int) { b.Pop(b.top - pos) }

// Top reports the number of bytes currently pushed.
func (b *Buffer) Top() int { return b.top }

// Cap reports the allocated capacity of b.
func (b *Buffer) Cap() int { return len(b.buf) }

// Reset empties b without releasing its storage.
func (b *Buffer) Reset() { b.top = 0 }

// Release empties b and discards its storage.
func (b *Buffer) Release() { b.buf, b.top = nil, 0 }
