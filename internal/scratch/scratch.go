// Package scratch hands out reusable temporary byte storage for exchanges
// that are too large for a local array.
package scratch

import (
	"errors"
	"sync"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 1 << 20
	poolInitCap = 4096
)

var ErrExhausted = errors.New("scratch: requested size exceeds limit")

var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getBuf() *[]byte {
	return bufPool.Get().(*[]byte)
}

func putBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	bufPool.Put(buf)
}

// Lease holds one pooled buffer for the lifetime of its owner.
// A Lease is not safe for concurrent use.
type Lease struct {
	buf   *[]byte
	limit int
}

// NewLease returns an empty lease. limit caps the size a single Take may
// request; 0 means unbounded.
func NewLease(limit int) *Lease {
	return &Lease{limit: limit}
}

// Take returns a slice of exactly n bytes backed by the held buffer.
// The contents are unspecified and only valid until the next Take or
// Release. On error the held buffer is left untouched.
func (l *Lease) Take(n int) ([]byte, error) {
	if n < 0 || (l.limit > 0 && n > l.limit) {
		return nil, ErrExhausted
	}
	if l.buf == nil {
		l.buf = getBuf()
	}
	if cap(*l.buf) < n {
		grow := max(n, 2*cap(*l.buf))
		if l.limit > 0 {
			grow = min(grow, l.limit)
		}
		*l.buf = make([]byte, 0, grow)
	}
	return (*l.buf)[:n], nil
}

// Cap reports the capacity currently held, 0 when nothing is held.
func (l *Lease) Cap() int {
	if l.buf == nil {
		return 0
	}
	return cap(*l.buf)
}

// Release returns the held buffer to the pool. The lease can be reused
// afterwards; slices returned by earlier Take calls must not be.
func (l *Lease) Release() {
	putBuf(l.buf)
	l.buf = nil
}
