// Package exchange swaps two disjoint, possibly differently sized ranges
// inside one byte buffer, shifting the bytes between them.
package exchange

import (
	"errors"
	"fmt"
)

const (
	// LocalCap is the size of the per-Exchanger array used for small exchanges.
	LocalCap = 4096
	// DefaultThreshold is the combined range size at or below which an
	// exchange uses the local array instead of the scratch source.
	DefaultThreshold = 2048
)

var (
	ErrOverlap     = errors.New("exchange: ranges overlap or are out of order")
	ErrOutOfBounds = errors.New("exchange: range outside buffer")
)

// Span is a byte range [Pos, Pos+Len).
type Span struct {
	Pos int
	Len int
}

func (s Span) End() int { return s.Pos + s.Len }

// Scratch supplies temporary storage for exchanges above the threshold.
// The returned slice only needs to stay valid until the next Take.
type Scratch interface {
	Take(n int) ([]byte, error)
}

type heapScratch struct{ buf []byte }

func (h *heapScratch) Take(n int) ([]byte, error) {
	if cap(h.buf) < n {
		h.buf = make([]byte, n)
	}
	return h.buf[:n], nil
}

// Exchanger performs range exchanges with a bounded amount of temporary
// storage. It is not safe for concurrent use.
type Exchanger struct {
	threshold int
	scratch   Scratch
	local     [LocalCap]byte // reused for exchanges at or below threshold
}

// New returns an Exchanger. threshold is clamped to [0, LocalCap]; a
// negative threshold selects DefaultThreshold. A nil scratch falls back
// to a private heap buffer that is reused across calls.
func New(threshold int, scratch Scratch) *Exchanger {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	if scratch == nil {
		scratch = &heapScratch{}
	}
	return &Exchanger{threshold: min(threshold, LocalCap), scratch: scratch}
}

// Threshold reports the effective local-array threshold.
func (e *Exchanger) Threshold() int { return e.threshold }

// Swap exchanges the contents of a and b, where a lies entirely before b.
// Afterwards b's former bytes start at a.Pos, the bytes that were between
// the two ranges follow them, and a's former bytes end at b.End().
//
// The returned delta is a.Len - b.Len: positive when the earlier range was
// longer, negative when the later one was. Everything strictly between the
// ranges moved by -delta.
//
// Nothing is written when an error is returned.
func (e *Exchanger) Swap(buf []byte, a, b Span) (int, error) {
	if err := check(buf, a, b); err != nil {
		return 0, err
	}
	delta := a.Len - b.Len
	if a.Len == 0 && b.Len == 0 {
		return 0, nil
	}

	need := a.Len + b.Len
	var tmp []byte
	if need <= e.threshold {
		tmp = e.local[:need]
	} else {
		var err error
		if tmp, err = e.scratch.Take(need); err != nil {
			return 0, fmt.Errorf("exchange %d+%d bytes: %w", a.Len, b.Len, err)
		}
	}

	if delta == 0 {
		swapEqual(buf, a, b, tmp[:a.Len])
		return 0, nil
	}

	// smaller range first, larger after it
	small, large := a, b
	if a.Len > b.Len {
		small, large = b, a
	}
	savedSmall := tmp[:small.Len]
	savedLarge := tmp[small.Len:need]
	copy(savedSmall, buf[small.Pos:small.End()])
	copy(savedLarge, buf[large.Pos:large.End()])

	// close the gap: the middle moves by the length difference
	mid := buf[a.End():b.Pos]
	copy(buf[a.Pos+b.Len:], mid)

	if a.Len > b.Len {
		copy(buf[a.Pos:], savedSmall)
		copy(buf[b.End()-a.Len:], savedLarge)
	} else {
		copy(buf[a.Pos:], savedLarge)
		copy(buf[b.End()-a.Len:], savedSmall)
	}
	return delta, nil
}

func swapEqual(buf []byte, a, b Span, tmp []byte) {
	copy(tmp, buf[a.Pos:a.End()])
	copy(buf[a.Pos:a.End()], buf[b.Pos:b.End()])
	copy(buf[b.Pos:b.End()], tmp)
}

func check(buf []byte, a, b Span) error {
	if a.Pos < 0 || a.Len < 0 || b.Pos < 0 || b.Len < 0 {
		return fmt.Errorf("%w: negative span %v %v", ErrOutOfBounds, a, b)
	}
	if b.End() > len(buf) || a.End() > len(buf) {
		return fmt.Errorf("%w: %v %v in %d bytes", ErrOutOfBounds, a, b, len(buf))
	}
	if a.End() > b.Pos {
		return fmt.Errorf("%w: %v %v", ErrOverlap, a, b)
	}
	return nil
}

var defaultExchanger = New(DefaultThreshold, nil)

// Swap exchanges a and b using a shared package-level Exchanger. It is
// meant for tests and one-off calls; concurrent callers need their own
// Exchanger.
func Swap(buf []byte, a, b Span) (int, error) {
	return defaultExchanger.Swap(buf, a, b)
}
