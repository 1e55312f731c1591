package nameseq

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/rawbytedev/nameseq/internal/common"
)

// Buffer supplies the interleaved buffer: value i starts at Offset(i) and
// values appear in element order with gaps between them. *arena.Arena
// implements it.
type Buffer interface {
	Bytes() []byte
	Count() int
	Offset(i int) int
}

// Construct measures every value and gap and returns a layout over buf.
// value is called exactly once per element. The region governed by the
// layout runs from the first value's start to the last value's end; any
// bytes outside it are never touched.
//
// On error no layout is returned.
func Construct[E any](elems []E, value func(E) string, buf Buffer, opts Options) (*Layout, error) {
	n := len(elems)
	if n == 0 {
		return nil, ErrNoElements
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyElements, n)
	}
	if buf.Count() != n {
		return nil, fmt.Errorf("%w: %d elements, %d buffered values", ErrMalformedBuffer, n, buf.Count())
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	data := buf.Bytes()
	base := buf.Offset(0)
	if base < 0 || base > len(data) {
		return nil, layoutError("construct", 0, 0, KindValue, fmt.Errorf("%w: offset %d", ErrMalformedBuffer, base))
	}

	// locate value i and check it is really there
	locate := func(i int, v string) (int, error) {
		off := buf.Offset(i)
		if off < base || off+len(v) > len(data) {
			return 0, layoutError("construct", 2*i, uint32(i), KindValue,
				fmt.Errorf("%w: value at %d+%d outside %d bytes", ErrMalformedBuffer, off, len(v), len(data)))
		}
		if !common.Equal(data[off:off+len(v)], v) {
			return 0, layoutError("construct", 2*i, uint32(i), KindValue,
				fmt.Errorf("%w: bytes at %d do not hold the value", ErrMalformedBuffer, off))
		}
		return off - base, nil
	}

	slots := make([]Slot, 0, 2*n)
	var valuesLen, padsLen int

	cur := value(elems[0])
	curOff, err := locate(0, cur)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		next := value(elems[i+1])
		nextOff, err := locate(i+1, next)
		if err != nil {
			return nil, err
		}
		gap := nextOff - (curOff + len(cur))
		if gap < 0 {
			return nil, layoutError("construct", 2*i+1, uint32(i), KindPadding,
				fmt.Errorf("%w: value %d ends at %d, value %d starts at %d", ErrOverlap, i, curOff+len(cur), i+1, nextOff))
		}
		id := uint32(i)
		slots = append(slots,
			Slot{Id: id, Kind: KindValue, Origin: curOff, Position: curOff, Length: len(cur)},
			Slot{Id: id, Kind: KindPadding, Origin: curOff + len(cur), Position: curOff + len(cur), Length: gap})
		valuesLen += len(cur)
		padsLen += gap
		cur, curOff = next, nextOff
	}
	// the last value has no real gap after it
	end := curOff + len(cur)
	last := uint32(n - 1)
	slots = append(slots,
		Slot{Id: last, Kind: KindValue, Origin: curOff, Position: curOff, Length: len(cur)},
		Slot{Id: last, Kind: KindPadding, Origin: end, Position: end})
	valuesLen += len(cur)

	l := newLayout(data[base:base+end], slots, opts)
	l.valuesLen = valuesLen
	l.padsLen = padsLen

	if ce := Logger().Check(zap.DebugLevel, "layout constructed"); ce != nil {
		ce.Write(
			zap.Int("elements", n),
			zap.Int("values_len", valuesLen),
			zap.Int("pads_len", padsLen))
	}
	return l, nil
}
