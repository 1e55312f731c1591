package nameseq

import (
	"go.uber.org/zap"

	"github.com/rawbytedev/nameseq/internal/common"
	"github.com/rawbytedev/nameseq/internal/scratch"
	"github.com/rawbytedev/nameseq/pkg/exchange"
)

type state uint8

const (
	stateOpen state = iota
	stateBuilt
	stateFailed
	stateClosed
)

// Layout owns the slots describing a buffer for one Build/Restore cycle
// at a time. The buffer must not be written by anyone else while the
// layout is in use. A Layout is not safe for concurrent use.
type Layout struct {
	opts   Options
	region []byte
	slots  []Slot
	count  int

	valuesLen int
	padsLen   int

	state       state
	lease       *scratch.Lease
	xchg        *exchange.Exchanger
	pool        *shiftPool
	fingerprint uint64
	exchanges   int
}

func newLayout(region []byte, slots []Slot, opts Options) *Layout {
	lease := scratch.NewLease(opts.ScratchLimit)
	l := &Layout{
		opts:   opts,
		region: region,
		slots:  slots,
		count:  len(slots) / 2,
		lease:  lease,
		xchg:   exchange.New(opts.ScratchThreshold, lease),
	}
	if opts.Workers > 1 {
		l.pool = newShiftPool(opts.Workers)
	}
	return l
}

// Count is the number of elements (Value slots).
func (l *Layout) Count() int { return l.count }

// Len is the number of bytes the layout governs.
func (l *Layout) Len() int { return len(l.region) }

func (l *Layout) ValuesLen() int { return l.valuesLen }

func (l *Layout) PadsLen() int { return l.padsLen }

// Built reports whether the buffer is currently compacted.
func (l *Layout) Built() bool { return l.state == stateBuilt }

// Slot returns the slot currently at index i, in buffer order.
func (l *Layout) Slot(i int) Slot { return l.slots[i] }

// Slots returns a copy of all slots in buffer order.
func (l *Layout) Slots() []Slot {
	return append([]Slot(nil), l.slots...)
}

// Bytes returns a zero-copy view of the governed region in its current
// state.
func (l *Layout) Bytes() string { return common.View(l.region) }

// Value returns element i's value as a zero-copy view, in either state.
// It is empty once the layout has failed or been closed.
func (l *Layout) Value(i int) string {
	if l.state == stateFailed || l.state == stateClosed {
		return ""
	}
	s := l.valueSlot(i)
	return common.View(l.region[s.Position:s.End()])
}

func (l *Layout) valueSlot(i int) Slot {
	if l.state == stateBuilt {
		return l.slots[i]
	}
	return l.slots[2*i]
}

// Each calls fn for every value in element order until fn returns false.
func (l *Layout) Each(fn func(i int, v string) bool) {
	for i, n := 0, l.count; i < n; i++ {
		if !fn(i, l.Value(i)) {
			return
		}
	}
}

// Close stops the shift workers and releases pooled scratch storage.
// Closing a built layout leaves the buffer compacted. Close is idempotent.
func (l *Layout) Close() error {
	if l.state == stateClosed {
		return nil
	}
	if l.state == stateBuilt {
		Logger().Warn("layout closed while built; buffer left compacted",
			zap.Int("slots", len(l.slots)))
	}
	if l.pool != nil {
		l.pool.stop()
		l.pool = nil
	}
	l.lease.Release()
	l.state = stateClosed
	return nil
}

func (l *Layout) usable() error {
	switch l.state {
	case stateClosed:
		return ErrClosed
	case stateFailed:
		return ErrLayoutCorrupted
	}
	return nil
}

// swap exchanges the byte ranges of slots i < j, moves both records to
// each other's index and fixes the Position of everything in between.
func (l *Layout) swap(i, j int) error {
	a, b := l.slots[i], l.slots[j]
	delta, err := l.xchg.Swap(l.region,
		exchange.Span{Pos: a.Position, Len: a.Length},
		exchange.Span{Pos: b.Position, Len: b.Length})
	if err != nil {
		return err
	}
	l.shift(i+1, j, delta)
	b.Position, a.Position = a.Position, b.Position-delta
	l.slots[i], l.slots[j] = b, a
	l.exchanges++
	return nil
}

// fail poisons the layout; positional bookkeeping can no longer be trusted.
func (l *Layout) fail(err error) error {
	l.state = stateFailed
	Logger().Error("layout failed", zap.Error(err))
	return err
}
