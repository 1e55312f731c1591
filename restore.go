package nameseq

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rawbytedev/nameseq/internal/common"
)

type restoreState uint8

const (
	// slot w-1 is value s: bring padding s to w
	stateNeedDirectSwap restoreState = iota
	// slot w-1 is something else: bring value s to w-1 first
	stateNeedRealign
	stateRestored
)

func (s restoreState) String() string {
	switch s {
	case stateNeedDirectSwap:
		return "direct"
	case stateNeedRealign:
		return "realign"
	default:
		return "restored"
	}
}

// restorer walks segment ids upward and puts value s at 2s and padding s
// at 2s+1. Everything before the working index is final.
type restorer struct {
	l   *Layout
	seg uint32
	w   int
}

// newRestorer starts a walk from segment 0 and resets the exchange count.
func newRestorer(l *Layout) restorer {
	l.exchanges = 0
	return restorer{l: l, w: 1}
}

func (r *restorer) state() restoreState {
	if r.w >= len(r.l.slots) {
		return stateRestored
	}
	prev := r.l.slots[r.w-1]
	if prev.Kind == KindValue && prev.Id == r.seg {
		return stateNeedDirectSwap
	}
	return stateNeedRealign
}

// step performs one transition and reports the state it handled.
func (r *restorer) step() (restoreState, error) {
	st := r.state()
	switch st {
	case stateNeedDirectSwap:
		j, err := r.find(r.w, KindPadding)
		if err != nil {
			return st, err
		}
		if j != r.w {
			if err := r.l.swap(r.w, j); err != nil {
				return st, layoutError("restore", j, r.seg, KindPadding, err)
			}
		}
		r.seg++
		r.w += 2
	case stateNeedRealign:
		j, err := r.find(r.w-1, KindValue)
		if err != nil {
			return st, err
		}
		if err := r.l.swap(r.w-1, j); err != nil {
			return st, layoutError("restore", j, r.seg, KindValue, err)
		}
	}
	return st, nil
}

// find scans slots[from:] for the current segment's slot of the given kind.
func (r *restorer) find(from int, kind Kind) (int, error) {
	for j := from; j < len(r.l.slots); j++ {
		s := r.l.slots[j]
		if s.Id == r.seg && s.Kind == kind {
			return j, nil
		}
	}
	return -1, layoutError("restore", from, r.seg, kind,
		fmt.Errorf("%w: slot not found", ErrLayoutCorrupted))
}

// Restore undoes Build: afterwards the buffer holds exactly the bytes it
// held before Build and every slot's Position equals its Origin.
func (l *Layout) Restore() error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.state != stateBuilt {
		return ErrNotBuilt
	}

	r := newRestorer(l)
	for {
		st, err := r.step()
		if err != nil {
			return l.fail(err)
		}
		if st == stateRestored {
			break
		}
	}

	if l.opts.VerifyRestore && common.Fingerprint(l.region) != l.fingerprint {
		return l.fail(ErrRestoreMismatch)
	}
	l.state = stateOpen

	if ce := Logger().Check(zap.DebugLevel, "layout restored"); ce != nil {
		ce.Write(zap.Int("elements", l.count), zap.Int("exchanges", l.exchanges))
	}
	return nil
}
