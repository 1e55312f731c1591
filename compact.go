package nameseq

import (
	"go.uber.org/zap"

	"github.com/rawbytedev/nameseq/internal/common"
)

// Build compacts the buffer in place so every value sits in element order
// in the first ValuesLen bytes. Padding ends up after them in no
// particular order. Build must not be called again before Restore.
func (l *Layout) Build() error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.state == stateBuilt {
		return ErrAlreadyBuilt
	}
	if l.opts.VerifyRestore {
		l.fingerprint = common.Fingerprint(l.region)
	}

	// Before step k: slots[0:k] are values 0..k-1, slots[k:2k] are
	// padding, slots[2k] is value k untouched.
	l.exchanges = 0
	for k := 1; k < l.count; k++ {
		if err := l.swap(k, 2*k); err != nil {
			s := l.slots[2*k]
			return l.fail(layoutError("build", 2*k, s.Id, s.Kind, err))
		}
	}
	l.state = stateBuilt

	if ce := Logger().Check(zap.DebugLevel, "layout built"); ce != nil {
		ce.Write(
			zap.Int("elements", l.count),
			zap.Int("exchanges", l.exchanges),
			zap.Int("values_len", l.valuesLen))
	}
	return nil
}

// OnlyValues returns every value concatenated in element order, as a
// zero-copy view of the buffer. It is empty unless the layout is built
// and must not be used after Restore or Close.
func (l *Layout) OnlyValues() string {
	if l.state != stateBuilt {
		return ""
	}
	return common.View(l.region[:l.valuesLen])
}
