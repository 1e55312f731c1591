package nameseq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rawbytedev/nameseq/pkg/exchange"
)

var (
	ErrNoElements      = errors.New("nameseq: no elements")
	ErrTooManyElements = errors.New("nameseq: element count exceeds segment id range")
	ErrMalformedBuffer = errors.New("nameseq: buffer does not match elements")
	ErrOverlap         = exchange.ErrOverlap
	ErrAlreadyBuilt    = errors.New("nameseq: layout already built")
	ErrNotBuilt        = errors.New("nameseq: layout not built")
	ErrClosed          = errors.New("nameseq: layout closed")
	ErrLayoutCorrupted = errors.New("nameseq: layout corrupted")
	ErrRestoreMismatch = errors.New("nameseq: restored buffer differs from original")
)

// LayoutError carries the slot context of a failure inside Construct,
// Build or Restore.
type LayoutError struct {
	Cause error
	Op    string
	Index int
	Id    uint32
	Kind  Kind
}

func (e *LayoutError) Error() string {
	var b strings.Builder
	b.WriteString("nameseq: ")
	b.WriteString(e.Op)
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at slot %d", e.Index)
	}
	if e.Kind != KindNone {
		fmt.Fprintf(&b, " (%s %d)", e.Kind, e.Id)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *LayoutError) Unwrap() error {
	return e.Cause
}

func layoutError(op string, index int, id uint32, kind Kind, cause error) *LayoutError {
	return &LayoutError{
		Op:    op,
		Index: index,
		Id:    id,
		Kind:  kind,
		Cause: cause,
	}
}
