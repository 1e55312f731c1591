package nameseq

import "fmt"

type Kind uint8

const (
	KindNone Kind = iota
	KindValue
	KindPadding
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindPadding:
		return "padding"
	default:
		return "none"
	}
}

// Slot is one typed byte range of the buffer. A Value slot and the
// Padding slot that followed it originally share an Id. Only Position
// changes after Construct.
type Slot struct {
	Id       uint32
	Kind     Kind
	Origin   int
	Position int
	Length   int
}

func (s Slot) End() int { return s.Position + s.Length }

func (s Slot) String() string {
	return fmt.Sprintf("id=%d kind=%s len=%d origin=%d pos=%d", s.Id, s.Kind, s.Length, s.Origin, s.Position)
}
