// Package arena builds the contiguous buffer that nameseq operates on:
// values concatenated in order with explicit gaps between them.
package arena

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/nameseq/internal/common"
)

// DefaultSeparator is written between consecutive values by Append.
const DefaultSeparator = "\x00"

type Options struct {
	// Separator is written before every value except the first. It may be
	// empty, which yields zero-length gaps.
	Separator string `yaml:"separator"`
	// Capacity preallocates the buffer in bytes.
	Capacity int `yaml:"capacity"`
}

func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator}
}

// ParseOptions decodes YAML on top of DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("arena options: %w", err)
	}
	if opts.Capacity < 0 {
		return Options{}, fmt.Errorf("arena options: negative capacity %d", opts.Capacity)
	}
	return opts, nil
}

func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return ParseOptions(data)
}

// Arena is an append-only byte buffer that remembers where each value
// starts. It is not safe for concurrent use.
type Arena struct {
	sep     string
	buf     []byte
	offsets []int
	lens    []int
}

func New(opts Options) *Arena {
	return &Arena{
		sep: opts.Separator,
		buf: make([]byte, 0, max(opts.Capacity, 0)),
	}
}

// Append writes the separator (unless this is the first value) followed
// by value, and returns the value's index.
func (a *Arena) Append(value string) int {
	if len(a.offsets) > 0 {
		a.buf = append(a.buf, a.sep...)
	}
	return a.put(value)
}

// AppendGap writes gap followed by value. The gap before the first value
// is ignored so the buffer always starts with a value.
func (a *Arena) AppendGap(gap []byte, value string) int {
	if len(a.offsets) > 0 {
		a.buf = append(a.buf, gap...)
	}
	return a.put(value)
}

func (a *Arena) put(value string) int {
	a.offsets = append(a.offsets, len(a.buf))
	a.lens = append(a.lens, len(value))
	a.buf = append(a.buf, value...)
	return len(a.offsets) - 1
}

// Bytes returns the backing buffer. It is the buffer nameseq mutates.
func (a *Arena) Bytes() []byte { return a.buf }

// Count reports the number of values appended.
func (a *Arena) Count() int { return len(a.offsets) }

// Offset returns the start of value i in Bytes.
func (a *Arena) Offset(i int) int { return a.offsets[i] }

// Value returns value i as a zero-copy view. Only meaningful while the
// buffer is in its appended layout (not while a nameseq.Layout is built).
func (a *Arena) Value(i int) string {
	return common.View(a.buf[a.offsets[i] : a.offsets[i]+a.lens[i]])
}

func (a *Arena) Reset() {
	a.buf = a.buf[:0]
	a.offsets = a.offsets[:0]
	a.lens = a.lens[:0]
}

// Collect appends value(e) for every element of elems.
func Collect[E any](a *Arena, elems []E, value func(E) string) {
	for _, e := range elems {
		a.Append(value(e))
	}
}
