package nameseq

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rawbytedev/nameseq/pkg/arena"
)

func benchLayout(b *testing.B, n int, opts Options) *Layout {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("name-%d", i)
	}
	a := arena.New(arena.Options{Separator: strings.Repeat(" ", 7)})
	arena.Collect(a, values, identity)
	l, err := Construct(values, identity, a, opts)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { l.Close() })
	return l
}

func BenchmarkBuildRestore(b *testing.B) {
	for _, n := range []int{16, 256, 2048} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			l := benchLayout(b, n, DefaultOptions())
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = l.Build()
				_ = l.Restore()
			}
		})
	}
}

func BenchmarkBuildRestoreParallelShift(b *testing.B) {
	opts := DefaultOptions()
	opts.Workers = 4
	opts.ParallelThreshold = 512
	l := benchLayout(b, 4096, opts)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Build()
		_ = l.Restore()
	}
}

func BenchmarkJoinBaseline(b *testing.B) {
	values := make([]string, 2048)
	for i := range values {
		values[i] = fmt.Sprintf("name-%d", i)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strings.Join(values, "")
	}
}
