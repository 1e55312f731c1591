// Package nameseq presents one string member of every element of a slice
// as a single contiguous run of bytes without building a []string.
//
// The values must already sit in one buffer, separated by gaps, as
// produced by the arena package:
//
//	a := arena.New(arena.DefaultOptions())
//	arena.Collect(a, people, func(p Person) string { return p.Name })
//
//	l, err := nameseq.Construct(people, func(p Person) string { return p.Name }, a, nameseq.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer l.Close()
//
//	if err := l.Build(); err != nil {
//		return err
//	}
//	all := l.OnlyValues() // every name, back to back
//	...
//	if err := l.Restore(); err != nil {
//		return err
//	}
//
// Build moves the values into a prefix of the buffer in place; Restore
// puts every byte back where it was. Between the two, anything else that
// aliases the buffer (including strings handed out by the arena) sees the
// compacted bytes.
package nameseq
