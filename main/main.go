package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"go.uber.org/zap"

	"github.com/rawbytedev/nameseq"
	"github.com/rawbytedev/nameseq/pkg/arena"
)

type record struct {
	ID   int
	Name string
}

func main() {
	config := flag.String("config", "", "YAML file with nameseq options")
	count := flag.Int("n", 1000, "number of records")
	cycles := flag.Int("cycles", 100, "build/restore cycles")
	profile := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	nameseq.SetLogger(log.Named("nameseq"))

	opts := nameseq.DefaultOptions()
	if *config != "" {
		if opts, err = nameseq.LoadOptions(*config); err != nil {
			log.Fatal("load options", zap.Error(err))
		}
	}

	records := make([]record, *count)
	for i := range records {
		records[i] = record{ID: i, Name: fmt.Sprintf("record-%06d", i)}
	}
	name := func(r record) string { return r.Name }

	a := arena.New(arena.Options{Separator: "\x00", Capacity: *count * 14})
	arena.Collect(a, records, name)

	l, err := nameseq.Construct(records, name, a, opts)
	if err != nil {
		log.Fatal("construct", zap.Error(err))
	}
	defer l.Close()

	if *profile != "" {
		runtime.MemProfileRate = 1
	}
	var total int
	for i := 0; i < *cycles; i++ {
		if err := l.Build(); err != nil {
			log.Fatal("build", zap.Int("cycle", i), zap.Error(err))
		}
		total += len(l.OnlyValues())
		if err := l.Restore(); err != nil {
			log.Fatal("restore", zap.Int("cycle", i), zap.Error(err))
		}
	}
	log.Info("done",
		zap.Int("records", *count),
		zap.Int("cycles", *cycles),
		zap.Int("values_len", l.ValuesLen()),
		zap.Int("bytes_seen", total))

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal("create profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("write profile", zap.Error(err))
		}
	}
}
