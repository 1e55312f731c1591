package nameseq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/nameseq/pkg/exchange"
)

const (
	DefaultWorkers           = 1
	DefaultParallelThreshold = 256
)

type Options struct {
	// ScratchThreshold is the combined size of two exchanged ranges at or
	// below which the exchange runs on a local array. Larger exchanges use
	// pooled scratch held by the layout until Close.
	ScratchThreshold int `yaml:"scratch_threshold"`
	// ScratchLimit caps the pooled scratch a single exchange may take.
	// 0 means unbounded.
	ScratchLimit int `yaml:"scratch_limit"`
	// Workers is the number of goroutines a layout keeps for shifting slot
	// positions during Build and Restore. They start with Construct and
	// stop at Close, so a layout with Workers > 1 must be closed. 1 keeps
	// everything on the calling goroutine.
	Workers int `yaml:"workers"`
	// ParallelThreshold is the smallest number of slots worth splitting
	// across workers.
	ParallelThreshold int `yaml:"parallel_threshold"`
	// VerifyRestore fingerprints the buffer at Build and checks it after
	// Restore.
	VerifyRestore bool `yaml:"verify_restore"`
}

func DefaultOptions() Options {
	return Options{
		ScratchThreshold:  exchange.DefaultThreshold,
		Workers:           DefaultWorkers,
		ParallelThreshold: DefaultParallelThreshold,
		VerifyRestore:     true,
	}
}

// normalize fills zero fields with defaults and rejects negative ones.
func (o Options) normalize() (Options, error) {
	if o.ScratchThreshold < 0 || o.ScratchLimit < 0 || o.Workers < 0 || o.ParallelThreshold < 0 {
		return o, fmt.Errorf("nameseq: negative option in %+v", o)
	}
	if o.ScratchThreshold == 0 {
		o.ScratchThreshold = exchange.DefaultThreshold
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.ParallelThreshold == 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	return o, nil
}

// ParseOptions decodes YAML on top of DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("nameseq options: %w", err)
	}
	return opts.normalize()
}

func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return ParseOptions(data)
}
