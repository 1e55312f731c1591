package nameseq

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

type shiftJob struct {
	slots []Slot
	delta int
}

// shiftPool is a fixed set of goroutines applying position shifts for one
// Layout. It is started by Construct and stopped by Close.
type shiftPool struct {
	workers int
	jobs    chan shiftJob
	pending sync.WaitGroup
	g       errgroup.Group
}

func newShiftPool(workers int) *shiftPool {
	p := &shiftPool{workers: workers, jobs: make(chan shiftJob, workers)}
	for i := 0; i < workers; i++ {
		p.g.Go(func() error {
			for job := range p.jobs {
				shiftRange(job.slots, job.delta)
				p.pending.Done()
			}
			return nil
		})
	}
	return p
}

// run splits slots into one contiguous chunk per worker and waits for all
// of them.
func (p *shiftPool) run(slots []Slot, delta int) {
	chunk := (len(slots) + p.workers - 1) / p.workers
	for lo := 0; lo < len(slots); lo += chunk {
		p.pending.Add(1)
		p.jobs <- shiftJob{slots: slots[lo:min(lo+chunk, len(slots))], delta: delta}
	}
	p.pending.Wait()
}

func (p *shiftPool) stop() {
	close(p.jobs)
	_ = p.g.Wait() // workers never fail
}

// shift subtracts delta from the Position of slots[from:to]. Each update
// touches a distinct slot, so large ranges go to the layout's worker pool.
func (l *Layout) shift(from, to, delta int) {
	n := to - from
	if n <= 0 || delta == 0 {
		return
	}
	if l.pool == nil || n < l.opts.ParallelThreshold {
		shiftRange(l.slots[from:to], delta)
		return
	}
	l.pool.run(l.slots[from:to], delta)
}

func shiftRange(slots []Slot, delta int) {
	for i := range slots {
		slots[i].Position -= delta
	}
}
