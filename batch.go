package strafekit

import (
	"sync"

	"github.com/strafekit/strafekit/assert"
	"github.com/strafekit/strafekit/worker"
)

// Batch advances many independent simulations in lockstep, fanning each tick
// out over the worker pool. Sims in a batch may share a level; each owns its
// agent state, so ticks never contend.
type Batch struct {
	sims []*Sim
}

// NewBatch groups the given simulations for lockstep ticking.
func NewBatch(sims ...*Sim) *Batch {
	for _, s := range sims {
		assert.IsTrue(s != nil, "batch requires non-nil simulations")
	}
	return &Batch{sims: sims}
}

// Len reports the number of simulations in the batch.
func (b *Batch) Len() int {
	return len(b.sims)
}

// Sim returns the i-th simulation.
func (b *Batch) Sim(i int) *Sim {
	return b.sims[i]
}

// Tick advances every simulation by dt with its matching input and returns
// the outputs in the same order. It blocks until all sims have ticked.
func (b *Batch) Tick(inputs []Input, dt float32) []Output {
	assert.IsTrue(len(inputs) == len(b.sims), "batch tick requires one input per simulation (%d != %d)", len(inputs), len(b.sims))

	outs := make([]Output, len(b.sims))
	var wg sync.WaitGroup
	wg.Add(len(b.sims))
	for i := range b.sims {
		i := i
		worker.Submit(func() {
			defer wg.Done()
			outs[i] = b.sims[i].Tick(inputs[i], dt)
		})
	}
	wg.Wait()
	return outs
}
