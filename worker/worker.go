// Package worker runs CPU-bound jobs on a fixed pool sized to the machine, so
// batch simulation fan-out does not spawn a goroutine per agent per tick.
package worker

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}
		run(f)
	}
}

func run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("worker job panicked")
		}
	}()
	f()
}

// Submit queues a job on the pool. It blocks while the queue is full.
func Submit(f func()) {
	workerQueue <- f
}
