package utils

import (
	"sync"
	"time"
)

// TaskRunner runs detached units of work, typically the persistence
// step that continues after a webhook has already been acknowledged.
// The handler never waits on a submitted task; shutdown calls Drain so
// in-flight writes finish before the process exits.
type TaskRunner struct {
	wg sync.WaitGroup
}

// NewTaskRunner creates a TaskRunner.
func NewTaskRunner() *TaskRunner {
	return &TaskRunner{}
}

// Submit schedules task on its own goroutine.
func (r *TaskRunner) Submit(task func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		task()
	}()
}

// Drain waits for all submitted tasks to finish, up to timeout.
// It returns false if the timeout elapsed with tasks still running.
func (r *TaskRunner) Drain(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
