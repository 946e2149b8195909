package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskRunnerDrainWaitsForTasks(t *testing.T) {
	runner := NewTaskRunner()
	var completed int32

	for i := 0; i < 5; i++ {
		runner.Submit(func() {
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
		})
	}

	assert.True(t, runner.Drain(2*time.Second))
	assert.Equal(t, int32(5), atomic.LoadInt32(&completed))
}

func TestTaskRunnerDrainTimeout(t *testing.T) {
	runner := NewTaskRunner()
	release := make(chan struct{})
	runner.Submit(func() {
		<-release
	})

	assert.False(t, runner.Drain(50*time.Millisecond))
	close(release)
	assert.True(t, runner.Drain(time.Second))
}

func TestTaskRunnerDrainEmpty(t *testing.T) {
	runner := NewTaskRunner()
	assert.True(t, runner.Drain(time.Second))
}
