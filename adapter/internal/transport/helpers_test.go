package transport_test

import (
	"bytes"
	"sync"
)

// goRunner implements app.TaskRunner with a goroutine per task.
type goRunner struct{}

func (goRunner) Submit(task func()) error {
	go task()
	return nil
}

// lockedBuffer is a bytes.Buffer safe for the writes of a publish task racing with test reads.
type lockedBuffer struct {
	mu     sync.Mutex
	buffer *bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.Write(p)
}

func (b *lockedBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.Len()
}
