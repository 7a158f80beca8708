package app

import (
	"context"
	"github.com/pkg/errors"
	"sync"
)

// ItemTask is the handle of a running publish task for one subscribed item.
type ItemTask struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewItemTask is the constructor for ItemTask.
func NewItemTask() *ItemTask {
	ctx, cancel := context.WithCancel(context.Background())
	return &ItemTask{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Run calls fn with the task's context and marks the task finished when fn returns.
// Run must be called at most once.
func (t *ItemTask) Run(fn func(ctx context.Context)) {
	defer close(t.done)
	fn(t.ctx)
}

// Stop cancels the task and blocks until Run has returned.
func (t *ItemTask) Stop() {
	t.cancel()
	<-t.done
}

// abort releases a task that will never Run.
func (t *ItemTask) abort() {
	t.cancel()
	close(t.done)
}

// SubscriptionPool is a container for the tasks of subscribed items, used to Add or Remove them as items
// are subscribed or unsubscribed.
type SubscriptionPool struct {
	// tasks contains *ItemTask objects, keys are item names.
	tasks sync.Map
}

// NewSubscriptionPool is a constructor for SubscriptionPool.
func NewSubscriptionPool() *SubscriptionPool {
	return &SubscriptionPool{
		tasks: sync.Map{},
	}
}

func (p *SubscriptionPool) Add(itemName string, task *ItemTask) error {
	_, loaded := p.tasks.LoadOrStore(itemName, task)
	if loaded {
		return errors.Wrapf(ErrAlreadySubscribed, "item '%s', not overriding", itemName)
	}
	return nil
}

// Remove takes the task of itemName out of the pool. ok is false if the item had no task.
func (p *SubscriptionPool) Remove(itemName string) (task *ItemTask, ok bool) {
	value, loaded := p.tasks.LoadAndDelete(itemName)
	if !loaded {
		return nil, false
	}
	task, ok = value.(*ItemTask)
	return task, ok
}

// RemoveTask takes task out of the pool only if it is still the task registered for itemName.
// Returns false if the item was unsubscribed meanwhile, or subscribed again with another task.
func (p *SubscriptionPool) RemoveTask(itemName string, task *ItemTask) bool {
	return p.tasks.CompareAndDelete(itemName, task)
}
