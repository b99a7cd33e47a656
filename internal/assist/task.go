package assist

import (
	"context"
	"fmt"
)

// Scheduler is the external task scheduler. RegisterTask is called exactly
// once per SetTask call with a bound task.
type Scheduler interface {
	RegisterTask(name string, fn func(ctx context.Context) error)
}

// TaskFunc is a task body. self is the Assist the task was bound to.
type TaskFunc func(ctx context.Context, self *Assist) error

// RegisterFunc takes over registration of a task completely.
type RegisterFunc func(name string, self *Assist)

// TaskDescriptor describes how SetTask registers a task. Build one with
// BoundTask or CustomRegistration.
type TaskDescriptor interface {
	register(a *Assist, name string, self *Assist)
}

type boundTask struct {
	fn TaskFunc
}

type customRegistration struct {
	fn RegisterFunc
}

// BoundTask returns a descriptor that binds fn to an Assist and hands it to
// the scheduler.
func BoundTask(fn TaskFunc) TaskDescriptor {
	if fn == nil {
		panic("assist: BoundTask called with nil task function")
	}
	return boundTask{fn: fn}
}

// CustomRegistration returns a descriptor that calls fn instead of the
// scheduler.
func CustomRegistration(fn RegisterFunc) TaskDescriptor {
	if fn == nil {
		panic("assist: CustomRegistration called with nil function")
	}
	return customRegistration{fn: fn}
}

func (d boundTask) register(a *Assist, name string, self *Assist) {
	if a.scheduler == nil {
		panic(fmt.Sprintf("assist: task %q needs a scheduler, none configured (use WithScheduler)", name))
	}
	fn := d.fn
	a.scheduler.RegisterTask(name, func(ctx context.Context) error {
		return fn(ctx, self)
	})
	a.logger.Debug("Task registered with scheduler.", "task", name)
}

func (d customRegistration) register(a *Assist, name string, self *Assist) {
	d.fn(name, self)
	a.logger.Debug("Task registered through custom registration.", "task", name)
}

// SetTask registers a task named name. The task is bound to boundSelf when
// given, otherwise to the receiver. A nil descriptor is a programming error
// and panics.
func (a *Assist) SetTask(name string, desc TaskDescriptor, boundSelf ...*Assist) *Assist {
	if desc == nil {
		panic(fmt.Sprintf("assist: SetTask(%q) called with nil descriptor", name))
	}
	self := a
	if len(boundSelf) > 0 && boundSelf[0] != nil {
		self = boundSelf[0]
	}
	desc.register(a, name, self)
	return a
}
