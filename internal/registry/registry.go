package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// TaskFunc is a registered task with its configuration already bound.
type TaskFunc func(ctx context.Context) error

// Registry holds the registered tasks for a single application instance.
type Registry struct {
	logger *slog.Logger
	tasks  map[string]TaskFunc
}

// New creates an empty Registry. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		tasks:  make(map[string]TaskFunc),
	}
}

// RegisterTask stores fn under name, replacing any earlier registration.
func (r *Registry) RegisterTask(name string, fn func(ctx context.Context) error) {
	if fn == nil {
		panic(fmt.Sprintf("registry: task '%s' registered with nil function", name))
	}
	if _, exists := r.tasks[name]; exists {
		r.logger.Warn("Replacing previously registered task.", "task", name)
	} else {
		r.logger.Debug("Registering task.", "task", name)
	}
	r.tasks[name] = fn
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (TaskFunc, bool) {
	fn, ok := r.tasks[name]
	return fn, ok
}

// Names returns all registered task names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int { return len(r.tasks) }
