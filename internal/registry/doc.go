// Package registry provides an in-memory task scheduler endpoint: a name to
// task map that satisfies assist.Scheduler.
//
// The registry only stores what was registered. It never runs a task on its
// own; an embedding program looks a task up by name and invokes it with its
// own context, which is where cancellation and timeouts live.
//
// Registering a name twice replaces the earlier task and logs a warning, so a
// configuration can be re-applied (for example after a config file change)
// without tearing the registry down.
package registry
