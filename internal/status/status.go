// Package status holds the two process-local flags that task bodies use to
// coordinate: the identifier of the primary task and whether a watch loop is
// active.
package status

// Flags is a pair of independently settable fields. Any value is accepted.
// There is no locking; tasks running concurrently must coordinate writes.
type Flags struct {
	mainTaskID string
	isWatching bool
}

// MainTaskID returns the identifier of the primary task, "" by default.
func (f *Flags) MainTaskID() string { return f.mainTaskID }

// SetMainTaskID stores id verbatim.
func (f *Flags) SetMainTaskID(id string) { f.mainTaskID = id }

// IsWatching reports whether a watch loop is active.
func (f *Flags) IsWatching() bool { return f.isWatching }

// SetWatching stores the watch-mode flag.
func (f *Flags) SetWatching(v bool) { f.isWatching = v }
