// Package assist provides Assist, the configuration object that a task runner
// populates once at start-up and that registered task bodies read back while
// they execute.
//
// An Assist tracks:
//   - the input and output roots and their named path entries (see package paths),
//   - supported file-extension aliases,
//   - named option blocks with deep-merge updates (see package options),
//   - two status flags (see package status).
//
// Tasks are handed to an external Scheduler through SetTask. Every bound task
// receives the same *Assist, so the object is shared mutable state. Nothing in
// this package locks; callers must not race writes to the same path entry or
// option name.
package assist

import (
	"log/slog"
	"os"

	"github.com/specialistvlad/taskassist/internal/options"
	"github.com/specialistvlad/taskassist/internal/paths"
	"github.com/specialistvlad/taskassist/internal/status"
)

// Assist is the configuration instance.
type Assist struct {
	logger    *slog.Logger
	scheduler Scheduler

	paths   *paths.Store
	ext     map[string]string
	options *options.Store
	status  *status.Flags
}

// Option configures an Assist at construction time.
type Option func(*Assist)

// WithLogger sets the logger used to report usage errors.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assist) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithScheduler sets the scheduler that receives bound tasks from SetTask.
func WithScheduler(s Scheduler) Option {
	return func(a *Assist) {
		a.scheduler = s
	}
}

// DefaultRoot returns the base directory used for an omitted root: the
// current working directory, or "." if it cannot be determined.
func DefaultRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// New creates an Assist. An empty inputRoot or outputRoot falls back to
// DefaultRoot.
func New(inputRoot, outputRoot string, opts ...Option) *Assist {
	if inputRoot == "" {
		inputRoot = DefaultRoot()
	}
	if outputRoot == "" {
		outputRoot = DefaultRoot()
	}

	a := &Assist{
		logger:  slog.Default(),
		paths:   paths.NewStore(inputRoot, outputRoot),
		ext:     make(map[string]string),
		options: options.NewStore(),
		status:  &status.Flags{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetPath overwrites named path entries of the "in..." or "out..." section.
// An entry named paths.RootKey changes the root. An invalid direction or a
// list-valued root is logged and ignored.
func (a *Assist) SetPath(direction string, entries paths.Entries) *Assist {
	dir, err := paths.ParseDirection(direction)
	if err != nil {
		a.logger.Error("setPath: invalid direction.", "direction", direction, "error", err)
		return a
	}
	if err := a.paths.Set(dir, entries); err != nil {
		a.logger.Error("setPath: entries rejected.", "direction", dir.String(), "error", err)
		return a
	}
	a.logger.Debug("Path entries set.", "direction", dir.String(), "count", len(entries))
	return a
}

// GetPath returns the entry typeName of a section joined with that section's
// root. A list entry is joined element by element.
func (a *Assist) GetPath(direction, typeName string) (paths.Value, error) {
	return a.getPath("getPath", direction, typeName, paths.GetOptions{})
}

// GetRawPath returns the entry typeName exactly as it was stored.
func (a *Assist) GetRawPath(direction, typeName string) (paths.Value, error) {
	return a.getPath("getRawPath", direction, typeName, paths.GetOptions{Raw: true})
}

func (a *Assist) getPath(op, direction, typeName string, opts paths.GetOptions) (paths.Value, error) {
	dir, err := paths.ParseDirection(direction)
	if err != nil {
		a.logger.Error(op+": invalid direction.", "direction", direction, "error", err)
		return paths.Value{}, err
	}
	v, err := a.paths.Get(dir, typeName, opts)
	if err != nil {
		a.logger.Debug(op+": lookup failed.", "direction", dir.String(), "type", typeName, "error", err)
		return paths.Value{}, err
	}
	return v, nil
}

// PathNames returns the sorted entry names of a section, or nil for an
// invalid direction.
func (a *Assist) PathNames(direction string) []string {
	dir, err := paths.ParseDirection(direction)
	if err != nil {
		a.logger.Error("pathNames: invalid direction.", "direction", direction, "error", err)
		return nil
	}
	return a.paths.Names(dir)
}

// InputRootPath returns the current input root.
func (a *Assist) InputRootPath() string { return a.paths.InputRoot() }

// OutputRootPath returns the current output root.
func (a *Assist) OutputRootPath() string { return a.paths.OutputRoot() }

// SupportExt records ext as the extension for label.
func (a *Assist) SupportExt(label, ext string) *Assist {
	a.ext[label] = ext
	return a
}

// Ext returns the live label to extension map.
func (a *Assist) Ext() map[string]string { return a.ext }

// SetOption deep-merges param into the block stored under name, or stores
// it as the block when there is none yet. A merge error is logged and leaves
// the stored block unchanged.
func (a *Assist) SetOption(name string, param options.Block) *Assist {
	return a.setOption("setOption", name, param, true)
}

// ReplaceOption stores param as the whole block under name.
func (a *Assist) ReplaceOption(name string, param options.Block) *Assist {
	return a.setOption("replaceOption", name, param, false)
}

func (a *Assist) setOption(op, name string, param options.Block, diff bool) *Assist {
	if err := a.options.Set(name, param, diff); err != nil {
		a.logger.Error(op+": merge failed.", "option", name, "error", err)
	}
	return a
}

// Options returns the live name to block map.
func (a *Assist) Options() map[string]options.Block { return a.options.All() }

// Option returns the block stored under name.
func (a *Assist) Option(name string) (options.Block, bool) { return a.options.Get(name) }

// OptionNames returns the stored option names in sorted order.
func (a *Assist) OptionNames() []string { return a.options.Names() }

// Status returns the status flags.
func (a *Assist) Status() *status.Flags { return a.status }

// Logger returns the logger the Assist reports through.
func (a *Assist) Logger() *slog.Logger { return a.logger }
