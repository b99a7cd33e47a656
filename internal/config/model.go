package config

import (
	"context"
	"errors"

	"github.com/specialistvlad/taskassist/internal/options"
	"github.com/specialistvlad/taskassist/internal/paths"
)

// ErrUnsupportedFormat is returned when no loader handles a file.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every given file and translates it into the
	// format-agnostic model. Files are applied in the order given.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the unified representation of one or more configuration files.
type Model struct {
	Paths   []PathDecl
	Ext     map[string]string
	Options []OptionDecl
	Status  *StatusDecl
}

// PathDecl is one `path` section: the direction as written by the user and
// the entries to set on it.
type PathDecl struct {
	Direction string
	Entries   paths.Entries
}

// OptionDecl is one option declaration. Replace selects
// Assist.ReplaceOption instead of Assist.SetOption.
type OptionDecl struct {
	Name    string
	Params  options.Block
	Replace bool
}

// StatusDecl holds initial status flags. Nil fields are left unchanged.
type StatusDecl struct {
	MainTaskID *string
	Watching   *bool
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Ext: make(map[string]string)}
}

// Merge appends other onto m: path and option declarations are concatenated,
// ext labels and non-nil status fields from other win.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Paths = append(m.Paths, other.Paths...)
	if m.Ext == nil {
		m.Ext = make(map[string]string, len(other.Ext))
	}
	for label, ext := range other.Ext {
		m.Ext[label] = ext
	}
	m.Options = append(m.Options, other.Options...)
	if other.Status != nil {
		if m.Status == nil {
			m.Status = &StatusDecl{}
		}
		if other.Status.MainTaskID != nil {
			m.Status.MainTaskID = other.Status.MainTaskID
		}
		if other.Status.Watching != nil {
			m.Status.Watching = other.Status.Watching
		}
	}
}
