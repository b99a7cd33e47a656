// Package paths holds the input and output path sections of a task
// configuration and resolves named entries against each section's root.
//
// A section always has a root. Named entries are either a single relative path
// or an ordered list of relative paths; resolving an entry joins every path
// with the root, while a raw lookup returns the stored value untouched.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// RootKey is the entry name that replaces a section's root in Set.
const RootKey = "root"

var (
	// ErrInvalidDirection is returned when a direction matches neither "in"
	// nor "out".
	ErrInvalidDirection = errors.New("invalid path direction")
	// ErrRootNotString is returned when Set is asked to store a list as root.
	ErrRootNotString = errors.New("root must be a single path")
	// ErrUnknownPath is returned by Get for a type name that was never set.
	ErrUnknownPath = errors.New("unknown path type")
)

// Direction selects one of the two path sections.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection matches s by prefix: anything starting with "in" is Input,
// anything starting with "out" is Output.
func ParseDirection(s string) (Direction, error) {
	switch {
	case strings.HasPrefix(s, "in"):
		return Input, nil
	case strings.HasPrefix(s, "out"):
		return Output, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Entries is a set of named path values passed to Set.
type Entries map[string]Value

// GetOptions controls how Get returns a value.
type GetOptions struct {
	// Raw returns the stored value without joining it with the root.
	Raw bool
}

type section struct {
	root    string
	entries map[string]Value
}

// Store holds both path sections. It has no internal locking.
type Store struct {
	sections [2]*section
}

// NewStore creates a store with the given roots and no named entries.
func NewStore(inputRoot, outputRoot string) *Store {
	return &Store{
		sections: [2]*section{
			{root: inputRoot, entries: make(map[string]Value)},
			{root: outputRoot, entries: make(map[string]Value)},
		},
	}
}

func (s *Store) section(dir Direction) (*section, error) {
	if dir != Input && dir != Output {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	return s.sections[dir], nil
}

// Set overwrites the given entries of a section, one level deep. An entry
// named RootKey replaces the root. Nothing is changed when an error is
// returned.
func (s *Store) Set(dir Direction, entries Entries) error {
	sec, err := s.section(dir)
	if err != nil {
		return err
	}
	if root, ok := entries[RootKey]; ok && root.IsList() {
		return fmt.Errorf("%w: %s root got %d paths", ErrRootNotString, dir, len(root.items))
	}
	for name, v := range entries {
		if name == RootKey {
			sec.root = v.String()
			continue
		}
		sec.entries[name] = v
	}
	return nil
}

// Get returns the entry stored under name. Unless opts.Raw is set, a single
// path is joined with the section root and every element of a list is joined
// with it in order.
func (s *Store) Get(dir Direction, name string, opts GetOptions) (Value, error) {
	sec, err := s.section(dir)
	if err != nil {
		return Value{}, err
	}
	if name == RootKey {
		return One(sec.root), nil
	}
	v, ok := sec.entries[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s %q", ErrUnknownPath, dir, name)
	}
	if opts.Raw {
		return v.mapEach(func(p string) string { return p }), nil
	}
	return v.mapEach(func(p string) string { return filepath.Join(sec.root, p) }), nil
}

// Root returns the root of a section, or "" for an invalid direction.
func (s *Store) Root(dir Direction) string {
	sec, err := s.section(dir)
	if err != nil {
		return ""
	}
	return sec.root
}

// InputRoot returns the root of the input section.
func (s *Store) InputRoot() string { return s.Root(Input) }

// OutputRoot returns the root of the output section.
func (s *Store) OutputRoot() string { return s.Root(Output) }

// Names returns the sorted entry names of a section, not including the root.
func (s *Store) Names(dir Direction) []string {
	sec, err := s.section(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(sec.entries))
	for name := range sec.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
