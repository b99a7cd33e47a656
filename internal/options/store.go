// Package options stores named option blocks for task bodies.
//
// An option block is an arbitrary nested key-value structure. Updating a block
// either replaces it wholesale or deep-merges the new values into it, see
// merge.Merge for the exact rules.
package options

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/taskassist/internal/merge"
)

// Block is a single named option block.
type Block = map[string]any

// Store maps option names to blocks. It has no internal locking.
type Store struct {
	blocks map[string]Block
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{blocks: make(map[string]Block)}
}

// Set stores param under name. If no block exists yet, or diff is false, param
// becomes the whole block. Otherwise param is deep-merged into the existing
// block. A nil param counts as an empty block. On a merge error the stored
// block is left as it was.
func (s *Store) Set(name string, param Block, diff bool) error {
	if param == nil {
		param = Block{}
	}
	existing, ok := s.blocks[name]
	if !ok || !diff {
		s.blocks[name] = param
		return nil
	}
	merged, err := merge.Merge(existing, param)
	if err != nil {
		return fmt.Errorf("option %q: %w", name, err)
	}
	s.blocks[name] = merged
	return nil
}

// Get returns the block stored under name.
func (s *Store) Get(name string) (Block, bool) {
	b, ok := s.blocks[name]
	return b, ok
}

// All returns the live name to block map. Writes through it are visible to the
// store.
func (s *Store) All() map[string]Block {
	return s.blocks
}

// Names returns the stored option names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.blocks))
	for name := range s.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored blocks.
func (s *Store) Len() int { return len(s.blocks) }
