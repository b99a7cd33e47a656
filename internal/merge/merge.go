// Package merge implements the recursive key-value merge used by the option
// store.
//
// Only plain objects (map[string]any) are combined field by field. Every other
// value, including slices of any element type, nil and values whose type differs
// between the two sides, is replaced wholesale by the incoming value.
package merge

import (
	"fmt"

	"dario.cat/mergo"
)

// Merge copies every key of add into base and returns base. When both sides
// hold a plain object under the same key, the two objects are merged
// recursively. Keys only present in base are left untouched.
//
// Merge mutates base, nested objects included. A nil base is replaced by a
// fresh map.
func Merge(base, add map[string]any) (map[string]any, error) {
	if base == nil {
		base = make(map[string]any, len(add))
	}
	if len(add) == 0 {
		return base, nil
	}
	if err := mergo.Merge(&base, add, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge blocks: %w", err)
	}
	return base, nil
}
