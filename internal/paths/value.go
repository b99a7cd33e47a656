package paths

import (
	"path/filepath"
	"strings"
)

// Value is a stored path entry. It holds either a single path or an ordered
// list of paths; the two shapes are resolved differently against a root.
type Value struct {
	items []string
	list  bool
}

// One returns a single-path value.
func One(p string) Value {
	return Value{items: []string{p}}
}

// Many returns an ordered list value. An empty call still yields a list.
func Many(ps ...string) Value {
	items := make([]string, len(ps))
	copy(items, ps)
	return Value{items: items, list: true}
}

// IsList reports whether the value was stored as an ordered list.
func (v Value) IsList() bool { return v.list }

// IsZero reports whether v is the zero Value, i.e. nothing was stored.
func (v Value) IsZero() bool { return v.items == nil && !v.list }

// String returns the single path. For a list it returns the elements joined
// with the OS list separator, which is mostly useful for logging.
func (v Value) String() string {
	if !v.list {
		if len(v.items) == 0 {
			return ""
		}
		return v.items[0]
	}
	return strings.Join(v.items, string(filepath.ListSeparator))
}

// Strings returns a copy of the stored paths. A single value yields a
// one-element slice.
func (v Value) Strings() []string {
	out := make([]string, len(v.items))
	copy(out, v.items)
	return out
}

// mapEach returns a new value of the same shape with fn applied to each path.
func (v Value) mapEach(fn func(string) string) Value {
	items := make([]string, len(v.items))
	for i, p := range v.items {
		items[i] = fn(p)
	}
	return Value{items: items, list: v.list}
}
