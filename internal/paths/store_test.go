package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in        string
		expected  Direction
		expectErr bool
	}{
		{in: "input", expected: Input},
		{in: "in", expected: Input},
		{in: "inbound", expected: Input},
		{in: "output", expected: Output},
		{in: "out", expected: Output},
		{in: "outDir", expected: Output},
		{in: "bogus", expectErr: true},
		{in: "", expectErr: true},
		{in: "IN", expectErr: true},
		{in: "i", expectErr: true},
	}

	for _, tc := range testCases {
		tc := tc // per-iteration copy; module targets go 1.21 loop semantics
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			dir, err := ParseDirection(tc.in)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrInvalidDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dir)
		})
	}
}

func TestStore_SingleEntry(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := NewStore("/default", "/default")
	require.NoError(t, s.Set(Input, Entries{RootKey: One("/src")}))
	require.NoError(t, s.Set(Input, Entries{"css": One("styles")}))

	// --- Act ---
	resolved, err := s.Get(Input, "css", GetOptions{})
	require.NoError(t, err)
	raw, err := s.Get(Input, "css", GetOptions{Raw: true})
	require.NoError(t, err)

	// --- Assert ---
	assert.False(t, resolved.IsList())
	assert.Equal(t, filepath.Join("/src", "styles"), resolved.String())
	assert.Equal(t, "styles", raw.String())
	assert.Equal(t, "/src", s.InputRoot())
	assert.Equal(t, "/default", s.OutputRoot())
}

func TestStore_ListEntry(t *testing.T) {
	t.Parallel()

	s := NewStore("/default", "/default")
	require.NoError(t, s.Set(Output, Entries{
		RootKey: One("/dist"),
		"js":    Many("a.js", "b.js"),
	}))

	resolved, err := s.Get(Output, "js", GetOptions{})
	require.NoError(t, err)
	assert.True(t, resolved.IsList())
	assert.Equal(t, []string{filepath.Join("/dist", "a.js"), filepath.Join("/dist", "b.js")}, resolved.Strings())

	raw, err := s.Get(Output, "js", GetOptions{Raw: true})
	require.NoError(t, err)
	assert.True(t, raw.IsList())
	assert.Equal(t, []string{"a.js", "b.js"}, raw.Strings())
}

func TestStore_JoinNormalizes(t *testing.T) {
	t.Parallel()

	s := NewStore("/src/", "/dist")
	require.NoError(t, s.Set(Input, Entries{"sass": One("./scss/../sass")}))

	v, err := s.Get(Input, "sass", GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/src", "sass"), v.String())
}

func TestStore_SetIsShallowOverwrite(t *testing.T) {
	t.Parallel()

	s := NewStore("/src", "/dist")
	require.NoError(t, s.Set(Input, Entries{"js": Many("a.js", "b.js"), "css": One("css")}))
	require.NoError(t, s.Set(Input, Entries{"js": Many("c.js")}))

	js, err := s.Get(Input, "js", GetOptions{Raw: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.js"}, js.Strings())

	css, err := s.Get(Input, "css", GetOptions{Raw: true})
	require.NoError(t, err)
	assert.Equal(t, "css", css.String(), "untouched entries must survive")

	assert.Equal(t, []string{"css", "js"}, s.Names(Input))
	assert.Empty(t, s.Names(Output))
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	s := NewStore("/src", "/dist")

	t.Run("unknown type name", func(t *testing.T) {
		t.Parallel()
		v, err := s.Get(Input, "missing", GetOptions{})
		require.ErrorIs(t, err, ErrUnknownPath)
		assert.True(t, v.IsZero())
	})

	t.Run("invalid direction", func(t *testing.T) {
		t.Parallel()
		_, err := s.Get(Direction(7), "css", GetOptions{})
		require.ErrorIs(t, err, ErrInvalidDirection)
		require.ErrorIs(t, s.Set(Direction(7), Entries{"css": One("x")}), ErrInvalidDirection)
		assert.Empty(t, s.Root(Direction(7)))
	})

	t.Run("list root is rejected without mutation", func(t *testing.T) {
		t.Parallel()
		s := NewStore("/src", "/dist")
		err := s.Set(Output, Entries{RootKey: Many("/a", "/b"), "js": One("js")})
		require.ErrorIs(t, err, ErrRootNotString)
		assert.Equal(t, "/dist", s.OutputRoot())
		assert.Empty(t, s.Names(Output))
	})
}

func TestStore_RootLookup(t *testing.T) {
	t.Parallel()

	s := NewStore("/src", "/dist")

	v, err := s.Get(Output, RootKey, GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/dist", v.String())
}

func TestValue(t *testing.T) {
	t.Parallel()

	var zero Value
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
	assert.Empty(t, zero.Strings())

	empty := Many()
	assert.False(t, empty.IsZero())
	assert.True(t, empty.IsList())

	src := []string{"a", "b"}
	many := Many(src...)
	src[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, many.Strings(), "Many must copy its input")

	out := many.Strings()
	out[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, many.Strings(), "Strings must return a copy")

	assert.Equal(t, "a"+string(filepath.ListSeparator)+"b", many.String())
	assert.Equal(t, "input", Input.String())
	assert.Equal(t, "output", Output.String())
}
