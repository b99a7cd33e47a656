package assist

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/taskassist/internal/options"
	"github.com/specialistvlad/taskassist/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAssist returns an Assist whose log output is captured in the
// returned buffer.
func newTestAssist(t *testing.T, inputRoot, outputRoot string, opts ...Option) (*Assist, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(inputRoot, outputRoot, append([]Option{WithLogger(logger)}, opts...)...), buf
}

func TestNew_DefaultRoots(t *testing.T) {
	t.Parallel()

	a := New("", "")
	assert.Equal(t, DefaultRoot(), a.InputRootPath())
	assert.Equal(t, DefaultRoot(), a.OutputRootPath())

	b := New("/src", "")
	assert.Equal(t, "/src", b.InputRootPath())
	assert.Equal(t, DefaultRoot(), b.OutputRootPath())
}

func TestAssist_Paths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	a, _ := newTestAssist(t, "/default", "/default")
	a.SetPath("input", paths.Entries{paths.RootKey: paths.One("/src")}).
		SetPath("input", paths.Entries{"css": paths.One("styles")}).
		SetPath("output", paths.Entries{paths.RootKey: paths.One("/dist"), "js": paths.Many("a.js", "b.js")})

	// --- Act & Assert ---
	css, err := a.GetPath("input", "css")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/src", "styles"), css.String())

	rawCSS, err := a.GetRawPath("in", "css")
	require.NoError(t, err)
	assert.Equal(t, "styles", rawCSS.String())

	js, err := a.GetPath("out", "js")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/dist", "a.js"), filepath.Join("/dist", "b.js")}, js.Strings())

	rawJS, err := a.GetRawPath("output", "js")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "b.js"}, rawJS.Strings())

	assert.Equal(t, "/src", a.InputRootPath())
	assert.Equal(t, "/dist", a.OutputRootPath())
	assert.Equal(t, []string{"css"}, a.PathNames("input"))
	assert.Equal(t, []string{"js"}, a.PathNames("output"))
}

func TestAssist_InvalidDirection(t *testing.T) {
	t.Parallel()

	a, logs := newTestAssist(t, "/src", "/dist")
	a.SetPath("input", paths.Entries{"css": paths.One("styles")})

	// --- Act ---
	got, err := a.GetPath("bogus", "css")
	returned := a.SetPath("bogus", paths.Entries{paths.RootKey: paths.One("/elsewhere")})

	// --- Assert ---
	require.ErrorIs(t, err, paths.ErrInvalidDirection)
	assert.True(t, got.IsZero())
	assert.Same(t, a, returned)
	assert.Equal(t, "/src", a.InputRootPath(), "invalid direction must not mutate")
	assert.Equal(t, "/dist", a.OutputRootPath(), "invalid direction must not mutate")
	assert.Contains(t, logs.String(), "getPath: invalid direction.")
	assert.Contains(t, logs.String(), "setPath: invalid direction.")
	assert.Nil(t, a.PathNames("bogus"))
}

func TestAssist_UnknownPath(t *testing.T) {
	t.Parallel()

	a, _ := newTestAssist(t, "/src", "/dist")

	got, err := a.GetPath("input", "sass")
	require.ErrorIs(t, err, paths.ErrUnknownPath)
	assert.True(t, got.IsZero())
}

func TestAssist_ListRootRejected(t *testing.T) {
	t.Parallel()

	a, logs := newTestAssist(t, "/src", "/dist")
	a.SetPath("output", paths.Entries{paths.RootKey: paths.Many("/a", "/b")})

	assert.Equal(t, "/dist", a.OutputRootPath())
	assert.Contains(t, logs.String(), "setPath: entries rejected.")
}

func TestAssist_Options(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		apply    func(a *Assist)
		expected options.Block
	}{
		{
			name: "set merges",
			apply: func(a *Assist) {
				a.SetOption("x", options.Block{"a": 1}).SetOption("x", options.Block{"b": 2})
			},
			expected: options.Block{"a": 1, "b": 2},
		},
		{
			name: "set merges nested blocks",
			apply: func(a *Assist) {
				a.SetOption("x", options.Block{"m": options.Block{"a": 1}}).
					SetOption("x", options.Block{"m": options.Block{"b": 2}})
			},
			expected: options.Block{"m": options.Block{"a": 1, "b": 2}},
		},
		{
			name: "replace replaces",
			apply: func(a *Assist) {
				a.SetOption("x", options.Block{"a": 1}).ReplaceOption("x", options.Block{"b": 2})
			},
			expected: options.Block{"b": 2},
		},
		{
			name: "replace on a new name stores the block",
			apply: func(a *Assist) {
				a.ReplaceOption("x", nil)
			},
			expected: options.Block{},
		},
	}

	for _, tc := range testCases {
		tc := tc // per-iteration copy; module targets go 1.21 loop semantics
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a, _ := newTestAssist(t, "/src", "/dist")
			tc.apply(a)

			if diff := cmp.Diff(tc.expected, a.Options()["x"]); diff != "" {
				t.Errorf("options[x] mismatch (-want +got):\n%s", diff)
			}
			got, ok := a.Option("x")
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, []string{"x"}, a.OptionNames())
		})
	}
}

func TestAssist_SupportExt(t *testing.T) {
	t.Parallel()

	a, _ := newTestAssist(t, "/src", "/dist")
	a.SupportExt("js", "js").SupportExt("css", "scss").SupportExt("css", "sass")

	assert.Equal(t, map[string]string{"js": "js", "css": "sass"}, a.Ext())
}

func TestAssist_Status(t *testing.T) {
	t.Parallel()

	a, _ := newTestAssist(t, "/src", "/dist")
	a.Status().SetWatching(true)

	assert.True(t, a.Status().IsWatching())
	assert.Empty(t, a.Status().MainTaskID())

	a.Status().SetMainTaskID("default")
	assert.Equal(t, "default", a.Status().MainTaskID())
	assert.True(t, a.Status().IsWatching())
}
