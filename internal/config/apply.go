package config

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/taskassist/internal/assist"
	"github.com/specialistvlad/taskassist/internal/ctxlog"
	"github.com/specialistvlad/taskassist/internal/paths"
)

// Apply replays the model onto a: path sections first, then extensions,
// then option declarations in order, then status flags. A path section with
// an invalid direction fails the whole apply before anything is changed.
func Apply(ctx context.Context, m *Model, a *assist.Assist) error {
	logger := ctxlog.FromContext(ctx)

	for _, decl := range m.Paths {
		if _, err := paths.ParseDirection(decl.Direction); err != nil {
			return fmt.Errorf("path section %q: %w", decl.Direction, err)
		}
		if root, ok := decl.Entries[paths.RootKey]; ok && root.IsList() {
			return fmt.Errorf("path section %q: %w", decl.Direction, paths.ErrRootNotString)
		}
	}

	for _, decl := range m.Paths {
		a.SetPath(decl.Direction, decl.Entries)
	}
	logger.Debug("Applied path sections.", "count", len(m.Paths))

	labels := make([]string, 0, len(m.Ext))
	for label := range m.Ext {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		a.SupportExt(label, m.Ext[label])
	}
	logger.Debug("Applied extensions.", "count", len(labels))

	for _, decl := range m.Options {
		if decl.Replace {
			a.ReplaceOption(decl.Name, decl.Params)
			continue
		}
		a.SetOption(decl.Name, decl.Params)
	}
	logger.Debug("Applied option declarations.", "count", len(m.Options))

	if m.Status != nil {
		if m.Status.MainTaskID != nil {
			a.Status().SetMainTaskID(*m.Status.MainTaskID)
		}
		if m.Status.Watching != nil {
			a.Status().SetWatching(*m.Status.Watching)
		}
	}
	return nil
}
