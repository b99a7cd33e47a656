// Package yaml provides the YAML implementation of config.Loader. It accepts
// the same model as the HCL loader:
//
//	paths:
//	  input:
//	    root: src
//	    css: styles
//	    js: [vendor.js, app.js]
//	ext:
//	  css: scss
//	options:
//	  - name: sass
//	    replace: false
//	    params:
//	      output_style: compressed
//	status:
//	  main_task: build
//	  watching: false
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/specialistvlad/taskassist/internal/config"
	"github.com/specialistvlad/taskassist/internal/ctxlog"
	"github.com/specialistvlad/taskassist/internal/options"
	"github.com/specialistvlad/taskassist/internal/paths"
	"gopkg.in/yaml.v3"
)

// pathValue decodes a path entry from either a scalar or a sequence. yaml.v3
// skips UnmarshalYAML for null nodes, so set stays false for `~`.
type pathValue struct {
	value paths.Value
	set   bool
}

func (p *pathValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		p.value = paths.One(s)
		p.set = true
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("line %d: path list must contain only strings: %w", node.Line, err)
		}
		p.value = paths.Many(items...)
		p.set = true
		return nil
	default:
		return fmt.Errorf("line %d: path value must be a string or a list of strings", node.Line)
	}
}

type optionDoc struct {
	Name    string         `yaml:"name"`
	Replace bool           `yaml:"replace"`
	Params  map[string]any `yaml:"params"`
}

type statusDoc struct {
	MainTask *string `yaml:"main_task"`
	Watching *bool   `yaml:"watching"`
}

// fileDoc is the top-level document. Paths keeps the user's direction keys
// so that prefix matching happens in one place.
type fileDoc struct {
	Paths   map[string]map[string]pathValue `yaml:"paths"`
	Ext     map[string]string               `yaml:"ext"`
	Options []optionDoc                     `yaml:"options"`
	Status  *statusDoc                      `yaml:"status"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses each file in order and merges the results into one model.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file_count", len(files))

	model := config.NewModel()
	for _, file := range files {
		switch filepath.Ext(file) {
		case ".yaml", ".yml":
		default:
			return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, file)
		}
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		m, err := l.ParseSource(ctx, file, src)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	logger.Debug("YAML loading complete.", "paths", len(model.Paths), "ext", len(model.Ext), "options", len(model.Options))
	return model, nil
}

// ParseSource parses an in-memory YAML stream. filename is only used in error
// messages. Unknown top-level keys are rejected. A stream with several
// documents is read in order, later documents applying on top of earlier ones.
func (l *Loader) ParseSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	model := config.NewModel()
	for n := 1; ; n++ {
		var doc fileDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode YAML file %s (document %d): %w", filename, n, err)
		}
		m, err := translateDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("%s (document %d): %w", filename, n, err)
		}
		model.Merge(m)
	}

	ctxlog.FromContext(ctx).Debug("Parsed YAML file.", "file", filename, "paths", len(model.Paths), "options", len(model.Options))
	return model, nil
}

func translateDoc(doc fileDoc) (*config.Model, error) {
	model := config.NewModel()

	directions := make([]string, 0, len(doc.Paths))
	for dir := range doc.Paths {
		directions = append(directions, dir)
	}
	sort.Strings(directions)
	for _, dir := range directions {
		entries := make(paths.Entries, len(doc.Paths[dir]))
		for name, pv := range doc.Paths[dir] {
			if !pv.set {
				return nil, fmt.Errorf("path %q in section %q must be a string or a list of strings, got null", name, dir)
			}
			entries[name] = pv.value
		}
		model.Paths = append(model.Paths, config.PathDecl{Direction: dir, Entries: entries})
	}

	for label, ext := range doc.Ext {
		model.Ext[label] = ext
	}

	for i, od := range doc.Options {
		if od.Name == "" {
			return nil, fmt.Errorf("option #%d has no name", i+1)
		}
		params := normalizeBlock(od.Params)
		if params == nil {
			params = options.Block{}
		}
		model.Options = append(model.Options, config.OptionDecl{
			Name:    od.Name,
			Params:  params,
			Replace: od.Replace,
		})
	}

	if doc.Status != nil {
		model.Status = &config.StatusDecl{
			MainTaskID: doc.Status.MainTask,
			Watching:   doc.Status.Watching,
		}
	}
	return model, nil
}

// normalizeBlock rewrites the map[any]any values yaml.v3 produces for
// mappings with non-string keys into string-keyed blocks, so they merge and
// encode like HCL objects.
func normalizeBlock(block map[string]any) options.Block {
	if block == nil {
		return nil
	}
	for k, v := range block {
		block[k] = normalizeValue(v)
	}
	return block
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeBlock(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalizeValue(item)
		}
		return t
	default:
		return v
	}
}
