package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/taskassist/internal/config"
	"github.com/specialistvlad/taskassist/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses each file in order and merges the results into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(paths))

	model := config.NewModel()

	for _, path := range paths {
		if filepath.Ext(path) != ".hcl" {
			return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", path, err)
		}
		m, err := l.ParseSource(ctx, path, src)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	logger.Debug("HCL loading complete.", "paths", len(model.Paths), "ext", len(model.Ext), "options", len(model.Options))
	return model, nil
}

// ParseSource parses a single in-memory HCL document. filename is only used
// in diagnostics.
func (l *Loader) ParseSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	evalCtx := newEvalContext()

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := config.NewModel()

	for _, pb := range root.Paths {
		decl, err := translatePathBlock(pb, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		model.Paths = append(model.Paths, decl)
	}
	for _, eb := range root.Ext {
		if err := translateExtBlock(eb, evalCtx, model.Ext); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}
	for _, ob := range root.Options {
		decl, err := translateOptionBlock(ob)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		model.Options = append(model.Options, decl)
	}
	if root.Status != nil {
		model.Status = &config.StatusDecl{
			MainTaskID: root.Status.MainTask,
			Watching:   root.Status.Watching,
		}
	}

	logger.Debug("Parsed HCL file.", "file", filename, "paths", len(model.Paths), "options", len(model.Options))
	return model, nil
}

// newEvalContext exposes a small set of string helpers to expressions.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}
