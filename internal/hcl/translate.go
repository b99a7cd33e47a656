package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/taskassist/internal/config"
	"github.com/specialistvlad/taskassist/internal/options"
	"github.com/specialistvlad/taskassist/internal/paths"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translatePathBlock turns every attribute of a path block into a path entry.
// A string becomes a single path; a list or tuple of strings becomes an
// ordered list.
func translatePathBlock(pb *pathBlock, evalCtx *hcl.EvalContext) (config.PathDecl, error) {
	attrs, diags := pb.Body.JustAttributes()
	if diags.HasErrors() {
		return config.PathDecl{}, fmt.Errorf("path %q: %w", pb.Direction, diags)
	}

	entries := make(paths.Entries, len(attrs))
	for _, name := range sortedAttrNames(attrs) {
		attr := attrs[name]
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return config.PathDecl{}, fmt.Errorf("path %q: %w", pb.Direction, diags)
		}
		v, err := toPathValue(val)
		if err != nil {
			return config.PathDecl{}, fmt.Errorf("path %q attribute %q (%s): %w", pb.Direction, name, attr.Range, err)
		}
		entries[name] = v
	}
	return config.PathDecl{Direction: pb.Direction, Entries: entries}, nil
}

func toPathValue(val cty.Value) (paths.Value, error) {
	if val.IsNull() || !val.IsWhollyKnown() {
		return paths.Value{}, fmt.Errorf("path value must be known and not null")
	}
	ty := val.Type()
	if ty == cty.String {
		return paths.One(val.AsString()), nil
	}
	if ty.IsTupleType() || ty.IsListType() || ty.IsSetType() {
		listVal, err := convert.Convert(val, cty.List(cty.String))
		if err != nil {
			return paths.Value{}, fmt.Errorf("cannot convert %s to list of strings: %w", ty.FriendlyName(), err)
		}
		var items []string
		if err := gocty.FromCtyValue(listVal, &items); err != nil {
			return paths.Value{}, err
		}
		return paths.Many(items...), nil
	}
	return paths.Value{}, fmt.Errorf("path value must be a string or a list of strings, got %s", ty.FriendlyName())
}

// translateExtBlock copies the string attributes of an ext block into dst.
func translateExtBlock(eb *extBlock, evalCtx *hcl.EvalContext, dst map[string]string) error {
	attrs, diags := eb.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("ext: %w", diags)
	}
	for _, name := range sortedAttrNames(attrs) {
		val, diags := attrs[name].Expr.Value(evalCtx)
		if diags.HasErrors() {
			return fmt.Errorf("ext: %w", diags)
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil || strVal.IsNull() {
			return fmt.Errorf("ext %q: value must be a string", name)
		}
		dst[name] = strVal.AsString()
	}
	return nil
}

// translateOptionBlock converts the params object of an option block into an
// options.Block.
func translateOptionBlock(ob *optionBlock) (config.OptionDecl, error) {
	decl := config.OptionDecl{Name: ob.Name, Replace: ob.Replace, Params: options.Block{}}
	if ob.Params.IsNull() {
		return decl, nil
	}
	ty := ob.Params.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return config.OptionDecl{}, fmt.Errorf("option %q: params must be an object, got %s", ob.Name, ty.FriendlyName())
	}
	native, err := ctyToNative(ob.Params)
	if err != nil {
		return config.OptionDecl{}, fmt.Errorf("option %q: %w", ob.Name, err)
	}
	decl.Params = native.(map[string]any)
	return decl, nil
}

func sortedAttrNames(attrs hcl.Attributes) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
