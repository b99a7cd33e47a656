package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/taskassist/internal/assist"
	"github.com/specialistvlad/taskassist/internal/options"
	"github.com/specialistvlad/taskassist/internal/paths"
)

// Report is a snapshot of an Assist, used by the describe task.
type Report struct {
	Input   SectionReport            `json:"input"`
	Output  SectionReport            `json:"output"`
	Ext     map[string]string        `json:"ext"`
	Options map[string]options.Block `json:"options"`
	Status  StatusReport             `json:"status"`
	Tasks   []string                 `json:"tasks"`
}

// SectionReport holds one path section. Entry values are a string or a list
// of strings, following how they were stored.
type SectionReport struct {
	Root     string         `json:"root"`
	Resolved map[string]any `json:"resolved"`
	Raw      map[string]any `json:"raw"`
}

// StatusReport holds the status flags.
type StatusReport struct {
	MainTaskID string `json:"main_task"`
	Watching   bool   `json:"watching"`
}

// BuildReport reads everything a task body can see from a.
func BuildReport(a *assist.Assist, tasks []string) (*Report, error) {
	input, err := buildSection(a, "input", a.InputRootPath())
	if err != nil {
		return nil, err
	}
	output, err := buildSection(a, "output", a.OutputRootPath())
	if err != nil {
		return nil, err
	}
	return &Report{
		Input:   input,
		Output:  output,
		Ext:     a.Ext(),
		Options: a.Options(),
		Status: StatusReport{
			MainTaskID: a.Status().MainTaskID(),
			Watching:   a.Status().IsWatching(),
		},
		Tasks: tasks,
	}, nil
}

func buildSection(a *assist.Assist, direction, root string) (SectionReport, error) {
	sec := SectionReport{
		Root:     root,
		Resolved: make(map[string]any),
		Raw:      make(map[string]any),
	}
	for _, name := range a.PathNames(direction) {
		resolved, err := a.GetPath(direction, name)
		if err != nil {
			return SectionReport{}, err
		}
		raw, err := a.GetRawPath(direction, name)
		if err != nil {
			return SectionReport{}, err
		}
		sec.Resolved[name] = reportValue(resolved)
		sec.Raw[name] = reportValue(raw)
	}
	return sec, nil
}

func reportValue(v paths.Value) any {
	if v.IsList() {
		return v.Strings()
	}
	return v.String()
}

// DescribeOption names the option block the describe task reads its settings
// from, for example `option "describe" { params = { format = "json" } }`.
const DescribeOption = "describe"

type describeOptions struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
}

// describeSettings resolves the report settings. The --format flag wins over
// the describe option block, which wins over the text default.
func (a *App) describeSettings(self *assist.Assist) (describeOptions, error) {
	settings := describeOptions{Format: FormatText, Indent: 2}
	if block, ok := self.Option(DescribeOption); ok {
		decoded, err := options.Decode[describeOptions](block)
		if err != nil {
			return settings, fmt.Errorf("invalid %q option: %w", DescribeOption, err)
		}
		if decoded.Format != "" {
			settings.Format = decoded.Format
		}
		if decoded.Indent > 0 {
			settings.Indent = decoded.Indent
		}
	}
	if a.config.OutputFormat != "" {
		settings.Format = a.config.OutputFormat
	}
	switch settings.Format {
	case FormatText, FormatJSON:
	default:
		return settings, fmt.Errorf("invalid report format %q: must be '%s' or '%s'", settings.Format, FormatText, FormatJSON)
	}
	return settings, nil
}

// describe is the body of the built-in describe task.
func (a *App) describe(ctx context.Context, self *assist.Assist) error {
	settings, err := a.describeSettings(self)
	if err != nil {
		return err
	}
	report, err := BuildReport(self, a.registry.Names())
	if err != nil {
		return err
	}
	if settings.Format == FormatJSON {
		return writeJSON(a.outW, report, settings.Indent)
	}
	return writeText(a.outW, report)
}

func writeJSON(w io.Writer, r *Report, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func writeText(w io.Writer, r *Report) error {
	var b strings.Builder

	writeSection := func(name string, sec SectionReport) {
		fmt.Fprintf(&b, "%s root: %s\n", name, sec.Root)
		for _, key := range sortedKeys(sec.Resolved) {
			fmt.Fprintf(&b, "  %s: %v (raw: %v)\n", key, sec.Resolved[key], sec.Raw[key])
		}
	}
	writeSection("input", r.Input)
	writeSection("output", r.Output)

	b.WriteString("ext:\n")
	for _, label := range sortedKeys(r.Ext) {
		fmt.Fprintf(&b, "  %s: %s\n", label, r.Ext[label])
	}

	b.WriteString("options:\n")
	for _, name := range sortedKeys(r.Options) {
		encoded, err := json.Marshal(r.Options[name])
		if err != nil {
			return fmt.Errorf("failed to encode option %q: %w", name, err)
		}
		fmt.Fprintf(&b, "  %s: %s\n", name, encoded)
	}

	fmt.Fprintf(&b, "status: main_task=%q watching=%t\n", r.Status.MainTaskID, r.Status.Watching)
	fmt.Fprintf(&b, "tasks: %s\n", strings.Join(r.Tasks, ", "))

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
