// Package output renders argvparse results as styled text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"argvparse/pkg/argv"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes results to a single writer in one format.
type Renderer struct {
	w      io.Writer
	format string
	styled bool
	styles styles
}

type styles struct {
	heading lipgloss.Style
	flag    lipgloss.Style
	arg     lipgloss.Style
	muted   lipgloss.Style
}

// Extraction describes one flag lookup for rendering.
type Extraction struct {
	Prefix  string
	Type    argv.FlagType
	Matched string // flag token that matched, empty when none did
	Value   argv.Value
}

// document is the JSON/YAML shape of an Extraction.
type document struct {
	Prefix  string `json:"prefix" yaml:"prefix"`
	Type    string `json:"type" yaml:"type"`
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
	Value   any    `json:"value" yaml:"value"`
}

// NewRenderer creates a renderer for format. Text output is styled only when
// color is true and w is a terminal that supports color.
func NewRenderer(w io.Writer, format string, color bool) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	r := &Renderer{
		w:      w,
		format: format,
		styled: color && SupportsColor(w),
	}
	if r.styled {
		lr := lipgloss.NewRenderer(w)
		r.styles = styles{
			heading: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
			flag:    lr.NewStyle().Foreground(lipgloss.Color("214")),
			arg:     lr.NewStyle().Foreground(lipgloss.Color("46")),
			muted:   lr.NewStyle().Foreground(lipgloss.Color("240")),
		}
	}
	return r, nil
}

// SupportsColor reports whether w is a terminal with a color profile.
// NO_COLOR and non-tty writers disable color.
func SupportsColor(w io.Writer) bool {
	return termenv.NewOutput(w).Profile != termenv.Ascii
}

// Format returns the renderer's output format.
func (r *Renderer) Format() string {
	return r.format
}

// Classification renders the flags and positional arguments of p.
func (r *Renderer) Classification(p argv.Parsed) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(p)
	case FormatYAML:
		return r.writeYAML(p)
	}

	var b strings.Builder
	r.writeSection(&b, "Flags", p.Flags, r.styles.flag)
	r.writeSection(&b, "Args", p.Args, r.styles.arg)
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Value renders an extracted value. Text output is the bare value so it can
// be captured by shell scripts.
func (r *Renderer) Value(e Extraction) error {
	doc := document{
		Prefix:  e.Prefix,
		Type:    string(e.Type),
		Matched: e.Matched,
		Value:   e.Value.Portable(),
	}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(doc)
	case FormatYAML:
		return r.writeYAML(doc)
	}

	_, err := fmt.Fprintln(r.w, e.Value.String())
	return err
}

// Text writes a line of free text, e.g. version information.
func (r *Renderer) Text(text string) error {
	_, err := fmt.Fprintln(r.w, text)
	return err
}

// Data renders an arbitrary structure in JSON or YAML; text format falls
// back to the value's default formatting.
func (r *Renderer) Data(v any) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(v)
	case FormatYAML:
		return r.writeYAML(v)
	}
	_, err := fmt.Fprintf(r.w, "%v\n", v)
	return err
}

func (r *Renderer) writeSection(b *strings.Builder, title string, items []string, style lipgloss.Style) {
	b.WriteString(r.render(r.styles.heading, fmt.Sprintf("%s (%d)", title, len(items))))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString("  ")
		b.WriteString(r.render(r.styles.muted, "(none)"))
		b.WriteString("\n")
		return
	}
	for _, item := range items {
		b.WriteString("  ")
		b.WriteString(r.render(style, fmt.Sprintf("%q", item)))
		b.WriteString("\n")
	}
}

func (r *Renderer) render(style lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return style.Render(text)
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func (r *Renderer) writeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
