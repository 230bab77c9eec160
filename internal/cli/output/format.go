// Package output renders explorer results for the command line.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/explorer/internal/types"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable outputs data as aligned tables and plain messages.
	FormatTable Format = "table"
	// FormatJSON outputs the full result as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs the full result as YAML.
	FormatYAML Format = "yaml"
	// FormatTOML outputs the full result as TOML.
	FormatTOML Format = "toml"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml, toml)", s)
	}
}

func (f Format) String() string {
	return string(f)
}

// Printer handles formatted output to a writer.
type Printer struct {
	out    io.Writer
	format Format
	color  bool
}

// NewPrinter creates a new Printer with the given options.
func NewPrinter(out io.Writer, format Format, color bool) *Printer {
	return &Printer{
		out:    out,
		format: format,
		color:  color,
	}
}

// Print outputs data in the configured format.
// For table format, data should implement TableRenderer; anything else
// falls back to JSON.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatTable:
		if renderer, ok := data.(TableRenderer); ok {
			return PrintTable(p.out, renderer)
		}
		return PrintJSON(p.out, data)
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	case FormatTOML:
		return PrintTOML(p.out, data)
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}

// Result prints a provider result. Structured formats encode the whole
// result. Table format prints the failure message, or the view (when
// non-nil) followed by the result message.
func (p *Printer) Result(r *types.Result, view TableRenderer) error {
	if p.format != FormatTable {
		return p.Print(r)
	}

	if !r.Success {
		p.Error("Error: " + r.ErrorMessage())
		return nil
	}
	if view != nil && len(view.Rows()) > 0 {
		if err := PrintTable(p.out, view); err != nil {
			return err
		}
	}
	if r.Message != "" {
		p.Success(r.Message)
	}
	return nil
}

// Success prints a success message.
func (p *Printer) Success(msg string) {
	p.colored("32", msg)
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	p.colored("31", msg)
}

// Warning prints a warning message.
func (p *Printer) Warning(msg string) {
	p.colored("33", msg)
}

func (p *Printer) colored(code, msg string) {
	if p.color {
		_, _ = fmt.Fprintf(p.out, "\033[%sm%s\033[0m\n", code, msg)
	} else {
		_, _ = fmt.Fprintln(p.out, msg)
	}
}
