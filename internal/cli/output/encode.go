package output

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// PrintJSON writes data as indented JSON to the writer.
func PrintJSON(w io.Writer, data any) error {
	b, err := sonic.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return writeLine(w, b)
}

// PrintYAML writes data as YAML to the writer.
func PrintYAML(w io.Writer, data any) error {
	b, err := yaml.MarshalWithOptions(data, yaml.Indent(2))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// PrintTOML writes data as TOML to the writer. The value must encode to a
// table, so scalars and slices cannot be printed directly.
func PrintTOML(w io.Writer, data any) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(data)
}

func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
