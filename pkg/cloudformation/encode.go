package cloudformation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the template serialization format.
type Format string

// Supported serialization formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q (use: json, yaml)", s)
	}
}

// Encode writes the template to w in the given format.
func (t *Template) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		return t.EncodeYAML(w)
	default:
		return t.EncodeJSON(w)
	}
}

// EncodeJSON writes the template as pretty-printed JSON with 2-space
// indentation.
func (t *Template) EncodeJSON(w io.Writer) error {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// EncodeYAML writes the template as YAML, the other format CloudFormation
// accepts natively.
func (t *Template) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
