package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes a. JSON output is indented by four spaces and ends with a newline.
func Marshal(a *domain.Automaton, format Format) ([]byte, error) {
	doc := FromAutomaton(a)
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// Unmarshal decodes an automaton. Every failure wraps ErrMalformedDocument.
func Unmarshal(data []byte, format Format) (*domain.Automaton, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Automaton()
}

// Decode parses data into a Document, checking required keys and value shapes.
func Decode(data []byte, format Format) (Document, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
	default:
		return Document{}, fmt.Errorf("%w: unsupported format %q", ErrMalformedDocument, format)
	}
	return FromMap(raw)
}

// FromMap decodes a generic key/value tree, as produced by JSON or YAML parsers.
// Values are not coerced: a number where a string is expected is malformed.
func FromMap(raw map[string]any) (Document, error) {
	for _, k := range requiredKeys {
		if v, ok := raw[k]; !ok || v == nil {
			return Document{}, fmt.Errorf("%w: missing key %q", ErrMalformedDocument, k)
		}
	}
	if rows, ok := raw["transition_table"].([]any); ok {
		for i, row := range rows {
			fields, ok := row.(map[string]any)
			if !ok {
				// Left to the decoder, which reports the wrong shape.
				continue
			}
			for _, k := range requiredTransitionKeys {
				if v, ok := fields[k]; !ok || v == nil {
					return Document{}, fmt.Errorf("%w: transition %d: missing key %q", ErrMalformedDocument, i, k)
				}
			}
		}
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &doc,
		TagName: "mapstructure",
	})
	if err != nil {
		return Document{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return doc, nil
}
