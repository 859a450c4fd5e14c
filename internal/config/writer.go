package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Encode serializes the document with two-space indentation. Modeled keys
// come out in schema order; pass-through keys keep their original order and
// formatting.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode config YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize config YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes the document to path, replacing the previous contents.
func Save(path string, doc *Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
