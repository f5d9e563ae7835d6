package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a YAML portfolio file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading portfolio file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML into a snapshot and validates it. Unknown keys are
// rejected so typos surface instead of silently dropping content.
func Parse(data []byte) (*Snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing portfolio yaml: %w", err)
	}
	if errs := Validate(&snap); len(errs) > 0 {
		return nil, fmt.Errorf("invalid portfolio: %w", errors.Join(errs...))
	}
	return &snap, nil
}

// Marshal encodes a snapshot as YAML.
func Marshal(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding portfolio yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding portfolio yaml: %w", err)
	}
	return buf.Bytes(), nil
}
