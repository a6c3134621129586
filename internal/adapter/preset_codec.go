package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "shadekey.dev/pkg/shadekey/internal/model"
)

// PresetCodec encodes an ordered list of captured records to a single text
// blob and back. The encoding must round-trip every value kind exactly.
type PresetCodec interface {
	Encode(records []m.Record) (string, error)
	Decode(blob string) ([]m.Record, error)
}

// YAMLPresetCodec is the concrete PresetCodec using YAML, which keeps preset
// blobs self-describing and diffable.
type YAMLPresetCodec struct{}

// NewYAMLPresetCodec constructs a YAMLPresetCodec.
func NewYAMLPresetCodec() *YAMLPresetCodec {
	return &YAMLPresetCodec{}
}

// Encode serializes records in order.
func (c *YAMLPresetCodec) Encode(records []m.Record) (string, error) {
	if records == nil {
		records = []m.Record{}
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode preset records: %w", err)
	}

	return string(out), nil
}

// Decode parses a preset blob back into its ordered record list.
func (c *YAMLPresetCodec) Decode(blob string) ([]m.Record, error) {
	var records []m.Record
	if err := yaml.Unmarshal([]byte(blob), &records); err != nil {
		return nil, fmt.Errorf("decode preset records: %w", err)
	}

	return records, nil
}
