package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueKind enumerates the scalar shapes a shader parameter can take.
type ValueKind int

const (
	// ValueNumber is a single float (also covers integer-valued parameters).
	ValueNumber ValueKind = iota
	// ValueBool is a boolean toggle.
	ValueBool
	// ValueVector is a fixed-length numeric tuple (colors, vectors).
	ValueVector
)

// Value is the resolved value of one animatable parameter. It is a tagged
// variant so preset blobs stay self-describing across all three kinds.
type Value struct {
	Kind ValueKind
	Num  float64
	Flag bool
	Vec  []float64
}

// Number wraps a float as a Value.
func Number(f float64) Value {
	return Value{Kind: ValueNumber, Num: f}
}

// Bool wraps a boolean as a Value.
func Bool(b bool) Value {
	return Value{Kind: ValueBool, Flag: b}
}

// Vector wraps a numeric tuple as a Value.
func Vector(components ...float64) Value {
	return Value{Kind: ValueVector, Vec: components}
}

// Equal reports whether two values have the same kind and contents.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case ValueBool:
		return v.Flag == other.Flag
	case ValueVector:
		if len(v.Vec) != len(other.Vec) {
			return false
		}

		for i := range v.Vec {
			if v.Vec[i] != other.Vec[i] {
				return false
			}
		}

		return true
	default:
		return v.Num == other.Num
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueBool:
		return fmt.Sprintf("%t", v.Flag)
	case ValueVector:
		parts := make([]string, 0, len(v.Vec))
		for _, c := range v.Vec {
			parts = append(parts, fmt.Sprintf("%g", c))
		}

		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%g", v.Num)
	}
}

// MarshalYAML encodes the value as a plain YAML scalar or sequence.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case ValueBool:
		return v.Flag, nil
	case ValueVector:
		return v.Vec, nil
	default:
		return v.Num, nil
	}
}

// UnmarshalYAML decodes a scalar or sequence node back into the matching kind.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}

			*v = Bool(b)

			return nil
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return err
			}

			*v = Number(f)

			return nil
		}

		return fmt.Errorf("unsupported value scalar %s", node.Tag)

	case yaml.SequenceNode:
		var vec []float64
		if err := node.Decode(&vec); err != nil {
			return err
		}

		*v = Vector(vec...)

		return nil
	}

	return fmt.Errorf("unsupported value node kind %d", node.Kind)
}
