package taxonomy

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Override is a persona-specific rule for one modifier category.
// A fixed override always yields its single value; a narrowed override
// restricts the draw to a subset of the category's options.
//
// In taxonomy files a scalar string is fixed and a sequence is narrowed.
type Override struct {
	values []string
	fixed  bool
}

// Fixed returns an override that always yields value.
func Fixed(value string) Override {
	return Override{values: []string{value}, fixed: true}
}

// OneOf returns an override that draws uniformly from values.
func OneOf(values ...string) Override {
	return Override{values: slices.Clone(values)}
}

// IsFixed reports whether the override yields a single deterministic value.
func (o Override) IsFixed() bool { return o.fixed }

// IsZero reports whether the override carries no values.
func (o Override) IsZero() bool { return len(o.values) == 0 }

// Value returns the fixed value. It is empty for narrowed overrides.
func (o Override) Value() string {
	if !o.fixed || len(o.values) == 0 {
		return ""
	}
	return o.values[0]
}

// Values returns every value the override allows.
func (o Override) Values() []string { return slices.Clone(o.values) }

func (o Override) clone() Override {
	return Override{values: slices.Clone(o.values), fixed: o.fixed}
}

func (o Override) String() string {
	if o.fixed {
		return o.Value()
	}
	return fmt.Sprintf("%v", o.values)
}

// MarshalJSON implements json.Marshaler.
func (o Override) MarshalJSON() ([]byte, error) {
	if o.fixed {
		return json.Marshal(o.Value())
	}
	return json.Marshal(o.values)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Override) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*o = Fixed(single)
		return nil
	}
	var set []string
	if err := json.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("override must be a string or a list of strings: %w", err)
	}
	*o = OneOf(set...)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Override) MarshalYAML() (interface{}, error) {
	if o.fixed {
		return o.Value(), nil
	}
	return o.values, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Override) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*o = Fixed(single)
	case yaml.SequenceNode:
		var set []string
		if err := value.Decode(&set); err != nil {
			return err
		}
		*o = OneOf(set...)
	default:
		return fmt.Errorf("line %d: override must be a string or a list of strings", value.Line)
	}
	return nil
}
