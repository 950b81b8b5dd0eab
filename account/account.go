// Package account defines a sampled social-media account profile.
package account

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Account is one synthesized account profile.
type Account struct {
	Type      string    `json:"account_type" yaml:"account_type"`
	Persona   string    `json:"persona" yaml:"persona"`
	Modifiers Modifiers `json:"modifiers" yaml:"modifiers"`
}

// Clone returns a deep copy.
func (a Account) Clone() Account {
	a.Modifiers = a.Modifiers.Clone()
	return a
}

// Modifier is a chosen value for one modifier category.
type Modifier struct {
	Category string
	Value    string
}

// Modifiers holds chosen values in category declaration order.
// It encodes as a JSON object or YAML mapping whose keys keep that order.
type Modifiers []Modifier

// Get returns the value chosen for category.
func (m Modifiers) Get(category string) (string, bool) {
	for _, mod := range m {
		if mod.Category == category {
			return mod.Value, true
		}
	}
	return "", false
}

// Len returns the number of modifiers.
func (m Modifiers) Len() int { return len(m) }

// Categories returns the category keys in order.
func (m Modifiers) Categories() []string {
	out := make([]string, 0, len(m))
	for _, mod := range m {
		out = append(out, mod.Category)
	}
	return out
}

// Map returns the modifiers as an unordered map.
func (m Modifiers) Map() map[string]string {
	out := make(map[string]string, len(m))
	for _, mod := range m {
		out[mod.Category] = mod.Value
	}
	return out
}

// Clone returns a copy. A nil receiver yields an empty, non-nil result.
func (m Modifiers) Clone() Modifiers {
	out := make(Modifiers, len(m))
	copy(out, m)
	return out
}

// MarshalJSON implements json.Marshaler.
func (m Modifiers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mod := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mod.Category)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(mod.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Object key order is kept.
func (m *Modifiers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode modifiers: %w", err)
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode modifiers: expected object, got %v", tok)
	}

	out := Modifiers{}
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode modifiers: %w", err)
		}
		key := tok.(string)
		if seen[key] {
			return fmt.Errorf("decode modifiers: duplicate category %q", key)
		}
		seen[key] = true

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode modifier %q: %w", key, err)
		}
		out = append(out, Modifier{Category: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode modifiers: %w", err)
	}

	*m = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Modifiers) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, mod := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: mod.Category},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: mod.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Mapping key order is kept.
func (m *Modifiers) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: modifiers must be a mapping", value.Line)
	}
	out := make(Modifiers, 0, len(value.Content)/2)
	seen := make(map[string]bool, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key, val string
		if err := value.Content[i].Decode(&key); err != nil {
			return err
		}
		if seen[key] {
			return fmt.Errorf("line %d: duplicate modifier category %q", value.Content[i].Line, key)
		}
		seen[key] = true
		if err := value.Content[i+1].Decode(&val); err != nil {
			return err
		}
		out = append(out, Modifier{Category: key, Value: val})
	}
	*m = out
	return nil
}
