package taxonomy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WeightTolerance is the allowed deviation of the weight sum from 1.0.
const WeightTolerance = 0.001

// Config is the file form of a taxonomy.
//
//	account_types:
//	  - name: individual
//	    weight: 0.6
//	    personas: [anxiety_ridden_high_schooler, ...]
//	    modifiers:
//	      - category: life_stage
//	        options: [teenager, ...]
//	    persona_overrides:
//	      anxiety_ridden_high_schooler:
//	        life_stage: teenager
//	        education_level: [high_school_dropout, high_school_grad]
type Config struct {
	AccountTypes []AccountTypeConfig `json:"account_types" yaml:"account_types"`
}

// AccountTypeConfig is the file form of one account type.
type AccountTypeConfig struct {
	Name             string                         `json:"name" yaml:"name"`
	Weight           float64                        `json:"weight" yaml:"weight"`
	Personas         []string                       `json:"personas" yaml:"personas"`
	Modifiers        []Category                     `json:"modifiers" yaml:"modifiers"`
	PersonaOverrides map[string]map[string]Override `json:"persona_overrides,omitempty" yaml:"persona_overrides,omitempty"`
}

// Validate checks the structural invariants of the table and returns every
// violation joined into one error. Each violation is a *ValidationError.
func (c *Config) Validate() error {
	var errs []error
	add := func(accountType, field, format string, args ...any) {
		errs = append(errs, &ValidationError{
			AccountType: accountType,
			Field:       field,
			Message:     fmt.Sprintf(format, args...),
		})
	}

	if len(c.AccountTypes) == 0 {
		add("", "account_types", "at least one account type is required")
		return errors.Join(errs...)
	}

	seen := make(map[string]bool, len(c.AccountTypes))
	total := 0.0
	for _, at := range c.AccountTypes {
		if at.Name == "" {
			add("", "account_types", "account type name is required")
		} else if seen[at.Name] {
			add(at.Name, "name", "duplicate account type")
		}
		seen[at.Name] = true

		if at.Weight <= 0 || math.IsNaN(at.Weight) || math.IsInf(at.Weight, 0) {
			add(at.Name, "weight", "must be a positive number, got %v", at.Weight)
		} else {
			total += at.Weight
		}

		errs = append(errs, validateAccountType(at)...)
	}

	if math.Abs(total-1.0) > WeightTolerance {
		add("", "weights", "must sum to 1.0 (±%.3f), got %.4f", WeightTolerance, total)
	}

	return errors.Join(errs...)
}

func validateAccountType(at AccountTypeConfig) []error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{
			AccountType: at.Name,
			Field:       field,
			Message:     fmt.Sprintf(format, args...),
		})
	}

	if len(at.Personas) == 0 {
		add("personas", "at least one persona is required")
	}
	personas := make(map[string]bool, len(at.Personas))
	for _, p := range at.Personas {
		if msg := checkKey(p); msg != "" {
			add("personas", "%q %s", p, msg)
		}
		if personas[p] {
			add("personas", "duplicate persona %q", p)
		}
		personas[p] = true
	}

	if len(at.Modifiers) == 0 {
		add("modifiers", "at least one modifier category is required")
	}
	options := make(map[string]map[string]bool, len(at.Modifiers))
	for _, c := range at.Modifiers {
		field := "modifiers." + c.Name
		if c.Name == "" {
			add("modifiers", "category name is required")
			continue
		}
		if _, dup := options[c.Name]; dup {
			add(field, "duplicate category")
			continue
		}
		if len(c.Options) == 0 {
			add(field, "at least one option is required")
		}
		set := make(map[string]bool, len(c.Options))
		for _, o := range c.Options {
			if msg := checkKey(o); msg != "" {
				add(field, "option %q %s", o, msg)
			}
			set[o] = true
		}
		options[c.Name] = set
	}

	for persona, rules := range at.PersonaOverrides {
		field := "persona_overrides." + persona
		if !personas[persona] {
			add(field, "persona is not declared for this account type")
		}
		for category, o := range rules {
			allowed, ok := options[category]
			if !ok {
				add(field, "unknown category %q", category)
				continue
			}
			if o.IsZero() {
				add(field, "override for %q has no values", category)
				continue
			}
			for _, v := range o.values {
				if !allowed[v] {
					add(field, "value %q is not an option of %q", v, category)
				}
			}
		}
	}

	return errs
}

// checkKey enforces the snake_case key shape used for personas and options.
func checkKey(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "must not be empty"
	case strings.HasPrefix(s, "_"):
		return "must not start with an underscore"
	case strings.HasSuffix(s, "_"):
		return "must not end with an underscore"
	case strings.Contains(s, "__"):
		return "must not contain doubled underscores"
	}
	return ""
}

// LoadFromFile loads and validates a taxonomy from a YAML or JSON file.
// Files ending in .json are parsed as JSON; anything else as YAML.
func LoadFromFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	cfg, err := parseConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(cfg.AccountTypes...)
}

// LoadFromYAML loads a taxonomy from YAML data.
// Accepts either a document with a top-level "taxonomy" key or the table itself.
func LoadFromYAML(data []byte) (*Taxonomy, error) {
	cfg, err := parseConfig(data, ".yaml")
	if err != nil {
		return nil, err
	}
	return New(cfg.AccountTypes...)
}

// LoadFromJSON loads a taxonomy from JSON data.
// Accepts either a document with a top-level "taxonomy" key or the table itself.
func LoadFromJSON(data []byte) (*Taxonomy, error) {
	cfg, err := parseConfig(data, ".json")
	if err != nil {
		return nil, err
	}
	return New(cfg.AccountTypes...)
}

func parseConfig(data []byte, ext string) (*Config, error) {
	var wrapped struct {
		Taxonomy *Config `json:"taxonomy" yaml:"taxonomy"`
	}
	var cfg Config

	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Taxonomy != nil {
			return wrapped.Taxonomy, nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse taxonomy JSON: %w", err)
		}
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Taxonomy != nil {
		return wrapped.Taxonomy, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse taxonomy YAML: %w", err)
	}
	return &cfg, nil
}

// SaveToFile writes the table to path as JSON (.json) or YAML.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create taxonomy directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal taxonomy: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write taxonomy file: %w", err)
	}
	return nil
}
