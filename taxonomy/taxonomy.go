// Package taxonomy holds the read-only table of social-media account types
// used to synthesize account profiles. Each account type carries a sampling
// weight, its eligible personas, its modifier categories and optional
// per-persona overrides that fix or narrow a category's options.
//
// A Taxonomy is validated on construction and never mutated afterwards, so a
// single instance can be shared freely.
package taxonomy

import (
	"fmt"
	"slices"
)

// Category is a modifier axis with its enumerated options.
type Category struct {
	// Name is the category key (e.g. "communication_style").
	Name string `json:"category" yaml:"category"`

	// Options lists the allowed values in declaration order.
	Options []string `json:"options" yaml:"options"`
}

func (c Category) clone() Category {
	return Category{Name: c.Name, Options: slices.Clone(c.Options)}
}

// AccountType is an immutable account-type definition.
type AccountType struct {
	name       string
	weight     float64
	personas   []string
	categories []Category
	overrides  map[string]map[string]Override
}

func newAccountType(cfg AccountTypeConfig) *AccountType {
	at := &AccountType{
		name:       cfg.Name,
		weight:     cfg.Weight,
		personas:   slices.Clone(cfg.Personas),
		categories: make([]Category, 0, len(cfg.Modifiers)),
		overrides:  make(map[string]map[string]Override, len(cfg.PersonaOverrides)),
	}
	for _, c := range cfg.Modifiers {
		at.categories = append(at.categories, c.clone())
	}
	for persona, rules := range cfg.PersonaOverrides {
		copied := make(map[string]Override, len(rules))
		for category, o := range rules {
			copied[category] = o.clone()
		}
		at.overrides[persona] = copied
	}
	return at
}

// Name returns the account type key.
func (a *AccountType) Name() string { return a.name }

// Weight returns the sampling weight.
func (a *AccountType) Weight() float64 { return a.weight }

// Personas returns the eligible personas in declaration order.
func (a *AccountType) Personas() []string { return slices.Clone(a.personas) }

// HasPersona reports whether persona is declared for this account type.
// Matching is exact and case-sensitive.
func (a *AccountType) HasPersona(persona string) bool {
	return slices.Contains(a.personas, persona)
}

// Categories returns the modifier categories in declaration order.
func (a *AccountType) Categories() []Category {
	out := make([]Category, 0, len(a.categories))
	for _, c := range a.categories {
		out = append(out, c.clone())
	}
	return out
}

// CategoryNames returns the modifier category keys in declaration order.
func (a *AccountType) CategoryNames() []string {
	names := make([]string, 0, len(a.categories))
	for _, c := range a.categories {
		names = append(names, c.Name)
	}
	return names
}

// Options returns the allowed values for a category.
func (a *AccountType) Options(category string) ([]string, bool) {
	for _, c := range a.categories {
		if c.Name == category {
			return slices.Clone(c.Options), true
		}
	}
	return nil, false
}

// Override returns the override rule a persona has for a category, if any.
func (a *AccountType) Override(persona, category string) (Override, bool) {
	rules, ok := a.overrides[persona]
	if !ok {
		return Override{}, false
	}
	o, ok := rules[category]
	return o, ok
}

// OverriddenPersonas returns the personas that carry override rules, sorted.
func (a *AccountType) OverriddenPersonas() []string {
	names := make([]string, 0, len(a.overrides))
	for p := range a.overrides {
		names = append(names, p)
	}
	slices.Sort(names)
	return names
}

// Config returns a deep copy of the definition in file form.
func (a *AccountType) Config() AccountTypeConfig {
	cfg := AccountTypeConfig{
		Name:     a.name,
		Weight:   a.weight,
		Personas: slices.Clone(a.personas),
	}
	for _, c := range a.categories {
		cfg.Modifiers = append(cfg.Modifiers, c.clone())
	}
	if len(a.overrides) > 0 {
		cfg.PersonaOverrides = make(map[string]map[string]Override, len(a.overrides))
		for persona, rules := range a.overrides {
			copied := make(map[string]Override, len(rules))
			for category, o := range rules {
				copied[category] = o.clone()
			}
			cfg.PersonaOverrides[persona] = copied
		}
	}
	return cfg
}

// Taxonomy is an ordered, validated set of account types.
type Taxonomy struct {
	types []*AccountType
	index map[string]*AccountType
}

// New builds a taxonomy from account-type definitions.
// The definitions are copied and validated; see Config.Validate.
func New(types ...AccountTypeConfig) (*Taxonomy, error) {
	cfg := &Config{AccountTypes: types}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Taxonomy{
		types: make([]*AccountType, 0, len(types)),
		index: make(map[string]*AccountType, len(types)),
	}
	for _, tc := range types {
		at := newAccountType(tc)
		t.types = append(t.types, at)
		t.index[at.name] = at
	}
	return t, nil
}

// mustNew is New for built-in tables; an invalid built-in table is a programming error.
func mustNew(types ...AccountTypeConfig) *Taxonomy {
	t, err := New(types...)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: invalid built-in table: %v", err))
	}
	return t
}

// Len returns the number of account types.
func (t *Taxonomy) Len() int { return len(t.types) }

// Names returns the account type keys in declaration order.
func (t *Taxonomy) Names() []string {
	names := make([]string, 0, len(t.types))
	for _, at := range t.types {
		names = append(names, at.name)
	}
	return names
}

// Weights returns the sampling weights aligned with Names.
func (t *Taxonomy) Weights() []float64 {
	weights := make([]float64, 0, len(t.types))
	for _, at := range t.types {
		weights = append(weights, at.weight)
	}
	return weights
}

// Has reports whether name is a known account type.
func (t *Taxonomy) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Lookup returns the definition for an account type.
// Unknown names return an error wrapping ErrNotFound.
func (t *Taxonomy) Lookup(name string) (*AccountType, error) {
	at, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("lookup account type %q: %w", name, ErrNotFound)
	}
	return at, nil
}

// AccountTypes returns the definitions in declaration order.
func (t *Taxonomy) AccountTypes() []*AccountType {
	return slices.Clone(t.types)
}

// ToConfig converts the taxonomy to its file form for serialization.
func (t *Taxonomy) ToConfig() *Config {
	cfg := &Config{AccountTypes: make([]AccountTypeConfig, 0, len(t.types))}
	for _, at := range t.types {
		cfg.AccountTypes = append(cfg.AccountTypes, at.Config())
	}
	return cfg
}
