// Package sampler draws synthetic account profiles from a taxonomy.
//
// Account types are drawn by weight, personas uniformly within the type, and
// each modifier category uniformly over its options unless the persona carries
// an override that fixes or narrows the category.
package sampler

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/accountgen/account"
	"github.com/c360studio/accountgen/taxonomy"
)

// Sampler draws accounts from an immutable taxonomy.
// It is safe for concurrent use when its Chooser is.
type Sampler struct {
	tax     *taxonomy.Taxonomy
	names   []string
	weights []float64
	chooser Chooser
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithChooser sets the randomness source.
func WithChooser(c Chooser) Option {
	return func(s *Sampler) {
		if c != nil {
			s.chooser = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sampler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics enables draw counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Sampler) {
		s.metrics = m
	}
}

// New creates a sampler over tax. A nil tax resolves taxonomy.Global(),
// which is the built-in table unless taxonomy.InitGlobal installed another.
func New(tax *taxonomy.Taxonomy, opts ...Option) *Sampler {
	if tax == nil {
		tax = taxonomy.Global()
	}
	s := &Sampler{
		tax:     tax,
		names:   tax.Names(),
		weights: tax.Weights(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chooser == nil {
		s.chooser = NewChooser()
	}
	return s
}

// Taxonomy returns the table the sampler draws from.
func (s *Sampler) Taxonomy() *taxonomy.Taxonomy { return s.tax }

// SampleAccountType draws an account type with probability proportional to its weight.
func (s *Sampler) SampleAccountType() string {
	name := s.names[s.chooser.Weighted(s.weights)]
	s.metrics.observeAccountType(name)
	return name
}

// SamplePersona draws a persona of accountType uniformly.
// An unknown account type returns an error wrapping taxonomy.ErrNotFound.
func (s *Sampler) SamplePersona(accountType string) (string, error) {
	at, err := s.tax.Lookup(accountType)
	if err != nil {
		return "", fmt.Errorf("sample persona: %w", err)
	}
	personas := at.Personas()
	return personas[s.chooser.Uniform(len(personas))], nil
}

// SampleModifiers draws one value per category of accountType, in category
// order. A fixed override for persona yields its value, a narrowed override
// draws from its subset, and every other category draws from all options.
// An empty persona applies no overrides.
//
// An unknown account type yields empty, non-nil Modifiers.
func (s *Sampler) SampleModifiers(accountType, persona string) account.Modifiers {
	at, err := s.tax.Lookup(accountType)
	if err != nil {
		s.metrics.observeUnknownType()
		s.logger.Debug("No modifiers for unknown account type",
			slog.String("account_type", accountType))
		return account.Modifiers{}
	}

	categories := at.Categories()
	mods := make(account.Modifiers, 0, len(categories))
	for _, c := range categories {
		mods = append(mods, account.Modifier{
			Category: c.Name,
			Value:    s.pick(at, persona, c),
		})
	}
	return mods
}

func (s *Sampler) pick(at *taxonomy.AccountType, persona string, c taxonomy.Category) string {
	if persona != "" {
		if o, ok := at.Override(persona, c.Name); ok {
			if o.IsFixed() {
				s.metrics.observeOverride(at.Name(), KindFixed)
				return o.Value()
			}
			s.metrics.observeOverride(at.Name(), KindNarrowed)
			values := o.Values()
			return values[s.chooser.Uniform(len(values))]
		}
	}
	return c.Options[s.chooser.Uniform(len(c.Options))]
}

// SampleAccount draws a complete account: type, then persona, then modifiers.
func (s *Sampler) SampleAccount() (account.Account, error) {
	accountType := s.SampleAccountType()
	persona, err := s.SamplePersona(accountType)
	if err != nil {
		return account.Account{}, err
	}

	a := account.Account{
		Type:      accountType,
		Persona:   persona,
		Modifiers: s.SampleModifiers(accountType, persona),
	}
	s.logger.Debug("Sampled account",
		slog.String("account_type", a.Type),
		slog.String("persona", a.Persona),
		slog.Int("modifiers", a.Modifiers.Len()))
	return a, nil
}

// SampleAccounts draws n accounts.
func (s *Sampler) SampleAccounts(n int) ([]account.Account, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample accounts: count must be non-negative, got %d", n)
	}
	out := make([]account.Account, 0, n)
	for i := 0; i < n; i++ {
		a, err := s.SampleAccount()
		if err != nil {
			return nil, fmt.Errorf("sample account %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
