package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/accountgen/account"
	"github.com/c360studio/accountgen/config"
	"github.com/c360studio/accountgen/sampler"
	"github.com/c360studio/accountgen/taxonomy"
)

// App wires the taxonomy, sampler and metrics for one CLI invocation.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	tax      *taxonomy.Taxonomy
	sampler  *sampler.Sampler
	registry *prometheus.Registry
	out      io.Writer
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tax, err := cfg.LoadTaxonomy()
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	taxonomy.InitGlobal(tax)

	chooser := sampler.NewChooser()
	if cfg.Sampling.Seed != 0 {
		chooser = sampler.NewRandChooser(cfg.Sampling.Seed)
	}

	registry := prometheus.NewRegistry()
	s := sampler.New(tax,
		sampler.WithChooser(chooser),
		sampler.WithLogger(logger),
		sampler.WithMetrics(sampler.NewMetrics(registry)),
	)

	logger.Debug("Application ready",
		slog.Int("account_types", tax.Len()),
		slog.Uint64("seed", cfg.Sampling.Seed))

	return &App{
		cfg:      cfg,
		logger:   logger,
		tax:      tax,
		sampler:  s,
		registry: registry,
		out:      out,
	}, nil
}

// Account draws an account, optionally pinning its type and persona.
// A persona requires a type and must be declared for it.
func (a *App) Account(accountType, persona string) (account.Account, error) {
	if accountType == "" {
		if persona != "" {
			return account.Account{}, fmt.Errorf("--persona requires --type")
		}
		return a.sampler.SampleAccount()
	}

	at, err := a.tax.Lookup(accountType)
	if err != nil {
		return account.Account{}, err
	}

	if persona == "" {
		persona, err = a.sampler.SamplePersona(accountType)
		if err != nil {
			return account.Account{}, err
		}
	} else if !at.HasPersona(persona) {
		return account.Account{}, fmt.Errorf("persona %q is not declared for account type %q", persona, accountType)
	}

	return account.Account{
		Type:      accountType,
		Persona:   persona,
		Modifiers: a.sampler.SampleModifiers(accountType, persona),
	}, nil
}

// postCount returns n if positive, otherwise the configured post count.
func (a *App) postCount(n int) int {
	if n > 0 {
		return n
	}
	return a.cfg.Generation.PostCount
}

// format returns f if set, otherwise the configured format.
func (a *App) format(f string) string {
	if f != "" {
		return f
	}
	return a.cfg.Generation.Format
}
