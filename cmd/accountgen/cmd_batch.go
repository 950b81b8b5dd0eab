package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/accountgen/account"
	"github.com/c360studio/accountgen/prompts"
)

// ManifestFile is the batch index written next to the envelopes.
const ManifestFile = "manifest.json"

// Manifest indexes the envelopes written by one batch run.
type Manifest struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Seed        uint64          `json:"seed,omitempty"`
	PostCount   int             `json:"post_count"`
	Accounts    []ManifestEntry `json:"accounts"`
}

// ManifestEntry describes one envelope file.
type ManifestEntry struct {
	ID          string `json:"id"`
	AccountType string `json:"account_type"`
	Persona     string `json:"persona"`
	File        string `json:"file"`
}

func batchCmd(flags *globalFlags) *cobra.Command {
	var (
		count  int
		outDir string
		posts  int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Write generation envelopes for many accounts",
		Long: `Sample accounts and write one JSON envelope per account to
<out>/<id>.json, plus a manifest.json index. Prints a summary of the
account types drawn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			n := count
			if n <= 0 {
				n = app.cfg.Sampling.Count
			}
			dir := outDir
			if dir == "" {
				dir = app.cfg.Generation.OutputDir
			}

			accounts, err := app.sampler.SampleAccounts(n)
			if err != nil {
				return err
			}
			manifest, err := app.WriteBatch(dir, accounts, app.postCount(posts))
			if err != nil {
				return err
			}
			return app.printSummary(dir, manifest)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of accounts (default: sampling.count)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: generation.output_dir)")
	cmd.Flags().IntVarP(&posts, "posts", "p", 0, "Number of posts to request (default: generation.post_count)")

	return cmd
}

// maxIDAttempts bounds the redraws when a short id is already taken.
const maxIDAttempts = 16

// newAccountID returns a short random envelope id.
var newAccountID = func() string {
	return fmt.Sprintf("acct-%s", uuid.New().String()[:8])
}

// allocateID draws an id that is neither taken in this batch nor names an
// envelope already present in dir.
func allocateID(dir string, taken map[string]bool) (string, error) {
	for range maxIDAttempts {
		id := newAccountID()
		if taken[id] {
			continue
		}
		_, err := os.Stat(filepath.Join(dir, id+".json"))
		if err == nil {
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("check envelope %s: %w", id, err)
		}
		taken[id] = true
		return id, nil
	}
	return "", fmt.Errorf("allocate account id: %d collisions in a row", maxIDAttempts)
}

// WriteBatch writes an envelope file per account and the manifest into dir.
func (a *App) WriteBatch(dir string, accounts []account.Account, postCount int) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	manifest := &Manifest{
		GeneratedAt: time.Now().UTC(),
		Seed:        a.cfg.Sampling.Seed,
		PostCount:   postCount,
		Accounts:    make([]ManifestEntry, 0, len(accounts)),
	}

	taken := make(map[string]bool, len(accounts))
	for _, acct := range accounts {
		id, err := allocateID(dir, taken)
		if err != nil {
			return nil, err
		}
		file := id + ".json"

		env := prompts.PostsEnvelope(acct, postCount)
		if err := writeJSONFile(filepath.Join(dir, file), env); err != nil {
			return nil, err
		}

		manifest.Accounts = append(manifest.Accounts, ManifestEntry{
			ID:          id,
			AccountType: acct.Type,
			Persona:     acct.Persona,
			File:        file,
		})
		a.logger.Debug("Wrote envelope", "id", id, "account_type", acct.Type)
	}

	if err := writeJSONFile(filepath.Join(dir, ManifestFile), manifest); err != nil {
		return nil, err
	}

	a.logger.Info("Batch written",
		"dir", dir,
		"accounts", len(accounts),
		"post_count", postCount)
	return manifest, nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (a *App) printSummary(dir string, manifest *Manifest) error {
	counts, err := a.DrawSummary()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Wrote %d envelopes to %s\n", len(manifest.Accounts), dir)
	for _, name := range a.tax.Names() {
		if n := counts[name]; n > 0 {
			fmt.Fprintf(a.out, "  %-28s %d\n", name, n)
		}
	}
	return nil
}
