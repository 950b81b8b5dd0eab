package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoaderLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generation.PostCount != 75 {
		t.Errorf("expected default post count, got %d", cfg.Generation.PostCount)
	}
}

func TestLoaderLoad_Precedence(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile),
		"generation:\n  post_count: 10\n  format: json\nsampling:\n  count: 3\n")

	// Project config found from a nested working directory
	writeFile(t, filepath.Join(work, ProjectConfigFile),
		"generation:\n  post_count: 20\n")
	nested := filepath.Join(work, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	writeFile(t, explicit, "sampling:\n  count: 9\n")

	cfg, err := NewLoader(nil).Load(explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Generation.PostCount != 20 {
		t.Errorf("expected project post count 20, got %d", cfg.Generation.PostCount)
	}
	if cfg.Generation.Format != FormatJSON {
		t.Errorf("expected user format json, got %s", cfg.Generation.Format)
	}
	if cfg.Sampling.Count != 9 {
		t.Errorf("expected explicit count 9, got %d", cfg.Sampling.Count)
	}
}

func TestLoaderLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		if _, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing explicit config")
		}
	})

	t.Run("invalid merged config", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, ProjectConfigFile), "generation:\n  format: xml\n")
		if _, err := NewLoader(nil).Load(""); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("broken user config is skipped", func(t *testing.T) {
		home, _ := isolate(t)
		writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "generation: [\n")
		if _, err := NewLoader(nil).Load(""); err != nil {
			t.Errorf("Load() error = %v", err)
		}
	})
}

func TestEnsureUserConfig(t *testing.T) {
	home, _ := isolate(t)
	loader := NewLoader(nil)

	path, err := loader.EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	if want := filepath.Join(home, UserConfigDir, UserConfigFile); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	// Existing file is left alone
	writeFile(t, path, "sampling:\n  count: 4\n")
	if _, err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Sampling.Count != 4 {
		t.Errorf("expected existing config to survive, got count %d", cfg.Sampling.Count)
	}
}
