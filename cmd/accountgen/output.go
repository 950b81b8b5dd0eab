package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/accountgen/account"
	"github.com/c360studio/accountgen/config"
	"github.com/c360studio/accountgen/prompts"
)

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, v any, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeAccounts(w io.Writer, accounts []account.Account, format string) error {
	if format != config.FormatText {
		return encode(w, accounts, format)
	}

	for i, a := range accounts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Account %d:\n", i+1)
		fmt.Fprintf(w, "  Type: %s\n", a.Type)
		fmt.Fprintf(w, "  Persona: %s\n", a.Persona)
		fmt.Fprintln(w, "  Modifiers:")
		for _, m := range a.Modifiers {
			fmt.Fprintf(w, "    %s: %s\n", m.Category, m.Value)
		}
	}
	return nil
}

func writeEnvelope(w io.Writer, env prompts.Envelope, format string) error {
	if format != config.FormatText {
		return encode(w, env, format)
	}

	fmt.Fprintln(w, env.SystemPrompt)
	fmt.Fprintln(w)
	fmt.Fprintln(w, env.Instructions)
	return nil
}
