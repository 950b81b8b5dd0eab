package config

import (
	"os"
	"strings"
)

// ExpandEnvWithDefaults replaces ${VAR}, $VAR and ${VAR:-default} references
// with environment values. The default applies when VAR is unset or empty.
func ExpandEnvWithDefaults(s string) string {
	return os.Expand(s, func(ref string) string {
		name, def, hasDefault := strings.Cut(ref, ":-")
		if v := os.Getenv(name); v != "" || !hasDefault {
			return v
		}
		return def
	})
}
