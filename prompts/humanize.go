package prompts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize turns a snake_case key into display text: underscores become
// spaces and each word is title-cased ("casual_friendly" -> "Casual Friendly").
func Humanize(s string) string {
	// A Caser holds state and must not be shared between goroutines.
	return cases.Title(language.Und).String(strings.ReplaceAll(s, "_", " "))
}
