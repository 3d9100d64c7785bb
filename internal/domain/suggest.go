package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// NormalizeKey reduces a key name to lowercase snake_case so that
// camelCase and snake_case spellings of the same key compare equal
// ("outputDir" and "output_dir" both normalize to "output_dir").
func NormalizeKey(key string) string {
	var words []string
	for _, part := range strings.Split(key, "_") {
		for _, w := range camelcase.Split(part) {
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	return strings.Join(words, "_")
}

// SuggestKey returns the declared key whose normalized form matches the
// unknown key, or "" when no declared key is a plausible match. Used to
// attach a hint to strict-mode unknown-key violations.
func SuggestKey(unknown string, declared []string) string {
	target := NormalizeKey(unknown)
	if target == "" {
		return ""
	}
	for _, d := range declared {
		if d != unknown && NormalizeKey(d) == target {
			return d
		}
	}
	return ""
}
