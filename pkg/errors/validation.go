package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// identifierRegex matches PokeAPI resource identifiers: lowercase names with
// dashes (e.g. "mr-mime", "nidoran-f") or numeric ids.
var identifierRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Categories lists the resource categories the accessors know how to address.
var Categories = []string{
	"pokemon",
	"pokemon-species",
	"type",
	"pokedex",
	"generation",
	"evolution-chain",
}

// ValidateIdentifier validates a bare resource name or numeric id.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 100 characters
//   - Lowercase letters, digits and single dashes only
func ValidateIdentifier(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > 100 {
		return New(ErrCodeInvalidName, "name too long (max 100 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "name cannot contain path components: %q", name)
	}

	if !identifierRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid resource name: %q", name)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateNameOrURL accepts either an absolute http(s) URL or a bare identifier.
func ValidateNameOrURL(s string) error {
	if strings.HasPrefix(s, "http") {
		return ValidateURL(s)
	}
	return ValidateIdentifier(s)
}

// ValidateCategory checks that category is one of [Categories].
func ValidateCategory(category string) error {
	if !slices.Contains(Categories, category) {
		return New(ErrCodeInvalidCategory, "unknown category %q (want one of %s)", category, strings.Join(Categories, ", "))
	}
	return nil
}
