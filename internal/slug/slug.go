// internal/slug/slug.go
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinLength is the shortest slug accepted for a wedding URL key.
const MinLength = 3

var (
	validPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	squashPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Generate derives a URL key from a display name: lowercased, diacritics
// stripped via NFD decomposition, every other run of characters squashed
// into a single dash. "Pernikahan André & Béa" -> "pernikahan-andre-bea".
func Generate(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		stripped = strings.ToLower(name)
	}

	return strings.Trim(squashPattern.ReplaceAllString(stripped, "-"), "-")
}

// Valid reports whether s is an acceptable slug.
func Valid(s string) bool {
	return len(s) >= MinLength && validPattern.MatchString(s)
}
