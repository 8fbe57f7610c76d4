package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug turns a product or post title into a URL-safe slug:
// lowercase, hyphen-separated, ASCII only.
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	collapsed := slugHyphenRuns.ReplaceAllString(cleaned, "-")
	return strings.Trim(collapsed, "-")
}
