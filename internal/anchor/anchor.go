// Package anchor holds the shared anchor-derivation rules: how heading text
// becomes a slug, how slugs become explicit target labels, and how target
// marker lines are formatted and recognized. The inserter and the rewriter
// must agree on every function here or cross-file resolution silently breaks.
package anchor

import (
	"regexp"
	"strings"
)

// labelPrefix marks every target label this tool generates.
const labelPrefix = "ref"

var (
	separators = regexp.MustCompile(`[\s_]+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)

	// Any explicit target line, regardless of label shape. Hand-written
	// targets count for the idempotence check even without the ref- prefix.
	markerAny = regexp.MustCompile(`^\([^)]+\)=$`)
	// Targets carrying a label we can resolve links against.
	markerRef = regexp.MustCompile(`^\((` + labelPrefix + `-[^)]+)\)=$`)
)

// Slug normalizes heading text into its URL-safe anchor form: lower-cased,
// whitespace and underscores collapsed to single hyphens, every other
// non-alphanumeric rune dropped, leading and trailing hyphens trimmed.
// Deterministic: "Getting Started" is always "getting-started".
func Slug(text string) string {
	s := strings.ToLower(text)
	s = separators.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}

// Label builds the explicit target label for a heading in a given file,
// e.g. Label("install", "From Source") == "ref-install-from-source".
// fileBase is the file name without extension; it runs through Slug as well
// so the label stays URL-safe whatever the file is called.
func Label(fileBase, heading string) string {
	parts := []string{labelPrefix}
	if b := Slug(fileBase); b != "" {
		parts = append(parts, b)
	}
	if s := Slug(heading); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "-")
}

// Marker renders a label as the explicit target line inserted above a heading.
func Marker(label string) string {
	return "(" + label + ")="
}

// IsMarker reports whether line is an explicit target line of any label shape.
func IsMarker(line string) bool {
	return markerAny.MatchString(strings.TrimSpace(line))
}

// ParseMarker extracts the resolvable label from a target line. Targets
// without the ref- prefix are recognized by IsMarker but carry no label the
// rewriter will match; links to them are left as plain path links.
func ParseMarker(line string) (string, bool) {
	m := markerRef.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}
