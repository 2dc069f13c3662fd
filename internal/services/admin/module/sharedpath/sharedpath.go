package sharedpath

import (
	"net/url"
	"strings"
)

// SplitPathParts normalizes an escaped, slash-delimited route suffix into
// non-empty, unescaped path segments. Escaped slashes stay inside their
// segment. Segments that fail to unescape are kept verbatim.
func SplitPathParts(escapedPath string) []string {
	rawParts := strings.Split(escapedPath, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if unescaped, err := url.PathUnescape(part); err == nil {
			part = unescaped
		}
		parts = append(parts, part)
	}
	return parts
}
