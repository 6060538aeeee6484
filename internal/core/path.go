package core

import "strings"

// JoinLinks joins URL segments with exactly one slash between them. Empty
// segments are ignored and the first segment keeps its leading slash or
// scheme.
func JoinLinks(parts ...string) string {
	out := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if out == "" {
			out = part
			continue
		}
		out = strings.TrimRight(out, "/") + "/" + strings.TrimLeft(part, "/")
	}
	return out
}
