package app

import "strings"

// DefaultDelimiter separates folder segments in catalog parent paths.
const DefaultDelimiter = "/"

// SplitPath splits a folder path into its non-empty segments. Leading,
// trailing and repeated delimiters are collapsed, so "/a//b/" and "a/b"
// both yield ["a", "b"]. An empty or blank path is the root and yields
// an empty result.
func SplitPath(path, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	var segments []string
	for _, part := range strings.Split(path, delimiter) {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// SplitFolderPath splits a path on the default "/" delimiter.
func SplitFolderPath(path string) []string {
	return SplitPath(path, DefaultDelimiter)
}

// TruncateSegments cuts segments to at most depth entries. A depth <= 0
// means no truncation.
func TruncateSegments(segments []string, depth int) []string {
	if depth <= 0 || len(segments) <= depth {
		return segments
	}
	return segments[:depth]
}

// JoinSegments is the inverse of SplitFolderPath for clean segments.
func JoinSegments(segments []string) string {
	return strings.Join(segments, DefaultDelimiter)
}
