package source

import (
	"path/filepath"
	"slices"
	"sort"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r alone.
// Returns the (possibly new) slice and whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Number of newlines strictly before off == 0-based line number.
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })

	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	// one canonical form for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}
