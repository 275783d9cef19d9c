package align

import "strings"

// ExpandTabs replaces tabs in line with spaces up to the next tab stop and
// strips a single trailing line terminator. Pre-existing spaces are shielded
// with a NUL sentinel while tab stops are computed so they can never be
// confused with expansion output.
func ExpandTabs(line string, width int) string {
	if width <= 0 {
		width = DefaultTabWidth
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	shielded := strings.ReplaceAll(line, " ", "\x00")

	var b strings.Builder
	b.Grow(len(shielded) + width)
	col := 0
	for _, r := range shielded {
		if r == '\t' {
			n := width - col%width
			for k := 0; k < n; k++ {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}

	return strings.ReplaceAll(b.String(), "\x00", " ")
}

func expandAll(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ExpandTabs(line, width)
	}
	return out
}
