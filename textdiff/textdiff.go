// Package textdiff produces line diffs of raw file text, used to show
// where a rendered file departs from its source.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Unified returns a line-oriented diff of from and to, each line
// prefixed with "-", "+", or " ". It returns the empty string when the
// inputs are equal.
func Unified(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitKeepingTail(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// splitKeepingTail splits s into lines, each retaining its trailing
// newline, keeping any unterminated final line.
func splitKeepingTail(s string) []string {
	var res []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			res = append(res, s)
			break
		}
		res = append(res, s[:i+1])
		s = s[i+1:]
	}
	return res
}
