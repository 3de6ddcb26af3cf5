package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Text prepares raw document text for segmentation. Vietnamese legal portals
// serve a mix of precomposed and combining-mark encodings, so the text is
// first composed to NFC; then line endings are unified, non-breaking spaces
// and horizontal whitespace runs collapse to single spaces, and runs of blank
// lines cap at one so paragraph structure survives without padding.
func Text(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(collapseHorizontal(line), " ")
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blanks = 0
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func collapseHorizontal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
