package app

import (
	"fmt"
	"strings"
)

// RenderDiffMarkdown renders comparison results as a Markdown report, one
// section per pair, in the order the diffs were produced.
func RenderDiffMarkdown(reports []DiffReport) string {
	var b strings.Builder
	b.WriteString("# So sánh cấu trúc văn bản\n\n")
	if len(reports) == 0 {
		b.WriteString("Không có cặp văn bản nào được so sánh.\n")
		return b.String()
	}
	for _, r := range reports {
		fmt.Fprintf(&b, "## %s → %s\n\n", r.Base, r.Revised)
		if len(r.Diff) == 0 {
			b.WriteString("Không có thay đổi.\n\n")
			continue
		}
		fmt.Fprintf(&b, "%d thay đổi:\n\n", len(r.Diff))
		for _, c := range r.Diff {
			fmt.Fprintf(&b, "- **%s** `%s`\n", c.Change, c.ID)
			if c.From != "" {
				fmt.Fprintf(&b, "  - trước: %s\n", excerpt(c.From))
			}
			if c.To != "" {
				fmt.Fprintf(&b, "  - sau: %s\n", excerpt(c.To))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// excerpt flattens and bounds a clause text for display in the report.
func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > 160 {
		return string(runes[:160]) + "…"
	}
	return s
}
