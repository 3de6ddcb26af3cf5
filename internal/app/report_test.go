package app

import (
	"strings"
	"testing"

	"github.com/vanbantools/legistruct/internal/structdiff"
)

func TestRenderDiffMarkdown(t *testing.T) {
	reports := []DiffReport{
		{
			Base:    "01_2020_base",
			Revised: "01_2020_rev",
			Diff: []structdiff.Change{
				{Level: "clause", ID: "Điều 1.1", Change: structdiff.Modified, From: "Phí 2 triệu", To: "Phí 3 triệu"},
				{Level: "clause", ID: "Điều 2.1", Change: structdiff.Added, To: "Khoản mới"},
			},
		},
		{Base: "a", Revised: "b"},
	}
	md := RenderDiffMarkdown(reports)

	for _, want := range []string{
		"## 01_2020_base → 01_2020_rev",
		"2 thay đổi:",
		"**modified** `Điều 1.1`",
		"trước: Phí 2 triệu",
		"sau: Phí 3 triệu",
		"**added** `Điều 2.1`",
		"## a → b",
		"Không có thay đổi.",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}

func TestRenderDiffMarkdown_Empty(t *testing.T) {
	md := RenderDiffMarkdown(nil)
	if !strings.Contains(md, "Không có cặp văn bản") {
		t.Fatalf("empty report: %s", md)
	}
}

func TestExcerptBounds(t *testing.T) {
	long := strings.Repeat("từ ", 200)
	got := excerpt(long)
	if len([]rune(got)) > 161 {
		t.Fatalf("excerpt too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("excerpt not marked truncated: %q", got)
	}
}
