package segment

import (
	"strings"
	"testing"

	"github.com/vanbantools/legistruct/internal/doctype"
)

func TestSegment_DieuHeadings(t *testing.T) {
	text := "Điều 1. Title A\nBody A\nĐiều 2. Title B\nBody B"
	st := Segment(text, doctype.Generic)

	if st.StrategyUsed != StrategyDieu {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 2 {
		t.Fatalf("articles: got %d", len(st.Articles))
	}
	a, b := st.Articles[0], st.Articles[1]
	if a.Label != "Điều 1" || a.Title != "Title A" {
		t.Fatalf("first article: got %q / %q", a.Label, a.Title)
	}
	if b.Label != "Điều 2" || b.Title != "Title B" {
		t.Fatalf("second article: got %q / %q", b.Label, b.Title)
	}
	if len(a.Clauses) != 1 || a.Clauses[0].Text != "Body A" {
		t.Fatalf("first article clauses: got %+v", a.Clauses)
	}
	if len(b.Clauses) != 1 || b.Clauses[0].Text != "Body B" {
		t.Fatalf("second article clauses: got %+v", b.Clauses)
	}
}

func TestSegment_ChapterWithNestedDieu(t *testing.T) {
	text := "Chương I. TỔNG QUÁT\nĐiều 1. Mục đích\n1. Nội dung một\na) Chi tiết a"
	st := Segment(text, doctype.Generic)

	if st.StrategyUsed != StrategyChapters {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 1 {
		t.Fatalf("articles: got %d", len(st.Articles))
	}
	a := st.Articles[0]
	if a.Kind != KindArticle || a.Label != "Điều 1" {
		t.Fatalf("article: got kind %v label %q", a.Kind, a.Label)
	}
	if a.Chapter != "Chương I" || a.ChapterTitle != "TỔNG QUÁT" {
		t.Fatalf("chapter back-reference: got %q / %q", a.Chapter, a.ChapterTitle)
	}
	if len(a.Clauses) != 1 || a.Clauses[0].No != "1" {
		t.Fatalf("clauses: got %+v", a.Clauses)
	}
	points := a.Clauses[0].Points
	if len(points) != 1 || points[0].Letter != "a" || points[0].Text != "Chi tiết a" {
		t.Fatalf("points: got %+v", points)
	}
}

func TestSegment_ChapterWithoutArticlesBecomesUnit(t *testing.T) {
	text := "Chương I. QUY TẮC CHUNG\n1. Khoản một\n2. Khoản hai\nChương II. XỬ LÝ VI PHẠM\nNội dung chương hai"
	st := Segment(text, doctype.Circular)

	if st.StrategyUsed != StrategyChapters {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 2 {
		t.Fatalf("articles: got %d", len(st.Articles))
	}
	if st.Articles[0].Kind != KindChapter || st.Articles[0].Label != "Chương I" {
		t.Fatalf("first unit: got %+v", st.Articles[0])
	}
	if got := len(st.Articles[0].Clauses); got != 2 {
		t.Fatalf("chapter clauses: got %d", got)
	}
	if st.Articles[1].Clauses[0].Text != "Nội dung chương hai" {
		t.Fatalf("second chapter clause: got %q", st.Articles[1].Clauses[0].Text)
	}
}

func TestSegment_DecreeAcceptsSingleDieu(t *testing.T) {
	text := "Điều 1. Sửa đổi mức phí\nMức phí là 2 triệu đồng."
	st := Segment(text, doctype.Decree)

	if st.StrategyUsed != StrategyDieu {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 1 || st.Articles[0].Label != "Điều 1" {
		t.Fatalf("articles: got %+v", st.Articles)
	}
}

func TestSegment_RomanSectionsForCircular(t *testing.T) {
	text := "I. Quy chế chung\nNội dung phần một\nII. Tổ chức thực hiện\nNội dung phần hai"
	st := Segment(text, doctype.Circular)

	if st.StrategyUsed != StrategyRoman {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 2 {
		t.Fatalf("articles: got %d", len(st.Articles))
	}
	if st.Articles[0].Kind != KindSection || st.Articles[0].Label != "I" {
		t.Fatalf("first section: got %+v", st.Articles[0])
	}
	if st.Articles[1].Title != "Tổ chức thực hiện" {
		t.Fatalf("second section title: got %q", st.Articles[1].Title)
	}
}

func TestSegment_NumberedUppercaseSections(t *testing.T) {
	text := "1. NHỮNG VẤN ĐỀ CHUNG\nnội dung phần một\n2. TRÁCH NHIỆM CỦA CÁC BÊN\nnội dung phần hai"
	st := Segment(text, doctype.Generic)

	if st.StrategyUsed != StrategySections {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 2 || st.Articles[0].Label != "1" || st.Articles[1].Label != "2" {
		t.Fatalf("articles: got %+v", st.Articles)
	}
}

func TestSegment_FallbackLineScan(t *testing.T) {
	text := "MỤC TIÊU của kế hoạch\nnội dung thứ nhất\nTHI HÀNH\nnội dung thứ hai"
	st := Segment(text, doctype.Generic)

	if st.StrategyUsed != StrategyFallback {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 2 {
		t.Fatalf("articles: got %d", len(st.Articles))
	}
	if st.Articles[0].Label != "Section_1" || st.Articles[1].Label != "Section_2" {
		t.Fatalf("labels: got %q / %q", st.Articles[0].Label, st.Articles[1].Label)
	}
	if st.Articles[0].Clauses[0].Text != "nội dung thứ nhất" {
		t.Fatalf("clause: got %q", st.Articles[0].Clauses[0].Text)
	}
}

func TestSegment_UltimateFallbackOnPlainProse(t *testing.T) {
	text := "đây là một đoạn văn xuôi thường\nkhông mang theo dấu hiệu cấu trúc nào"
	st := Segment(text, doctype.Generic)

	if st.StrategyUsed != StrategyUltimateFallback {
		t.Fatalf("strategy: got %q", st.StrategyUsed)
	}
	if len(st.Articles) != 1 || len(st.Articles[0].Clauses) != 1 {
		t.Fatalf("expected one article with one clause, got %+v", st.Articles)
	}
	ratio := st.Validation.Stats.PreservationRatio
	if ratio < 0.99 || ratio > 1.01 {
		t.Fatalf("preservation ratio: got %v", ratio)
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	st := Segment("   \n  ", doctype.Law)
	if len(st.Articles) != 0 {
		t.Fatalf("articles: got %+v", st.Articles)
	}
	if st.Validation.Status != StatusError {
		t.Fatalf("status: got %q", st.Validation.Status)
	}
}

func TestSegment_LongClauseWarning(t *testing.T) {
	text := "Điều 1. Alpha\n" + strings.Repeat("x", 2500) + "\nĐiều 2. Beta\nngắn"
	st := Segment(text, doctype.Law)

	if st.Validation.Status != StatusWarning {
		t.Fatalf("status: got %q (issues %v)", st.Validation.Status, st.Validation.Issues)
	}
	found := false
	for _, issue := range st.Validation.Issues {
		if strings.Contains(issue, "very long clause") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing long-clause issue in %v", st.Validation.Issues)
	}
}

func TestSegment_LowPreservationWarning(t *testing.T) {
	// Nearly all content sits in the heading lines, which are not counted
	// as clause text.
	text := "Điều 1. " + strings.Repeat("T", 400) + "\nngắn\nĐiều 2. Beta\ncũng ngắn"
	st := Segment(text, doctype.Law)

	found := false
	for _, issue := range st.Validation.Issues {
		if strings.Contains(issue, "low content preservation") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing preservation issue in %v", st.Validation.Issues)
	}
	if st.Validation.Status != StatusWarning {
		t.Fatalf("status: got %q", st.Validation.Status)
	}
}

func TestSegment_ThresholdOverride(t *testing.T) {
	text := "Điều 1. Alpha\nthân bài một\nĐiều 2. Beta\nthân bài hai"

	if st := Segment(text, doctype.Generic); st.StrategyUsed != StrategyDieu {
		t.Fatalf("default threshold: got %q", st.StrategyUsed)
	}
	seg := Segmenter{MinLawArticles: 3}
	if st := seg.Segment(text, doctype.Generic); st.StrategyUsed == StrategyDieu {
		t.Fatalf("raised threshold should reject a two-article parse")
	}
}

func TestSegment_StatsCounts(t *testing.T) {
	text := "Điều 1. Alpha\n1. Khoản một\na) Điểm a\nb) Điểm b\n2. Khoản hai"
	st := Segment(text, doctype.Decree)

	stats := st.Validation.Stats
	if stats.TotalArticles != 1 || stats.TotalClauses != 2 || stats.TotalPoints != 2 {
		t.Fatalf("stats: got %+v", stats)
	}
}
