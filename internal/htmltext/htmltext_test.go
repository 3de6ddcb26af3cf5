package htmltext

import (
	"strings"
	"testing"
)

func TestFromHTML_PrefersContentContainer(t *testing.T) {
	page := `<html><head><title>Nghị định 100/2019/NĐ-CP</title></head><body>
<div class="menu"><a href="/">Trang chủ</a></div>
<div class="content1">
<p>Điều 1. Phạm vi điều chỉnh</p>
<p>Nghị định này quy định về xử phạt vi phạm hành chính.</p>
</div>
<div class="sidebar">Văn bản liên quan</div>
</body></html>`

	doc := FromHTML([]byte(page))
	if doc.Title != "Nghị định 100/2019/NĐ-CP" {
		t.Fatalf("title: got %q", doc.Title)
	}
	if !strings.Contains(doc.Text, "Điều 1. Phạm vi điều chỉnh") {
		t.Fatalf("missing article heading in %q", doc.Text)
	}
	if strings.Contains(doc.Text, "Trang chủ") || strings.Contains(doc.Text, "Văn bản liên quan") {
		t.Fatalf("boilerplate leaked into %q", doc.Text)
	}
}

func TestFromHTML_FallsBackToBody(t *testing.T) {
	page := `<html><body><p>Điều 1. Nội dung</p><script>var x=1;</script></body></html>`
	doc := FromHTML([]byte(page))
	if doc.Text != "Điều 1. Nội dung" {
		t.Fatalf("got %q", doc.Text)
	}
}

func TestFromHTML_KeepsBlockLineStructure(t *testing.T) {
	page := `<html><body><div class="content1"><p>Điều 1. A</p><p>1. Khoản một</p><p>a) Điểm a</p></div></body></html>`
	doc := FromHTML([]byte(page))
	want := "Điều 1. A\n\n1. Khoản một\n\na) Điểm a"
	if doc.Text != want {
		t.Fatalf("got %q want %q", doc.Text, want)
	}
}

func TestFromHTML_EmptyInput(t *testing.T) {
	doc := FromHTML(nil)
	if doc.Text != "" || doc.Title != "" {
		t.Fatalf("expected empty document, got %+v", doc)
	}
}
