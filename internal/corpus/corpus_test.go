package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode_WrappedAndBareShapes(t *testing.T) {
	wrapped := `{"documents":[{"title":"Luật A","number":"01/2020/QH14","content":"x"}]}`
	docs, err := Decode([]byte(wrapped))
	if err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	if len(docs) != 1 || docs[0].Number != "01/2020/QH14" {
		t.Fatalf("wrapped docs: got %+v", docs)
	}

	bare := `[{"title":"Luật B","content":"y"}]`
	docs, err = Decode([]byte(bare))
	if err != nil {
		t.Fatalf("bare: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Luật B" {
		t.Fatalf("bare docs: got %+v", docs)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode([]byte(`"just a string"`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, []byte(`[{"title":"T","content":"c"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	docs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 1 || docs[0].Content != "c" {
		t.Fatalf("docs: got %+v", docs)
	}
}

func TestAssignIDs(t *testing.T) {
	docs := []Document{
		{Number: "01/2020/NĐ-CP"},
		{URL: "https://example.vn/van-ban/thong-tu-22.html"},
		{},
		{Number: "01/2020/NĐ-CP"},
	}
	ids := AssignIDs(docs)
	want := []string{"01_2020_NĐ_CP", "thong-tu-22", "doc_2", "01_2020_NĐ_CP_1"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("id %d: got %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestMeta_PreservesUnknownKeys(t *testing.T) {
	docs, err := Decode([]byte(`[{"title":"T","content":"c","crawled_at":"2024-01-02"}]`))
	if err != nil {
		t.Fatal(err)
	}
	meta := string(docs[0].Meta())
	if !strings.Contains(meta, `"crawled_at":"2024-01-02"`) {
		t.Fatalf("meta lost unknown key: %s", meta)
	}
}
