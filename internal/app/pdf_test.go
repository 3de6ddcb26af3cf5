package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReportPDF(t *testing.T) {
	md := "# So sánh cấu trúc văn bản\n\n## base → revised\n\n- **modified** `Điều 1.1`\n"
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := WriteReportPDF(md, path); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Fatalf("output is not a PDF (%d bytes)", len(data))
	}
}
