// Package corpus loads crawled document collections. A corpus file is either
// a bare JSON array of documents or an object with a "documents" key; both
// shapes exist in the wild and both are accepted.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is one crawled record. Only the fields the pipeline reads are
// declared; the raw record is kept alongside so metadata written back out is
// byte-faithful to the input, unknown keys included.
type Document struct {
	Title   string `json:"title"`
	Number  string `json:"number"`
	URL     string `json:"url"`
	Content string `json:"content"`

	raw json.RawMessage
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Document(p)
	d.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Meta returns the document's original JSON record for embedding in outputs.
func (d *Document) Meta() json.RawMessage {
	if d.raw == nil {
		b, _ := json.Marshal(d)
		return b
	}
	return d.raw
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.raw != nil {
		return d.raw, nil
	}
	type plain Document
	return json.Marshal(plain(d))
}

// Load reads and decodes a corpus file.
func Load(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Decode(data)
}

// Decode parses corpus bytes in either accepted shape.
func Decode(data []byte) ([]Document, error) {
	var wrapped struct {
		Documents []Document `json:"documents"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Documents != nil {
		return wrapped.Documents, nil
	}
	var docs []Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return docs, nil
}

// AssignIDs derives a filesystem-safe identifier for every document, in
// order. The document number is preferred; failing that the tail of the URL;
// failing that a positional placeholder. Collisions get a numeric suffix so
// two circulars sharing a number never overwrite each other's output.
func AssignIDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	seen := map[string]bool{}
	for i, d := range docs {
		base := baseID(d, i)
		id := base
		for n := 1; seen[id]; n++ {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func baseID(d Document, i int) string {
	if num := strings.TrimSpace(d.Number); num != "" {
		r := strings.NewReplacer("/", "_", "-", "_", ".", "_")
		return r.Replace(num)
	}
	if url := strings.TrimSpace(d.URL); url != "" && strings.Contains(url, "/") {
		tail := url[strings.LastIndex(url, "/")+1:]
		if dot := strings.IndexByte(tail, '.'); dot >= 0 {
			tail = tail[:dot]
		}
		if tail != "" {
			return tail
		}
	}
	return fmt.Sprintf("doc_%d", i)
}
