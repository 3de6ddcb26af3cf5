package segment

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestArticleJSON_KindKeys(t *testing.T) {
	cases := []struct {
		name    string
		article Article
		want    []string
		absent  []string
	}{
		{
			name:    "article with back-reference",
			article: Article{Kind: KindArticle, Label: "Điều 3", Title: "Phí", Chapter: "Chương II", ChapterTitle: "TÀI CHÍNH"},
			want:    []string{`"article":"Điều 3"`, `"chapter":"Chương II"`, `"chapter_title":"TÀI CHÍNH"`},
			absent:  []string{`"section"`},
		},
		{
			name:    "chapter unit",
			article: Article{Kind: KindChapter, Label: "Chương I", Title: "TỔNG QUÁT"},
			want:    []string{`"chapter":"Chương I"`},
			absent:  []string{`"article"`, `"section"`, `"chapter_title"`},
		},
		{
			name:    "section unit",
			article: Article{Kind: KindSection, Label: "Section_1", Title: "MỤC TIÊU"},
			want:    []string{`"section":"Section_1"`},
			absent:  []string{`"article"`, `"chapter"`},
		},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.article)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		s := string(data)
		for _, frag := range tc.want {
			if !strings.Contains(s, frag) {
				t.Fatalf("%s: missing %s in %s", tc.name, frag, s)
			}
		}
		for _, frag := range tc.absent {
			if strings.Contains(s, frag) {
				t.Fatalf("%s: unexpected %s in %s", tc.name, frag, s)
			}
		}
		if !strings.Contains(s, `"clauses":[]`) {
			t.Fatalf("%s: clauses must serialize as an empty array, got %s", tc.name, s)
		}

		var back Article
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if back.Kind != tc.article.Kind || back.Label != tc.article.Label {
			t.Fatalf("%s: round trip got kind %v label %q", tc.name, back.Kind, back.Label)
		}
		if back.Chapter != tc.article.Chapter || back.ChapterTitle != tc.article.ChapterTitle {
			t.Fatalf("%s: round trip back-reference got %q / %q", tc.name, back.Chapter, back.ChapterTitle)
		}
	}
}
