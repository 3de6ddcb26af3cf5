package segment

import (
	"encoding/json"

	"github.com/vanbantools/legistruct/internal/doctype"
)

// Strategy tags which cascade stage produced a Structure. It is carried on
// the result so downstream review can tell a clean Điều parse from a
// last-resort wrap of the whole document.
type Strategy string

const (
	StrategyDieu             Strategy = "dieu"
	StrategyChapters         Strategy = "chapters"
	StrategySections         Strategy = "sections"
	StrategyRoman            Strategy = "roman"
	StrategyFallback         Strategy = "fallback"
	StrategyUltimateFallback Strategy = "ultimate_fallback"
)

// Status grades a completed segmentation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Structure is the ordered article tree extracted from one document. It is
// immutable once returned; callers may diff or persist it freely.
type Structure struct {
	Articles     []Article    `json:"articles"`
	DocumentType doctype.Type `json:"document_type"`
	StrategyUsed Strategy     `json:"strategy_used"`
	Validation   Validation   `json:"validation"`
}

// Kind distinguishes the three shapes a structural unit can take. A document
// with real Điều articles uses KindArticle; chapters without articles inside
// them and Roman/generic sections are units in their own right.
type Kind int

const (
	KindArticle Kind = iota
	KindChapter
	KindSection
)

// Article is one structural unit. Exactly one of the three kinds applies;
// Chapter/ChapterTitle are a non-owning back-reference set only on
// article-kind units that were found nested inside a chapter.
type Article struct {
	Kind         Kind
	Label        string
	Title        string
	Chapter      string
	ChapterTitle string
	Clauses      []Clause
}

// Clause is a numbered paragraph (khoản) within an article. No is "1" when
// the source had no explicit numbering; that is a documented fallback, not
// an error.
type Clause struct {
	No     string  `json:"no"`
	Text   string  `json:"text"`
	Points []Point `json:"points"`
}

// Point is a lettered sub-item (điểm), "a)" style.
type Point struct {
	Letter    string     `json:"letter"`
	Text      string     `json:"text"`
	SubPoints []SubPoint `json:"sub_points"`
}

// SubPoint is a dash-prefixed item nested under a point.
type SubPoint struct {
	Marker string `json:"marker"`
	Text   string `json:"text"`
}

// Validation is the segmenter's self-assessment for one Structure.
type Validation struct {
	Status Status   `json:"status"`
	Issues []string `json:"issues"`
	Stats  Stats    `json:"stats"`
}

// Stats captures the content-preservation accounting behind the validation
// verdict. PreservationRatio is segmented length over original length, both
// in runes.
type Stats struct {
	OriginalLength    int     `json:"original_length"`
	SegmentedLength   int     `json:"segmented_length"`
	PreservationRatio float64 `json:"preservation_ratio"`
	TotalArticles     int     `json:"total_articles"`
	TotalClauses      int     `json:"total_clauses"`
	TotalPoints       int     `json:"total_points"`
}

// articleJSON is the wire shape shared by all three kinds. The label key
// identifies the kind: exactly one of article/chapter/section is set for a
// unit, and chapter/chapter_title double as the back-reference on
// article-kind units.
type articleJSON struct {
	Article      string   `json:"article,omitempty"`
	Chapter      string   `json:"chapter,omitempty"`
	ChapterTitle string   `json:"chapter_title,omitempty"`
	Section      string   `json:"section,omitempty"`
	Title        string   `json:"title"`
	Clauses      []Clause `json:"clauses"`
}

func (a Article) MarshalJSON() ([]byte, error) {
	j := articleJSON{Title: a.Title, Clauses: a.Clauses}
	if j.Clauses == nil {
		j.Clauses = []Clause{}
	}
	switch a.Kind {
	case KindChapter:
		j.Chapter = a.Label
	case KindSection:
		j.Section = a.Label
	default:
		j.Article = a.Label
		j.Chapter = a.Chapter
		j.ChapterTitle = a.ChapterTitle
	}
	return json.Marshal(j)
}

func (a *Article) UnmarshalJSON(data []byte) error {
	var j articleJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	a.Title = j.Title
	a.Clauses = j.Clauses
	if a.Clauses == nil {
		a.Clauses = []Clause{}
	}
	a.Chapter, a.ChapterTitle = "", ""
	switch {
	case j.Article != "":
		a.Kind = KindArticle
		a.Label = j.Article
		a.Chapter = j.Chapter
		a.ChapterTitle = j.ChapterTitle
	case j.Chapter != "":
		a.Kind = KindChapter
		a.Label = j.Chapter
	default:
		a.Kind = KindSection
		a.Label = j.Section
	}
	return nil
}
