package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Heading patterns. All anchor at line starts; matching "Điều N" anywhere
// would split articles at in-text citations ("quy định tại Điều 5").
var (
	dieuHeadRe    = regexp.MustCompile(`(?mi)^[ \t]*Điều[ \t]+(\d+[a-zA-Z]?)[ \t]*[.:\-]?[ \t]*(.*)$`)
	chapterHeadRe = regexp.MustCompile(`(?mi)^[ \t]*((?:Chương|Phần|Mục|Tiết)[ \t]+(?:[IVXLCDM]+|\d+))[ \t]*[.:\-]?[ \t]*(.*)$`)
	romanHeadRe   = regexp.MustCompile(`(?m)^[ \t]*([IVXLCDM]+)[ \t]*\.[ \t]+(\S[^\n]*)$`)
	numberedRe    = regexp.MustCompile(`(?m)^[ \t]*(\d+)\.[ \t]+(.+)$`)

	fallbackNumberedHeadRe = regexp.MustCompile(`^\d+\.[ \t]+\p{Lu}`)
	fallbackRomanHeadRe    = regexp.MustCompile(`^[IVXLCDM]+\.[ \t]+\S`)
)

// fallbackKeywords mark short lines as headers in the generic line-scan
// strategy; they are the stock section names of Vietnamese legal drafting.
var fallbackKeywords = []string{
	"MỤC TIÊU", "YÊU CẦU", "NHIỆM VỤ", "QUY ĐỊNH", "NGUYÊN TẮC",
	"PHẠM VI", "ĐỐI TƯỢNG", "GIẢI THÍCH", "THI HÀNH",
}

// segmentByDieu slices the text at "Điều N" headings. Yields nil below min
// matches so the cascade can fall through.
func (s Segmenter) segmentByDieu(text string, min int) []Article {
	heads := dieuHeadRe.FindAllStringSubmatchIndex(text, -1)
	if len(heads) < min {
		return nil
	}
	articles := make([]Article, 0, len(heads))
	for i, h := range heads {
		number := text[h[2]:h[3]]
		title := strings.TrimSpace(text[h[4]:h[5]])
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		body := strings.TrimSpace(text[h[1]:end])
		articles = append(articles, Article{
			Kind:    KindArticle,
			Label:   "Điều " + number,
			Title:   title,
			Clauses: parseClauses(body),
		})
	}
	return articles
}

// segmentByChapters slices at chapter/part/section headers. Each chapter span
// is re-segmented for nested Điều; when found, the articles carry the chapter
// as a back-reference. A chapter without articles becomes a unit of its own
// with its content parsed straight into clauses.
func (s Segmenter) segmentByChapters(text string) []Article {
	heads := chapterHeadRe.FindAllStringSubmatchIndex(text, -1)
	if len(heads) == 0 {
		return nil
	}
	var articles []Article
	for i, h := range heads {
		label := text[h[2]:h[3]]
		title := strings.TrimSpace(text[h[4]:h[5]])
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		body := strings.TrimSpace(text[h[1]:end])

		if nested := s.segmentByDieu(body, 1); len(nested) > 0 {
			for j := range nested {
				nested[j].Chapter = label
				nested[j].ChapterTitle = title
			}
			articles = append(articles, nested...)
			continue
		}
		articles = append(articles, Article{
			Kind:    KindChapter,
			Label:   label,
			Title:   title,
			Clauses: parseClauses(body),
		})
	}
	return articles
}

// segmentByRoman slices at "IV. Title" section headers, used mainly by
// circulars that structure by Roman numerals instead of chapters.
func (s Segmenter) segmentByRoman(text string, min int) []Article {
	heads := romanHeadRe.FindAllStringSubmatchIndex(text, -1)
	if len(heads) < min {
		return nil
	}
	articles := make([]Article, 0, len(heads))
	for i, h := range heads {
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		body := strings.TrimSpace(text[h[1]:end])
		articles = append(articles, Article{
			Kind:    KindSection,
			Label:   text[h[2]:h[3]],
			Title:   strings.TrimSpace(text[h[4]:h[5]]),
			Clauses: parseClauses(body),
		})
	}
	return articles
}

// segmentBySections slices at digit-numbered all-caps headers ("1. QUY ĐỊNH
// CHUNG"). The all-caps requirement keeps ordinary numbered clauses from
// being mistaken for section headers.
func (s Segmenter) segmentBySections(text string) []Article {
	all := numberedRe.FindAllStringSubmatchIndex(text, -1)
	var heads [][]int
	for _, h := range all {
		if isUpperLine(text[h[4]:h[5]], 3) {
			heads = append(heads, h)
		}
	}
	if len(heads) < 2 {
		return nil
	}
	articles := make([]Article, 0, len(heads))
	for i, h := range heads {
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		body := strings.TrimSpace(text[h[1]:end])
		articles = append(articles, Article{
			Kind:    KindSection,
			Label:   text[h[2]:h[3]],
			Title:   strings.TrimSpace(text[h[4]:h[5]]),
			Clauses: parseClauses(body),
		})
	}
	return articles
}

// segmentFallback is the generic line-scan: header lines open a new section
// unit, numbered content lines open clauses, everything else extends the
// current clause. Text with no header lines at all yields nil so the
// ultimate fallback can wrap the document whole.
func (s Segmenter) segmentFallback(text string) []Article {
	lines := strings.Split(text, "\n")

	sawHeader := false
	for _, line := range lines {
		if isFallbackHeader(strings.TrimSpace(line)) {
			sawHeader = true
			break
		}
	}
	if !sawHeader {
		return nil
	}

	var articles []Article
	var cur *Article
	flush := func() {
		if cur != nil && len(cur.Clauses) > 0 {
			articles = append(articles, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isFallbackHeader(line) {
			flush()
			cur = &Article{
				Kind:    KindSection,
				Label:   fmt.Sprintf("Section_%d", len(articles)+1),
				Title:   line,
				Clauses: []Clause{},
			}
			continue
		}
		if cur == nil {
			cur = &Article{
				Kind:    KindSection,
				Label:   "General",
				Title:   "Document Content",
				Clauses: []Clause{},
			}
		}
		if m := clauseLineRe.FindStringSubmatch(line); m != nil {
			cur.Clauses = append(cur.Clauses, Clause{No: m[1], Text: m[2], Points: []Point{}})
			continue
		}
		if n := len(cur.Clauses); n > 0 {
			cur.Clauses[n-1].Text += "\n" + line
		} else {
			cur.Clauses = append(cur.Clauses, Clause{No: "1", Text: line, Points: []Point{}})
		}
	}
	flush()
	return articles
}

// ultimateFallback wraps the entire text as one article with one clause, the
// guarantee that segmentation never returns an empty tree for non-empty
// input.
func ultimateFallback(text string) []Article {
	return []Article{{
		Kind:    KindSection,
		Label:   "Document",
		Title:   "Full Content",
		Clauses: []Clause{{No: "1", Text: text, Points: []Point{}}},
	}}
}

func isFallbackHeader(line string) bool {
	if line == "" {
		return false
	}
	if fallbackRomanHeadRe.MatchString(line) || fallbackNumberedHeadRe.MatchString(line) {
		return true
	}
	if isUpperLine(line, 10) {
		return true
	}
	if len([]rune(line)) < 100 {
		upper := strings.ToUpper(line)
		for _, kw := range fallbackKeywords {
			if strings.Contains(upper, kw) {
				return true
			}
		}
	}
	return false
}

// isUpperLine reports whether the line consists solely of uppercase letters
// and spaces, holds at least one letter, and spans at least minRunes runes.
func isUpperLine(line string, minRunes int) bool {
	runes := []rune(line)
	if len(runes) < minRunes {
		return false
	}
	letters := 0
	for _, r := range runes {
		if r == ' ' {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 0
}
