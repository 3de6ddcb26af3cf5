package segment

import (
	"regexp"
	"strings"
)

// Marker patterns for the clause/point/sub-point levels. Boundaries between
// spans are computed with explicit index scans over these anchored matches
// rather than regex lookahead, so a span always runs from the end of its own
// marker to the start of the next marker at the same or a higher level.
var (
	clauseMarkRe = regexp.MustCompile(`(?m)^[ \t]*(\d+)[ \t]*[.)][ \t]+`)
	pointMarkRe  = regexp.MustCompile(`(?m)^[ \t]*([a-z])[ \t]*\)[ \t]+`)
	subMarkRe    = regexp.MustCompile(`(?m)^[ \t]*-[ \t]+`)
	keywordRe    = regexp.MustCompile(`(?mi)^[ \t]*(?:Điều|Chương|Phần|Mục|Tiết)[ \t]+`)

	clauseLineRe = regexp.MustCompile(`^(\d+)[ \t]*[.)][ \t]+(.+)$`)
)

// parseClauses extracts numbered clauses from one article/chapter/section
// span. The primary pass slices the span at numbered-clause markers, stopping
// each clause at the next marker, the next structural keyword line, or the
// end of the span; lettered points stay inside their clause and are parsed
// out of its text. When no markers exist, a secondary line-accumulation pass
// runs. A non-empty span always yields at least one clause.
func parseClauses(content string) []Clause {
	content = strings.TrimSpace(content)
	if content == "" {
		return []Clause{}
	}

	marks := clauseMarkRe.FindAllStringSubmatchIndex(content, -1)
	if len(marks) == 0 {
		return accumulateClauses(content)
	}

	keywords := keywordRe.FindAllStringIndex(content, -1)
	clauses := make([]Clause, 0, len(marks))
	for i, m := range marks {
		start := m[1]
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		if k := firstIndexAfter(keywords, start); k >= 0 && k < end {
			end = k
		}
		text := strings.TrimSpace(content[start:end])
		clauses = append(clauses, Clause{
			No:     content[m[2]:m[3]],
			Text:   text,
			Points: parsePoints(text),
		})
	}
	return clauses
}

// accumulateClauses is the secondary clause pass: numbered lines open a new
// clause, any other line extends the most recently opened one, and fully
// unnumbered content becomes a single synthesized clause "1".
func accumulateClauses(content string) []Clause {
	var clauses []Clause
	var cur *Clause
	flush := func() {
		if cur == nil {
			return
		}
		cur.Points = parsePoints(cur.Text)
		clauses = append(clauses, *cur)
		cur = nil
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := clauseLineRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &Clause{No: m[1], Text: m[2], Points: []Point{}}
			continue
		}
		if cur != nil {
			cur.Text += "\n" + line
		} else {
			cur = &Clause{No: "1", Text: line, Points: []Point{}}
		}
	}
	flush()

	if len(clauses) == 0 {
		return []Clause{{No: "1", Text: content, Points: []Point{}}}
	}
	return clauses
}

// parsePoints extracts lettered points from a clause's text. A point's span
// stops at the next point marker, the next numbered-clause marker, the next
// structural keyword line, or the end of the text.
func parsePoints(text string) []Point {
	marks := pointMarkRe.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		return []Point{}
	}

	clauseLocs := clauseMarkRe.FindAllStringIndex(text, -1)
	keywordLocs := keywordRe.FindAllStringIndex(text, -1)
	points := make([]Point, 0, len(marks))
	for i, m := range marks {
		start := m[1]
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		if k := firstIndexAfter(clauseLocs, start); k >= 0 && k < end {
			end = k
		}
		if k := firstIndexAfter(keywordLocs, start); k >= 0 && k < end {
			end = k
		}
		span := strings.TrimSpace(text[start:end])
		points = append(points, Point{
			Letter:    text[m[2]:m[3]],
			Text:      span,
			SubPoints: parseSubPoints(span),
		})
	}
	return points
}

// parseSubPoints extracts dash-prefixed items from a point's text.
func parseSubPoints(text string) []SubPoint {
	marks := subMarkRe.FindAllStringIndex(text, -1)
	if len(marks) == 0 {
		return []SubPoint{}
	}

	pointLocs := pointMarkRe.FindAllStringIndex(text, -1)
	clauseLocs := clauseMarkRe.FindAllStringIndex(text, -1)
	subs := make([]SubPoint, 0, len(marks))
	for i, m := range marks {
		start := m[1]
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		if k := firstIndexAfter(pointLocs, start); k >= 0 && k < end {
			end = k
		}
		if k := firstIndexAfter(clauseLocs, start); k >= 0 && k < end {
			end = k
		}
		subs = append(subs, SubPoint{Marker: "-", Text: strings.TrimSpace(text[start:end])})
	}
	return subs
}

// firstIndexAfter returns the start of the first match location at or past
// from, or -1. Locations come from FindAllStringIndex and are in order.
func firstIndexAfter(locs [][]int, from int) int {
	for _, l := range locs {
		if l[0] >= from {
			return l[0]
		}
	}
	return -1
}
